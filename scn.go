// Package scn implements a formatted-input scanning library: given a
// source of characters and a brace-based format string, it extracts
// typed values and reports both the outcome and the leftover portion of
// the input so scanning may continue. See SPEC_FULL.md for the full
// design; this file implements the Scan Dispatcher (Component F) on top
// of the Format-String Parser in internal/format (Component E).
package scn

import (
	"unicode/utf8"

	"github.com/nilsson-scn/scn/internal/format"
	"github.com/nilsson-scn/scn/internal/ioutil"
	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/result"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scan"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Result is the outcome of a scan call (§4's Result value). It carries
// either ok or an error kind plus the leftover, unconsumed input.
type Result = result.Result

// Leftover is the unconsumed tail of a scan, in the representation
// chosen by the source's category (§4.8).
type Leftover = result.Leftover

// Scanner lets a user-defined type provide its own Parse/Scan hooks
// (§4.7's "User type").
type Scanner = scan.Scanner

// FormatContext and ScanContext are handed to a user Scanner's hooks.
type FormatContext = scan.FormatContext
type ScanContext = scan.Context

// OwnedString marks a string argument as surrendered to the scan call,
// selecting the OwnedContiguous leftover representation (§4.8 rule 1)
// instead of the default BorrowedContiguous one plain strings get.
type OwnedString = rng.OwnedString

// Option configures a single scan call.
type Option func(*options)

type options struct {
	logger interface {
		Debugf(string, ...interface{})
	}
	locale locale.Profile
}

// WithTrace attaches an optional diagnostic logger to a scan call.
func WithTrace(l interface {
	Debugf(string, ...interface{})
}) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{locale: locale.Static}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Scan parses fmtStr's specifiers against src and assigns successive
// values into args (§6). Literal whitespace in fmtStr matches any
// positive run of input whitespace; non-whitespace literals must match
// byte-for-byte (§4.5).
func Scan(src interface{}, fmtStr string, args ...interface{}) Result {
	return scanWith(src, fmtStr, locale.Static, args, nil)
}

// ScanDefault synthesizes the format "{} {} ... {}" for len(args) slots
// and skips the parser entirely (§4.5).
func ScanDefault(src interface{}, args ...interface{}) Result {
	r, err := rng.Wrap(src)
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}
	actions := format.Default(len(args))
	return dispatch(r, actions, args, locale.Static, nil)
}

// ScanLocalized is Scan with loc bound as the dynamic locale: specifiers
// that carry the 'l' flag use loc for classification and separators;
// specifiers without it still use the static profile.
func ScanLocalized(loc locale.Profile, src interface{}, fmtStr string, args ...interface{}) Result {
	return scanWith(src, fmtStr, loc, args, nil)
}

// ScanTrace is Scan with an attached diagnostic logger (§5's opt-in
// dispatcher tracing): every specifier attempt, and every failed one, is
// logged through opts, never through a package-global logger.
func ScanTrace(src interface{}, fmtStr string, opts []Option, args ...interface{}) Result {
	return scanWith(src, fmtStr, locale.Static, args, opts)
}

func scanWith(src interface{}, fmtStr string, loc locale.Profile, args []interface{}, opts []Option) Result {
	r, err := rng.Wrap(src)
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}
	actions, perr := format.Parse(fmtStr)
	if perr != nil {
		return result.Err(perr, result.FromRange(r), 0)
	}
	o := newOptions(opts)
	return dispatch(r, actions, args, loc, o.logger)
}

// ScanValue scans a single value of type T with the default "{}"
// format and returns it inside the Result instead of via an
// out-reference (§6), the original's scan_value<T> overload family
// (SPEC_FULL item 3).
func ScanValue[T any](src interface{}) (T, Result) {
	var v T
	res := ScanDefault(src, &v)
	return v, res
}

// traceLogger is the minimal contract ScanTrace's logger must satisfy;
// it mirrors diag.Logger's Debugf without this package depending on
// internal/diag directly.
type traceLogger interface {
	Debugf(string, ...interface{})
}

// dispatch walks actions and args in lock-step (Component F). On
// scanner failure it returns immediately with the range restored to the
// rollback point set just before the failing specifier (§4.6, §7). When
// logger is non-nil, every specifier attempt, and every failed one, is
// traced through it (§5's opt-in dispatcher tracing).
func dispatch(r *rng.Range, actions []format.Action, args []interface{}, loc locale.Profile, logger traceLogger) Result {
	argIdx := 0
	assigned := 0

	for _, act := range actions {
		if act.Spec == nil {
			if matchErr := matchLiteral(r, act.Literal); matchErr != nil {
				return result.Err(matchErr, result.FromRange(r), assigned)
			}
			continue
		}

		spec := act.Spec
		i := argIdx
		if spec.Index >= 0 {
			i = spec.Index
		}
		argIdx = i + 1

		if i >= len(args) {
			return result.Err(scnerr.New("dispatch", scnerr.InvalidFormatString, "too few operands for format"), result.FromRange(r), assigned)
		}
		arg := args[i]

		// The dynamic locale only governs a specifier that actually carries
		// the 'l' flag (§4.4); every other specifier always classifies
		// against the static profile, even inside ScanLocalized.
		effLoc := locale.Static
		if spec.Localized {
			effLoc = loc
		}

		if logger != nil {
			logger.Debugf("scan specifier", "index", i, "kind", spec.Kind, "raw", spec.Raw)
		}

		// Every specifier other than a bare character or character-class
		// read implicitly skips leading whitespace before it runs, the
		// same way a literal whitespace run in the format string does
		// (§4.5, §8 scenario 3) — {:c} and {[...]} take the very next
		// code point verbatim instead.
		if spec.Kind != format.KindChar && spec.Kind != format.KindCharSet {
			skipWhitespace(r, effLoc)
		}

		r.SetRollbackPoint()
		if err := scanOne(r, spec, arg, effLoc); err != nil {
			if logger != nil {
				logger.Debugf("specifier failed", "index", i, "err", err)
			}
			if scnerr.Is(err, scnerr.EndOfRange) {
				return result.Ok(result.FromRange(r), assigned)
			}
			return result.Err(err, result.FromRange(r), assigned)
		}
		assigned++
	}

	return result.Ok(result.FromRange(r), assigned)
}

// matchLiteral consumes lit from the input: a run of whitespace in lit
// matches any positive run of input whitespace (or zero at end of
// range, §8); non-whitespace text must match byte-for-byte (§4.5, §4.6).
func matchLiteral(r *rng.Range, lit string) error {
	i := 0
	for i < len(lit) {
		c, w := utf8.DecodeRuneInString(lit[i:])
		if ioutil.IsSpace(c) {
			for i < len(lit) {
				c2, w2 := utf8.DecodeRuneInString(lit[i:])
				if !ioutil.IsSpace(c2) {
					break
				}
				i += w2
			}
			matched, atEnd := 0, false
			for {
				rn, _, err := ioutil.ReadCodePoint(r)
				if err != nil {
					atEnd = scnerr.Is(err, scnerr.EndOfRange)
					break
				}
				if !ioutil.IsSpace(rn) {
					putbackRune(r, rn)
					break
				}
				matched++
			}
			if matched == 0 && !atEnd {
				return scnerr.New("dispatch", scnerr.InvalidScannedValue, "expected whitespace in input")
			}
			continue
		}
		rn, _, err := ioutil.ReadCodePoint(r)
		if err != nil {
			return err
		}
		if rn != c {
			// Not a match: put the rune back so the leftover begins at
			// the mismatched character rather than past it.
			putbackRune(r, rn)
			return scnerr.New("dispatch", scnerr.InvalidScannedValue, "literal text did not match input")
		}
		i += w
	}
	return nil
}

// skipWhitespace consumes a run of loc-classified whitespace (possibly
// empty), putting back the first non-space code point it reads.
func skipWhitespace(r *rng.Range, loc locale.Profile) {
	for {
		rn, _, err := ioutil.ReadCodePoint(r)
		if err != nil {
			break
		}
		if !loc.IsSpace(rn) {
			putbackRune(r, rn)
			break
		}
	}
}

func putbackRune(r *rng.Range, rn rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rn)
	for i := n - 1; i >= 0; i-- {
		r.Putback(buf[i])
	}
}

// scanOne derives the scanner from arg's Go type (or its Scanner
// implementation) and the specifier's Kind, mirroring fmt.ss.scanOne's
// type switch — the "tagged variant over a closed set of primitive
// types plus an erased user scanner variant" from the design notes.
func scanOne(r *rng.Range, spec *format.Spec, arg interface{}, loc locale.Profile) error {
	if v, ok := arg.(Scanner); ok {
		if err := v.Parse(FormatContext{Spec: spec}); err != nil {
			return err
		}
		return v.Scan(arg, ScanContext{Range: r, SubScan: func(subFormat string, subArgs ...interface{}) error {
			actions, perr := format.Parse(subFormat)
			if perr != nil {
				return perr
			}
			return dispatch(r, actions, subArgs, loc, nil).Err()
		}})
	}

	base := 10
	grouped := spec.Grouped
	switch spec.Kind {
	case format.KindHex:
		base = 16
	case format.KindOctal:
		base = 8
	case format.KindBinary:
		base = 2
	}

	switch v := arg.(type) {
	case *int:
		n, err := scan.Integer[int](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *int8:
		n, err := scan.Integer[int8](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *int16:
		n, err := scan.Integer[int16](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *int32:
		// rune is an alias for int32, so a {:c} specifier over a *rune
		// argument lands here too: dispatch on Kind instead of on Go type.
		if spec.Kind == format.KindChar {
			c, err := scan.Char(r)
			if err == nil {
				*v = c
			}
			return err
		}
		n, err := scan.Integer[int32](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *int64:
		n, err := scan.Integer[int64](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *uint:
		n, err := scan.Integer[uint](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *uint8:
		// byte is an alias for uint8, so a {:c} specifier over a *byte
		// argument lands here too: dispatch on Kind instead of on Go type.
		if spec.Kind == format.KindChar {
			c, err := scan.Char(r)
			if err == nil {
				*v = byte(c)
			}
			return err
		}
		n, err := scan.Integer[uint8](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *uint16:
		n, err := scan.Integer[uint16](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *uint32:
		n, err := scan.Integer[uint32](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *uint64:
		n, err := scan.Integer[uint64](r, loc, base, grouped)
		if err == nil {
			*v = n
		}
		return err
	case *float32:
		f, err := scan.Float[float32](r, loc, floatKindOf(spec.Kind))
		if err == nil {
			*v = f
		}
		return err
	case *float64:
		f, err := scan.Float[float64](r, loc, floatKindOf(spec.Kind))
		if err == nil {
			*v = f
		}
		return err
	case *bool:
		b, err := scan.Bool(r, loc, spec.Localized)
		if err == nil {
			*v = b
		}
		return err
	case *string:
		return scanString(r, spec, v)
	case *[]byte:
		return scanBytes(r, spec, v)
	default:
		return scnerr.Newf("dispatch", scnerr.InvalidFormatString, "unsupported argument type %T", arg)
	}
}

func floatKindOf(k format.Kind) scan.FloatKind {
	switch k {
	case format.KindFloatA:
		return scan.FloatHex
	case format.KindFloatE:
		return scan.FloatExp
	case format.KindFloatF:
		return scan.FloatFixed
	case format.KindFloatG:
		return scan.FloatGeneral
	default:
		return scan.FloatDefault
	}
}

func scanString(r *rng.Range, spec *format.Spec, out *string) error {
	if spec.Kind == format.KindCharSet {
		runes, err := scan.CharClass(r, spec.Set)
		if err != nil {
			return err
		}
		*out = string(runes)
		return nil
	}
	width := -1
	if spec.Width > 0 {
		width = spec.Width
	}
	b, err := scan.String(r, width)
	if err != nil {
		return err
	}
	*out = string(b)
	return nil
}

func scanBytes(r *rng.Range, spec *format.Spec, out *[]byte) error {
	var s string
	if err := scanString(r, spec, &s); err != nil {
		return err
	}
	*out = []byte(s)
	return nil
}

