package scn

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/nilsson-scn/scn/internal/format"
	"github.com/nilsson-scn/scn/internal/ioutil"
	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/result"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scan"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// stdinMu and stdinRange implement §5's "process-wide standard-input
// range, serialized by the caller and explicitly synchronized after
// each input/prompt call" — the one piece of shared mutable state the
// concurrency model allows.
var (
	stdinMu    sync.Mutex
	stdinRange *rng.Range
)

func stdin() (*rng.Range, error) {
	if stdinRange == nil {
		r, err := rng.Wrap(os.Stdin)
		if err != nil {
			return nil, err
		}
		stdinRange = r
	}
	return stdinRange, nil
}

// Input binds Range to standard input, scans fmtStr against it, and
// syncs the stdin range on return (§6).
func Input(fmtStr string, args ...interface{}) Result {
	stdinMu.Lock()
	defer stdinMu.Unlock()

	r, err := stdin()
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}
	defer r.Sync()

	actions, perr := format.Parse(fmtStr)
	if perr != nil {
		return result.Err(perr, result.FromRange(r), 0)
	}
	return dispatch(r, actions, args, locale.Static, nil)
}

// Prompt writes msg to standard output, then delegates to Input (§6).
func Prompt(msg string, fmtStr string, args ...interface{}) Result {
	fmt.Fprint(os.Stdout, msg)
	return Input(fmtStr, args...)
}

// GetLine reads up to and including delim (default '\n') into *out; the
// delimiter is consumed but not stored (§6). Per the source's preserved
// open question, if delim is never found before end-of-range, GetLine
// still reports ok with whatever was accumulated (SPEC_FULL.md, Open
// Question decisions).
func GetLine(src interface{}, out *string, delim ...rune) Result {
	d := byte('\n')
	if len(delim) > 0 {
		d = byte(delim[0])
	}
	r, err := rng.Wrap(src)
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}

	var buf []byte
	for {
		b, rerr := r.ReadCodeUnit(true)
		if rerr != nil {
			break
		}
		if b == d {
			break
		}
		buf = append(buf, b)
	}
	*out = string(buf)
	return result.Ok(result.FromRange(r), 1)
}

// IgnoreUntil discards code points up to and including the first
// occurrence of until, or to end-of-range if until never appears (§6).
func IgnoreUntil(src interface{}, until rune) Result {
	return ignoreUntilN(src, -1, until)
}

// IgnoreUntilN discards at most n code points, stopping early if until
// is seen (§6).
func IgnoreUntilN(src interface{}, n int, until rune) Result {
	return ignoreUntilN(src, n, until)
}

func ignoreUntilN(src interface{}, n int, until rune) Result {
	r, err := rng.Wrap(src)
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}
	count := 0
	for n < 0 || count < n {
		rn, _, rerr := ioutil.ReadCodePoint(r)
		if rerr != nil {
			break
		}
		count++
		if rn == until {
			break
		}
	}
	return result.Ok(result.FromRange(r), count)
}

// ListTarget is the minimal container contract scan_list/scan_list_until
// needs: Append grows the container by one element and MaxSize bounds
// how many elements may be appended (0 means unbounded), mirroring the
// source's Container::value_type + max_size() access pattern without
// requiring a generic container type in the public surface.
type ListTarget[T any] interface {
	Append(T)
	MaxSize() int
}

// SliceTarget adapts a *[]T into a ListTarget (§6's "Container"). A
// zero Cap means unbounded.
type SliceTarget[T any] struct {
	Dest *[]T
	Cap  int
}

func (s *SliceTarget[T]) Append(v T)    { *s.Dest = append(*s.Dest, v) }
func (s *SliceTarget[T]) MaxSize() int { return s.Cap }

// ScanList repeatedly scans T-valued elements from src into dst,
// separated by an optional separator rune (default any whitespace run),
// stopping at end-of-range, dst's max size, or an unexpected character
// — all without error (§6, design note "soft stop").
func ScanList[T any](src interface{}, dst ListTarget[T], separator ...rune) Result {
	return scanListUntil[T](src, dst, nil, separator...)
}

// ScanListUntil is ScanList but also stops when until is seen (§6).
func ScanListUntil[T any](src interface{}, dst ListTarget[T], until rune, separator ...rune) Result {
	u := until
	return scanListUntil[T](src, dst, &u, separator...)
}

func scanListUntil[T any](src interface{}, dst ListTarget[T], until *rune, separator ...rune) Result {
	r, err := rng.Wrap(src)
	if err != nil {
		return result.Err(err, result.Leftover{}, 0)
	}

	sep := rune(0)
	hasSep := len(separator) > 0 && separator[0] != 0
	if hasSep {
		sep = separator[0]
	}

	// peekUntil reports whether the next code point is the until
	// terminator, consuming it (not putting it back) when it is — the
	// terminator itself never appears in the leftover.
	peekUntil := func() bool {
		if until == nil {
			return false
		}
		r.SetRollbackPoint()
		rn, _, perr := ioutil.ReadCodePoint(r)
		if perr != nil {
			return false
		}
		if rn == *until {
			return true
		}
		r.ResetToRollbackPoint()
		return false
	}

	n := 0
	first := true
	for {
		if max := dst.MaxSize(); max > 0 && n >= max {
			break
		}

		// until must be checked before whitespace separator consumption:
		// when until is itself whitespace (e.g. '\n' with the default
		// separator), consuming it as an ordinary separator would hide
		// it from the check below and the list would run past it.
		if peekUntil() {
			break
		}

		if !first {
			r.SetRollbackPoint()
			rn, _, perr := ioutil.ReadCodePoint(r)
			if perr != nil {
				break
			}
			consumedSep := false
			hitUntil := false
			if hasSep {
				consumedSep = rn == sep
			} else if ioutil.IsSpace(rn) {
				consumedSep = true
				for {
					if peekUntil() {
						hitUntil = true
						break
					}
					rn2, _, perr2 := ioutil.ReadCodePoint(r)
					if perr2 != nil {
						break
					}
					if !ioutil.IsSpace(rn2) {
						putbackRune(r, rn2)
						break
					}
				}
			}
			if !consumedSep {
				r.ResetToRollbackPoint()
				break
			}
			if hitUntil || peekUntil() {
				break
			}
		}

		var v T
		res := dispatch(r, format.Default(1), []interface{}{&v}, locale.Static, nil)
		if !res.OK() {
			break
		}
		dst.Append(v)
		n++
		first = false
	}
	return result.Ok(result.FromRange(r), n)
}

// ParseInteger parses base-base digits from s into *out, returning the
// index one past the last digit consumed on success (§6, §4.7
// preconditions: s must be non-empty, have no leading whitespace, no
// leading '+', and no radix prefix — base is always explicit).
func ParseInteger[T constraints.Integer](s string, out *T, base int) (int, error) {
	if s == "" {
		return 0, scnerr.New("parse_integer", scnerr.InvalidScannedValue, "empty input")
	}
	r, err := rng.Wrap(rng.OwnedString(s))
	if err != nil {
		return 0, err
	}
	n, serr := scan.Integer[T](r, locale.Static, base, false)
	if serr != nil {
		return 0, serr
	}
	*out = n
	return len(s) - result.FromRange(r).Len(), nil
}

// ParseFloat mirrors ParseInteger for floating point values (§6).
func ParseFloat[T float32 | float64](s string, out *T) (int, error) {
	if s == "" {
		return 0, scnerr.New("parse_float", scnerr.InvalidScannedValue, "empty input")
	}
	r, err := rng.Wrap(rng.OwnedString(s))
	if err != nil {
		return 0, err
	}
	f, serr := scan.Float[T](r, locale.Static, scan.FloatDefault)
	if serr != nil {
		return 0, serr
	}
	*out = f
	return len(s) - result.FromRange(r).Len(), nil
}
