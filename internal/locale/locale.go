// Package locale implements the Locale Reference (§4.4): a small set
// of classification callbacks consulted only when a format specifier
// carries the 'l' flag or a caller uses ScanLocalized. The default
// (static) profile is ASCII and deterministic; it must never be
// affected by the process's OS locale.
package locale

import "unicode"

// Profile is the contract every locale must satisfy: digit and space
// classification, the decimal point and thousands separator, and the
// boolean spellings. It mirrors scnlib's locale_ref.
type Profile struct {
	Name string

	DecimalPoint      rune
	ThousandsSep      rune
	TrueName          string
	FalseName         string
	digitOverride     func(ch rune, base int) (digit int, ok bool)
	spaceOverride     func(ch rune) bool
}

// Static is the default, locale-independent profile (§4.4): ASCII
// digits, '.' decimal point, no grouping separator, and the C locale's
// "0"/"1" boolean spellings (the "true"/"false" long forms are also
// accepted so Static is still useful for scan_localized callers who
// never configured a custom profile).
var Static = Profile{
	Name:         "C",
	DecimalPoint: '.',
	ThousandsSep: 0,
	TrueName:     "true",
	FalseName:    "false",
}

// WithClassifiers returns a copy of p using custom digit/space
// classification callbacks, for a caller that binds a dynamic locale at
// the call site (§4.4's "dynamic" profile) instead of only supplying
// separators and boolean names.
func (p Profile) WithClassifiers(isDigit func(ch rune, base int) (int, bool), isSpace func(rune) bool) Profile {
	p.digitOverride = isDigit
	p.spaceOverride = isSpace
	return p
}

// IsDigit classifies ch as a digit of base, consulting the profile's
// override if one is set, otherwise falling back to ASCII digit and
// letter values (§4.4).
func (p Profile) IsDigit(ch rune, base int) (int, bool) {
	if p.digitOverride != nil {
		return p.digitOverride(ch, base)
	}
	return asciiDigitValue(ch, base)
}

// IsSpace classifies ch as space, consulting the profile's override if
// one is set, otherwise unicode.IsSpace.
func (p Profile) IsSpace(ch rune) bool {
	if p.spaceOverride != nil {
		return p.spaceOverride(ch)
	}
	return unicode.IsSpace(ch)
}

func asciiDigitValue(ch rune, base int) (int, bool) {
	var v int
	switch {
	case '0' <= ch && ch <= '9':
		v = int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		v = int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		v = int(ch-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// ParseFloat converts a pre-validated numeric string to float64. It is
// the "numeric string-to-float shim" named in §4.4 — final rounding is
// delegated here so Static and a loaded Profile can, in principle,
// disagree on rounding behavior without the float scanner caring.
//
// s is expected in the profile's own notation (e.g. "3,14" under a
// comma-decimal profile); it is normalized to Go's dot-decimal notation
// before delegating to strconv.ParseFloat.
func (p Profile) ParseFloat(s string) (float64, error) {
	if p.DecimalPoint != '.' || p.ThousandsSep != 0 {
		var b []rune
		for _, r := range s {
			switch {
			case p.ThousandsSep != 0 && r == p.ThousandsSep:
				continue
			case r == p.DecimalPoint:
				b = append(b, '.')
			default:
				b = append(b, r)
			}
		}
		s = string(b)
	}
	return parseFloatShim(s)
}
