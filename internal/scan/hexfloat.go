package scan

import "strconv"

// hexFloatShim delegates to strconv.ParseFloat, which accepts Go's
// native hex-float syntax (0x1.8p3) directly — the SPEC_FULL item 4
// extension recovered from original_source's {:a} support.
func hexFloatShim(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
