package locale

import "strconv"

// parseFloatShim delegates to strconv.ParseFloat so rounding matches
// the platform's IEEE-754 conversion, exactly as scnlib's locale shim
// delegates to the C library's strtod.
func parseFloatShim(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
