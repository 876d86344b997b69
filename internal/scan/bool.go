package scan

import (
	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Bool scans a boolean per §4.7. Without localized, only the ASCII
// digits '0'/'1' are accepted. With localized, the locale's
// TrueName/FalseName are also accepted, matched longest-first: the
// longer name is tried before the shorter one, so when one name is a
// prefix of the other the longer match wins. A name matches as a prefix
// of the remaining input (a caller with TrueName "t" and a stream
// "true" consumes only "t").
func Bool(r *rng.Range, loc locale.Profile, localized bool) (bool, error) {
	r.SetRollbackPoint()

	if localized {
		first, second, firstVal := loc.TrueName, loc.FalseName, true
		if len(second) > len(first) {
			first, second, firstVal = second, first, false
		}
		if tryConsumeName(r, first) {
			return firstVal, nil
		}
		if tryConsumeName(r, second) {
			return !firstVal, nil
		}
	}

	b, err := r.ReadCodeUnit(false)
	if err == nil && (b == '0' || b == '1') {
		r.ReadCodeUnit(true)
		return b == '1', nil
	}

	r.ResetToRollbackPoint()
	return false, scnerr.New("scan/bool", scnerr.InvalidScannedValue, "expected boolean literal")
}

// tryConsumeName consumes name from r if it is a prefix of the
// remaining input, restoring the cursor and reporting false otherwise.
func tryConsumeName(r *rng.Range, name string) bool {
	if name == "" {
		return false
	}
	consumed := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		b, err := r.ReadCodeUnit(true)
		if err != nil || b != name[i] {
			if err == nil {
				r.Putback(b)
			}
			for j := len(consumed) - 1; j >= 0; j-- {
				r.Putback(consumed[j])
			}
			return false
		}
		consumed = append(consumed, b)
	}
	return true
}
