// Package scan implements the Typed Scanners (§4.7): per-type readers
// invoked by the dispatcher, each consuming code units through a
// *rng.Range. The overflow-cutoff bookkeeping follows strconv.ParseUint
// (src/strconv/atoi.go); the negated-accumulation strategy itself is
// scnlib's own (§4.7) so that scanning math.MinInt64's textual form
// never needs to negate an unrepresentable positive magnitude.
package scan

import (
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/nilsson-scn/scn/internal/ioutil"
	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// digitValue classifies ch as a digit of base using loc, returning
// ok=false if ch isn't one.
func digitValue(loc locale.Profile, ch rune, base int) (int, bool) {
	return loc.IsDigit(ch, base)
}

// Integer scans a base-`base` integer into T, following §4.7:
// optional leading sign, optional thousands grouping when grouped is
// set, digits accumulated as a negated running total so math.MinInt64
// is representable without ever forming the unrepresentable positive
// magnitude.
func Integer[T constraints.Integer](r *rng.Range, loc locale.Profile, base int, grouped bool) (T, error) {
	r.SetRollbackPoint()

	neg := false
	switch b, err := r.ReadCodeUnit(false); {
	case err == nil && b == '-':
		neg = true
		r.ReadCodeUnit(true)
	case err == nil && b == '+':
		r.ReadCodeUnit(true)
	}

	var signed bool
	var minT, maxT int64 // only meaningful when signed; see unsigned path below
	signed = isSigned[T]()

	var neg64 int64   // negated running total for signed T
	var pos64 uint64  // running total for unsigned T
	sawDigit := false

	for {
		rn, _, err := ioutil.ReadCodePoint(r)
		if err != nil {
			if scnerr.Is(err, scnerr.EndOfRange) {
				break
			}
			r.ResetToRollbackPoint()
			return 0, err
		}
		if grouped && loc.ThousandsSep != 0 && rn == loc.ThousandsSep {
			continue
		}
		v, ok := digitValue(loc, rn, base)
		if !ok {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rn)
			for i := n - 1; i >= 0; i-- {
				r.Putback(buf[i])
			}
			break
		}
		sawDigit = true
		if signed {
			// neg64 accumulates the negative magnitude: neg64 = neg64*base - v.
			if overflowsNeg(neg64, base, v) {
				r.ResetToRollbackPoint()
				return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "integer overflow")
			}
			neg64 = neg64*int64(base) - int64(v)
		} else {
			if overflowsUnsigned(pos64, uint64(base), uint64(v)) {
				r.ResetToRollbackPoint()
				return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "integer overflow")
			}
			pos64 = pos64*uint64(base) + uint64(v)
		}
	}

	if !sawDigit {
		r.ResetToRollbackPoint()
		return 0, scnerr.New("scan/integer", scnerr.InvalidScannedValue, "no digits scanned")
	}

	if signed {
		result := neg64
		if !neg {
			// The accumulated value is negative; negating it back to
			// positive must not itself overflow int64 (guards MaxInt64).
			if result == minInt64 {
				r.ResetToRollbackPoint()
				return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "integer overflow")
			}
			result = -result
		}
		minT, maxT = boundsOf[T]()
		if result < minT || result > maxT {
			r.ResetToRollbackPoint()
			return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "integer overflow")
		}
		return T(result), nil
	}

	if neg && pos64 != 0 {
		r.ResetToRollbackPoint()
		return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "negative value for unsigned type")
	}
	_, umax := unsignedBoundsOf[T]()
	if pos64 > umax {
		r.ResetToRollbackPoint()
		return 0, scnerr.New("scan/integer", scnerr.ValueOutOfRange, "integer overflow")
	}
	return T(pos64), nil
}

const minInt64 = -9223372036854775808

func overflowsNeg(acc int64, base, digit int) bool {
	// acc is <= 0; check acc*base - digit does not go below minInt64.
	if acc < minInt64/int64(base) {
		return true
	}
	cand := acc*int64(base) - int64(digit)
	return cand > acc // wrapped around
}

func overflowsUnsigned(acc, base, digit uint64) bool {
	if acc > (^uint64(0))/base {
		return true
	}
	cand := acc * base
	if cand > ^uint64(0)-digit {
		return true
	}
	return false
}

func isSigned[T constraints.Integer]() bool {
	var z T
	return z-1 < z
}

func boundsOf[T constraints.Integer]() (min, max int64) {
	var z T
	bits := sizeOfBits(z)
	max = int64(uint64(1)<<(bits-1) - 1)
	min = -max - 1
	return
}

func unsignedBoundsOf[T constraints.Integer]() (min, max uint64) {
	var z T
	bits := sizeOfBits(z)
	if bits == 64 {
		return 0, ^uint64(0)
	}
	return 0, uint64(1)<<bits - 1
}

func sizeOfBits[T constraints.Integer](z T) uint {
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64, int, uint:
		return 64
	default:
		return 64
	}
}

