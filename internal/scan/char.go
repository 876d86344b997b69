package scan

import (
	"unicode/utf8"

	"github.com/nilsson-scn/scn/internal/format"
	"github.com/nilsson-scn/scn/internal/ioutil"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Char reads a single code point (§4.7).
func Char(r *rng.Range) (rune, error) {
	rn, _, err := ioutil.ReadCodePoint(r)
	if err != nil {
		return 0, scnerr.Wrap("scan/char", scnerr.InvalidScannedValue, "expected one character", err)
	}
	return rn, nil
}

// Span reads up to n non-space code points into a caller-sized buffer,
// restoring the cursor on early failure (§4.7). It returns the code
// points actually read.
func Span(r *rng.Range, n int) ([]rune, error) {
	r.SetRollbackPoint()
	out := make([]rune, 0, n)
	for len(out) < n {
		rn, _, err := ioutil.ReadCodePoint(r)
		if err != nil {
			if scnerr.Is(err, scnerr.EndOfRange) {
				break
			}
			r.ResetToRollbackPoint()
			return nil, err
		}
		if ioutil.IsSpace(rn) {
			var b [4]byte
			putbackRune(r, rn, b[:])
			break
		}
		out = append(out, rn)
	}
	return out, nil
}

func putbackRune(r *rng.Range, rn rune, scratch []byte) {
	n := utf8.EncodeRune(scratch, rn)
	for i := n - 1; i >= 0; i-- {
		r.Putback(scratch[i])
	}
}

// String reads a whitespace-delimited token (§4.7). For contiguous
// sources with no width bound (maxWidth < 0) the returned bytes are a
// borrowed sub-view; a width-bounded read returns a copy. Callers that need
// an owned copy should copy them out (the internal representation
// itself is always freshly read here, so this already avoids returning
// shared scratch state across calls, unlike fmt's Token which reuses a
// buffer).
func String(r *rng.Range, maxWidth int) ([]byte, error) {
	stop := ioutil.IsSpace
	if maxWidth < 0 {
		tok, _, err := ioutil.ReadUntilSpaceZeroCopy(r, stop)
		return tok, err
	}
	return ioutil.ReadUntilSpaceRanged(r, stop, maxWidth)
}

// CharClass reads the longest run of code points belonging (or not
// belonging, if the set is negated) to a "{[...]}" set (§4.7). An empty
// match is InvalidScannedValue.
func CharClass(r *rng.Range, set format.CharSet) ([]rune, error) {
	r.SetRollbackPoint()
	var out []rune
	for {
		rn, _, err := ioutil.ReadCodePoint(r)
		if err != nil {
			if scnerr.Is(err, scnerr.EndOfRange) {
				break
			}
			r.ResetToRollbackPoint()
			return nil, err
		}
		if !set.Contains(rn) {
			var b [4]byte
			putbackRune(r, rn, b[:])
			break
		}
		out = append(out, rn)
	}
	if len(out) == 0 {
		r.ResetToRollbackPoint()
		return nil, scnerr.New("scan/charclass", scnerr.InvalidScannedValue, "empty character-class match")
	}
	return out, nil
}
