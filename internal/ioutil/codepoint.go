// Package ioutil implements the code-point layer of Component B: rune
// decoding and whitespace-delimited token reads against a *rng.Range,
// in the manner of fmt's readRune and bufio.Reader.ReadRune.
package ioutil

import (
	"unicode/utf8"

	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// ReadCodePoint decodes one code point from r, reading up to
// utf8.UTFMax bytes. The read is atomic: either the whole sequence is
// consumed or none of it is (§3's atomicity invariant). An invalid
// lead byte fails with InvalidEncoding.
func ReadCodePoint(r *rng.Range) (rune, int, error) {
	var buf [utf8.UTFMax]byte

	b0, err := r.ReadCodeUnit(true)
	if err != nil {
		return 0, 0, err
	}
	buf[0] = b0
	if b0 < utf8.RuneSelf {
		return rune(b0), 1, nil
	}

	// Multi-byte sequence: consume bytes until a full rune is buffered,
	// putting all of them back if the sequence turns out to be invalid
	// so the read is atomic per §3.
	n := 1
	for n < utf8.UTFMax && !utf8.FullRune(buf[:n]) {
		b, err := r.ReadCodeUnit(true)
		if err != nil {
			break
		}
		buf[n] = b
		n++
	}
	rn, size := utf8.DecodeRune(buf[:n])
	if rn == utf8.RuneError && size <= 1 {
		for i := n - 1; i >= 0; i-- {
			r.Putback(buf[i])
		}
		return 0, 0, scnerr.New("ioutil", scnerr.InvalidEncoding, "invalid UTF-8 lead byte")
	}
	// Put back any lookahead bytes the decoded rune did not use.
	for i := n - 1; i >= size; i-- {
		r.Putback(buf[i])
	}
	return rn, size, nil
}

// IsSpace reports whether r is one of the white-space characters below
// U+0100 (the Latin-1 subset of unicode.IsSpace), the default
// terminator for whitespace-delimited token reads.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0:
		return true
	}
	return false
}

// ReadUntilSpace reads code units up to the next unit satisfying stop
// (IsSpace by default), copying into a fresh byte slice.
func ReadUntilSpace(r *rng.Range, stop func(rune) bool) ([]byte, error) {
	return ReadUntilSpaceRanged(r, stop, -1)
}

// ReadUntilSpaceRanged is ReadUntilSpace bounded by maxLen code points
// (maxLen < 0 means unbounded).
func ReadUntilSpaceRanged(r *rng.Range, stop func(rune) bool, maxLen int) ([]byte, error) {
	if stop == nil {
		stop = IsSpace
	}
	var out []byte
	for n := 0; maxLen < 0 || n < maxLen; n++ {
		rn, _, err := ReadCodePoint(r)
		if err != nil {
			if scnerr.Is(err, scnerr.EndOfRange) {
				break
			}
			return out, err
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], rn)
		if stop(rn) {
			for i := n - 1; i >= 0; i-- {
				r.Putback(buf[i])
			}
			break
		}
		out = append(out, buf[:n]...)
	}
	return out, nil
}

// ReadUntilSpaceZeroCopy returns a borrowed sub-view for contiguous
// sources, falling back to a copy otherwise.
func ReadUntilSpaceZeroCopy(r *rng.Range, stop func(rune) bool) ([]byte, bool, error) {
	rest, ok := r.RemainingContiguous()
	if !ok {
		b, err := ReadUntilSpace(r, stop)
		return b, false, err
	}
	if stop == nil {
		stop = IsSpace
	}
	i := 0
	for i < len(rest) {
		rn, size := utf8.DecodeRune(rest[i:])
		if stop(rn) {
			break
		}
		i += size
	}
	tok := rest[:i]
	for j := 0; j < i; j++ {
		r.ReadCodeUnit(true)
	}
	return tok, true, nil
}
