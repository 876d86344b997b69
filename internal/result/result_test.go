package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/result"
	"github.com/nilsson-scn/scn/internal/rng"
)

func TestFromRangeBorrowedContiguousIsReconstructible(t *testing.T) {
	r, err := rng.Wrap("hello world")
	require.NoError(t, err)
	r.ReadCodeUnit(true)
	r.ReadCodeUnit(true)
	lft := result.FromRange(r)
	assert.True(t, lft.Contiguous())
	assert.Equal(t, "llo world", lft.RangeAsStringView())
	rec, ok := lft.Reconstruct()
	require.True(t, ok)
	assert.Equal(t, "llo world", rec)
}

func TestFromRangeOwnedContiguous(t *testing.T) {
	r, err := rng.Wrap(rng.OwnedString("owned"))
	require.NoError(t, err)
	lft := result.FromRange(r)
	assert.Equal(t, rng.OwnedContiguous, lft.Category())
	rec, ok := lft.Reconstruct()
	require.True(t, ok)
	assert.Equal(t, rng.OwnedString("owned"), rec)
}

func TestRangeAsStringViewPanicsForNonContiguous(t *testing.T) {
	r, err := rng.Wrap(newByteIterator("abc"))
	require.NoError(t, err)
	lft := result.FromRange(r)
	assert.False(t, lft.Contiguous())
	assert.Panics(t, func() { lft.RangeAsStringView() })
}

func TestResultOkAndErr(t *testing.T) {
	r, err := rng.Wrap("x")
	require.NoError(t, err)
	lft := result.FromRange(r)

	ok := result.Ok(lft, 2)
	assert.True(t, ok.OK())
	assert.Equal(t, 2, ok.N())

	bad := result.Err(assert.AnError, lft, 1)
	assert.False(t, bad.OK())
	assert.Equal(t, assert.AnError, bad.Err())
}

type byteIterator struct {
	data []byte
	pos  int
}

func newByteIterator(s string) *byteIterator {
	return &byteIterator{data: []byte(s)}
}

func (b *byteIterator) Next() (byte, bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}
	u := b.data[b.pos]
	b.pos++
	return u, true
}
