package scan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scan"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

func wrapString(t *testing.T, s string) *rng.Range {
	t.Helper()
	r, err := rng.Wrap(s)
	require.NoError(t, err)
	return r
}

func TestIntegerDecimal(t *testing.T) {
	r := wrapString(t, "123")
	n, err := scan.Integer[int](r, locale.Static, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 123, n)
}

func TestIntegerNegative(t *testing.T) {
	r := wrapString(t, "-42")
	n, err := scan.Integer[int](r, locale.Static, 10, false)
	require.NoError(t, err)
	assert.Equal(t, -42, n)
}

func TestIntegerHexBase(t *testing.T) {
	r := wrapString(t, "ff")
	n, err := scan.Integer[uint8](r, locale.Static, 16, false)
	require.NoError(t, err)
	assert.EqualValues(t, 255, n)
}

func TestIntegerMinInt64RoundTrips(t *testing.T) {
	r := wrapString(t, "-9223372036854775808")
	n, err := scan.Integer[int64](r, locale.Static, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), n)
}

func TestIntegerOverflowBeyondMinInt64Fails(t *testing.T) {
	r := wrapString(t, "-9223372036854775809")
	_, err := scan.Integer[int64](r, locale.Static, 10, false)
	require.Error(t, err)
	assert.True(t, scnerr.Is(err, scnerr.ValueOutOfRange))
}

func TestIntegerNoDigitsFails(t *testing.T) {
	r := wrapString(t, "abc")
	_, err := scan.Integer[int](r, locale.Static, 10, false)
	require.Error(t, err)
	assert.True(t, scnerr.Is(err, scnerr.InvalidScannedValue))
}

func TestIntegerStopsAtNonDigitAndPutsItBack(t *testing.T) {
	r := wrapString(t, "42x")
	n, err := scan.Integer[int](r, locale.Static, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	rest, ok := r.RemainingContiguous()
	require.True(t, ok)
	assert.Equal(t, "x", string(rest))
}

func TestIntegerNegativeForUnsignedFails(t *testing.T) {
	r := wrapString(t, "-1")
	_, err := scan.Integer[uint](r, locale.Static, 10, false)
	require.Error(t, err)
	assert.True(t, scnerr.Is(err, scnerr.ValueOutOfRange))
}
