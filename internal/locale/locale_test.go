package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/locale"
)

func TestStaticIsAsciiDeterministic(t *testing.T) {
	v, ok := locale.Static.IsDigit('7', 10)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = locale.Static.IsDigit('g', 16)
	assert.False(t, ok)
}

func TestParseFloatNormalizesCommaDecimal(t *testing.T) {
	fiFI := locale.Profile{DecimalPoint: ',', ThousandsSep: ' '}
	f, err := fiFI.ParseFloat("3 140,5")
	require.NoError(t, err)
	assert.InDelta(t, 3140.5, f, 1e-9)
}

func TestWithClassifiersOverridesDigitAndSpace(t *testing.T) {
	custom := locale.Static.WithClassifiers(
		func(ch rune, base int) (int, bool) {
			if ch == 'z' {
				return 0, true
			}
			return 0, false
		},
		func(ch rune) bool { return ch == '_' },
	)
	v, ok := custom.IsDigit('z', 10)
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, custom.IsSpace('_'))
	assert.False(t, custom.IsSpace(' '))
}
