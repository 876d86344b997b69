package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/scan"
)

func TestBoolAsciiDigits(t *testing.T) {
	r := wrapString(t, "1")
	b, err := scan.Bool(r, locale.Static, false)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestBoolRejectsWordsWithoutLocalizedFlag(t *testing.T) {
	r := wrapString(t, "true")
	_, err := scan.Bool(r, locale.Static, false)
	assert.Error(t, err)
}

func TestBoolLocalizedTrueName(t *testing.T) {
	r := wrapString(t, "true")
	b, err := scan.Bool(r, locale.Static, true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestBoolLocalizedFalseNameCustomProfile(t *testing.T) {
	fiFI := locale.Profile{TrueName: "tosi", FalseName: "epätosi"}
	r := wrapString(t, "epätosi")
	b, err := scan.Bool(r, fiFI, true)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestBoolFailureRestoresCursor(t *testing.T) {
	r := wrapString(t, "xyz")
	_, err := scan.Bool(r, locale.Static, true)
	require.Error(t, err)
	rest, ok := r.RemainingContiguous()
	require.True(t, ok)
	assert.Equal(t, "xyz", string(rest))
}
