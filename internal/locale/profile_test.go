package locale_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/locale"
)

func TestLoadProfileReadsFinnishLocale(t *testing.T) {
	p, err := locale.LoadProfile(filepath.Join("..", "..", "locales", "fi_FI.toml"))
	require.NoError(t, err)
	assert.Equal(t, "fi_FI", p.Name)
	assert.Equal(t, ',', p.DecimalPoint)
	assert.Equal(t, ' ', p.ThousandsSep)
	assert.Equal(t, "tosi", p.TrueName)
	assert.Equal(t, "epätosi", p.FalseName)
}

func TestLoadProfilesAggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.toml"), []byte(`
name = "good"
decimal_point = "."
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("not = [valid toml"), 0o644))

	profiles, err := locale.LoadProfiles(dir)
	require.Error(t, err)
	require.Contains(t, profiles, "good")
}
