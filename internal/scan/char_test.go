package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/format"
	"github.com/nilsson-scn/scn/internal/scan"
)

func TestCharReadsOneCodePoint(t *testing.T) {
	r := wrapString(t, "ab")
	c, err := scan.Char(r)
	require.NoError(t, err)
	assert.Equal(t, 'a', c)
	rest, _ := r.RemainingContiguous()
	assert.Equal(t, "b", string(rest))
}

func TestCharMultibyte(t *testing.T) {
	r := wrapString(t, "éx")
	c, err := scan.Char(r)
	require.NoError(t, err)
	assert.Equal(t, 'é', c)
}

func TestStringReadsWhitespaceDelimitedToken(t *testing.T) {
	r := wrapString(t, "hello world")
	tok, err := scan.String(r, -1)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(tok))
	rest, _ := r.RemainingContiguous()
	assert.Equal(t, " world", string(rest))
}

func TestCharClassRange(t *testing.T) {
	set, err := parseSet(t, "[a-z]")
	require.NoError(t, err)
	r := wrapString(t, "abcD")
	runes, cerr := scan.CharClass(r, set)
	require.NoError(t, cerr)
	assert.Equal(t, "abc", string(runes))
}

func TestCharClassEmptyMatchFails(t *testing.T) {
	set, err := parseSet(t, "[a-z]")
	require.NoError(t, err)
	r := wrapString(t, "ABC")
	_, cerr := scan.CharClass(r, set)
	assert.Error(t, cerr)
}

func parseSet(t *testing.T, spec string) (format.CharSet, error) {
	t.Helper()
	actions, err := format.Parse("{" + spec + "}")
	if err != nil {
		return format.CharSet{}, err
	}
	return actions[0].Spec.Set, nil
}
