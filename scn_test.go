package scn_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn"
	"github.com/nilsson-scn/scn/internal/diag"
	"github.com/nilsson-scn/scn/internal/locale"
)

func TestScanInteger(t *testing.T) {
	var i int
	res := scn.Scan("123", "{}", &i)
	require.True(t, res.OK())
	assert.Equal(t, 123, i)
	assert.True(t, res.Leftover().Empty())
}

func TestScanInvalidValue(t *testing.T) {
	var i int
	res := scn.Scan("abc", "{}", &i)
	require.False(t, res.OK())
	assert.Equal(t, "abc", res.Leftover().RangeAsString())
}

func TestScanSkipsLeadingWhitespaceLiteral(t *testing.T) {
	var i int
	res := scn.Scan("  42x", "{}", &i)
	require.True(t, res.OK())
	assert.Equal(t, 42, i)
	assert.Equal(t, "x", res.Leftover().RangeAsString())
}

func TestScanValue(t *testing.T) {
	v, res := scn.ScanValue[int]("42")
	require.True(t, res.OK())
	assert.Equal(t, 42, v)
}

func TestGetLineSplitsOnNewline(t *testing.T) {
	var s string
	res := scn.GetLine("hello\nworld", &s)
	require.True(t, res.OK())
	assert.Equal(t, "hello", s)
	assert.Equal(t, "world", res.Leftover().RangeAsString())
}

func TestGetLineWithoutDelimiterStillOK(t *testing.T) {
	var s string
	res := scn.GetLine("no newline here", &s)
	require.True(t, res.OK())
	assert.Equal(t, "no newline here", s)
	assert.True(t, res.Leftover().Empty())
}

func TestScanList(t *testing.T) {
	var out []int
	target := &scn.SliceTarget[int]{Dest: &out}
	res := scn.ScanList[int]("123 456", target)
	require.True(t, res.OK())
	assert.Equal(t, []int{123, 456}, out)
	assert.True(t, res.Leftover().Empty())
}

func TestScanListUntil(t *testing.T) {
	var out []int
	target := &scn.SliceTarget[int]{Dest: &out}
	res := scn.ScanListUntil[int]("123 456\n789", target, '\n')
	require.True(t, res.OK())
	assert.Equal(t, []int{123, 456}, out)
	assert.Equal(t, "789", res.Leftover().RangeAsString())
}

func TestScanLocalizedDecimalComma(t *testing.T) {
	fiFI := locale.Profile{
		Name:         "fi_FI",
		DecimalPoint: ',',
		TrueName:     "tosi",
		FalseName:    "epätosi",
	}
	var d float64
	res := scn.ScanLocalized(fiFI, "3,14", "{:l}", &d)
	require.True(t, res.OK())
	assert.InDelta(t, 3.14, d, 1e-9)
}

func TestParseIntegerHex(t *testing.T) {
	var out int
	n, err := scn.ParseInteger("ff", &out, 16)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 255, out)
}

func TestParseFloat(t *testing.T) {
	var out float64
	n, err := scn.ParseFloat("3.5", &out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.InDelta(t, 3.5, out, 1e-9)
}

func TestScanDefaultSynthesizesFormat(t *testing.T) {
	var a, b int
	res := scn.ScanDefault("1 2", &a, &b)
	require.True(t, res.OK())
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestIdempotentLeftoverChaining(t *testing.T) {
	res := scn.Scan("123 456", "{}", new(int))
	require.True(t, res.OK())
	leftover := res.Leftover().RangeAsString()
	res2 := scn.Scan(leftover, "")
	require.True(t, res2.OK())
	assert.Equal(t, leftover, res2.Leftover().RangeAsString())
}

func TestRollbackOnFailureLeavesEarlierArgsAssigned(t *testing.T) {
	var a, b int
	res := scn.Scan("1 x", "{} {}", &a, &b)
	require.False(t, res.OK())
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, b)
	assert.Equal(t, 1, res.N())
}

func TestOverflowBoundary(t *testing.T) {
	var out int8
	res := scn.Scan("127", "{}", &out)
	require.True(t, res.OK())
	assert.EqualValues(t, 127, out)

	res = scn.Scan("128", "{}", &out)
	assert.False(t, res.OK())
}

func TestScanTraceLogsSpecifierAttempts(t *testing.T) {
	var buf bytes.Buffer
	logger := diag.New(&buf)

	var i int
	res := scn.ScanTrace("42", "{}", []scn.Option{scn.WithTrace(logger)}, &i)
	require.True(t, res.OK())
	assert.Equal(t, 42, i)
	assert.Contains(t, buf.String(), "scan specifier")
}

func TestScanSingleCharIntoRune(t *testing.T) {
	var c rune
	res := scn.Scan("Q", "{:c}", &c)
	require.True(t, res.OK())
	assert.Equal(t, 'Q', c)
}

type point struct {
	X, Y int
}

func (p *point) Parse(fc scn.FormatContext) error { return nil }

func (p *point) Scan(out interface{}, sc scn.ScanContext) error {
	return sc.SubScan("[{}, {}]", &p.X, &p.Y)
}

func TestUserScannerSubFormat(t *testing.T) {
	var p point
	res := scn.Scan("[1, 2]", "{}", &p)
	require.True(t, res.OK())
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 2, p.Y)
}
