package scnerr_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilsson-scn/scn/internal/scnerr"
)

func TestNewProducesLeafError(t *testing.T) {
	err := scnerr.New("scan/integer", scnerr.InvalidScannedValue, "no digits scanned")
	assert.True(t, scnerr.Is(err, scnerr.InvalidScannedValue))
	assert.False(t, scnerr.Is(err, scnerr.ValueOutOfRange))
	assert.Contains(t, err.Error(), "no digits scanned")
}

func TestNewfFormatsMessage(t *testing.T) {
	err := scnerr.Newf("dispatch", scnerr.InvalidFormatString, "unsupported argument type %T", 3.14)
	assert.Contains(t, err.Error(), "unsupported argument type float64")
}

func TestWrapPreservesCauseAcrossBoundary(t *testing.T) {
	err := scnerr.Wrap("rng", scnerr.EndOfRange, "streamed source exhausted", io.EOF)
	require.True(t, scnerr.Is(err, scnerr.EndOfRange))
	assert.ErrorIs(t, scnerr.Cause(err), io.EOF)
}

func TestIsReturnsFalseForForeignError(t *testing.T) {
	assert.False(t, scnerr.Is(io.EOF, scnerr.EndOfRange))
}

func TestCodeRecoverable(t *testing.T) {
	assert.True(t, scnerr.InvalidScannedValue.Recoverable())
	assert.True(t, scnerr.EndOfRange.Recoverable())
	assert.False(t, scnerr.UnrecoverableSourceError.Recoverable())
	assert.False(t, scnerr.InvalidEncoding.Recoverable())
}

func TestErrEndOfRangeIsStableSentinel(t *testing.T) {
	assert.True(t, scnerr.Is(scnerr.ErrEndOfRange, scnerr.EndOfRange))
}
