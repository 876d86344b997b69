// Package scnerr implements the tagged error model shared by every
// scanning component: a closed set of error codes plus a message and
// an end-of-range sentinel, in the manner of strconv's NumError.
package scnerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the kind of failure a scan operation reports.
type Code int

const (
	// InvalidFormatString means the format mini-language could not be
	// parsed; no input has been consumed when this is returned.
	InvalidFormatString Code = iota
	// InvalidScannedValue means the input did not match the expected
	// shape for the requested type (e.g. "abc" for an integer).
	InvalidScannedValue
	// ValueOutOfRange means the input parsed but overflowed the target type.
	ValueOutOfRange
	// EndOfRange means the source was exhausted. It is not unconditionally
	// an error: the dispatcher, ScanList and Getline treat it as a loop
	// terminator while still reporting a successful partial result.
	EndOfRange
	// UnrecoverableSourceError means the underlying source itself failed
	// (e.g. an I/O error from a streamed reader).
	UnrecoverableSourceError
	// InvalidEncoding means the next code unit(s) do not form a valid
	// code point under the source's encoding.
	InvalidEncoding
)

func (c Code) String() string {
	switch c {
	case InvalidFormatString:
		return "invalid_format_string"
	case InvalidScannedValue:
		return "invalid_scanned_value"
	case ValueOutOfRange:
		return "value_out_of_range"
	case EndOfRange:
		return "end_of_range"
	case UnrecoverableSourceError:
		return "unrecoverable_source_error"
	case InvalidEncoding:
		return "invalid_encoding"
	default:
		return "unknown_error"
	}
}

// Recoverable reports whether a scanner failure of this kind restores
// the cursor to the last rollback point (§7). UnrecoverableSourceError
// and InvalidEncoding leave the cursor where it failed.
func (c Code) Recoverable() bool {
	switch c {
	case UnrecoverableSourceError, InvalidEncoding:
		return false
	default:
		return true
	}
}

// Error is the concrete error value returned by scanning operations. It
// records which component raised it for diagnostics, mirroring the
// Func field of strconv.NumError.
type Error struct {
	Code      Code
	Component string // component that raised the error, e.g. "format", "scan/integer"
	Msg       string
	cause     error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("scn: %s: %s: %s: %v", e.Component, e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("scn: %s: %s: %s", e.Component, e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a leaf Error with no wrapped cause.
func New(component string, code Code, msg string) *Error {
	return &Error{Component: component, Code: code, Msg: msg}
}

// Newf is New with fmt.Sprintf-style formatting of msg.
func Newf(component string, code Code, format string, args ...interface{}) *Error {
	return New(component, code, fmt.Sprintf(format, args...))
}

// Wrap attaches cause to a new Error, preserving cause's stack via
// pkg/errors so that Cause(err) recovers the original failure across
// package boundaries (e.g. a strconv conversion failure surfacing
// through the integer scanner).
func Wrap(component string, code Code, msg string, cause error) *Error {
	return &Error{Component: component, Code: code, Msg: msg, cause: errors.Wrap(cause, msg)}
}

// Cause unwraps to the deepest non-*Error cause, delegating to
// pkg/errors.Cause so wrapped strconv/io errors are recoverable by
// callers that need the original sentinel (e.g. io.EOF).
func Cause(err error) error {
	for {
		e, ok := err.(*Error)
		if !ok || e.cause == nil {
			return err
		}
		err = errors.Cause(e.cause)
	}
}

// Is reports whether err is a *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// ErrEndOfRange is the shared sentinel value for "no more input", handed
// back by read primitives (§4.2) instead of Go's io.EOF so that callers
// inside this module never have to special-case io.EOF versus a scanner
// failure: both collapse to the same Code.
var ErrEndOfRange = New("ioutil", EndOfRange, "end of range")
