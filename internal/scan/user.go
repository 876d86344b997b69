package scan

import (
	"github.com/nilsson-scn/scn/internal/format"
	"github.com/nilsson-scn/scn/internal/rng"
)

// FormatContext is handed to a user scanner's Parse hook so it can
// inspect (and reject) the specifier body meant for it (§4.7).
type FormatContext struct {
	Spec *format.Spec
}

// Context is handed to a user scanner's Scan hook. SubScan lets a
// composite type recurse into the dispatcher with a sub-format and
// sub-arguments — the "[{}, {}]" pattern from §4.7 and SPEC_FULL
// scenario 10 — without the scan package depending on the top-level
// dispatcher (SubScan is injected by whoever constructs the Context).
type Context struct {
	Range   *rng.Range
	SubScan func(subFormat string, args ...interface{}) error
}

// Scanner is implemented by a user-defined type wanting custom scan
// behavior, mirroring fmt.Scanner but split into the two hooks scnlib
// exposes: Parse validates/consumes the specifier body once, Scan reads
// the value once per invocation. This is the "erased user scanner"
// variant of the type-dispatch tagged union named in the design notes:
// a value implementing Scanner carries its own Parse/Scan function
// pair instead of the dispatcher needing a case for its concrete type.
type Scanner interface {
	Parse(fc FormatContext) error
	Scan(out interface{}, sc Context) error
}
