// Package result implements the Result value and the leftover-range
// selector (§4.8): every scan reports either ok or an error kind, plus
// the unconsumed tail of the input in the representation appropriate to
// the input's source category.
package result

import (
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Leftover is the returned tail of a scan. It always exposes Empty/Len/
// Subrange/Bytes; it has no Begin or End accessor. RangeAsStringView,
// RangeAsSpan and RangeAsString are valid only when Contiguous is true
// (§4.8: exposed "only when the source category is contiguous").
//
// Go has no rvalue/lvalue overload resolution to pick the leftover
// representation at compile time the way scnlib's trait-based
// specialization does; the equivalent here is that Wrap already fixed
// the Range's Category for the whole call, so Contiguous and the
// Reconstruct availability are decided once, at entry, and every method
// below is a cheap field read rather than a runtime type switch over
// the original source.
type Leftover struct {
	category    rng.Category
	contiguous  bool
	bytes       []byte // contiguous categories: the remaining slice (borrowed or owned)
	owns        bool   // true if bytes is this Leftover's own copy (OwnedContiguous or an erased owning tail)
	erasedTail  []byte // non-contiguous categories: whatever was pulled to materialize the tail
	reconstruct func() interface{}
}

// FromRange builds the Leftover for r after a scan has positioned its
// cursor, applying the priority table in §4.8.
func FromRange(r *rng.Range) Leftover {
	switch r.Category() {
	case rng.OwnedContiguous:
		rest, _ := r.RemainingContiguous()
		return Leftover{category: r.Category(), contiguous: true, bytes: rest, owns: true,
			reconstruct: func() interface{} { return rng.OwnedString(string(rest)) }}
	case rng.BorrowedContiguous:
		rest, _ := r.RemainingContiguous()
		return Leftover{category: r.Category(), contiguous: true, bytes: rest,
			reconstruct: func() interface{} { return string(rest) }}
	default:
		var tail []byte
		for {
			b, err := r.ReadCodeUnit(true)
			if err != nil {
				break
			}
			tail = append(tail, b)
		}
		l := Leftover{category: r.Category(), contiguous: false, erasedTail: tail}
		if r.Category() == rng.OwnedNonContiguous {
			l.owns = true
		}
		return l
	}
}

// Empty/Len/Subrange are available for every category; there is no
// Begin or End accessor.
func (l Leftover) Empty() bool {
	if l.contiguous {
		return len(l.bytes) == 0
	}
	return len(l.erasedTail) == 0
}

func (l Leftover) Len() int {
	if l.contiguous {
		return len(l.bytes)
	}
	return len(l.erasedTail)
}

// Subrange returns the leftover truncated/offset to [lo:hi), matching
// the shape of whichever representation this Leftover holds.
func (l Leftover) Subrange(lo, hi int) Leftover {
	out := l
	if l.contiguous {
		out.bytes = l.bytes[lo:hi]
	} else {
		out.erasedTail = l.erasedTail[lo:hi]
	}
	return out
}

// Category reports which source category produced this Leftover.
func (l Leftover) Category() rng.Category { return l.category }

// Contiguous reports whether RangeAsStringView/RangeAsSpan/RangeAsString
// are available, per §4.8.
func (l Leftover) Contiguous() bool { return l.contiguous }

// RangeAsStringView returns a zero-copy view of the leftover for
// contiguous sources. It panics if Contiguous() is false: callers must
// check the category first, exactly as scnlib's compile-time-restricted
// accessor would refuse to compile for a non-contiguous range.
func (l Leftover) RangeAsStringView() string {
	l.requireContiguous()
	return string(l.bytes)
}

// RangeAsSpan returns a zero-copy []byte view for contiguous sources.
func (l Leftover) RangeAsSpan() []byte {
	l.requireContiguous()
	return l.bytes
}

// RangeAsString returns an owned copy for contiguous sources.
func (l Leftover) RangeAsString() string {
	l.requireContiguous()
	return string(l.bytes)
}

func (l Leftover) requireContiguous() {
	if !l.contiguous {
		panic(scnerr.New("result", scnerr.UnrecoverableSourceError, "RangeAs* called on a non-contiguous leftover"))
	}
}

// Bytes returns the leftover content regardless of category, copying
// for non-contiguous sources; it is the one accessor available
// unconditionally for content inspection outside of RangeAs*.
func (l Leftover) Bytes() []byte {
	if l.contiguous {
		return l.bytes
	}
	return l.erasedTail
}

// Reconstruct rebuilds an owned value of the original input's type
// starting at the current cursor, when the input type supports it
// (§4.8). Only the contiguous categories are reconstructible; it
// returns (nil, false) for streamed and type-erased sources.
func (l Leftover) Reconstruct() (interface{}, bool) {
	if l.reconstruct == nil {
		return nil, false
	}
	return l.reconstruct(), true
}

// Result carries either ok or an error plus the Leftover, per §7: it is
// convertible to boolean via OK() and exposes the error kind and a
// human-readable message.
type Result struct {
	err      error
	leftover Leftover
	n        int // items successfully scanned/assigned
}

func Ok(leftover Leftover, n int) Result {
	return Result{leftover: leftover, n: n}
}

func Err(err error, leftover Leftover, n int) Result {
	return Result{err: err, leftover: leftover, n: n}
}

// OK reports success. A scan that consumes the entire input reports OK,
// never end_of_range, per §7.
func (r Result) OK() bool { return r.err == nil }

// Err returns the underlying error, or nil on success.
func (r Result) Err() error { return r.err }

// Code returns the error kind, valid only when !OK().
func (r Result) Code() scnerr.Code {
	var e *scnerr.Error
	if se, ok := r.err.(*scnerr.Error); ok {
		e = se
	}
	if e == nil {
		return scnerr.InvalidScannedValue
	}
	return e.Code
}

// N returns how many arguments were successfully assigned before any
// failure, satisfying §5's ordering guarantee (assignments 0..N-1 took
// effect; N..len(args)-1 did not).
func (r Result) N() int { return r.n }

// Leftover returns the unconsumed tail of the input.
func (r Result) Leftover() Leftover { return r.leftover }
