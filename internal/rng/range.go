// Package rng implements the Range Abstraction Layer: a uniform,
// stateful cursor over the heterogeneous sources a scan call may be
// given (borrowed/owned contiguous buffers, streamed readers, and
// type-erased non-contiguous sequences), with lookahead, putback and
// rollback.
//
// The design follows bufio.Reader's buffering scheme (fill/Peek/
// ReadByte/UnreadByte) and fmt's internal ss/readRune state machine for
// the streamed and erased cases, generalized to also cover borrowed and
// owned contiguous views without copying.
package rng

import (
	"bufio"
	"io"

	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Category classifies the source a Range wraps, per §3 of the
// specification. The category is fixed for the lifetime of a Range and
// drives which leftover-range representation the result selector (see
// internal/result) picks.
type Category int

const (
	BorrowedContiguous Category = iota
	OwnedContiguous
	BorrowedNonContiguous
	OwnedNonContiguous
	Streamed
)

func (c Category) String() string {
	switch c {
	case BorrowedContiguous:
		return "borrowed-contiguous"
	case OwnedContiguous:
		return "owned-contiguous"
	case BorrowedNonContiguous:
		return "borrowed-non-contiguous"
	case OwnedNonContiguous:
		return "owned-non-contiguous"
	case Streamed:
		return "streamed"
	default:
		return "unknown"
	}
}

func (c Category) Contiguous() bool {
	return c == BorrowedContiguous || c == OwnedContiguous
}

// CodeUnitIterator boxes a non-contiguous sequence of bytes behind a
// two-method vtable (advance, deref), the "Erased ranges" design note:
// any caller-supplied sequential container can satisfy this without the
// Range needing to know its concrete type.
type CodeUnitIterator interface {
	// Next returns the next code unit and true, or ok=false at the end
	// of the sequence.
	Next() (unit byte, ok bool)
}

// Owned marks an iterator as surrendering ownership of its backing
// storage to the Range (category OwnedNonContiguous rather than
// BorrowedNonContiguous), mirroring scnlib's rvalue-reference overloads.
type Owned interface {
	CodeUnitIterator
	Owned()
}

// OwnedString signals that a string argument was surrendered to the
// scan call (category OwnedContiguous) rather than merely borrowed.
// Plain string/[]byte arguments are always BorrowedContiguous; wrap a
// string in OwnedString to get the OwnedContiguous priority (§4.8 rule 1).
type OwnedString string

// Range is the stateful cursor described by §4.3. The zero value is not
// usable; construct with Wrap.
type Range struct {
	category Category

	// --- contiguous backing (BorrowedContiguous / OwnedContiguous) ---
	data []byte // the full original backing storage
	pos  int    // current read offset into data
	owns bool   // true if data was surrendered (OwnedContiguous)

	// --- streamed backing ---
	br *bufio.Reader

	// --- erased backing ---
	it CodeUnitIterator

	// putback is the bounded lookahead/putback buffer shared by the
	// streamed and erased categories; units pushed here are drained
	// before advancing into the underlying source, per the invariant
	// in §3. It is unused for contiguous categories, which putback by
	// simply decrementing pos.
	putback []byte

	// rollback bookkeeping.
	rollbackSet bool
	rollbackPos int    // contiguous: saved pos
	consumed    []byte // streamed/erased: units consumed since SetRollbackPoint
}

const defaultPutbackCap = 16 // bound by the longest scanner lookahead (bool names dominate, §9)

// Wrap constructs a Range over source, selecting its Category per the
// rules in §4.3:
//
//	string              -> BorrowedContiguous
//	OwnedString         -> OwnedContiguous
//	[]byte              -> BorrowedContiguous
//	io.Reader           -> Streamed
//	Owned (iterator)    -> OwnedNonContiguous
//	CodeUnitIterator    -> BorrowedNonContiguous
func Wrap(source interface{}) (*Range, error) {
	switch v := source.(type) {
	case OwnedString:
		return &Range{category: OwnedContiguous, data: []byte(v), owns: true}, nil
	case string:
		return &Range{category: BorrowedContiguous, data: []byte(v)}, nil
	case []byte:
		return &Range{category: BorrowedContiguous, data: v}, nil
	case Owned:
		return &Range{category: OwnedNonContiguous, it: v, putback: make([]byte, 0, defaultPutbackCap)}, nil
	case CodeUnitIterator:
		return &Range{category: BorrowedNonContiguous, it: v, putback: make([]byte, 0, defaultPutbackCap)}, nil
	case io.Reader:
		return &Range{category: Streamed, br: bufio.NewReader(v), putback: make([]byte, 0, defaultPutbackCap)}, nil
	default:
		return nil, scnerr.Newf("rng", scnerr.UnrecoverableSourceError, "unsupported source type %T", source)
	}
}

// Category reports the source category this Range was constructed with.
func (r *Range) Category() Category { return r.category }

// Begin returns an opaque cursor marking the current read position.
// For contiguous sources it is the read offset, so two Ranges over the
// same underlying storage can compare Begin values to compute how much
// was consumed; for streamed/erased sources it is the number of units
// consumed since the last rollback point.
func (r *Range) Begin() int {
	if r.category.Contiguous() {
		return r.pos
	}
	return len(r.consumed)
}

// End reports whether the cursor has reached the end of a contiguous
// source. For streamed/erased sources the end is only known by reading.
func (r *Range) End() bool {
	if r.category.Contiguous() {
		return r.pos >= len(r.data)
	}
	return false
}

// Empty reports whether no input remains. A streamed source peeks one
// byte, which may block until input arrives; an erased source with
// nothing in its putback buffer reports false, since its end is only
// known by reading.
func (r *Range) Empty() bool {
	if r.category.Contiguous() {
		return r.pos >= len(r.data)
	}
	if len(r.putback) > 0 {
		return false
	}
	if r.br != nil {
		_, err := r.br.Peek(1)
		return err != nil
	}
	return false
}

// SetRollbackPoint captures the cursor so a later ResetToRollbackPoint
// can restore it. At most one rollback point is active; setting a new
// one discards the old (§4.3).
func (r *Range) SetRollbackPoint() {
	r.rollbackSet = true
	if r.category.Contiguous() {
		r.rollbackPos = r.pos
		return
	}
	r.consumed = r.consumed[:0]
}

// ResetToRollbackPoint restores the cursor to the most recently set
// rollback point. For contiguous sources this is a pointer reset; for
// streamed/erased sources the units consumed since the rollback point
// are replayed back into the putback buffer, per §4.3's "accumulate
// consumed units into the putback buffer" fallback.
func (r *Range) ResetToRollbackPoint() {
	if !r.rollbackSet {
		return
	}
	if r.category.Contiguous() {
		r.pos = r.rollbackPos
		return
	}
	// Replay the consumed units ahead of whatever is already queued in
	// the putback buffer, so the next read sees them in original order.
	replay := make([]byte, len(r.consumed), len(r.consumed)+len(r.putback))
	copy(replay, r.consumed)
	r.putback = append(replay, r.putback...)
	r.consumed = r.consumed[:0]
}

// Sync commits the consumed prefix for a streamed source. It is a no-op
// for every other category; callers (input/prompt, §6) call it after
// every scan against standard input so the next call doesn't re-read
// already-consumed bytes.
func (r *Range) Sync() {
	if r.category != Streamed {
		return
	}
	r.rollbackSet = false
	r.consumed = r.consumed[:0]
}

// recordConsumed appends a unit to the rollback replay log, when a
// rollback point is active, for non-contiguous categories.
func (r *Range) recordConsumed(b byte) {
	if r.rollbackSet && !r.category.Contiguous() {
		r.consumed = append(r.consumed, b)
	}
}

// ReadCodeUnit returns the next code unit, or scnerr.ErrEndOfRange. When
// advance is false the cursor is left unmoved (a peek).
func (r *Range) ReadCodeUnit(advance bool) (byte, error) {
	if r.category.Contiguous() {
		if r.pos >= len(r.data) {
			return 0, scnerr.ErrEndOfRange
		}
		b := r.data[r.pos]
		if advance {
			r.pos++
		}
		return b, nil
	}

	if len(r.putback) > 0 {
		b := r.putback[0]
		if advance {
			r.putback = r.putback[1:]
			r.recordConsumed(b)
		}
		return b, nil
	}

	if r.br != nil {
		b, err := r.br.Peek(1)
		if err != nil {
			return 0, scnerr.Wrap("rng", scnerr.EndOfRange, "streamed source exhausted", err)
		}
		if advance {
			r.br.Discard(1)
			r.recordConsumed(b[0])
		}
		return b[0], nil
	}

	if r.it != nil {
		b, ok := r.it.Next()
		if !ok {
			return 0, scnerr.ErrEndOfRange
		}
		if !advance {
			// Iterators have no native peek; stash what we read so the
			// next (peeking or advancing) call sees it again.
			r.putback = append(r.putback, b)
			return b, nil
		}
		r.recordConsumed(b)
		return b, nil
	}

	return 0, scnerr.ErrEndOfRange
}

// Putback pushes one unit back onto the lookahead buffer. It must
// succeed for any unit previously read since the last rollback (§4.2).
func (r *Range) Putback(unit byte) error {
	if r.category.Contiguous() {
		if r.pos == 0 {
			return scnerr.New("rng", scnerr.UnrecoverableSourceError, "putback past start of range")
		}
		r.pos--
		return nil
	}
	r.putback = append([]byte{unit}, r.putback...)
	if r.rollbackSet && len(r.consumed) > 0 {
		r.consumed = r.consumed[:len(r.consumed)-1]
	}
	return nil
}

// ReadAllZeroCopy returns the remaining, unconsumed portion of a
// contiguous source without copying. For non-contiguous categories it
// fails softly so callers fall back to unit-wise reads (§4.2).
func (r *Range) ReadAllZeroCopy() ([]byte, bool) {
	if !r.category.Contiguous() {
		return nil, false
	}
	rest := r.data[r.pos:]
	r.pos = len(r.data)
	return rest, true
}

// RemainingContiguous exposes the unconsumed tail of a contiguous
// source without advancing, for callers (e.g. the result selector) that
// need to inspect rather than consume it.
func (r *Range) RemainingContiguous() ([]byte, bool) {
	if !r.category.Contiguous() {
		return nil, false
	}
	return r.data[r.pos:], true
}

// Reconstructable reports whether the original input type can be
// rebuilt from the current cursor (§4.8's reconstruct()).
func (r *Range) Reconstructable() bool {
	return r.category.Contiguous()
}
