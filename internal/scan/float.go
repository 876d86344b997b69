package scan

import (
	"github.com/nilsson-scn/scn/internal/locale"
	"github.com/nilsson-scn/scn/internal/rng"
	"github.com/nilsson-scn/scn/internal/scnerr"
)

// FloatKind names the float specifier a value was requested with. Float
// reads the same grammar for every kind and does not otherwise consult
// it: a "0x" prefix selects the hex-float path under any kind, and every
// other token is converted by loc.ParseFloat, so rounding matches the
// platform (§4.7). {:a} without a "0x" prefix reads a decimal literal.
type FloatKind int

const (
	FloatDefault FloatKind = iota
	FloatHex               // {:a} — original_source extension, see SPEC_FULL item 4
	FloatExp               // {:e}
	FloatFixed             // {:f}
	FloatGeneral           // {:g}
)

type runeBuf struct {
	units []byte
}

func (b *runeBuf) writeByte(c byte)   { b.units = append(b.units, c) }
func (b *runeBuf) len() int           { return len(b.units) }
func (b *runeBuf) truncateTo(n int, r *rng.Range) {
	for len(b.units) > n {
		last := b.units[len(b.units)-1]
		b.units = b.units[:len(b.units)-1]
		r.Putback(last)
	}
}
func (b *runeBuf) String() string { return string(b.units) }

// Float reads an optional sign, a digit run, at most one decimal point,
// and a case-insensitive exponent with optional sign (§4.7). Hex-float
// literals (0x1.8p3) are accepted by forwarding straight to Go's
// strconv.ParseFloat, which natively understands them, instead of
// loc's locale-shimmed decimal path (SPEC_FULL item 4).
func Float[T float32 | float64](r *rng.Range, loc locale.Profile, kind FloatKind) (T, error) {
	r.SetRollbackPoint()

	var b runeBuf
	hex := false
	sawDigit := false

	peekByte := func() (byte, bool) {
		u, err := r.ReadCodeUnit(false)
		if err != nil {
			return 0, false
		}
		return u, true
	}
	take := func() byte { c, _ := r.ReadCodeUnit(true); return c }

	if c, ok := peekByte(); ok && (c == '+' || c == '-') {
		b.writeByte(take())
	}

	if c, ok := peekByte(); ok && c == '0' {
		b.writeByte(take())
		if c2, ok2 := peekByte(); ok2 && (c2 == 'x' || c2 == 'X') {
			hex = true
			b.writeByte(take())
		}
		sawDigit = true
	}

	digitClass := func(c byte) bool {
		if hex {
			return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		}
		return c >= '0' && c <= '9'
	}
	readDigits := func() {
		for {
			c, ok := peekByte()
			if !ok || !digitClass(c) {
				return
			}
			sawDigit = true
			b.writeByte(take())
		}
	}
	readDigits()

	decimalByte := byte(loc.DecimalPoint)
	if hex {
		decimalByte = '.'
	}
	if c, ok := peekByte(); ok && c == decimalByte {
		b.writeByte(take())
		readDigits()
	}

	expByte1, expByte2 := byte('e'), byte('E')
	if hex {
		expByte1, expByte2 = 'p', 'P'
	}
	if c, ok := peekByte(); ok && (c == expByte1 || c == expByte2) {
		save := b.len()
		b.writeByte(take())
		if c2, ok2 := peekByte(); ok2 && (c2 == '+' || c2 == '-') {
			b.writeByte(take())
		}
		expDigits := 0
		for {
			c, ok := peekByte()
			if !ok || c < '0' || c > '9' {
				break
			}
			b.writeByte(take())
			expDigits++
		}
		if expDigits == 0 {
			// Malformed exponent: it doesn't belong to this literal.
			b.truncateTo(save, r)
		}
	}

	if !sawDigit {
		r.ResetToRollbackPoint()
		return 0, scnerr.New("scan/float", scnerr.InvalidScannedValue, "empty float")
	}

	text := b.String()
	var f float64
	var err error
	if hex {
		f, err = hexFloatShim(text)
	} else {
		f, err = loc.ParseFloat(text)
	}
	if err != nil {
		r.ResetToRollbackPoint()
		return 0, scnerr.Wrap("scan/float", scnerr.InvalidScannedValue, "malformed float literal", err)
	}
	return T(f), nil
}
