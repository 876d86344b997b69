// Package format implements the Format-String Parser (§4.5): it lexes
// "{...}" specifiers out of a format string and feeds each one to the
// scan dispatcher. The grammar and state-machine shape follow fmt's
// own doScanf/advance loop (src/pkg/fmt/scan.go), generalized from '%'
// verbs to '{}' specifiers along the lines of dominikh-go-tools'
// printf.Parse verb parser.
package format

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nilsson-scn/scn/internal/scnerr"
)

// Kind identifies the sub-specifier type letter.
type Kind int

const (
	KindDefault Kind = iota // no explicit type: infer from the argument
	KindInt
	KindHex
	KindBinary
	KindOctal
	KindFloatA
	KindFloatE
	KindFloatF
	KindFloatG
	KindString
	KindChar
	KindCharSet
)

// CharSet describes a parsed "{[...]}" character class.
type CharSet struct {
	Negate bool
	Ranges []CharRange
}

type CharRange struct{ Lo, Hi rune }

// Contains reports whether r is a member of the set, honoring Negate.
func (c CharSet) Contains(r rune) bool {
	in := false
	for _, rg := range c.Ranges {
		if r >= rg.Lo && r <= rg.Hi {
			in = true
			break
		}
	}
	if c.Negate {
		return !in
	}
	return in
}

// Spec is one parsed "{...}" specifier (§3's Format specifier record).
type Spec struct {
	Index      int  // explicit index, or -1 for "next argument"
	Localized  bool // 'l' flag
	Grouped    bool // "'" flag
	Width      int  // -1 if unset
	Kind       Kind
	Set        CharSet // valid only when Kind == KindCharSet
	Raw        string  // the specifier text between { and }, for diagnostics
}

// Action is either a literal string run or a *Spec, mirroring
// dominikh-go-tools/printf.Parse's []interface{} action list.
type Action struct {
	Literal string
	Spec    *Spec
}

// Parse lexes a format string into a sequence of literal and specifier
// actions. It fails fast with InvalidFormatString before any input is
// consumed, per §4.5.
func Parse(f string) ([]Action, error) {
	var actions []Action
	i := 0
	for i < len(f) {
		if f[i] == '{' {
			if i+1 < len(f) && f[i+1] == '{' {
				actions = append(actions, Action{Literal: "{"})
				i += 2
				continue
			}
			end := strings.IndexByte(f[i:], '}')
			if end < 0 {
				return nil, scnerr.New("format", scnerr.InvalidFormatString, "unterminated specifier")
			}
			body := f[i+1 : i+end]
			spec, err := parseSpec(body)
			if err != nil {
				return nil, err
			}
			actions = append(actions, Action{Spec: spec})
			i += end + 1
			continue
		}
		if f[i] == '}' && i+1 < len(f) && f[i+1] == '}' {
			actions = append(actions, Action{Literal: "}"})
			i += 2
			continue
		}
		next := strings.IndexByte(f[i:], '{')
		if next < 0 {
			actions = append(actions, Action{Literal: f[i:]})
			break
		}
		actions = append(actions, Action{Literal: f[i : i+next]})
		i += next
	}
	return actions, nil
}

// Default synthesizes the format "{} {} ... {}" with n slots, the
// zero-parsing-overhead path scan_default uses (§4.5).
func Default(n int) []Action {
	actions := make([]Action, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			actions = append(actions, Action{Literal: " "})
		}
		actions = append(actions, Action{Spec: &Spec{Index: -1, Width: -1}})
	}
	return actions
}

func parseSpec(body string) (*Spec, error) {
	s := &Spec{Index: -1, Width: -1, Raw: body}
	i := 0

	// optional explicit index: digits before ':'
	idxEnd := i
	for idxEnd < len(body) && body[idxEnd] >= '0' && body[idxEnd] <= '9' {
		idxEnd++
	}
	if idxEnd > i && (idxEnd == len(body) || body[idxEnd] == ':') {
		n, _ := strconv.Atoi(body[i:idxEnd])
		s.Index = n
		i = idxEnd
	}

	if i == len(body) {
		return s, nil
	}

	// A character class may follow the optional index directly, with no
	// ':' separator, since "[...]" cannot be confused with a flag/width
	// run and needs no type letter of its own.
	if body[i] == '[' {
		if body[len(body)-1] != ']' {
			return nil, scnerr.Newf("format", scnerr.InvalidFormatString, "unterminated character class %q", body)
		}
		set, err := parseCharSet(body[i+1 : len(body)-1])
		if err != nil {
			return nil, err
		}
		s.Kind = KindCharSet
		s.Set = set
		return s, nil
	}

	if body[i] != ':' {
		return nil, scnerr.Newf("format", scnerr.InvalidFormatString, "malformed specifier %q", body)
	}
	i++ // skip ':'

	// flags
	for i < len(body) {
		switch body[i] {
		case 'l':
			s.Localized = true
			i++
			continue
		case '\'':
			s.Grouped = true
			i++
			continue
		}
		break
	}

	// width
	wEnd := i
	for wEnd < len(body) && body[wEnd] >= '0' && body[wEnd] <= '9' {
		wEnd++
	}
	if wEnd > i {
		n, _ := strconv.Atoi(body[i:wEnd])
		s.Width = n
		i = wEnd
	}

	if i == len(body) {
		return s, nil
	}

	if body[i] == '[' {
		if body[len(body)-1] != ']' {
			return nil, scnerr.Newf("format", scnerr.InvalidFormatString, "unterminated character class %q", body)
		}
		set, err := parseCharSet(body[i+1 : len(body)-1])
		if err != nil {
			return nil, err
		}
		s.Kind = KindCharSet
		s.Set = set
		return s, nil
	}

	c, w := utf8.DecodeRuneInString(body[i:])
	if i+w != len(body) {
		return nil, scnerr.Newf("format", scnerr.InvalidFormatString, "trailing characters in specifier %q", body)
	}
	switch c {
	case 'd':
		s.Kind = KindInt
	case 'x', 'X':
		s.Kind = KindHex
	case 'b':
		s.Kind = KindBinary
	case 'o':
		s.Kind = KindOctal
	case 'a', 'A':
		s.Kind = KindFloatA
	case 'e', 'E':
		s.Kind = KindFloatE
	case 'f', 'F':
		s.Kind = KindFloatF
	case 'g', 'G':
		s.Kind = KindFloatG
	case 's':
		s.Kind = KindString
	case 'c':
		s.Kind = KindChar
	default:
		return nil, scnerr.Newf("format", scnerr.InvalidFormatString, "unknown type letter %q", c)
	}
	return s, nil
}

func parseCharSet(body string) (CharSet, error) {
	var set CharSet
	i := 0
	if i < len(body) && body[i] == '^' {
		set.Negate = true
		i++
	}
	for i < len(body) {
		lo, w := utf8.DecodeRuneInString(body[i:])
		i += w
		if i+1 < len(body) && body[i] == '-' {
			hi, w2 := utf8.DecodeRuneInString(body[i+1:])
			set.Ranges = append(set.Ranges, CharRange{Lo: lo, Hi: hi})
			i += 1 + w2
			continue
		}
		set.Ranges = append(set.Ranges, CharRange{Lo: lo, Hi: lo})
	}
	if len(set.Ranges) == 0 {
		return set, scnerr.New("format", scnerr.InvalidFormatString, "empty character class")
	}
	return set, nil
}
