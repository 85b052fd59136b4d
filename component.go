package dewey

import (
	"strings"
	"unicode/utf8"
)

// componentKind identifies one token of a version string. The constants
// are declared in rank order so that comparing kinds as integers yields
// the total-rank fallback ordering directly.
type componentKind int

const (
	alpha componentKind = iota
	beta
	pre
	rc
	patchLevel
	dashOrDot
	end
	num
	char
)

// component is one token emitted by the tokenizer. num is meaningful
// only when kind == num, char only when kind == char. Components are
// ephemeral: they live for a single comparison step and are never
// retained.
type component struct {
	kind componentKind
	num  uint64
	char rune
}

// keywords maps fixed version-scheme spellings to their component kind.
// No spelling is a prefix of another at the same scan position, so a
// first-match scan is unambiguous.
var keywords = []struct {
	lit  string
	kind componentKind
}{
	{".", dashOrDot},
	{"-", dashOrDot},
	{"alpha", alpha},
	{"beta", beta},
	{"pre", pre},
	{"rc", rc},
	{"pl", patchLevel},
}

// eat consumes one component from the front of s and returns it together
// with the remaining suffix. It is total: every input produces a
// component, and every call on non-empty input consumes at least one
// scalar. The empty string yields end.
func eat(s string) (component, string) {
	if s == "" {
		return component{kind: end}, s
	}
	if c, rest, ok := eatDigits(s); ok {
		return c, rest
	}
	for _, kw := range keywords {
		if rest, ok := strings.CutPrefix(s, kw.lit); ok {
			return component{kind: kw.kind}, rest
		}
	}
	return eatPlainChar(s)
}

// eatDigits consumes a maximal run of ASCII decimal digits. The
// accumulator wraps silently on runs exceeding 64 bits.
func eatDigits(s string) (component, string, bool) {
	var n uint64
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + uint64(s[i]-'0')
		i++
	}
	if i == 0 {
		return component{}, s, false
	}
	return component{kind: num, num: n}, s[i:], true
}

// eatPlainChar consumes a single Unicode scalar as a fallback for
// anything the other rules did not recognize. ASCII letters are
// lowercased; everything else is emitted as is.
func eatPlainChar(s string) (component, string) {
	r, size := utf8.DecodeRuneInString(s)
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return component{kind: char, char: r}, s[size:]
}

// rankCmp is the fixed total rank over components:
// alpha < beta < pre < rc < patchLevel < dashOrDot < end < num < char,
// with num compared by value and char by scalar when the kinds match.
func (c component) rankCmp(o component) Order {
	switch {
	case c.kind != o.kind:
		return orderOf(int(c.kind), int(o.kind))
	case c.kind == num:
		return orderOfUint(c.num, o.num)
	case c.kind == char:
		return orderOf(int(c.char), int(o.char))
	}
	return Equal
}

// cmp compares two components under the dewey partial order. The pair
// is first canonicalized by rank so each exception is listed one way;
// pairs not covered by an exception fall back to the total rank.
func (c component) cmp(o component) Order {
	lo, hi := c, o
	if lo.rankCmp(hi) == Greater {
		lo, hi = hi, lo
	}
	switch {
	case lo.kind == end && hi.kind == num && hi.num == 0:
		return Equal
	case lo.kind == patchLevel && hi.kind == end:
		return Equal
	case lo.kind == dashOrDot && hi.kind == end:
		return Equal
	case lo.kind == num && hi.kind == char:
		return Incomparable
	case lo.kind == patchLevel && hi.kind == dashOrDot:
		return Incomparable
	case lo.kind == patchLevel && hi.kind == num:
		return Incomparable
	case lo.kind == dashOrDot && hi.kind == num:
		return Incomparable
	case lo.kind == dashOrDot && hi.kind == char:
		return Incomparable
	}
	return c.rankCmp(o)
}

func orderOf(a, b int) Order {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

func orderOfUint(a, b uint64) Order {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
