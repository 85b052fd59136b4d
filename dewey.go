// Package dewey compares version strings under the "dewey" ordering
// scheme used by pkgsrc- and xbps-style package managers.
//
// A version string is tokenized left to right into numeric runs,
// dot/dash separators, named modifiers (alpha, beta, pre, rc, pl) and
// fallback characters, and the two token streams are compared in
// lock-step. The ordering is partial: some token combinations, such as
// a separator in one string aligning against a plain letter in the
// other, have no meaningful order and compare as Incomparable rather
// than being forced into an arbitrary one.
package dewey

// Order is the result of comparing two version strings.
//
// Less, Equal and Greater are definite results and negate with unary
// minus. Incomparable means the two strings follow structurally
// different version schemes; it is an expected outcome, not an error.
type Order int

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1

	// Incomparable deliberately does not negate to a definite result.
	Incomparable Order = 2
)

// String returns the conventional symbol for o: "<", "=", ">", or "?".
func (o Order) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	case Incomparable:
		return "?"
	}
	return "invalid"
}

// Comparator compares two version strings. The dewey comparator is
// Compare; collaborators accept this type so alternate orderings can be
// plugged in.
type Comparator func(v1, v2 string) Order

// Version is a zero-copy view over a version string. Converting a
// string to a Version performs no work: tokenization happens lazily,
// one component at a time, during comparison.
type Version string

// Cmp compares v against other under the dewey partial order.
func (v Version) Cmp(other Version) Order {
	return Compare(string(v), string(other))
}

// Equal reports whether v and other denote the same version. It is
// false, not an error, when the two are incomparable.
func (v Version) Equal(other Version) bool {
	return v.Cmp(other) == Equal
}

// Compare compares two version strings and returns:
//   - Less if v1 orders before v2
//   - Equal if they denote the same version
//   - Greater if v1 orders after v2
//   - Incomparable if the two follow different version schemes
//
// Both strings are tokenized in lock-step; the first component pair
// that does not compare equal decides the result, and an incomparable
// pair ends the comparison immediately without examining the remaining
// suffixes. Comparison cost is linear in the tokens consumed.
func Compare(v1, v2 string) Order {
	for {
		c1, r1 := eat(v1)
		c2, r2 := eat(v2)
		if c1.kind == end && c2.kind == end {
			return Equal
		}
		if o := c1.cmp(c2); o != Equal {
			return o
		}
		v1, v2 = r1, r2
	}
}
