package named

import "cmp"

// Equal reports whether the underlying values are equal. The tag takes no part
// beyond requiring both operands to be the same strong type.
func Equal[U comparable, Tag comparableTag](a, b Value[U, Tag]) bool {
	return a.v == b.v
}

// NotEqual is !Equal(a, b).
func NotEqual[U comparable, Tag comparableTag](a, b Value[U, Tag]) bool {
	return !Equal(a, b)
}

// Compare returns -1, 0 or +1 following cmp.Compare on the underlying values.
func Compare[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) int {
	return cmp.Compare(a.v, b.v)
}

// Less reports whether a sorts before b.
func Less[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) bool {
	return cmp.Less(a.v, b.v)
}

// LessOrEqual reports whether a sorts before or with b.
func LessOrEqual[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b.
func Greater[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) bool {
	return cmp.Less(b.v, a.v)
}

// GreaterOrEqual reports whether a sorts after or with b.
func GreaterOrEqual[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) bool {
	return Compare(a, b) >= 0
}

// Min returns the smaller operand, a on ties.
func Min[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) Value[U, Tag] {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the larger operand, a on ties.
func Max[U cmp.Ordered, Tag comparableTag](a, b Value[U, Tag]) Value[U, Tag] {
	if Less(a, b) {
		return b
	}
	return a
}
