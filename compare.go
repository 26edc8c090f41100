package tagged

import "cmp"

// Equal reports whether two tagged values wrap equal raw values. The tag
// carries no runtime data, so it takes no part in the comparison — but
// both operands must share it, which is the point.
//
// When Raw is comparable, == on the tagged values themselves is
// equivalent.
func Equal[Tag any, Raw comparable](a, b Tagged[Tag, Raw]) bool {
	return a.value == b.value
}

// Compare compares the raw values and returns
//
//	-1 if a is less than b,
//	 0 if a equals b,
//	+1 if a is greater than b,
//
// per cmp.Compare. Ties are never broken by tag.
func Compare[Tag any, Raw cmp.Ordered](a, b Tagged[Tag, Raw]) int {
	return cmp.Compare(a.value, b.value)
}

// Less reports whether a's raw value orders before b's.
func Less[Tag any, Raw cmp.Ordered](a, b Tagged[Tag, Raw]) bool {
	return cmp.Less(a.value, b.value)
}

// Min returns the tagged value with the smaller raw value.
func Min[Tag any, Raw cmp.Ordered](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	if cmp.Less(b.value, a.value) {
		return b
	}
	return a
}

// Max returns the tagged value with the larger raw value.
func Max[Tag any, Raw cmp.Ordered](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	if cmp.Less(a.value, b.value) {
		return b
	}
	return a
}
