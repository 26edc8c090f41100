package tagged

// Zero returns the additive identity under the given tag.
func Zero[Tag any, Raw Number]() Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{}
}

// Add returns a + b. Both operands must share one tag; adding values with
// different tags is a compile error, which is the principal value of
// tagging numeric quantities.
func Add[Tag any, Raw Number](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: a.value + b.value}
}

// Sub returns a - b under the shared tag.
func Sub[Tag any, Raw Number](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: a.value - b.value}
}

// Mul returns a * b under the shared tag.
func Mul[Tag any, Raw Number](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: a.value * b.value}
}

// Div returns a / b under the shared tag. Failure modes (integer division
// by zero, floating-point infinities and NaNs) are exactly the raw
// type's; the wrapper neither masks nor amplifies them.
func Div[Tag any, Raw Number](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: a.value / b.value}
}

// AddAssign adds u's raw value to t's in place.
func AddAssign[Tag any, Raw Number](t *Tagged[Tag, Raw], u Tagged[Tag, Raw]) {
	t.value += u.value
}

// SubAssign subtracts u's raw value from t's in place.
func SubAssign[Tag any, Raw Number](t *Tagged[Tag, Raw], u Tagged[Tag, Raw]) {
	t.value -= u.value
}

// MulAssign multiplies t's raw value by u's in place.
func MulAssign[Tag any, Raw Number](t *Tagged[Tag, Raw], u Tagged[Tag, Raw]) {
	t.value *= u.value
}

// DivAssign divides t's raw value by u's in place.
func DivAssign[Tag any, Raw Number](t *Tagged[Tag, Raw], u Tagged[Tag, Raw]) {
	t.value /= u.value
}

// Distance returns the stride from one tagged value to another. A distance
// is a measurement, not a value of the tagged domain, so it comes back as
// the untagged raw stride.
func Distance[Tag any, Raw Number](from, to Tagged[Tag, Raw]) Raw {
	return to.value - from.value
}

// Advanced returns t advanced by the given stride, under the same tag.
func Advanced[Tag any, Raw Number](t Tagged[Tag, Raw], by Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: t.value + by}
}
