package tagged

// Literal-style construction. Go has no user-definable literals, so the
// forwarding is rendered as constructors whose constraints let untyped
// constants flow straight through:
//
//	count := tagged.FromInt[countTag](42)
//	name := tagged.FromString[nameTag]("x")
//
// Each is New with a shape constraint on the raw type. Failure modes are
// the raw conversion's own: an out-of-range constant is a compile error,
// exactly as it would be for the raw type.

// FromBool wraps a boolean raw value under the given tag.
func FromBool[Tag any, Raw ~bool](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromInt wraps an integer raw value under the given tag.
func FromInt[Tag any, Raw Integer](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromFloat wraps a floating-point raw value under the given tag.
func FromFloat[Tag any, Raw Float](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromString wraps a string raw value under the given tag.
func FromString[Tag any, Raw ~string](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromRune wraps a character raw value under the given tag.
func FromRune[Tag any, Raw ~rune](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromBytes wraps a byte-slice raw value under the given tag.
func FromBytes[Tag any, Raw ~[]byte](v Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: v}
}

// FromSlice builds a slice-shaped raw value from its elements and wraps
// it under the given tag, the closest Go has to tagging an array literal.
func FromSlice[Tag any, S ~[]E, E any](elems ...E) Tagged[Tag, S] {
	return Tagged[Tag, S]{value: S(elems)}
}

// FromPairs wraps a map-shaped raw value, typically written as a map
// literal, under the given tag.
func FromPairs[Tag any, M ~map[K]V, K comparable, V any](pairs M) Tagged[Tag, M] {
	return Tagged[Tag, M]{value: pairs}
}
