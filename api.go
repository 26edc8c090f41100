// Package tagged provides a zero-cost generic wrapper that makes two
// logically different quantities sharing a representation distinct to the
// type checker.
//
// A Tagged[Tag, Raw] wraps a single Raw value and carries a marker type Tag
// that exists only at compile time. Tagged[UserTag, int] and
// Tagged[OrderTag, int] are distinct types even though both wrap an int, so
// they cannot be accidentally interchanged, compared, or added together.
//
// # Tags
//
// A tag is any type; it is never instantiated or stored. Empty structs are
// the conventional choice:
//
//	type userTag struct{}
//	type orderTag struct{}
//
//	type UserID = tagged.Tagged[userTag, int]
//	type OrderID = tagged.Tagged[orderTag, int]
//
//	uid := tagged.New[userTag](1)
//	oid := tagged.New[orderTag](1)
//
//	uid == uid // fine: raw values compare
//	uid == oid // compile error: mismatched types
//
// # Capability forwarding
//
// The wrapper re-exposes operations of the raw representation one capability
// at a time, each gated on a type-parameter constraint that the raw type
// must satisfy:
//
//   - Equality and map-key use: free, via struct comparability, when Raw is
//     comparable. Equal and Hash make the forwarding explicit.
//   - Ordering: Compare, Less, Min, Max when Raw is cmp.Ordered.
//   - Arithmetic: Zero, Add, Sub, Mul, Div and their mutating forms when
//     Raw is numeric. Both operands must share one tag.
//   - Floating point: special values, decomposition, rounding,
//     classification, and bit-pattern access when Raw is a float type.
//   - Sequences: Values, All, At, Len and friends when Raw is a slice;
//     Pairs when Raw is a map. Elements come out untagged.
//   - Serialization: JSON, YAML, and MessagePack marshaling delegate to the
//     raw value, so the tag never appears on the wire.
//
// Every forwarded operation is observationally identical to applying the
// raw operation to the unwrapped value. The wrapper contributes no behavior
// of its own.
//
// # Re-tagging
//
// Coerce re-interprets a value under a different tag without touching the
// raw value. It is the explicit escape hatch past whatever guarantee the
// original tag was meant to enforce; there is no implicit conversion.
//
// # Serialization
//
// Tagged values encode exactly as their raw value would: scalar raws as
// scalars, struct raws as structured values. The Codec interface and the
// json, yaml, msgpack, and xml subpackages provide content-type aware
// transcoding, and Transcoder adds observability around it.
package tagged

import "fmt"

// Tagged wraps a single Raw value under a compile-time marker type Tag.
//
// The zero value wraps the zero Raw. A Tagged value has the memory layout
// of its raw value alone: Tag contributes no fields, size, or alignment.
// When Raw is comparable, Tagged is comparable too (== and map keys work)
// and compares by raw value only.
//
// Tagged values are as safe for concurrent use as their raw values; the
// wrapper adds no state of its own.
type Tagged[Tag any, Raw any] struct {
	value Raw
}

// New wraps raw under the marker type Tag. It never fails and stores the
// raw value unchanged.
func New[Tag any, Raw any](raw Raw) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: raw}
}

// RawValue returns the wrapped raw value.
//
// This is also the supported path to the raw value's fields and methods:
// unwrap, then access. The wrapper deliberately does not forward arbitrary
// member access.
func (t Tagged[Tag, Raw]) RawValue() Raw {
	return t.value
}

// Map applies f to the raw value and re-wraps the result under the same
// tag. Only the representation type may change; the tag is preserved.
func Map[Tag any, Raw any, B any](t Tagged[Tag, Raw], f func(Raw) B) Tagged[Tag, B] {
	return Tagged[Tag, B]{value: f(t.value)}
}

// Coerce re-interprets t under the marker type Tag2 without transforming,
// re-validating, or re-normalizing the raw value.
//
// This bypasses whatever semantic guarantee the original tag was meant to
// enforce. The caller asserts that the new tag is valid for the existing
// raw value.
func Coerce[Tag2 any, Tag any, Raw any](t Tagged[Tag, Raw]) Tagged[Tag2, Raw] {
	return Tagged[Tag2, Raw]{value: t.value}
}

// String returns the raw value's textual representation. The tag
// contributes nothing visible.
func (t Tagged[Tag, Raw]) String() string {
	return fmt.Sprint(t.value)
}

// Format forwards every fmt verb and flag to the raw value, so %d, %x,
// %.2f and the rest format a tagged value exactly as they would the raw
// value.
func (t Tagged[Tag, Raw]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), t.value)
}
