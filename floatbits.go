package tagged

import (
	"math"
	"math/bits"
	"reflect"
)

// Bit-pattern-level access to fixed-width binary floating-point raws.
// Width dispatch goes through reflect.TypeFor's kind so that named float
// types qualify; float32 patterns are zero-extended into the uint64
// results.

const (
	exponentBitCount32    = 8
	exponentBitCount64    = 11
	significandBitCount32 = 23
	significandBitCount64 = 52
)

// is32 reports whether Raw is a 32-bit float type.
func is32[Raw Float]() bool {
	return reflect.TypeFor[Raw]().Kind() == reflect.Float32
}

// Bits returns the IEEE 754 bit pattern of the raw value.
func Bits[Tag any, Raw Float](t Tagged[Tag, Raw]) uint64 {
	if is32[Raw]() {
		return uint64(math.Float32bits(float32(t.value)))
	}
	return math.Float64bits(float64(t.value))
}

// FromBits returns the tagged value whose raw value has the given IEEE 754
// bit pattern. For 32-bit raw types only the low 32 bits are used.
func FromBits[Tag any, Raw Float](pattern uint64) Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Float32frombits(uint32(pattern)))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Float64frombits(pattern))}
}

// ExponentBitCount returns the width of the raw type's exponent field:
// 8 for 32-bit floats, 11 for 64-bit floats.
func ExponentBitCount[Raw Float]() int {
	if is32[Raw]() {
		return exponentBitCount32
	}
	return exponentBitCount64
}

// SignificandBitCount returns the width of the raw type's trailing
// significand field: 23 for 32-bit floats, 52 for 64-bit floats.
func SignificandBitCount[Raw Float]() int {
	if is32[Raw]() {
		return significandBitCount32
	}
	return significandBitCount64
}

// maxExponentBits returns the all-ones exponent field, the pattern shared
// by infinities and NaNs.
func maxExponentBits[Raw Float]() uint64 {
	return 1<<ExponentBitCount[Raw]() - 1
}

// ExponentBits returns the raw value's biased exponent bit pattern.
func ExponentBits[Tag any, Raw Float](t Tagged[Tag, Raw]) uint64 {
	return Bits(t) >> SignificandBitCount[Raw]() & maxExponentBits[Raw]()
}

// SignificandBits returns the raw value's trailing significand bit
// pattern, without the implicit leading bit.
func SignificandBits[Tag any, Raw Float](t Tagged[Tag, Raw]) uint64 {
	return Bits(t) & (1<<SignificandBitCount[Raw]() - 1)
}

// Compose builds a tagged value from a sign, a biased exponent bit
// pattern, and a trailing significand bit pattern. Fields wider than the
// raw type's are truncated, mirroring bit-level construction on the raw
// type.
func Compose[Tag any, Raw Float](negative bool, exponentBits, significandBits uint64) Tagged[Tag, Raw] {
	sigCount := SignificandBitCount[Raw]()
	pattern := exponentBits&maxExponentBits[Raw]()<<sigCount |
		significandBits&(1<<sigCount-1)
	if negative {
		pattern |= 1 << (sigCount + ExponentBitCount[Raw]())
	}
	return FromBits[Tag, Raw](pattern)
}

// Binade returns the signed power of two whose binade contains the raw
// value, under the same tag. Zero, infinities, and NaN come back
// unchanged.
func Binade[Tag any, Raw Float](t Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	f := float64(t.value)
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return t
	}
	return Tagged[Tag, Raw]{value: Raw(math.Ldexp(math.Copysign(1, f), math.Ilogb(f)))}
}

// SignificandWidth returns the number of fractional significand bits
// needed to represent the raw value, or -1 for zero, infinities, and NaN.
func SignificandWidth[Tag any, Raw Float](t Tagged[Tag, Raw]) int {
	if IsZero(t) || !IsFinite(t) {
		return -1
	}
	sigCount := SignificandBitCount[Raw]()
	sig := SignificandBits(t)
	if IsNormal(t) {
		sig |= 1 << sigCount
	}
	return sigCount - bits.TrailingZeros64(sig)
}
