package tagged

import (
	"fmt"
	"math"
)

// Floating-point forwarding. Every function here delegates to the math
// package on the unwrapped value and re-wraps results under the same tag;
// the wrapper introduces no numeric behavior of its own. Operations whose
// result depends on the raw type's width dispatch on it explicitly.

// NaN returns a quiet "not a number" value under the given tag.
func NaN[Tag any, Raw Float]() Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.NaN())}
}

// Signaling NaN patterns: exponent all ones, quiet bit clear, payload
// nonzero.
const (
	snanBits32 = 0x7f800001
	snanBits64 = 0x7ff0000000000001
)

// SignalingNaN returns a signaling "not a number" value under the given
// tag. Note that most arithmetic quiets it, exactly as for the raw type.
func SignalingNaN[Tag any, Raw Float]() Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Float32frombits(snanBits32))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Float64frombits(snanBits64))}
}

// Inf returns positive infinity if sign >= 0, negative infinity if
// sign < 0, under the given tag.
func Inf[Tag any, Raw Float](sign int) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Inf(sign))}
}

// MaxFinite returns the greatest finite magnitude of the raw type.
func MaxFinite[Tag any, Raw Float]() Tagged[Tag, Raw] {
	if is32[Raw]() {
		f := float32(math.MaxFloat32)
		return Tagged[Tag, Raw]{value: Raw(f)}
	}
	f := float64(math.MaxFloat64)
	return Tagged[Tag, Raw]{value: Raw(f)}
}

// SmallestNormal returns the least positive normal value of the raw type.
func SmallestNormal[Tag any, Raw Float]() Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Float32frombits(1 << significandBitCount32))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Float64frombits(1 << significandBitCount64))}
}

// SmallestNonzero returns the least positive (subnormal) value of the raw
// type.
func SmallestNonzero[Tag any, Raw Float]() Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Float32frombits(1))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Float64frombits(1))}
}

// Pi returns the circle constant rounded to the raw type's precision.
func Pi[Tag any, Raw Float]() Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Pi)}
}

// Signbit reports whether the raw value is negative or negative zero.
func Signbit[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return math.Signbit(float64(t.value))
}

// Exponent returns the binary exponent of the raw value as math.Ilogb
// defines it, including its special cases for zero, infinity, and NaN.
func Exponent[Tag any, Raw Float](t Tagged[Tag, Raw]) int {
	return math.Ilogb(float64(t.value))
}

// Significand returns the raw value scaled into [1, 2) by its binary
// exponent, under the same tag. Zero, infinities, and NaN come back
// unchanged.
func Significand[Tag any, Raw Float](t Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	f := float64(t.value)
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return t
	}
	return Tagged[Tag, Raw]{value: Raw(math.Ldexp(f, -math.Ilogb(f)))}
}

// Frexp decomposes the raw value into a tagged fraction in [0.5, 1) and an
// integer exponent such that raw == frac * 2**exp, per math.Frexp.
func Frexp[Tag any, Raw Float](t Tagged[Tag, Raw]) (frac Tagged[Tag, Raw], exp int) {
	f, e := math.Frexp(float64(t.value))
	return Tagged[Tag, Raw]{value: Raw(f)}, e
}

// Ldexp reconstructs a tagged value as frac * 2**exp, the inverse of
// Frexp.
func Ldexp[Tag any, Raw Float](frac Tagged[Tag, Raw], exp int) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Ldexp(float64(frac.value), exp))}
}

// Remainder returns the IEEE 754 floating-point remainder of a/b under
// the shared tag, per math.Remainder.
func Remainder[Tag any, Raw Float](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Remainder(float64(a.value), float64(b.value)))}
}

// Mod returns the truncating remainder of a/b under the shared tag, per
// math.Mod: the result keeps a's sign.
func Mod[Tag any, Raw Float](a, b Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Mod(float64(a.value), float64(b.value)))}
}

// Sqrt returns the square root of the raw value under the same tag.
func Sqrt[Tag any, Raw Float](t Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.Sqrt(float64(t.value)))}
}

// SqrtInPlace replaces t's raw value with its square root.
func SqrtInPlace[Tag any, Raw Float](t *Tagged[Tag, Raw]) {
	t.value = Raw(math.Sqrt(float64(t.value)))
}

// FMA returns x*y + z under the shared tag, computed with only one
// rounding per math.FMA.
func FMA[Tag any, Raw Float](x, y, z Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	return Tagged[Tag, Raw]{value: Raw(math.FMA(float64(x.value), float64(y.value), float64(z.value)))}
}

// AddProduct adds x*y to t in place with a single rounding, the mutating
// form of FMA.
func AddProduct[Tag any, Raw Float](t *Tagged[Tag, Raw], x, y Tagged[Tag, Raw]) {
	t.value = Raw(math.FMA(float64(x.value), float64(y.value), float64(t.value)))
}

// NextUp returns the least raw value that compares greater than t's,
// under the same tag.
func NextUp[Tag any, Raw Float](t Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Nextafter32(float32(t.value), float32(math.Inf(1))))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Nextafter(float64(t.value), math.Inf(1)))}
}

// NextDown returns the greatest raw value that compares less than t's,
// under the same tag.
func NextDown[Tag any, Raw Float](t Tagged[Tag, Raw]) Tagged[Tag, Raw] {
	if is32[Raw]() {
		return Tagged[Tag, Raw]{value: Raw(math.Nextafter32(float32(t.value), float32(math.Inf(-1))))}
	}
	return Tagged[Tag, Raw]{value: Raw(math.Nextafter(float64(t.value), math.Inf(-1)))}
}

// Round rounds the raw value to an integral value using the given rule,
// under the same tag. Round panics if the rule is not one of the
// RoundingRule constants; validate untrusted input with
// IsValidRoundingRule first.
func Round[Tag any, Raw Float](t Tagged[Tag, Raw], rule RoundingRule) Tagged[Tag, Raw] {
	f := float64(t.value)
	var r float64
	switch rule {
	case RoundToNearestOrAwayFromZero:
		r = math.Round(f)
	case RoundToNearestOrEven:
		r = math.RoundToEven(f)
	case RoundUp:
		r = math.Ceil(f)
	case RoundDown:
		r = math.Floor(f)
	case RoundTowardZero:
		r = math.Trunc(f)
	case RoundAwayFromZero:
		r = math.Copysign(math.Ceil(math.Abs(f)), f)
	default:
		panic(fmt.Sprintf("tagged: invalid rounding rule %q", rule))
	}
	return Tagged[Tag, Raw]{value: Raw(r)}
}

// IsNaN reports whether the raw value is "not a number".
func IsNaN[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return t.value != t.value
}

// IsSignalingNaN reports whether the raw value is a signaling NaN: the
// quiet bit is clear and the payload is nonzero.
func IsSignalingNaN[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	exp, sig := ExponentBits(t), SignificandBits(t)
	quiet := uint64(1) << (SignificandBitCount[Raw]() - 1)
	return exp == maxExponentBits[Raw]() && sig != 0 && sig&quiet == 0
}

// IsInf reports whether the raw value is an infinity, per math.IsInf with
// sign 0.
func IsInf[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return math.IsInf(float64(t.value), 0)
}

// IsFinite reports whether the raw value is neither infinite nor NaN.
func IsFinite[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return !IsNaN(t) && !IsInf(t)
}

// IsZero reports whether the raw value is positive or negative zero.
func IsZero[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return t.value == 0
}

// IsNormal reports whether the raw value is a normal number: finite,
// nonzero, and not subnormal.
func IsNormal[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	exp := ExponentBits(t)
	return exp != 0 && exp != maxExponentBits[Raw]()
}

// IsSubnormal reports whether the raw value is subnormal: nonzero with a
// zero exponent field.
func IsSubnormal[Tag any, Raw Float](t Tagged[Tag, Raw]) bool {
	return ExponentBits(t) == 0 && SignificandBits(t) != 0
}

// IsCanonical reports whether the raw value's encoding is canonical. Every
// Go floating-point representation is, so this always returns true; it
// exists for contract parity with the raw type.
func IsCanonical[Tag any, Raw Float](Tagged[Tag, Raw]) bool {
	return true
}

// IsEqualTo reports IEEE equality of the raw values: NaN compares unequal
// to everything, and -0 equals +0.
func IsEqualTo[Tag any, Raw Float](a, b Tagged[Tag, Raw]) bool {
	return a.value == b.value
}

// IsLessThan reports IEEE < on the raw values.
func IsLessThan[Tag any, Raw Float](a, b Tagged[Tag, Raw]) bool {
	return a.value < b.value
}

// IsLessThanOrEqualTo reports IEEE <= on the raw values.
func IsLessThanOrEqualTo[Tag any, Raw Float](a, b Tagged[Tag, Raw]) bool {
	return a.value <= b.value
}

// TotalCompare compares raw values by the IEEE 754 totalOrder predicate,
// which orders -NaN < -Inf < finite values < +Inf < +NaN and places -0
// before +0. It returns -1, 0, or +1.
func TotalCompare[Tag any, Raw Float](a, b Tagged[Tag, Raw]) int {
	ka, kb := totalOrderKey(a), totalOrderKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

// IsTotallyOrderedBelowOrEqualTo reports whether a orders at or below b
// under the IEEE 754 total order.
func IsTotallyOrderedBelowOrEqualTo[Tag any, Raw Float](a, b Tagged[Tag, Raw]) bool {
	return TotalCompare(a, b) <= 0
}

// totalOrderKey maps a float's bit pattern to an unsigned key whose
// natural order is the IEEE total order: negative values have their bits
// flipped, non-negative values have the sign bit set.
func totalOrderKey[Tag any, Raw Float](t Tagged[Tag, Raw]) uint64 {
	if is32[Raw]() {
		b := uint64(math.Float32bits(float32(t.value)))
		if b>>31 == 1 {
			return ^b & (1<<32 - 1)
		}
		return b | 1<<31
	}
	b := math.Float64bits(float64(t.value))
	if b>>63 == 1 {
		return ^b
	}
	return b | 1<<63
}
