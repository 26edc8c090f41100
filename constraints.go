package tagged

// Integer matches any integer type usable as a raw representation,
// including named types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float matches the fixed-width binary floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is anything from Integer, or a float.
type Number interface {
	Integer | Float
}
