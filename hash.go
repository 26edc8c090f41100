package tagged

import "hash/maphash"

// Hash returns a hash of the raw value alone, via maphash.Comparable.
// Equal tagged values hash equally, inherited directly from maphash's
// contract; the tag adds no bytes, so two values that differ only by tag
// hash identically.
//
// Hash exists for hand-rolled hash tables. Ordinary map use needs no help:
// a Tagged with comparable Raw is itself a valid map key.
func Hash[Tag any, Raw comparable](seed maphash.Seed, t Tagged[Tag, Raw]) uint64 {
	return maphash.Comparable(seed, t.value)
}
