package tagged

import "iter"

// Sequence forwarding for slice- and map-shaped raw representations. The
// wrapper is iterable, never an iterator, and elements come out as the raw
// element type: individual elements are never tagged.

// Values returns an iterator over the elements of a slice-shaped raw
// value, in order.
func Values[Tag any, S ~[]E, E any](t Tagged[Tag, S]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range t.value {
			if !yield(e) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs of a slice-shaped raw
// value, in order.
func All[Tag any, S ~[]E, E any](t Tagged[Tag, S]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range t.value {
			if !yield(i, e) {
				return
			}
		}
	}
}

// At returns the element at position i of a slice-shaped raw value.
// Out-of-range indexes panic exactly as they would on the raw slice.
func At[Tag any, S ~[]E, E any](t Tagged[Tag, S], i int) E {
	return t.value[i]
}

// Len returns the number of elements in a slice-shaped raw value.
func Len[Tag any, S ~[]E, E any](t Tagged[Tag, S]) int {
	return len(t.value)
}

// StartIndex returns the position of the first element, which for a slice
// is always 0.
func StartIndex[Tag any, S ~[]E, E any](Tagged[Tag, S]) int {
	return 0
}

// EndIndex returns the position one past the last element.
func EndIndex[Tag any, S ~[]E, E any](t Tagged[Tag, S]) int {
	return len(t.value)
}

// IndexAfter returns the position immediately after i.
func IndexAfter[Tag any, S ~[]E, E any](_ Tagged[Tag, S], i int) int {
	return i + 1
}

// Pairs returns an iterator over the key-value pairs of a map-shaped raw
// value, in unspecified order, exactly as ranging over the raw map.
func Pairs[Tag any, M ~map[K]V, K comparable, V any](t Tagged[Tag, M]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range t.value {
			if !yield(k, v) {
				return
			}
		}
	}
}
