package tagged

import (
	"slices"
	"testing"
)

type basketTag struct{}

func TestValues(t *testing.T) {
	basket := New[basketTag]([]string{"a", "b", "c"})

	var got []string
	for e := range Values(basket) {
		got = append(got, e)
	}

	if !slices.Equal(got, basket.RawValue()) {
		t.Errorf("Values yielded %v, want %v", got, basket.RawValue())
	}
}

func TestValuesEarlyStop(t *testing.T) {
	basket := New[basketTag]([]int{1, 2, 3, 4})

	var got []int
	for e := range Values(basket) {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}

	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("early stop yielded %v, want [1 2]", got)
	}
}

func TestAll(t *testing.T) {
	basket := New[basketTag]([]string{"x", "y"})

	for i, e := range All(basket) {
		if basket.RawValue()[i] != e {
			t.Errorf("All yielded (%d, %q), want (%d, %q)", i, e, i, basket.RawValue()[i])
		}
	}
}

func TestIndexedAccess(t *testing.T) {
	basket := New[basketTag]([]int{10, 20, 30})

	if got := Len(basket); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := At(basket, 1); got != 20 {
		t.Errorf("At(1) = %d, want 20", got)
	}
	if got := StartIndex(basket); got != 0 {
		t.Errorf("StartIndex = %d, want 0", got)
	}
	if got := EndIndex(basket); got != 3 {
		t.Errorf("EndIndex = %d, want 3", got)
	}

	// Walking by next-index visits every element.
	var got []int
	for i := StartIndex(basket); i != EndIndex(basket); i = IndexAfter(basket, i) {
		got = append(got, At(basket, i))
	}
	if !slices.Equal(got, basket.RawValue()) {
		t.Errorf("index walk visited %v, want %v", got, basket.RawValue())
	}
}

func TestAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At out of range should panic like the raw slice")
		}
	}()
	At(New[basketTag]([]int{1}), 5)
}

func TestPairs(t *testing.T) {
	scores := New[basketTag](map[string]int{"a": 1, "b": 2})

	got := make(map[string]int)
	for k, v := range Pairs(scores) {
		got[k] = v
	}

	if len(got) != 2 || got["a"] != 1 || got["b"] != 2 {
		t.Errorf("Pairs yielded %v, want %v", got, scores.RawValue())
	}
}
