package tagged

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"
)

// Marker types shared across the package tests.
type userTag struct{}
type orderTag struct{}

type UserID = Tagged[userTag, int]
type OrderID = Tagged[orderTag, int]

func TestNewRawValue(t *testing.T) {
	tests := []struct {
		name string
		raw  int
	}{
		{"zero", 0},
		{"positive", 42},
		{"negative", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New[userTag](tt.raw).RawValue(); got != tt.raw {
				t.Errorf("New(%d).RawValue() = %d, want %d", tt.raw, got, tt.raw)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var id UserID
	if id.RawValue() != 0 {
		t.Errorf("zero value wraps %d, want 0", id.RawValue())
	}
}

func TestLayout(t *testing.T) {
	// The marker type contributes no size or alignment: a tagged value has
	// the layout of its raw value alone.
	raw := reflect.TypeFor[int64]()
	wrapped := reflect.TypeFor[Tagged[userTag, int64]]()

	if wrapped.Size() != raw.Size() {
		t.Errorf("size = %d, want %d", wrapped.Size(), raw.Size())
	}
	if wrapped.Align() != raw.Align() {
		t.Errorf("align = %d, want %d", wrapped.Align(), raw.Align())
	}
}

func TestMap(t *testing.T) {
	id := New[userTag](42)
	s := Map(id, strconv.Itoa)

	if got := s.RawValue(); got != "42" {
		t.Errorf("Map(42, Itoa).RawValue() = %q, want %q", got, "42")
	}

	// The tag is preserved: the result still carries userTag.
	var _ Tagged[userTag, string] = s
}

func TestCoerce(t *testing.T) {
	uid := New[userTag](1)
	oid := Coerce[orderTag](uid)

	if oid.RawValue() != uid.RawValue() {
		t.Errorf("Coerce changed the raw value: %d, want %d", oid.RawValue(), uid.RawValue())
	}
	if oid != New[orderTag](1) {
		t.Error("coerced value should equal a freshly constructed one")
	}
}

// The scenario from the package documentation: same raw representation,
// distinct tags. Mixing tags does not type-check; uncommenting any of
// these lines must produce a compile error:
//
//	_ = New[userTag](1) == New[orderTag](1)
//	_ = Add(New[userTag](1), New[orderTag](1))
//	var _ UserID = New[orderTag](1)
func TestTagDistinction(t *testing.T) {
	if New[userTag](1) != New[userTag](1) {
		t.Error("equal raw values under one tag should be equal")
	}
	if Coerce[orderTag](New[userTag](1)) != New[orderTag](1) {
		t.Error("coerced value should be observably equal by raw value")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int", New[userTag](42).String(), "42"},
		{"string", New[userTag]("abc").String(), "abc"},
		{"float", New[userTag](1.5).String(), "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	id := New[userTag](255)

	tests := []struct {
		format string
		want   string
	}{
		{"%v", "255"},
		{"%d", "255"},
		{"%x", "ff"},
		{"%05d", "00255"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, id); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
