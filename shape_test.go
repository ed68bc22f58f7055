package pretty_test

import (
	"testing"
	"time"

	"github.com/shapely/pretty"
	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		give any
		want pretty.Shape
	}{
		{"string", "test", pretty.Streamable},
		{"int", 42, pretty.Streamable},
		{"float", 3.14, pretty.Streamable},
		{"bool", true, pretty.Streamable},
		{"byte slice", []byte("x"), pretty.Streamable},
		{"stringer", time.Second, pretty.Streamable},
		{"stringer slice type", ids{1}, pretty.Streamable},
		{"pointer", new(int), pretty.Streamable},
		{"string pointer", new(string), pretty.Streamable},
		{"slice", []int{1}, pretty.Sequence},
		{"array", [2]int{}, pretty.Sequence},
		{"channel", make(chan int), pretty.Sequence},
		{"iter seq", func(func(int) bool) {}, pretty.Sequence},
		{"map", map[int]int{}, pretty.Map},
		{"pair slice", []pretty.KV{}, pretty.Map},
		{"custom pair slice", []entry{}, pretty.Map},
		{"iter seq2", func(func(int, string) bool) {}, pretty.Map},
		{"struct", point{}, pretty.Tuple},
		{"empty struct", empty{}, pretty.Tuple},
		{"option", pretty.Some(1), pretty.Optional},
		{"nil", nil, pretty.Optional},
		{"func", func() {}, pretty.Unsupported},
		{"send-only channel", make(chan<- int), pretty.Unsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pretty.ShapeOf(tc.give))
		})
	}
}

func TestShapeOfPointerPolicy(t *testing.T) {
	t.Parallel()
	p := pretty.New(pretty.WithPointersAsOptionals())
	assert.Equal(t, pretty.Optional, p.ShapeOf(new(int)))
	// Text pointers stay text leaves under either policy.
	assert.Equal(t, pretty.Streamable, p.ShapeOf(new(string)))
}

func TestSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, pretty.Supported[[]int]())
	assert.True(t, pretty.Supported[map[string]int]())
	assert.True(t, pretty.Supported[point]())
	assert.True(t, pretty.Supported[pretty.Opt[int]]())
	assert.False(t, pretty.Supported[func()]())
}

func TestShapeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "sequence", pretty.Sequence.String())
	assert.Equal(t, "unsupported", pretty.Unsupported.String())
	assert.Equal(t, "shape(99)", pretty.Shape(99).String())
}
