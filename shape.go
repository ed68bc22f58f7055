package pretty

import (
	"fmt"
	"reflect"
)

// Shape is the classification bucket governing how a value is rendered.
// Every type resolves to exactly one Shape; the predicates below are checked
// in a fixed precedence order so that types qualifying for more than one
// bucket (a named slice with a String method, an array, a pointer) resolve
// deterministically.
type Shape int

const (
	// Unsupported matches no other shape. Rendering it returns
	// [ErrUnsupported].
	Unsupported Shape = iota
	// Streamable types carry their own textual form: fmt.Stringer, error,
	// booleans, numbers, and the text leaves (string, []byte, *string).
	Streamable
	// Sequence types are iterable collections: slices, arrays,
	// receive-capable channels, and iter.Seq-shaped funcs.
	Sequence
	// Map is the pair-element refinement of Sequence: Go maps,
	// iter.Seq2-shaped funcs, and sequences of Key/Value pair structs.
	Map
	// Tuple types are structs: fixed arity, exported fields in
	// declaration order.
	Tuple
	// Optional types carry a presence test and a dereference: anything
	// implementing [Optioner], and pointers under
	// [WithPointersAsOptionals].
	Optional
)

var shapeNames = map[Shape]string{
	Unsupported: "unsupported",
	Streamable:  "streamable",
	Sequence:    "sequence",
	Map:         "map",
	Tuple:       "tuple",
	Optional:    "optional",
}

// String returns the shape name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// KV is the canonical key/value pair. A sequence whose element type has
// exactly two exported fields named Key and Value — this type or any other —
// classifies as Map, so a []KV renders as a flat map in insertion order.
type KV struct {
	Key   any
	Value any
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	optionerType = reflect.TypeOf((*Optioner)(nil)).Elem()
)

// ShapeOf reports the shape of v's type under p's policies. A nil v reports
// Optional: it renders as the absent placeholder.
func (p *Printer) ShapeOf(v any) Shape {
	return p.shapeOf(reflect.TypeOf(v))
}

// ShapeOf reports the shape of v's type under the default policies.
func ShapeOf(v any) Shape {
	return New().ShapeOf(v)
}

// Supported reports whether type T renders without error under the default
// policies. Container element types are classified as they are encountered,
// so a Supported container may still hold unsupported elements behind
// interface-typed slots.
func Supported[T any]() bool {
	return New().shapeOf(reflect.TypeFor[T]()) != Unsupported
}

// shapeOf resolves t to exactly one shape. Precedence: Streamable first
// (a pre-existing textual form is never second-guessed), then the iterable
// kinds with their Map refinement, then the explicit Optioner capability,
// then structs as tuples, then pointers per policy. The Optioner check runs
// before the struct check because Go structs are implicitly tuple-like and
// an optional wrapper is invariably a struct.
func (p *Printer) shapeOf(t reflect.Type) Shape {
	if t == nil {
		return Optional
	}
	if t.Implements(stringerType) || t.Implements(errorType) {
		return Streamable
	}
	if isText(t) {
		return Streamable
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Streamable
	case reflect.Map:
		return Map
	case reflect.Slice, reflect.Array:
		if isPair(t.Elem()) {
			return Map
		}
		return Sequence
	case reflect.Chan:
		if t.ChanDir()&reflect.RecvDir == 0 {
			return Unsupported
		}
		if isPair(t.Elem()) {
			return Map
		}
		return Sequence
	case reflect.Func:
		yield, ok := seqYield(t)
		if !ok {
			return Unsupported
		}
		if yield.NumIn() == 2 || isPair(yield.In(0)) {
			return Map
		}
		return Sequence
	}
	if t.Implements(optionerType) {
		return Optional
	}
	switch t.Kind() {
	case reflect.Struct:
		return Tuple
	case reflect.Pointer:
		if p.optionalPtrs {
			return Optional
		}
		return Streamable
	case reflect.Interface:
		// Interface-typed slots are classified per dynamic value at
		// render time; the static type always admits rendering.
		return Optional
	}
	return Unsupported
}

// isText reports whether t is a text leaf: a string kind, a byte slice, or
// a pointer to a string kind. Text leaves are Streamable and subject to the
// quoting policy; in particular a string is never a sequence of runes and a
// *string is never Optional.
func isText(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.String
	}
	return false
}

// isPair reports whether t is a pair struct: exactly two exported fields
// named Key and Value, in that order. Matching is structural, so any such
// struct qualifies, not just [KV].
func isPair(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.NumField() == 2 &&
		t.Field(0).Name == "Key" &&
		t.Field(1).Name == "Value"
}

// seqYield matches the iter.Seq / iter.Seq2 signatures structurally:
// func(func(T) bool) or func(func(K, V) bool). It returns the yield func
// type on a match.
func seqYield(t reflect.Type) (reflect.Type, bool) {
	if t.IsVariadic() || t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.IsVariadic() {
		return nil, false
	}
	if yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	if n := yield.NumIn(); n != 1 && n != 2 {
		return nil, false
	}
	return yield, true
}
