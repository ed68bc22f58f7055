package pretty

import (
	"io"
	"reflect"
)

// Optioner is the presence test and dereference pair that classifies a type
// as Optional. Get is only called after Ok reports true.
type Optioner interface {
	Ok() bool
	Get() any
}

// Opt is a value that may be absent. The zero Opt is absent.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{val: v, ok: true} }

// None returns an absent Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

// Ok reports whether the value is present.
func (o Opt[T]) Ok() bool { return o.ok }

// Get returns the held value. It implements [Optioner]; use [Opt.Value] for
// the typed accessor.
func (o Opt[T]) Get() any { return o.val }

// Value returns the held value and whether it is present.
func (o Opt[T]) Value() (T, bool) { return o.val, o.ok }

// renderOptional writes the placeholder for an absent value, or the present
// value at the optional's own depth, so a string inside an optional inside
// a sequence still quotes like any other nested text.
func (p *Printer) renderOptional(w io.Writer, v reflect.Value, depth int) error {
	if opt, ok := v.Interface().(Optioner); ok {
		if !opt.Ok() {
			return p.writePlaceholder(w)
		}
		return p.render(w, reflect.ValueOf(opt.Get()), depth)
	}
	// Pointer under WithPointersAsOptionals.
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return p.writePlaceholder(w)
	}
	return p.render(w, v.Elem(), depth)
}
