package pretty

import (
	"io"
	"reflect"
)

// renderSequence writes [elem, elem, ...] in traversal order. Channels are
// drained until close; iter.Seq-shaped funcs are invoked once, so both are
// single-pass sources like any other input-style iteration.
func (p *Printer) renderSequence(w io.Writer, v reflect.Value, depth int) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	j := &elemJoiner{p: p, w: w, depth: depth + 1}
	if err := eachElem(v, j.add); err != nil {
		return err
	}
	_, err := io.WriteString(w, "]")
	return err
}

// eachElem walks any sequence source and calls fn per element, stopping on
// the first error. A nil chan or func source has no elements, matching nil
// slices and maps.
func eachElem(v reflect.Value, fn func(reflect.Value) error) error {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := fn(v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Chan:
		if v.IsNil() {
			return nil
		}
		for {
			x, ok := v.Recv()
			if !ok {
				return nil
			}
			if err := fn(x); err != nil {
				return err
			}
		}
	default:
		if v.IsNil() {
			return nil
		}
		return callSeq(v, func(args []reflect.Value) error {
			return fn(args[0])
		})
	}
}

// callSeq invokes an iter.Seq- or iter.Seq2-shaped func, routing each
// yielded tuple of arguments to fn. A non-nil fn error stops the iteration
// and is returned.
func callSeq(v reflect.Value, fn func([]reflect.Value) error) error {
	yieldType := v.Type().In(0)
	var stopped error
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if err := fn(args); err != nil {
			stopped = err
			return []reflect.Value{reflect.ValueOf(false)}
		}
		return []reflect.Value{reflect.ValueOf(true)}
	})
	v.Call([]reflect.Value{yield})
	return stopped
}
