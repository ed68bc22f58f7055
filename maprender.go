package pretty

import (
	"io"
	"reflect"
)

// renderMap writes {key: value, ...}. Sources are Go maps, iter.Seq2-shaped
// funcs, and sequences of Key/Value pair structs (the flat-map relaxation).
// Pair order is whatever the source yields: insertion order for a pair
// slice, randomized order for a Go map. Key and value are classified and
// rendered independently.
func (p *Printer) renderMap(w io.Writer, v reflect.Value, depth int) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	j := &elemJoiner{p: p, w: w, depth: depth + 1}
	if err := eachPair(v, j.addPair); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}

// eachPair walks any map source and calls fn per key/value pair, stopping
// on the first error. A nil source has no pairs.
func eachPair(v reflect.Value, fn func(k, val reflect.Value) error) error {
	switch v.Kind() {
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := fn(iter.Key(), iter.Value()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Func:
		if v.IsNil() {
			return nil
		}
		if v.Type().In(0).NumIn() == 2 {
			return callSeq(v, func(args []reflect.Value) error {
				return fn(args[0], args[1])
			})
		}
		fallthrough
	default:
		// A sequence of pair structs: field 0 is Key, field 1 is Value.
		return eachElem(v, func(e reflect.Value) error {
			return fn(e.Field(0), e.Field(1))
		})
	}
}
