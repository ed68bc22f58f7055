package pretty

import (
	"io"
	"reflect"
)

// renderTuple writes (slot, slot, ...): the struct's exported fields in
// declaration order, each classified and rendered independently. Unexported
// fields are skipped, so a struct with none renders as ().
func (p *Printer) renderTuple(w io.Writer, v reflect.Value, depth int) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	j := &elemJoiner{p: p, w: w, depth: depth + 1}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if err := j.add(v.Field(i)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}
