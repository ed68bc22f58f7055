package pretty

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// render classifies v and dispatches to the shape's renderer. depth counts
// container nesting: 0 at the top level, +1 inside every sequence, map, or
// tuple. The quoting policy keys off depth, so the same string renders
// verbatim at the top level and quoted as an element.
func (p *Printer) render(w io.Writer, v reflect.Value, depth int) error {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return p.writePlaceholder(w)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return p.writePlaceholder(w)
	}
	switch p.shapeOf(v.Type()) {
	case Streamable:
		return p.renderLeaf(w, v, depth)
	case Sequence:
		return p.renderSequence(w, v, depth)
	case Map:
		return p.renderMap(w, v, depth)
	case Tuple:
		return p.renderTuple(w, v, depth)
	case Optional:
		return p.renderOptional(w, v, depth)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
	}
}

func (p *Printer) writePlaceholder(w io.Writer) error {
	_, err := io.WriteString(w, p.placeholder)
	return err
}

// renderLeaf writes a Streamable value. Stringer and error output is taken
// as-is: a custom textual form is not a text leaf and is never quoted.
func (p *Printer) renderLeaf(w io.Writer, v reflect.Value, depth int) error {
	t := v.Type()
	if t.Implements(stringerType) {
		_, err := io.WriteString(w, v.Interface().(fmt.Stringer).String())
		return err
	}
	if t.Implements(errorType) {
		_, err := io.WriteString(w, v.Interface().(error).Error())
		return err
	}
	if isText(t) {
		return p.writeText(w, textOf(v), depth)
	}
	if t.Kind() == reflect.Pointer {
		// Pointer policy off: the opaque address form.
		_, err := fmt.Fprintf(w, "%p", v.Interface())
		return err
	}
	_, err := fmt.Fprintf(w, "%v", v.Interface())
	return err
}

// textOf extracts the string from a text leaf. A nil *string panics here:
// text pointers are dereferenced unconditionally and the caller guarantees
// they are non-nil.
func textOf(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Slice:
		return string(v.Bytes())
	default:
		return v.Elem().String()
	}
}

// writeText writes a text leaf, quoting and escaping it when it sits inside
// a container and the quoting policy is on. Escaping is strconv.Quote's
// backslash convention.
func (p *Printer) writeText(w io.Writer, s string, depth int) error {
	if depth > 0 && p.quote {
		s = strconv.Quote(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

// elemJoiner writes ", " before every element after the first. Sequence,
// map, and tuple renderers share it.
type elemJoiner struct {
	p     *Printer
	w     io.Writer
	depth int
	n     int
}

func (j *elemJoiner) sep() error {
	j.n++
	if j.n == 1 {
		return nil
	}
	_, err := io.WriteString(j.w, ", ")
	return err
}

func (j *elemJoiner) add(v reflect.Value) error {
	if err := j.sep(); err != nil {
		return err
	}
	return j.p.render(j.w, v, j.depth)
}

func (j *elemJoiner) addPair(k, v reflect.Value) error {
	if err := j.sep(); err != nil {
		return err
	}
	if err := j.p.render(j.w, k, j.depth); err != nil {
		return err
	}
	if _, err := io.WriteString(j.w, ": "); err != nil {
		return err
	}
	return j.p.render(j.w, v, j.depth)
}
