package pretty

import (
	"io"
	"iter"
	"reflect"
)

// Joiner writes a separator-joined run of rendered values without the
// caller tracking which value is first. Each Add writes the separator
// before every value after the first, then renders the value. Values added
// through a Joiner count as nested, so text quotes per the quoting policy.
type Joiner struct {
	p   *Printer
	w   io.Writer
	sep string
	n   int
}

// Joiner returns a join adapter writing to w with the given separator,
// rendering under p's policies.
func (p *Printer) Joiner(w io.Writer, sep string) *Joiner {
	return &Joiner{p: p, w: w, sep: sep}
}

// NewJoiner returns a join adapter using a Printer built from opts.
func NewJoiner(w io.Writer, sep string, opts ...Option) *Joiner {
	return New(opts...).Joiner(w, sep)
}

// Add renders v into the adapter's writer, preceded by the separator when
// it is not the first value.
func (j *Joiner) Add(v any) error {
	j.n++
	if j.n > 1 {
		if _, err := io.WriteString(j.w, j.sep); err != nil {
			return err
		}
	}
	return j.p.render(j.w, reflect.ValueOf(v), 1)
}

// WriteSeq renders the values of seq as a Sequence, writing elements to w
// as they arrive. It is the streaming counterpart of [Write] for iterators
// that should not be materialized first.
func WriteSeq[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	p := New(opts...)
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	j := p.Joiner(w, ", ")
	for v := range seq {
		if err := j.Add(v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}
