package pretty

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnsupported is returned when a value's type matches no shape.
	ErrUnsupported = errors.New("unsupported type")
)

// DefaultPlaceholder is rendered for an absent optional value.
const DefaultPlaceholder = "--"

// Printer renders values according to a fixed set of policies. The zero
// configuration (from [New] with no options) quotes nested text, renders
// pointers as addresses, and uses [DefaultPlaceholder] for absent optionals.
//
// A Printer is immutable after construction and safe for concurrent use on
// independent values; it holds no state between calls.
type Printer struct {
	quote        bool
	optionalPtrs bool
	placeholder  string
	maxWidth     int
}

// Option configures a [Printer].
type Option func(*Printer)

// WithoutQuotes disables quoting and escaping of nested text leaves.
// Text then renders verbatim at any depth.
func WithoutQuotes() Option {
	return func(p *Printer) { p.quote = false }
}

// WithPointersAsOptionals classifies pointer types as Optional: nil renders
// as the placeholder, non-nil renders the pointee. Without this option a
// pointer renders as its address. String pointers are unaffected: they are
// always text leaves (see [Shape]).
func WithPointersAsOptionals() Option {
	return func(p *Printer) { p.optionalPtrs = true }
}

// WithPlaceholder sets the token rendered for an absent optional.
func WithPlaceholder(s string) Option {
	return func(p *Printer) { p.placeholder = s }
}

// WithMaxWidth truncates the rendered output to at most w display columns,
// appending "..." when truncation occurs. Width is measured in terminal
// columns, so full-width characters count as two. Zero means no limit.
func WithMaxWidth(w int) Option {
	return func(p *Printer) { p.maxWidth = w }
}

// New returns a Printer with the given options applied.
func New(opts ...Option) *Printer {
	p := &Printer{quote: true, placeholder: DefaultPlaceholder}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Write renders v into w.
func (p *Printer) Write(w io.Writer, v any) error {
	if p.maxWidth > 0 {
		s, err := p.Sprint(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	}
	return p.render(w, reflect.ValueOf(v), 0)
}

// Sprint renders v and returns the accumulated text.
func (p *Printer) Sprint(v any) (string, error) {
	var sb strings.Builder
	if err := p.render(&sb, reflect.ValueOf(v), 0); err != nil {
		return "", err
	}
	s := sb.String()
	if p.maxWidth > 0 {
		s = runewidth.Truncate(s, p.maxWidth, "...")
	}
	return s, nil
}

// Marshal renders v and returns the bytes.
func (p *Printer) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Write(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders v into w using a Printer built from opts.
func Write(w io.Writer, v any, opts ...Option) error {
	return New(opts...).Write(w, v)
}

// Sprint renders v using a Printer built from opts and returns the text.
func Sprint(v any, opts ...Option) (string, error) {
	return New(opts...).Sprint(v)
}

// Marshal renders v using a Printer built from opts and returns the bytes.
func Marshal(v any, opts ...Option) ([]byte, error) {
	return New(opts...).Marshal(v)
}
