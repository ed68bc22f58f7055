// Package pretty renders container-like values as human-readable text
// without per-type formatting code.
//
// Values are classified structurally into shapes and each shape has a fixed
// textual grammar. The central entry points are [Write], [Sprint], and
// [Marshal], which accept any value and variadic options; [New] builds a
// [Printer] with the options bound once.
//
//	pretty.Sprint([]int{1, 2, 3})           // "[1, 2, 3]"
//	pretty.Sprint(map[int]string{1: "one"}) // `{1: "one"}`
//	pretty.Sprint(pretty.None[int]())       // "--"
//
// # Shapes
//
// Classification resolves every type to exactly one [Shape]:
//
//   - [Streamable] — the type carries its own textual form: fmt.Stringer,
//     error, booleans, numbers, and the text leaves string, []byte, and
//     *string. Rendered directly.
//   - [Sequence] — slices, arrays, receive-capable channels, and
//     iter.Seq-shaped funcs. Rendered as [a, b, c]; empty is [].
//   - [Map] — Go maps, iter.Seq2-shaped funcs, and any sequence whose
//     element is a pair struct (two exported fields named Key and Value,
//     such as [KV]). Rendered as {k: v, ...}; pair order is the source's
//     own traversal order.
//   - [Tuple] — structs: exported fields in declaration order, rendered as
//     (a, b); a struct with no exported fields is ().
//   - [Optional] — anything implementing [Optioner] (such as [Opt]), and
//     pointers under [WithPointersAsOptionals]. Absent renders as the
//     placeholder, present renders the wrapped value.
//
// Precedence is fixed: Streamable beats everything (a named slice with a
// String method uses it, a string is never a sequence of runes), sequences
// beat tuples (an array is a Sequence), and structs are tuples only when
// they do not implement [Optioner]. A type matching no shape renders as
// [ErrUnsupported].
//
// Go interface values act as tagged unions: an any-typed element is
// classified by its dynamic type at the point it is rendered, and a nil
// interface renders as the placeholder.
//
// # Text quoting
//
// A text leaf nested inside a sequence, map, or tuple is quoted and escaped
// with strconv.Quote's backslash convention; at the top level it renders
// verbatim, preserving ordinary print-as-is expectations:
//
//	pretty.Sprint("test")                  // test
//	pretty.Sprint([]string{"one", "two"})  // ["one", "two"]
//
// [WithoutQuotes] renders text verbatim at any depth. Stringer and error
// output is never quoted.
//
// # Pointers
//
// By default a pointer renders as its address. [WithPointersAsOptionals]
// classifies pointers as Optional instead: nil is the placeholder, non-nil
// renders the pointee. A *string is exempt either way: it is always a text
// leaf, dereferenced unconditionally. Passing a nil *string panics; the
// caller guarantees text pointers are non-nil.
//
// # Joining
//
// [Joiner] is an adapter for separator-joined output without first-element
// bookkeeping, and [WriteSeq] streams an iter.Seq as a sequence render
// without materializing it. Streaming output is not subject to
// [WithMaxWidth] truncation.
//
// # Errors
//
// Rendering is a pure function of the value and the bound options; repeat
// renders of an unchanged value are byte-identical (Go map traversal order
// aside). The only failure modes are [ErrUnsupported] and propagated writer
// errors.
package pretty
