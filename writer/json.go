package writer

import (
	"bufio"
	"io"
	"math"
	"strings"

	j "github.com/goccy/go-json"
)

type jsonFrame struct {
	kind  containerKind
	count int
}

// JSONWriter streams JSON text to an io.Writer.
type JSONWriter struct {
	state
	out    *bufio.Writer
	frames []jsonFrame
	indent string
}

// NewJSONWriter returns a JSON writer on out.
func NewJSONWriter(out io.Writer, s Settings) *JSONWriter {
	w := &JSONWriter{out: bufio.NewWriter(out)}
	if s.Indent > 0 {
		w.indent = strings.Repeat(" ", s.Indent)
	}
	return w
}

func (w *JSONWriter) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.out.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.out.WriteString(w.indent)
	}
}

// beforeValue writes separators and the pending property name.
func (w *JSONWriter) beforeValue() bool {
	if w.err != nil {
		return false
	}
	if len(w.frames) == 0 {
		return w.claimRoot()
	}
	f := &w.frames[len(w.frames)-1]
	var name string
	if f.kind == kindObject {
		var ok bool
		if name, ok = w.claimName(); !ok {
			return false
		}
	}
	if f.count > 0 {
		w.out.WriteByte(',')
	}
	f.count++
	w.newline(len(w.frames))
	if f.kind == kindObject {
		w.writeEncoded(name)
		w.out.WriteByte(':')
		if w.indent != "" {
			w.out.WriteByte(' ')
		}
	}
	return true
}

func (w *JSONWriter) writeEncoded(v any) {
	b, err := j.MarshalWithOption(v, j.DisableHTMLEscape())
	if err != nil {
		w.fail(err)
		return
	}
	w.out.Write(b)
}

func (w *JSONWriter) open(k containerKind, b byte) {
	if !w.beforeValue() {
		return
	}
	w.out.WriteByte(b)
	w.frames = append(w.frames, jsonFrame{kind: k})
	w.stack = append(w.stack, k)
}

func (w *JSONWriter) close(k containerKind, b byte) {
	if w.err != nil {
		return
	}
	if !w.pop(k) {
		return
	}
	f := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]
	if f.count > 0 {
		w.newline(len(w.frames))
	}
	w.out.WriteByte(b)
}

func (w *JSONWriter) WriteStartObject() { w.open(kindObject, '{') }
func (w *JSONWriter) WriteEndObject()   { w.close(kindObject, '}') }
func (w *JSONWriter) WriteStartArray()  { w.open(kindArray, '[') }
func (w *JSONWriter) WriteEndArray()    { w.close(kindArray, ']') }

func (w *JSONWriter) WritePropertyName(name string) {
	if w.err == nil {
		w.setName(name)
	}
}

func (w *JSONWriter) WriteNull() {
	if w.beforeValue() {
		w.out.WriteString("null")
	}
}

func (w *JSONWriter) WriteValue(v any) {
	if v == nil {
		w.WriteNull()
		return
	}
	if err := checkScalar(v); err != nil {
		w.fail(err)
		return
	}
	if w.beforeValue() {
		w.writeEncoded(v)
	}
}

// Flush writes buffered output. Writing an empty document is not an error.
func (w *JSONWriter) Flush() error {
	if w.err == nil && len(w.frames) > 0 {
		w.fail(ErrUnbalanced)
	}
	if w.err != nil {
		return w.err
	}
	if w.rootDone && w.indent != "" {
		w.out.WriteByte('\n')
	}
	return w.out.Flush()
}

func checkScalar(v any) error {
	switch x := v.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return &UnsupportedValueError{Value: v}
		}
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &UnsupportedValueError{Value: v}
		}
		return nil
	case j.Number:
		return nil
	}
	return &UnsupportedValueError{Value: v}
}
