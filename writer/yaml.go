package writer

import (
	"io"
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// YAMLWriter builds a yaml.v3 node tree. Node returns the tree; Flush
// encodes it to the output, if any.
type YAMLWriter struct {
	state
	out   io.Writer
	root  *yaml.Node
	nodes []*yaml.Node
}

// NewYAMLWriter returns a YAML writer on out. out may be nil when only the
// node tree is wanted.
func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{out: out}
}

// Node returns the root of the written tree, or nil if nothing was written.
func (w *YAMLWriter) Node() *yaml.Node { return w.root }

func (w *YAMLWriter) add(n *yaml.Node) bool {
	if w.err != nil {
		return false
	}
	if len(w.nodes) == 0 {
		if !w.claimRoot() {
			return false
		}
		w.root = n
		return true
	}
	parent := w.nodes[len(w.nodes)-1]
	if parent.Kind == yaml.MappingNode {
		name, ok := w.claimName()
		if !ok {
			return false
		}
		parent.Content = append(parent.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, n)
		return true
	}
	parent.Content = append(parent.Content, n)
	return true
}

func (w *YAMLWriter) open(k containerKind, n *yaml.Node) {
	if !w.add(n) {
		return
	}
	w.nodes = append(w.nodes, n)
	w.stack = append(w.stack, k)
}

func (w *YAMLWriter) close(k containerKind) {
	if w.err != nil {
		return
	}
	if w.pop(k) {
		w.nodes = w.nodes[:len(w.nodes)-1]
	}
}

func (w *YAMLWriter) WriteStartObject() {
	w.open(kindObject, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
}
func (w *YAMLWriter) WriteEndObject() { w.close(kindObject) }
func (w *YAMLWriter) WriteStartArray() {
	w.open(kindArray, &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"})
}
func (w *YAMLWriter) WriteEndArray() { w.close(kindArray) }

func (w *YAMLWriter) WritePropertyName(name string) {
	if w.err == nil {
		w.setName(name)
	}
}

func (w *YAMLWriter) WriteNull() {
	w.add(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
}

func (w *YAMLWriter) WriteValue(v any) {
	if v == nil {
		w.WriteNull()
		return
	}
	if err := checkScalar(v); err != nil {
		w.fail(err)
		return
	}
	w.add(scalarNode(v))
}

func scalarNode(v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case string:
		n.Tag, n.Value = "!!str", x
	case bool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(x)
	case int:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int8:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int16:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int32:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int64:
		n.Tag, n.Value = "!!int", strconv.FormatInt(x, 10)
	case uint:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint8:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint16:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint32:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint64:
		n.Tag, n.Value = "!!int", strconv.FormatUint(x, 10)
	case float32:
		n.Tag, n.Value = floatTag(float64(x), 32)
	case float64:
		n.Tag, n.Value = floatTag(x, 64)
	case j.Number:
		if _, err := x.Int64(); err == nil {
			n.Tag = "!!int"
		} else {
			n.Tag = "!!float"
		}
		n.Value = x.String()
	}
	return n
}

// floatTag keeps integral floats as ints so they read back the same way the
// JSON writer renders them.
func floatTag(f float64, bits int) (string, string) {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return "!!int", s
	}
	return "!!float", s
}

// Flush encodes the tree with two-space indentation.
func (w *YAMLWriter) Flush() error {
	if w.err == nil && len(w.nodes) > 0 {
		w.fail(ErrUnbalanced)
	}
	if w.err != nil {
		return w.err
	}
	if w.out == nil || w.root == nil {
		return nil
	}
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(w.root); err != nil {
		return err
	}
	return enc.Close()
}
