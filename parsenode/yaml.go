package parsenode

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	openapi "github.com/sahardevv/OpenAPI.NET"
)

// FromYAML decodes the first YAML document in data. Duplicate mapping keys
// are rejected with a *DuplicateKeyError carrying both positions.
func FromYAML(data []byte, opts Options) (Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	return FromYAMLNode(&root, opts)
}

// FromYAMLNode converts an already decoded (or programmatically built)
// yaml.Node tree.
func FromYAMLNode(n *yaml.Node, opts Options) (Node, error) {
	if n == nil {
		return nil, ErrEmptyDocument
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		n = n.Content[0]
	}
	b := yamlBuilder{max: opts.maxDepth(), maxAlias: opts.maxAliasNodes()}
	return b.convert(n, "", 0)
}

// yamlBuilder counts the nodes it builds while expanding an alias or merge
// key; the depth limit alone does not stop wide alias fan-out.
type yamlBuilder struct {
	max      int
	maxAlias int
	inAlias  int
	expanded int
}

func (b *yamlBuilder) convertAlias(n *yaml.Node, ptr string, depth int) (Node, error) {
	b.inAlias++
	defer func() { b.inAlias-- }()
	return b.convert(n, ptr, depth)
}

func yamlPos(ptr string, n *yaml.Node) openapi.Position {
	return openapi.Position{Pointer: ptr, Line: n.Line, Column: n.Column}
}

func (b *yamlBuilder) convert(n *yaml.Node, ptr string, depth int) (Node, error) {
	if b.inAlias > 0 {
		b.expanded++
		if b.expanded > b.maxAlias {
			return nil, &AliasLimitError{Pointer: pointerOrRoot(ptr), MaxAliasNodes: b.maxAlias}
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &ValueNode{pos: yamlPos(ptr, n), kind: ScalarNull}, nil
		}
		return b.convert(n.Content[0], ptr, depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return &ValueNode{pos: yamlPos(ptr, n), kind: ScalarNull}, nil
		}
		// Alias cycles are cut by the depth check of the containers they pass through.
		return b.convertAlias(n.Alias, ptr, depth)
	case yaml.MappingNode:
		if depth >= b.max {
			return nil, &DepthError{Pointer: pointerOrRoot(ptr), MaxDepth: b.max}
		}
		m := &MapNode{pos: yamlPos(ptr, n)}
		first := make(map[string][2]int, len(n.Content)/2)
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				merges = append(merges, v)
				continue
			}
			// Keys are expected to be scalars in API descriptions.
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{Key: key, Pointer: JoinPointer(ptr, key), FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[key] = [2]int{k.Line, k.Column}
			child := JoinPointer(ptr, key)
			val, err := b.convert(v, child, depth+1)
			if err != nil {
				return nil, err
			}
			m.add(Property{Key: key, KeyPosition: yamlPos(child, k), Value: val})
		}
		if err := b.applyMerges(m, merges, ptr, depth); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.SequenceNode:
		if depth >= b.max {
			return nil, &DepthError{Pointer: pointerOrRoot(ptr), MaxDepth: b.max}
		}
		l := &ListNode{pos: yamlPos(ptr, n), items: make([]Node, 0, len(n.Content))}
		for i, c := range n.Content {
			v, err := b.convert(c, JoinPointer(ptr, itoa(i)), depth+1)
			if err != nil {
				return nil, err
			}
			l.items = append(l.items, v)
		}
		return l, nil
	case yaml.ScalarNode:
		return &ValueNode{pos: yamlPos(ptr, n), raw: n.Value, kind: yamlScalarKind(n)}, nil
	default:
		return &ValueNode{pos: yamlPos(ptr, n), kind: ScalarNull}, nil
	}
}

// applyMerges folds "<<" merge keys into m; explicit keys win.
func (b *yamlBuilder) applyMerges(m *MapNode, merges []*yaml.Node, ptr string, depth int) error {
	for _, src := range merges {
		var maps []*yaml.Node
		switch resolveAlias(src).Kind {
		case yaml.MappingNode:
			maps = append(maps, resolveAlias(src))
		case yaml.SequenceNode:
			for _, c := range resolveAlias(src).Content {
				maps = append(maps, resolveAlias(c))
			}
		}
		for _, mn := range maps {
			if mn.Kind != yaml.MappingNode {
				continue
			}
			for i := 0; i+1 < len(mn.Content); i += 2 {
				key := mn.Content[i].Value
				if m.Get(key) != nil {
					continue
				}
				child := JoinPointer(ptr, key)
				val, err := b.convertAlias(mn.Content[i+1], child, depth+1)
				if err != nil {
					return err
				}
				m.add(Property{Key: key, KeyPosition: yamlPos(child, mn.Content[i]), Value: val})
			}
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && i < 64; i++ {
		n = n.Alias
	}
	if n == nil {
		return &yaml.Node{}
	}
	return n
}

func yamlScalarKind(n *yaml.Node) ScalarKind {
	switch n.ShortTag() {
	case "!!null":
		return ScalarNull
	case "!!bool":
		return ScalarBool
	case "!!int":
		return ScalarInt
	case "!!float":
		return ScalarFloat
	default:
		// !!str, !!timestamp, !!binary and custom tags are kept as text.
		return ScalarString
	}
}

func pointerOrRoot(ptr string) string {
	if ptr == "" {
		return "/"
	}
	return ptr
}
