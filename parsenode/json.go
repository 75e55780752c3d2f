package parsenode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	openapi "github.com/sahardevv/OpenAPI.NET"
)

// frame is an open container on the explicit stack.
type frame struct {
	m          *MapNode
	l          *ListNode
	ptr        string
	pendingKey string
	hasKey     bool
}

// FromJSON tokenizes data with go-json and builds the tree iteratively, so
// deeply nested input fails with *DepthError instead of exhausting the stack.
func FromJSON(data []byte, opts Options) (Node, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	max := opts.maxDepth()

	var (
		stack []*frame
		root  Node
	)

	// place attaches a completed value to the enclosing container (or root).
	place := func(n Node) error {
		if len(stack) == 0 {
			root = n
			return nil
		}
		top := stack[len(stack)-1]
		if top.m != nil {
			if !top.hasKey {
				return fmt.Errorf("parsenode: value without key at %s", pointerOrRoot(top.ptr))
			}
			top.m.add(Property{Key: top.pendingKey, KeyPosition: openapi.Position{Pointer: n.Position().Pointer}, Value: n})
			top.hasKey = false
			top.pendingKey = ""
			return nil
		}
		top.l.items = append(top.l.items, n)
		return nil
	}

	// childPointer computes the pointer of the next value in the top container.
	childPointer := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := stack[len(stack)-1]
		if top.m != nil {
			return JoinPointer(top.ptr, top.pendingKey)
		}
		return JoinPointer(top.ptr, itoa(len(top.l.items)))
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsenode: invalid JSON: %w", err)
		}
		if root != nil && len(stack) == 0 {
			return nil, errors.New("parsenode: invalid JSON: trailing data after top-level value")
		}

		// A string token in key position of an object is a key, not a value.
		if s, ok := tok.(string); ok && len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.m != nil && !top.hasKey {
				if top.m.Get(s) != nil {
					return nil, &DuplicateKeyError{Key: s, Pointer: JoinPointer(top.ptr, s)}
				}
				top.pendingKey = s
				top.hasKey = true
				continue
			}
		}

		ptr := childPointer()
		pos := openapi.Position{Pointer: ptr}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{', '[':
				if len(stack) >= max {
					return nil, &DepthError{Pointer: pointerOrRoot(ptr), MaxDepth: max}
				}
				f := &frame{ptr: ptr}
				if v == '{' {
					f.m = &MapNode{pos: pos}
				} else {
					f.l = &ListNode{pos: pos}
				}
				stack = append(stack, f)
			case '}', ']':
				if len(stack) == 0 {
					return nil, errors.New("parsenode: invalid JSON: unbalanced delimiter")
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				var done Node = top.l
				if top.m != nil {
					done = top.m
				}
				if err := place(done); err != nil {
					return nil, err
				}
			}
		case string:
			if err := place(&ValueNode{pos: pos, raw: v, kind: ScalarString}); err != nil {
				return nil, err
			}
		case bool:
			if err := place(&ValueNode{pos: pos, raw: strconv.FormatBool(v), kind: ScalarBool}); err != nil {
				return nil, err
			}
		case j.Number:
			if err := place(&ValueNode{pos: pos, raw: string(v), kind: numberKind(string(v))}); err != nil {
				return nil, err
			}
		case float64:
			if err := place(&ValueNode{pos: pos, raw: strconv.FormatFloat(v, 'g', -1, 64), kind: ScalarFloat}); err != nil {
				return nil, err
			}
		case nil:
			if err := place(&ValueNode{pos: pos, raw: "null", kind: ScalarNull}); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("parsenode: unexpected JSON token %T", tok)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("parsenode: invalid JSON: %w", io.ErrUnexpectedEOF)
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func numberKind(s string) ScalarKind {
	if strings.ContainsAny(s, ".eE") {
		return ScalarFloat
	}
	return ScalarInt
}

func itoa(i int) string { return strconv.Itoa(i) }
