package parsenode

import (
	"errors"
	"strings"
	"testing"
)

func TestFromYAML_DuplicateKey_Root(t *testing.T) {
	_, err := FromYAML([]byte("openapi: 3.0.0\nopenapi: 3.0.1\n"), Options{})
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
	var de *DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "openapi" {
		t.Fatalf("expected key=openapi, got %q", de.Key)
	}
	if de.FirstLine != 1 || de.Line != 2 {
		t.Fatalf("expected lines 1 and 2, got first=%d dup=%d", de.FirstLine, de.Line)
	}
}

func TestFromYAML_DuplicateKey_Nested(t *testing.T) {
	_, err := FromYAML([]byte("info:\n  title: a\n  title: b\n"), Options{})
	var de *DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "title" || de.Pointer != "/info/title" {
		t.Fatalf("unexpected key/pointer: %q %q", de.Key, de.Pointer)
	}
}

func TestFromYAML_PositionsAndKinds(t *testing.T) {
	src := "info:\n  title: Pets\n  version: 1.0\nflag: true\ncount: 3\nnothing: ~\npaths:\n  /pets/{id}:\n    get: {}\n"
	n, err := FromYAML([]byte(src), Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	root, err := AsMap(n)
	if err != nil {
		t.Fatalf("root not a map: %v", err)
	}
	if got := root.Keys(); strings.Join(got, ",") != "info,flag,count,nothing,paths" {
		t.Fatalf("unexpected key order: %v", got)
	}
	info, _ := AsMap(root.Get("info"))
	title := info.Get("title")
	if p := title.Position(); p.Pointer != "/info/title" || p.Line != 2 || p.Column != 10 {
		t.Fatalf("unexpected title position: %+v", p)
	}
	// a float-looking version still reads back verbatim as text
	if s, err := AsString(info.Get("version")); err != nil || s != "1.0" {
		t.Fatalf("version: %q %v", s, err)
	}
	if b, err := AsBool(root.Get("flag")); err != nil || !b {
		t.Fatalf("flag: %v %v", b, err)
	}
	if i, err := AsInt(root.Get("count")); err != nil || i != 3 {
		t.Fatalf("count: %v %v", i, err)
	}
	if v, _ := AsValue(root.Get("nothing")); !v.IsNull() {
		t.Fatalf("expected null scalar")
	}
	paths, _ := AsMap(root.Get("paths"))
	if got := paths.Get("/pets/{id}").Position().Pointer; got != "/paths/~1pets~1{id}" {
		t.Fatalf("unexpected escaped pointer: %q", got)
	}
	if root.Get("absent") != nil {
		t.Fatalf("absent key must yield nil")
	}
}

func TestFromYAML_AliasAndMerge(t *testing.T) {
	src := "base: &b\n  type: string\n  format: uuid\nid:\n  <<: *b\n  format: custom\nref: *b\n"
	n, err := FromYAML([]byte(src), Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	root, _ := AsMap(n)
	id, _ := AsMap(root.Get("id"))
	if s, _ := AsString(id.Get("format")); s != "custom" {
		t.Fatalf("explicit key must win over merge, got %q", s)
	}
	if s, _ := AsString(id.Get("type")); s != "string" {
		t.Fatalf("merged key missing, got %q", s)
	}
	ref, err := AsMap(root.Get("ref"))
	if err != nil || ref.Len() != 2 {
		t.Fatalf("alias not followed: %v", err)
	}
}

func TestFromYAML_DepthLimit(t *testing.T) {
	src := strings.Repeat("a:\n", 1) + "  b:\n    c:\n      d: 1\n"
	_, err := FromYAML([]byte(src), Options{MaxDepth: 2})
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("expected DepthError, got %T %v", err, err)
	}
}

func TestFromYAML_Empty(t *testing.T) {
	if _, err := FromYAML(nil, Options{}); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestFromYAML_AliasExpansionIsBounded(t *testing.T) {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 7; i++ {
		prev := "*l" + itoa(i-1)
		b.WriteString("l" + itoa(i) + ": &l" + itoa(i) + " [")
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(prev)
		}
		b.WriteString("]\n")
	}
	_, err := FromYAML([]byte(b.String()), Options{})
	var ae *AliasLimitError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AliasLimitError, got %T %v", err, err)
	}
	if ae.MaxAliasNodes != DefaultMaxAliasNodes {
		t.Fatalf("unexpected limit %d", ae.MaxAliasNodes)
	}
}

func TestFromYAML_AliasLimitOption(t *testing.T) {
	src := []byte("base: &b {k: v}\nuse: *b\nmerged:\n  <<: *b\n  own: 1\n")
	n, err := FromYAML(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := n.(*MapNode).Get("merged").(*MapNode).Get("k"); got == nil {
		t.Fatalf("merge key not applied")
	}

	_, err = FromYAML(src, Options{MaxAliasNodes: 1})
	var ae *AliasLimitError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AliasLimitError, got %T %v", err, err)
	}
	if ae.Pointer != "/use/k" {
		t.Fatalf("unexpected pointer %q", ae.Pointer)
	}
}
