package parsenode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_BuildsOrderedTree(t *testing.T) {
	n, err := FromJSON([]byte(`{"z":1,"a":[true,null,"s",1.5],"m":{"k":"v"}}`), Options{})
	require.NoError(t, err)
	root, err := AsMap(n)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, root.Keys())

	list, err := AsList(root.Get("a"))
	require.NoError(t, err)
	items := list.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "/a/3", items[3].Position().Pointer)

	v, _ := AsValue(items[0])
	assert.Equal(t, ScalarBool, v.ScalarKind())
	v, _ = AsValue(items[1])
	assert.True(t, v.IsNull())
	f, err := AsFloat(items[3])
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 0)

	z, _ := AsValue(root.Get("z"))
	assert.Equal(t, ScalarInt, z.ScalarKind())
	assert.Equal(t, int64(1), z.Interface())

	m, _ := AsMap(root.Get("m"))
	assert.Equal(t, "/m/k", m.Get("k").Position().Pointer)
}

func TestFromJSON_DuplicateKey(t *testing.T) {
	_, err := FromJSON([]byte(`{"info":{"title":"a","title":"b"}}`), Options{})
	var de *DuplicateKeyError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, "title", de.Key)
	assert.Equal(t, "/info/title", de.Pointer)
}

func TestFromJSON_DepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	_, err := FromJSON([]byte(deep), Options{MaxDepth: 10})
	var de *DepthError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, 10, de.MaxDepth)
}

func TestFromJSON_Malformed(t *testing.T) {
	for _, src := range []string{`{"a":`, `{"a":1}{"b":2}`, ``} {
		_, err := FromJSON([]byte(src), Options{})
		assert.Error(t, err, "input %q", src)
	}
}

func TestParse_SniffsFormat(t *testing.T) {
	n, err := Parse([]byte("  \n{\"a\": 1}"), Options{})
	require.NoError(t, err)
	assert.Equal(t, KindMap, n.Kind())
	assert.Zero(t, n.Position().Line, "JSON input carries no line info")

	n, err = Parse([]byte("a: 1\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, n.Position().Line)
}

func TestAccessors_TypeMismatch(t *testing.T) {
	n, err := FromJSON([]byte(`{"url":{"nested":true},"n":"abc","b":"yes"}`), Options{})
	require.NoError(t, err)
	root, _ := AsMap(n)

	_, err = AsString(root.Get("url"))
	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "string", tm.Expected)
	assert.Equal(t, "map", tm.Got)
	assert.Equal(t, "/url", tm.Position.Pointer)

	_, err = AsInt(root.Get("n"))
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "abc", tm.Raw)

	_, err = AsBool(root.Get("b"))
	assert.Error(t, err)

	_, err = AsString(nil)
	assert.Error(t, err)
}

func TestPointer_RoundTrip(t *testing.T) {
	p := JoinPointer(JoinPointer("", "paths"), "/a~b")
	assert.Equal(t, "/paths/~1a~0b", p)
	assert.Equal(t, []string{"paths", "/a~b"}, SplitPointer(p))
	assert.Nil(t, SplitPointer("/"))
}
