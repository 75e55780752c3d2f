package writer_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

func TestJSONWriter_Compact(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteStartObject()
	writer.WriteProperty(w, "title", "Pets & <Co>")
	writer.WriteProperty(w, "empty", "")
	writer.WriteStringList(w, "schemes", []string{"https", "http"})
	w.WritePropertyName("n")
	w.WriteValue(int64(3))
	w.WritePropertyName("f")
	w.WriteValue(1.5)
	w.WritePropertyName("z")
	w.WriteNull()
	w.WriteEndObject()
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"title":"Pets & <Co>","schemes":["https","http"],"n":3,"f":1.5,"z":null}`, buf.String())
}

func TestJSONWriter_Indent(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{Indent: 2})
	w.WriteStartObject()
	w.WritePropertyName("a")
	w.WriteStartArray()
	w.WriteValue(true)
	w.WriteEndArray()
	w.WritePropertyName("b")
	w.WriteStartObject()
	w.WriteEndObject()
	w.WriteEndObject()
	require.NoError(t, w.Flush())
	assert.Equal(t, "{\n  \"a\": [\n    true\n  ],\n  \"b\": {}\n}\n", buf.String())
}

func TestJSONWriter_DropsDanglingNames(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteStartObject()
	w.WritePropertyName("requestBody") // nothing follows
	w.WritePropertyName("summary")
	w.WriteValue("s")
	w.WritePropertyName("encoding") // followed by end
	w.WriteEndObject()
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"summary":"s"}`, buf.String())
}

func TestJSONWriter_Errors(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteStartObject()
	w.WriteValue("no name")
	assert.ErrorIs(t, w.Flush(), writer.ErrMissingName)

	w = writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteStartObject()
	assert.ErrorIs(t, w.Flush(), writer.ErrUnbalanced)

	w = writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteEndArray()
	assert.ErrorIs(t, w.Flush(), writer.ErrUnbalanced)

	w = writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteValue(1)
	w.WriteValue(2)
	assert.ErrorIs(t, w.Flush(), writer.ErrMultipleRoots)

	w = writer.NewJSONWriter(&buf, writer.Settings{})
	w.WriteValue(math.NaN())
	var uv *writer.UnsupportedValueError
	assert.True(t, errors.As(w.Flush(), &uv))
}

func TestJSONWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{Indent: 2})
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}

func TestYAMLWriter_Tree(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewYAMLWriter(&buf)
	w.WriteStartObject()
	writer.WriteProperty(w, "openapi", "3.0.1")
	writer.WriteProperty(w, "version", "1.0")
	w.WritePropertyName("skipped")
	w.WritePropertyName("tags")
	w.WriteStartArray()
	w.WriteValue("a")
	w.WriteValue(int64(2))
	w.WriteEndArray()
	w.WritePropertyName("x")
	w.WriteValue(2.0)
	w.WriteEndObject()
	require.NoError(t, w.Flush())

	want := "openapi: 3.0.1\nversion: \"1.0\"\ntags:\n  - a\n  - 2\nx: 2\n"
	assert.Equal(t, want, buf.String())
	require.NotNil(t, w.Node())
	assert.Len(t, w.Node().Content, 8)
}

func TestYAMLWriter_NoOutput(t *testing.T) {
	w := writer.NewYAMLWriter(nil)
	w.WriteStartObject()
	w.WriteEndObject()
	require.NoError(t, w.Flush())
	assert.Empty(t, w.Node().Content)
}

func TestWriteAny(t *testing.T) {
	inner := ordered.New[any](2)
	inner.Set("b", true)
	inner.Set("a", []any{int64(1), "two", nil})
	m := ordered.New[any](1)
	m.Set("x-tree", inner)

	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{})
	writer.WriteAny(w, m)
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"x-tree":{"b":true,"a":[1,"two",null]}}`, buf.String())

	buf.Reset()
	w = writer.NewJSONWriter(&buf, writer.Settings{})
	writer.WriteAny(w, map[string]any{"z": 1, "a": 2})
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"a":2,"z":1}`, buf.String())
}

func TestWriteBoolAndOptional(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewJSONWriter(&buf, writer.Settings{})
	yes := true
	limit := int64(10)
	w.WriteStartObject()
	writer.WriteBoolProperty(w, "required", false, false)
	writer.WriteBoolProperty(w, "explode", false, true)
	writer.WriteOptionalBool(w, "nullable", &yes)
	writer.WriteOptionalNumber(w, "maxLength", &limit)
	writer.WriteOptionalNumber[float64](w, "minimum", nil)
	w.WriteEndObject()
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"explode":false,"nullable":true,"maxLength":10}`, buf.String())
}
