package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsYAML = `openapi: 3.0.3
info:
  title: Pets
  version: "1"
servers:
  - url: https://api.example.com/v1
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvert_ToV2JSON(t *testing.T) {
	file := writeFile(t, t.TempDir(), "pets.yaml", petsYAML)

	out, err := run(t, "convert", file, "--to", "v2", "--indent", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"swagger":"2.0"`)
	assert.Contains(t, out, `"host":"api.example.com"`)
	assert.Contains(t, out, `"$ref":"#/definitions/Pet"`)
}

func TestConvert_OutputFileFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "pets.yaml", petsYAML)
	dst := filepath.Join(dir, "out.yaml")

	_, err := run(t, "convert", file, "-o", dst)
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "openapi: 3.0")
	assert.Contains(t, string(b), "#/components/schemas/Pet")
}

func TestConvert_BadFlags(t *testing.T) {
	file := writeFile(t, t.TempDir(), "pets.yaml", petsYAML)

	_, err := run(t, "convert", file, "--to", "v4")
	assert.Error(t, err)
	_, err = run(t, "convert", file, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
	_, err = run(t, "convert", file, "--lang", "fr")
	assert.ErrorContains(t, err, "invalid lang")
}

func TestInspect_Clean(t *testing.T) {
	file := writeFile(t, t.TempDir(), "pets.yaml", petsYAML)

	out, err := run(t, "inspect", file)
	require.NoError(t, err)
	assert.Contains(t, out, "OpenAPI 3.0")
	assert.Contains(t, out, "0 error(s), 0 warning(s)")
}

func TestInspect_Diagnostics(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "bad.yaml", `openapi: 3.0.0
info:
  title: t
  version: "1"
  colour: red
paths:
  /a:
    get:
      responses:
        "200":
          $ref: "#/components/responses/Missing"
`)

	out, err := run(t, "inspect", file)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "[unknown_field]")
	assert.Contains(t, out, "[unresolved_reference]")
	assert.Contains(t, out, "1 error(s), 1 warning(s)")

	warnOnly := writeFile(t, dir, "warn.yaml", "openapi: 3.0.0\ninfo:\n  title: t\n  version: \"1\"\n  colour: red\npaths: {}\n")
	_, err = run(t, "inspect", warnOnly)
	require.NoError(t, err)
	_, err = run(t, "inspect", warnOnly, "--warnings-as-errors")
	require.ErrorIs(t, err, errFailed)
}

func TestInspect_Japanese(t *testing.T) {
	file := writeFile(t, t.TempDir(), "warn.yaml", "openapi: 3.0.0\ninfo:\n  title: t\n  version: \"1\"\n  colour: red\npaths: {}\n")

	out, err := run(t, "inspect", file, "--lang", "ja")
	require.NoError(t, err)
	assert.Contains(t, out, "未知のフィールドです")
}

func TestInspect_ExternalReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.yaml", petsYAML)
	file := writeFile(t, dir, "api.yaml", `openapi: 3.0.0
info:
  title: t
  version: "1"
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "common.yaml#/components/schemas/Pet"
`)

	out, err := run(t, "inspect", file, "--external")
	require.NoError(t, err)
	assert.Contains(t, out, "0 error(s), 0 warning(s)")

	missing := writeFile(t, dir, "missing.yaml", `openapi: 3.0.0
info:
  title: t
  version: "1"
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "nowhere.yaml#/components/schemas/Pet"
`)
	out, err = run(t, "inspect", missing, "--external")
	require.NoError(t, err)
	assert.Contains(t, out, "[external_reference]")
	assert.Contains(t, out, "0 error(s), 1 warning(s)")
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "oaiconv.yaml", "lang: ja\nindent: 4\nexternal: true\n")

	cfg, err := LoadConfig(cfgFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.Lang)
	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.External)

	t.Setenv("OAICONV_MAX_DEPTH", "7")
	cfg, err = LoadConfig(cfgFile, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxDepth)
}

func TestFileResolver_UsesCallerContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.yaml", petsYAML)
	root := filepath.Join(dir, "api.yaml")

	doc, err := newFileResolver(context.Background(), root, DefaultConfig().readerSettings(context.Background(), root)).Resolve("common.yaml")
	require.NoError(t, err)
	assert.NotNil(t, doc.Components.Schemas.Value("Pet"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newFileResolver(ctx, root, DefaultConfig().readerSettings(ctx, root)).Resolve("common.yaml")
	require.ErrorIs(t, err, context.Canceled)
}
