package openapi_test

import (
	"fmt"
	"testing"

	openapi "github.com/sahardevv/OpenAPI.NET"
)

func TestDiagnostics_ErrorSummarizesFirstThree(t *testing.T) {
	c := openapi.NewCollector()
	for i := 0; i < 5; i++ {
		c.Recordf(openapi.Position{Pointer: fmt.Sprintf("/paths/p%d", i)}, openapi.SeverityWarning, openapi.CodeUnknownField, "field %d", i)
	}
	got := c.All().Error()
	want := "unknown_field at /paths/p0; unknown_field at /paths/p1; unknown_field at /paths/p2; ... (total 5)"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnostics_Filters(t *testing.T) {
	c := openapi.NewCollector()
	c.Add(openapi.Warningf(openapi.Position{Pointer: "/info"}, openapi.CodeUnknownField, "unknown %q", "foo"))
	c.Add(openapi.Errorf(openapi.Position{Pointer: "/paths"}, openapi.CodeUnresolvedReference, "missing"))
	ds := c.All()
	if !ds.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
	if len(ds.Errors()) != 1 || len(ds.Warnings()) != 1 {
		t.Fatalf("unexpected split: %v", ds)
	}
	if got := ds.WithCode(openapi.CodeUnknownField); len(got) != 1 || got[0].Message != `unknown "foo"` {
		t.Fatalf("WithCode: %v", got)
	}
	if by := c.ByPointer(); len(by["/paths"]) != 1 {
		t.Fatalf("ByPointer: %v", by)
	}
}

func TestCollector_AllReturnsCopy(t *testing.T) {
	c := openapi.NewCollector()
	if c.All() != nil {
		t.Fatalf("expected nil for empty collector")
	}
	c.Record(openapi.Position{}, openapi.SeverityInfo, openapi.CodeStructural, "x")
	ds := c.All()
	ds[0].Message = "changed"
	if c.All()[0].Message != "x" {
		t.Fatalf("All must return a copy")
	}
}

func TestAsDiagnostics(t *testing.T) {
	var err error = openapi.Diagnostics{openapi.Errorf(openapi.Position{}, openapi.CodeStructural, "bad")}
	wrapped := fmt.Errorf("read: %w", err)
	ds, ok := openapi.AsDiagnostics(wrapped)
	if !ok || len(ds) != 1 {
		t.Fatalf("AsDiagnostics failed: %v %v", ds, ok)
	}
	if _, ok := openapi.AsDiagnostics(nil); ok {
		t.Fatalf("nil error must not yield diagnostics")
	}
}

func TestParseSpecVersion(t *testing.T) {
	cases := map[string]openapi.SpecVersion{
		"2": openapi.V2, "2.0": openapi.V2, "v2": openapi.V2,
		"3": openapi.V3, "3.0.3": openapi.V3, "V3": openapi.V3,
	}
	for in, want := range cases {
		got, err := openapi.ParseSpecVersion(in)
		if err != nil || got != want {
			t.Fatalf("ParseSpecVersion(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := openapi.ParseSpecVersion("4"); err == nil {
		t.Fatalf("expected error for unknown version")
	}
}

func TestPosition_String(t *testing.T) {
	if got := (openapi.Position{}).String(); got != "/" {
		t.Fatalf("root = %q", got)
	}
	if got := (openapi.Position{Pointer: "/info", Line: 3, Column: 5}).String(); got != "/info (3:5)" {
		t.Fatalf("got %q", got)
	}
}
