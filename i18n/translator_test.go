package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type_mismatch", nil); msg == "invalid type" || msg == "type_mismatch" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// unsupported languages fall back to en
	SetLanguage("fr")
	if msg := T("circular_reference", nil); msg != "circular reference" {
		t.Fatalf("expected english fallback, got %q", msg)
	}
}

func TestTranslator_Data(t *testing.T) {
	SetLanguage("en")
	if msg := T("unknown_field", map[string]string{"field": "foo"}); msg != "unknown field foo" {
		t.Fatalf("got %q", msg)
	}
	if msg := T("unresolved_reference", map[string]string{"ref": "#/components/schemas/X"}); msg != "unresolved reference #/components/schemas/X" {
		t.Fatalf("got %q", msg)
	}
	SetLanguage("ja")
	if msg := T("unknown_field", map[string]string{"field": "foo"}); msg != "未知のフィールドです: foo" {
		t.Fatalf("got %q", msg)
	}
	SetLanguage("en")
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes must pass through, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("structural", nil); msg != "X:structural" {
		t.Fatalf("got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("structural", nil); msg != "malformed structure" {
		t.Fatalf("nil must restore the dictionary, got %q", msg)
	}
}
