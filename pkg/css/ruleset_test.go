package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStyleSheetMergesRulesBySelectorAndMedia(t *testing.T) {
	sheet := NewStyleSheet()
	sheet.AddRule(Rule{Selector: ".a", Declarations: []Declaration{{Property: "color", Value: "red"}}})
	sheet.AddRule(Rule{Selector: ".a", Media: MediaTablet, Declarations: []Declaration{{Property: "color", Value: "blue"}}})
	sheet.AddRule(Rule{Selector: ".a", Declarations: []Declaration{
		{Property: "margin-top", Value: "1px"},
		{Property: "COLOR", Value: "green", Important: true},
	}})

	want := []Rule{
		{Selector: ".a", Declarations: []Declaration{
			{Property: "color", Value: "green", Important: true},
			{Property: "margin-top", Value: "1px"},
		}},
		{Selector: ".a", Media: MediaTablet, Declarations: []Declaration{{Property: "color", Value: "blue"}}},
	}
	if diff := cmp.Diff(want, sheet.Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleSheetDropsEmptyRules(t *testing.T) {
	sheet := NewStyleSheet()
	sheet.AddRule(Rule{Selector: ".a"})
	sheet.AddRule(Rule{Selector: "  ", Declarations: []Declaration{{Property: "color", Value: "red"}}})
	sheet.AddRule(Rule{Selector: ".b", Declarations: []Declaration{{Property: "color", Value: "  "}}})
	if sheet.Len() != 0 {
		t.Fatalf("expected no rules, got %+v", sheet.Rules())
	}
}

func TestStyleSheetString(t *testing.T) {
	sheet := NewStyleSheet()
	sheet.AddRule(Rule{Selector: ".a", Media: MediaPhone, Declarations: []Declaration{{Property: "padding-top", Value: "2px", Important: true}}})
	sheet.AddRule(Rule{Selector: ".a", Declarations: []Declaration{{Property: "color", Value: "red"}, {Property: "margin-left", Value: "4px"}}})
	sheet.AddRule(Rule{Selector: ".b", Media: MediaTablet, Declarations: []Declaration{{Property: "color", Value: "blue"}}})

	want := ".a { color: red; margin-left: 4px; }\n" +
		"@media only screen and (max-width: 767px) {\n" +
		"\t.a { padding-top: 2px !important; }\n" +
		"}\n" +
		"@media only screen and (max-width: 980px) {\n" +
		"\t.b { color: blue; }\n" +
		"}\n"
	if diff := cmp.Diff(want, sheet.String()); diff != "" {
		t.Fatalf("stylesheet mismatch (-want +got):\n%s", diff)
	}

	sheet.Reset()
	if sheet.String() != "" {
		t.Fatalf("expected empty stylesheet after reset")
	}
}

func TestStyleSheetStringEscapesMarkup(t *testing.T) {
	sheet := NewStyleSheet()
	sheet.AddRule(Rule{Selector: ".a > .b", Declarations: []Declaration{{Property: "content", Value: `"</style>"`}}})

	want := ".a > .b { content: \"\\3c /style>\"; }\n"
	if diff := cmp.Diff(want, sheet.String()); diff != "" {
		t.Fatalf("stylesheet mismatch (-want +got):\n%s", diff)
	}
}

func TestScopedSinkExpandsToken(t *testing.T) {
	sheet := NewStyleSheet()
	sink := ScopedSink(sheet, ".dropcap_text_0")
	sink.AddRule(Rule{
		Selector:     "%%order_class%%:hover div .drop-cap-letter",
		Declarations: []Declaration{{Property: "color", Value: "red"}},
	})
	rules := sheet.Rules()
	if len(rules) != 1 || rules[0].Selector != ".dropcap_text_0:hover div .drop-cap-letter" {
		t.Fatalf("unexpected rules %+v", rules)
	}
}
