package sanitize

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain letter", "D", "D"},
		{"markup stripped", "<b>A</b>", "A"},
		{"script dropped with content", "<script>alert(1)</script>Q", "Q"},
		{"script before text", "<script>alert(1)</script>Hi", "Hi"},
		{"entities escaped", "A&B", "A&amp;B"},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Fatalf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRichTextKeepsFormattingAndStripsScripts(t *testing.T) {
	in := `<p onclick="steal()">Once <strong>upon</strong> a time</p><script>alert(1)</script>`
	got := RichText(in)
	if got != `<p>Once <strong>upon</strong> a time</p>` {
		t.Fatalf("unexpected rich text %q", got)
	}
}

func TestRichTextDropsTrailingScript(t *testing.T) {
	if got := RichText(`<p>ok</p><script>bad()</script>`); got != `<p>ok</p>` {
		t.Fatalf("unexpected rich text %q", got)
	}
}

func TestRichTextLinksAndClasses(t *testing.T) {
	got := RichText(`<p class="lead intro"><a href="https://example.com">x</a><a href="javascript:alert(1)">y</a></p>`)
	if !strings.Contains(got, `class="lead intro"`) {
		t.Fatalf("expected class to survive, got %q", got)
	}
	if !strings.Contains(got, "noreferrer") || !strings.Contains(got, `target="_blank"`) {
		t.Fatalf("expected hardened external link, got %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected javascript url removed, got %q", got)
	}
}

func TestIconRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24" onload="x()"><script>alert('x')</script><path d="M0 0h24v24H0z" /></svg>`
	got := Icon(input)
	if got == "" {
		t.Fatalf("expected sanitized markup, got empty string")
	}
	if strings.Contains(got, "script") || strings.Contains(got, "onload") {
		t.Fatalf("expected script and handlers removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg/path elements to remain, got %q", got)
	}
}
