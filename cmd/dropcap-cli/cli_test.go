package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dropcap/pkg/model"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("dropcap-cli %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

// resetFlags restores flag variables, which persist across Execute calls.
func resetFlags() {
	cfgFile, logLevel, templatesDir, outputFormat = "", "", "", "json"
	renderAttrs, renderLetter, renderBody = "", "", ""
	renderInteractive, renderWatch, renderStrict = false, false, false
}

func TestFieldsCommand(t *testing.T) {
	var fields []model.FieldSpec
	if err := json.Unmarshal([]byte(run(t, "fields")), &fields); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(fields) != 16 || fields[0].Key != "letter" {
		t.Fatalf("unexpected fields %v", model.Keys(fields))
	}

	var asYAML []model.FieldSpec
	if err := yaml.Unmarshal([]byte(run(t, "fields", "--format", "yaml")), &asYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(asYAML) != 16 || asYAML[15].Key != "drop_cap_letter_padding" {
		t.Fatalf("unexpected yaml fields %v", model.Keys(asYAML))
	}
}

func TestTransitionsCommand(t *testing.T) {
	var transitions model.TransitionMap
	if err := json.Unmarshal([]byte(run(t, "transitions")), &transitions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if transitions["drop_cap_letter_padding"].Selector != "%%order_class%% div .drop-cap-letter" {
		t.Fatalf("unexpected transitions %+v", transitions)
	}
}

func TestRenderCommandFlags(t *testing.T) {
	out := run(t, "render", "--letter", "A", "--body", "<p>ll good</p>")

	if !strings.Contains(out, `<span class="drop-cap-letter">A</span><span class="drop-cap-body"><p>ll good</p></span>`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "<style>") {
		t.Fatalf("defaults should not emit a stylesheet:\n%s", out)
	}
}

func TestRenderCommandAttrsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.yaml")
	attrs := "letter: Z\ndrop_cap_letter_background_color: \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(attrs), 0o644); err != nil {
		t.Fatalf("write attrs: %v", err)
	}

	out := run(t, "render", "--attrs", path)
	if !strings.Contains(out, `<span class="drop-cap-letter">Z</span>`) {
		t.Fatalf("letter missing:\n%s", out)
	}
	if !strings.Contains(out, ".dropcap_text_0 div .drop-cap-letter { background-color: #ff0000 !important; }") {
		t.Fatalf("stylesheet missing:\n%s", out)
	}
}

func TestRenderCommandTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	custom := `<em class="{{ classes.letter }}">{{ letter|safe }}</em>`
	if err := os.WriteFile(filepath.Join(dir, "templates", "dropcap.tpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	out := run(t, "render", "--templates", dir, "--letter", "K")
	if !strings.Contains(out, `<em class="drop-cap-letter">K</em>`) {
		t.Fatalf("template override not used:\n%s", out)
	}
}

func TestRenderCommandStrict(t *testing.T) {
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--strict", "--attrs", writeAttrs(t, "drop_cap_letter_margin: \"500px|||\"\n"), "--log-level", "error"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected strict validation failure")
	}
}

func TestRenderWatchRequiresAttrs(t *testing.T) {
	t.Cleanup(resetFlags)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"render", "--watch", "--log-level", "error"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected --watch without --attrs to fail")
	}
}

func writeAttrs(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "attrs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write attrs: %v", err)
	}
	return path
}
