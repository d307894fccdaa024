package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/runner"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	if !strings.Contains(buf.String(), "__,_|") {
		t.Errorf("banner missing art, got %q", buf.String())
	}
}

func TestNewRenderer(t *testing.T) {
	var render runner.ContentRenderer = NewRenderer(40)
	out, err := render("**zboara?**")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "zboara?") {
		t.Errorf("expected rendered text to keep the question, got %q", out)
	}
}

func TestIsInteractive_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("a regular file is not a terminal")
	}
	if IsInteractive(nil) {
		t.Error("nil is not a terminal")
	}
	if w := TerminalWidth(f); w != 80 {
		t.Errorf("expected the default width for a regular file, got %d", w)
	}
}
