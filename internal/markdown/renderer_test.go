package markdown

import (
	"strings"
	"testing"
)

func TestRenderBoldText(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("**Great race**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<strong>Great race</strong>") {
		t.Fatalf("expected strong tag, got %q", out)
	}
}

func TestRenderGFMStrikethrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("~~scratched~~"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<del>scratched</del>") {
		t.Fatalf("expected del tag, got %q", out)
	}
}

func TestRenderPassesRawHTMLThrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("before <em>inline</em> after"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<em>inline</em>") {
		t.Fatalf("expected raw HTML preserved, got %q", out)
	}
}
