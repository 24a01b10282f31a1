package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kissoflove/mvcgen/pkg/naming"
	"github.com/kissoflove/mvcgen/pkg/render"
	"github.com/kissoflove/mvcgen/pkg/testsupport"
)

func TestRenderDefaultSchemeGolden(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := renderer.Render(testsupport.Context(), nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	golden := filepath.Join("testdata", "main.py.golden")
	if testsupport.WriteMaybeGolden(t, golden, got) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("app output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCustomScheme(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	options := render.RenderOptions{Scheme: naming.Scheme{
		AppClass:  "Launcher",
		ViewClass: "EditorView",
	}}
	got, err := renderer.Render(testsupport.Context(), nil, options)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	output := string(got)

	if !strings.Contains(output, "class Launcher(QApplication):") {
		t.Fatalf("missing custom app class:\n%s", output)
	}
	if !strings.Contains(output, "self.main_view = EditorView(self.model, self.main_controller)") {
		t.Fatalf("missing custom view wiring:\n%s", output)
	}
	if !strings.Contains(output, "app = Launcher(sys.argv)") {
		t.Fatalf("missing custom entry point:\n%s", output)
	}
}

func TestFileNameFollowsScheme(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := renderer.FileName(render.RenderOptions{}); got != "main.py" {
		t.Fatalf("FileName = %q, want main.py", got)
	}
}
