package view

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kissoflove/mvcgen/pkg/render"
	"github.com/kissoflove/mvcgen/pkg/testsupport"
	"github.com/kissoflove/mvcgen/pkg/widget"
)

func TestRenderComboBoxGolden(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	descriptors := testsupport.MustBuildDescriptors(t, "comboBox_test")
	got, err := renderer.Render(testsupport.Context(), descriptors, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	golden := filepath.Join("testdata", "view.py.golden")
	if testsupport.WriteMaybeGolden(t, golden, got) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("view output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPureViewWidgets(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	descriptors := testsupport.MustBuildDescriptors(t, "listView_rows", "tableView_grid")
	got, err := renderer.Render(testsupport.Context(), descriptors, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	output := string(got)

	if n := strings.Count(output, ".setModel("); n != 2 {
		t.Fatalf("setModel calls = %d, want 2:\n%s", n, output)
	}
	if strings.Contains(output, ".connect(") {
		t.Fatalf("pure views must not connect signals:\n%s", output)
	}
	// No value accessors means an empty-bodied refresh method.
	if !strings.Contains(output, "def update_ui_from_model(self):\n        pass") {
		t.Fatalf("missing pass body in update_ui_from_model:\n%s", output)
	}
	if !strings.Contains(output, "def rows_enabled(self):") {
		t.Fatalf("missing enabled property:\n%s", output)
	}
}

func TestRenderNoArgSignalForwardsProperty(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	descriptors := testsupport.MustBuildDescriptors(t, "pushButton_go")
	got, err := renderer.Render(testsupport.Context(), descriptors, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	output := string(got)

	if !strings.Contains(output, "def on_go(self):") {
		t.Fatalf("no-arg handler should take no payload:\n%s", output)
	}
	if !strings.Contains(output, "self._main_controller.change_go(self.go)") {
		t.Fatalf("no-arg handler should forward the property value:\n%s", output)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	descriptors := testsupport.MustBuildDescriptors(t, "comboBox_test", "lineEdit_name", "listView_rows")
	first, err := renderer.Render(testsupport.Context(), descriptors, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := renderer.Render(testsupport.Context(), descriptors, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("rendering the same input twice produced different bytes")
	}
}

func TestRenderRejectsMissingCapability(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = renderer.Render(testsupport.Context(), []widget.Descriptor{{RawName: "broken_x"}}, render.RenderOptions{})
	if err == nil {
		t.Fatal("expected error for descriptor without capability record")
	}
}

func TestFileNameFollowsScheme(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := renderer.FileName(render.RenderOptions{}); got != "views.py" {
		t.Fatalf("FileName = %q, want views.py", got)
	}
}
