package widget

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kissoflove/mvcgen/pkg/naming"
)

func TestBuildPreservesInputOrder(t *testing.T) {
	builder := NewBuilder(naming.Default())

	descriptors, warnings, err := builder.Build("lineEdit_alpha\n\nspinBox_beta\nlabel_gamma\n")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	var names []string
	for _, d := range descriptors {
		names = append(names, d.LogicalName)
	}
	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDuplicateLogicalName(t *testing.T) {
	builder := NewBuilder(naming.Default())

	_, _, err := builder.BuildLines([]string{"comboBox_test", "checkBox_test"})
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("error %T is not DuplicateNameError", err)
	}
	if dup.LogicalName != "test" {
		t.Fatalf("LogicalName = %q, want test", dup.LogicalName)
	}
	if dup.Line != 2 {
		t.Fatalf("Line = %d, want 2", dup.Line)
	}
	if dup.First != "comboBox_test" || dup.Second != "checkBox_test" {
		t.Fatalf("unexpected colliding identifiers: %q, %q", dup.First, dup.Second)
	}
}

func TestBuildMalformedLineAborts(t *testing.T) {
	builder := NewBuilder(naming.Default())

	descriptors, warnings, err := builder.BuildLines([]string{"lineEdit_ok", "bogus"})
	if err == nil {
		t.Fatal("expected malformed error")
	}
	var malformed *MalformedNameError
	if !errors.As(err, &malformed) {
		t.Fatalf("error %T is not MalformedNameError", err)
	}
	if malformed.Line != 2 {
		t.Fatalf("Line = %d, want 2", malformed.Line)
	}
	if descriptors != nil || warnings != nil {
		t.Fatal("partial results returned alongside fatal error")
	}
}

// Skipping an unknown widget type must leave the remaining descriptors
// untouched, as if the offending line was never there.
func TestBuildUnknownTypeSkipIsIdempotent(t *testing.T) {
	builder := NewBuilder(naming.Default())

	withUnknown, warnings, err := builder.BuildLines([]string{"lineEdit_alpha", "mystery_x", "spinBox_beta"})
	if err != nil {
		t.Fatalf("Build with unknown line: %v", err)
	}
	without, _, err := builder.BuildLines([]string{"lineEdit_alpha", "spinBox_beta"})
	if err != nil {
		t.Fatalf("Build without unknown line: %v", err)
	}

	if diff := cmp.Diff(without, withUnknown); diff != "" {
		t.Fatalf("descriptors differ (-without +with):\n%s", diff)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
	if warnings[0].Line != 2 || warnings[0].RawName != "mystery_x" {
		t.Fatalf("unexpected warning: %+v", warnings[0])
	}
	if !strings.Contains(warnings[0].Message, `unknown widget type "mystery"`) {
		t.Fatalf("warning message %q does not name the prefix", warnings[0].Message)
	}
}

func TestDescribeComboBox(t *testing.T) {
	builder := NewBuilder(naming.Default())

	descriptors, _, err := builder.BuildLines([]string{"comboBox_test"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(descriptors) != 1 {
		t.Fatalf("descriptors = %d, want 1", len(descriptors))
	}

	d := descriptors[0]
	wantNames := DerivedNames{
		Property:         "test",
		EnabledProperty:  "test_enabled",
		Handler:          "on_test",
		ControllerMethod: "change_test",
		ModelObject:      "test_model",
		ItemsProperty:    "test_items",
		ConfigOption:     "test",
	}
	if diff := cmp.Diff(wantNames, d.Names); diff != "" {
		t.Fatalf("derived names mismatch (-want +got):\n%s", diff)
	}
	if d.DefaultValue != "0" {
		t.Fatalf("DefaultValue = %q, want 0", d.DefaultValue)
	}
}

func TestDescribeSignalLessAndViewWidgets(t *testing.T) {
	builder := NewBuilder(naming.Default())

	descriptors, _, err := builder.BuildLines([]string{"progressBar_load", "listView_rows"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	bar := descriptors[0]
	if bar.Names.Handler != "" || bar.Names.ControllerMethod != "" {
		t.Fatalf("signal-less widget got handler names: %+v", bar.Names)
	}
	if bar.Names.ConfigOption != "load" || bar.DefaultValue != "0" {
		t.Fatalf("unexpected config derivation: %+v", bar)
	}

	view := descriptors[1]
	if view.Names.ConfigOption != "" || view.DefaultValue != "" {
		t.Fatalf("pure view widget got config derivation: %+v", view)
	}
	if view.Names.ModelObject != "rows_model" || view.Names.ItemsProperty != "rows_items" {
		t.Fatalf("unexpected model names: %+v", view.Names)
	}
}

func TestBuilderNormalisesScheme(t *testing.T) {
	builder := NewBuilder(naming.Scheme{ViewClass: "CustomView"})
	scheme := builder.Scheme()
	if scheme.ControllerClass != "MainController" {
		t.Fatalf("ControllerClass = %q, want default", scheme.ControllerClass)
	}
	if scheme.UIClass != "Ui_CustomView" {
		t.Fatalf("UIClass = %q, want Ui_CustomView", scheme.UIClass)
	}
}
