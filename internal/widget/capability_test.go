package widget

import (
	"errors"
	"sort"
	"testing"
)

func TestCapabilityForUnknownPrefix(t *testing.T) {
	_, err := CapabilityFor("mysteryWidget")
	if err == nil {
		t.Fatal("expected error for unknown prefix")
	}
	var unknown *UnknownWidgetTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %T is not UnknownWidgetTypeError", err)
	}
	if unknown.TypePrefix != "mysteryWidget" {
		t.Fatalf("TypePrefix = %q, want mysteryWidget", unknown.TypePrefix)
	}
}

func TestCapabilityForComboBox(t *testing.T) {
	record, err := CapabilityFor("comboBox")
	if err != nil {
		t.Fatalf("CapabilityFor: %v", err)
	}
	if record.Value == nil || record.Value.Getter != "currentIndex()" {
		t.Fatalf("unexpected value accessor: %+v", record.Value)
	}
	if record.Signal == nil || record.Signal.Name != "currentIndexChanged" || record.Signal.Arg != "index" {
		t.Fatalf("unexpected signal: %+v", record.Signal)
	}
	if record.ModelBinding == nil || record.ModelBinding.ClassName != "QStringListModel" {
		t.Fatalf("unexpected model binding: %+v", record.ModelBinding)
	}
	if record.ConfigKind != ConfigKindInt {
		t.Fatalf("ConfigKind = %q, want getint", record.ConfigKind)
	}
}

// Every record must pair a value accessor with a valid config kind, and
// value-less records must not declare one.
func TestCapabilityTableInvariants(t *testing.T) {
	for _, prefix := range SupportedPrefixes() {
		record, err := CapabilityFor(prefix)
		if err != nil {
			t.Fatalf("CapabilityFor(%q): %v", prefix, err)
		}
		if record.Value != nil && !record.ConfigKind.Valid() {
			t.Errorf("%s: value accessor without valid config kind %q", prefix, record.ConfigKind)
		}
		if record.Value == nil && record.ConfigKind != "" {
			t.Errorf("%s: config kind %q without value accessor", prefix, record.ConfigKind)
		}
		if record.Value == nil && record.ModelBinding == nil {
			t.Errorf("%s: record has neither value accessor nor model binding", prefix)
		}
	}
}

func TestSupportedPrefixesSorted(t *testing.T) {
	prefixes := SupportedPrefixes()
	if len(prefixes) == 0 {
		t.Fatal("no supported prefixes")
	}
	if !sort.StringsAreSorted(prefixes) {
		t.Fatalf("prefixes not sorted: %v", prefixes)
	}
}

func TestConfigKindDefaults(t *testing.T) {
	cases := map[ConfigKind]string{
		ConfigKindString:  "''",
		ConfigKindInt:     "0",
		ConfigKindFloat:   "0.0",
		ConfigKindBoolean: "False",
	}
	for kind, want := range cases {
		if got := kind.DefaultLiteral(); got != want {
			t.Errorf("%s.DefaultLiteral() = %q, want %q", kind, got, want)
		}
	}
}
