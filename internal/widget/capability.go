package widget

import (
	"fmt"
	"sort"
)

// UnknownWidgetTypeError reports a type prefix with no capability record. It
// is recoverable: the descriptor builder downgrades it to a warning and skips
// the widget.
type UnknownWidgetTypeError struct {
	TypePrefix string
}

func (e *UnknownWidgetTypeError) Error() string {
	return fmt.Sprintf("widget: unknown widget type %q", e.TypePrefix)
}

var (
	stringListModel = &ModelBinding{
		ClassName: "QStringListModel",
		Import:    "PyQt5.QtCore",
		Kind:      ModelKindStringList,
	}
	standardItemModel = &ModelBinding{
		ClassName: "QStandardItemModel",
		Import:    "PyQt5.QtGui",
		Kind:      ModelKindStandardItem,
	}
)

// capabilityTable is the closed-world mapping from Qt Designer type prefixes
// to generation behaviour. Adding a widget type is a data edit here, never a
// new code path in the renderers.
var capabilityTable = map[string]*CapabilityRecord{
	"label": {
		Value:      &ValueAccessor{Getter: "text()", Setter: "setText(value)"},
		Enabled:    true,
		ConfigKind: ConfigKindString,
	},
	"lineEdit": {
		Value:      &ValueAccessor{Getter: "text()", Setter: "setText(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "textChanged", Arg: "text"},
		ConfigKind: ConfigKindString,
	},
	"plainTextEdit": {
		Value:      &ValueAccessor{Getter: "toPlainText()", Setter: "setPlainText(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "textChanged"},
		ConfigKind: ConfigKindString,
	},
	"textEdit": {
		Value:      &ValueAccessor{Getter: "toPlainText()", Setter: "setPlainText(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "textChanged"},
		ConfigKind: ConfigKindString,
	},
	"pushButton": {
		Value:      &ValueAccessor{Getter: "text()", Setter: "setText(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "clicked"},
		ConfigKind: ConfigKindString,
	},
	"checkBox": {
		Value:      &ValueAccessor{Getter: "isChecked()", Setter: "setChecked(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "toggled", Arg: "checked"},
		ConfigKind: ConfigKindBoolean,
	},
	"radioButton": {
		Value:      &ValueAccessor{Getter: "isChecked()", Setter: "setChecked(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "toggled", Arg: "checked"},
		ConfigKind: ConfigKindBoolean,
	},
	"spinBox": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "valueChanged", Arg: "value"},
		ConfigKind: ConfigKindInt,
	},
	"doubleSpinBox": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "valueChanged", Arg: "value"},
		ConfigKind: ConfigKindFloat,
	},
	"horizontalSlider": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "valueChanged", Arg: "value"},
		ConfigKind: ConfigKindInt,
	},
	"verticalSlider": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "valueChanged", Arg: "value"},
		ConfigKind: ConfigKindInt,
	},
	"dial": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		Enabled:    true,
		Signal:     &Signal{Name: "valueChanged", Arg: "value"},
		ConfigKind: ConfigKindInt,
	},
	// Output-only widgets: no signal, enabled state is meaningless.
	"progressBar": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "setValue(value)"},
		ConfigKind: ConfigKindInt,
	},
	"lcdNumber": {
		Value:      &ValueAccessor{Getter: "value()", Setter: "display(value)"},
		ConfigKind: ConfigKindFloat,
	},
	"comboBox": {
		Value:        &ValueAccessor{Getter: "currentIndex()", Setter: "setCurrentIndex(value)"},
		Enabled:      true,
		Signal:       &Signal{Name: "currentIndexChanged", Arg: "index"},
		ModelBinding: stringListModel,
		ConfigKind:   ConfigKindInt,
	},
	// Pure item views: the bound model is the value, so no scalar accessor
	// and nothing to persist through the config parser.
	"listView": {
		Enabled:      true,
		ModelBinding: stringListModel,
	},
	"tableView": {
		Enabled:      true,
		ModelBinding: standardItemModel,
	},
	"treeView": {
		Enabled:      true,
		ModelBinding: standardItemModel,
	},
}

// CapabilityFor looks up the capability record for a type prefix. The table
// is closed-world: unknown prefixes return an UnknownWidgetTypeError rather
// than a silent default.
func CapabilityFor(typePrefix string) (*CapabilityRecord, error) {
	record, ok := capabilityTable[typePrefix]
	if !ok {
		return nil, &UnknownWidgetTypeError{TypePrefix: typePrefix}
	}
	return record, nil
}

// SupportedPrefixes returns the sorted list of recognised type prefixes.
func SupportedPrefixes() []string {
	prefixes := make([]string, 0, len(capabilityTable))
	for prefix := range capabilityTable {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}
