package naming

import (
	"strings"
)

// Scheme collects every project-level name the generators rely on. The zero
// value is not usable; start from Default and override selectively, or load
// overlays with LoadFS.
type Scheme struct {
	ViewClass        string `yaml:"viewClass" json:"viewClass"`
	ControllerClass  string `yaml:"controllerClass" json:"controllerClass"`
	ModelClass       string `yaml:"modelClass" json:"modelClass"`
	AppClass         string `yaml:"appClass" json:"appClass"`
	ViewModule       string `yaml:"viewModule" json:"viewModule"`
	ControllerModule string `yaml:"controllerModule" json:"controllerModule"`
	ModelModule      string `yaml:"modelModule" json:"modelModule"`
	AppModule        string `yaml:"appModule" json:"appModule"`

	// UIModule and UIClass identify the pyuic-generated UI builder the view
	// imports. When empty they are derived from ViewClass.
	UIModule string `yaml:"uiModule" json:"uiModule"`
	UIClass  string `yaml:"uiClass" json:"uiClass"`

	HandlerPrefix string `yaml:"handlerPrefix" json:"handlerPrefix"`
	MutatorPrefix string `yaml:"mutatorPrefix" json:"mutatorPrefix"`
	ConfigSection string `yaml:"configSection" json:"configSection"`
}

// Default returns the conventional scheme for a single-window application.
func Default() Scheme {
	return Scheme{
		ViewClass:        "MainView",
		ControllerClass:  "MainController",
		ModelClass:       "Model",
		AppClass:         "App",
		ViewModule:       "views",
		ControllerModule: "controllers",
		ModelModule:      "model",
		AppModule:        "main",
		HandlerPrefix:    "on",
		MutatorPrefix:    "change",
		ConfigSection:    "settings",
	}
}

// Normalized fills missing fields from Default and derives the UI builder
// names so callers can supply sparse overlays.
func (s Scheme) Normalized() Scheme {
	out := Default().Merged(s)
	if out.UIClass == "" {
		out.UIClass = "Ui_" + out.ViewClass
	}
	if out.UIModule == "" {
		out.UIModule = "ui_" + SnakeCase(out.ViewClass)
	}
	return out
}

// Merged overlays non-empty fields of overlay onto s and returns the result.
func (s Scheme) Merged(overlay Scheme) Scheme {
	out := s
	apply := func(dst *string, src string) {
		if v := strings.TrimSpace(src); v != "" {
			*dst = v
		}
	}
	apply(&out.ViewClass, overlay.ViewClass)
	apply(&out.ControllerClass, overlay.ControllerClass)
	apply(&out.ModelClass, overlay.ModelClass)
	apply(&out.AppClass, overlay.AppClass)
	apply(&out.ViewModule, overlay.ViewModule)
	apply(&out.ControllerModule, overlay.ControllerModule)
	apply(&out.ModelModule, overlay.ModelModule)
	apply(&out.AppModule, overlay.AppModule)
	apply(&out.UIModule, overlay.UIModule)
	apply(&out.UIClass, overlay.UIClass)
	apply(&out.HandlerPrefix, overlay.HandlerPrefix)
	apply(&out.MutatorPrefix, overlay.MutatorPrefix)
	apply(&out.ConfigSection, overlay.ConfigSection)
	return out
}

// Handler returns the view-side slot name for a widget, e.g. on_test.
func (s Scheme) Handler(logicalName string) string {
	return s.HandlerPrefix + "_" + logicalName
}

// Mutator returns the controller method name for a widget, e.g. change_test.
func (s Scheme) Mutator(logicalName string) string {
	return s.MutatorPrefix + "_" + logicalName
}

// ModelObject returns the attribute holding a widget's Qt model instance.
func (s Scheme) ModelObject(logicalName string) string {
	return logicalName + "_model"
}

// ItemsProperty returns the property exposing a Qt model's contents as a
// plain list.
func (s Scheme) ItemsProperty(logicalName string) string {
	return logicalName + "_items"
}

// EnabledProperty returns the property controlling a widget's enabled state.
func (s Scheme) EnabledProperty(logicalName string) string {
	return logicalName + "_enabled"
}

// SnakeCase converts a CamelCase class name into its snake_case module form,
// e.g. MainView -> main_view, HTTPView -> http_view.
func SnakeCase(name string) string {
	runes := []rune(name)
	var out strings.Builder
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && startsNewWord(runes, i) {
				out.WriteByte('_')
			}
			out.WriteRune(r + ('a' - 'A'))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func startsNewWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
		return true
	}
	// A capital inside an acronym starts a new word only when the next rune
	// is lowercase (the V in HTTPView).
	if prev >= 'A' && prev <= 'Z' && i+1 < len(runes) {
		next := runes[i+1]
		return next >= 'a' && next <= 'z'
	}
	return false
}
