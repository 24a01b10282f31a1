package widget

import internalwidget "github.com/kissoflove/mvcgen/internal/widget"

// ConfigKind re-exports the internal ConfigParser accessor enumeration.
type ConfigKind = internalwidget.ConfigKind

const (
	ConfigKindString  = internalwidget.ConfigKindString
	ConfigKindInt     = internalwidget.ConfigKindInt
	ConfigKindFloat   = internalwidget.ConfigKindFloat
	ConfigKindBoolean = internalwidget.ConfigKindBoolean
)

const (
	ModelKindStringList   = internalwidget.ModelKindStringList
	ModelKindStandardItem = internalwidget.ModelKindStandardItem
)

// Separator divides the widget type prefix from the logical name.
const Separator = internalwidget.Separator

type ValueAccessor = internalwidget.ValueAccessor
type Signal = internalwidget.Signal
type ModelBinding = internalwidget.ModelBinding
type CapabilityRecord = internalwidget.CapabilityRecord
type DerivedNames = internalwidget.DerivedNames
type Descriptor = internalwidget.Descriptor
type Warning = internalwidget.Warning

type MalformedNameError = internalwidget.MalformedNameError
type UnknownWidgetTypeError = internalwidget.UnknownWidgetTypeError
type DuplicateNameError = internalwidget.DuplicateNameError

// ParseName splits a widget identifier into (typePrefix, logicalName).
func ParseName(line string) (string, string, error) {
	return internalwidget.ParseName(line)
}

// RenderName rebuilds the raw identifier from its parts.
func RenderName(typePrefix, logicalName string) string {
	return internalwidget.RenderName(typePrefix, logicalName)
}

// CapabilityFor looks up the capability record for a type prefix.
func CapabilityFor(typePrefix string) (*CapabilityRecord, error) {
	return internalwidget.CapabilityFor(typePrefix)
}

// SupportedPrefixes returns the sorted list of recognised type prefixes.
func SupportedPrefixes() []string {
	return internalwidget.SupportedPrefixes()
}
