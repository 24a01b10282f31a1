package widget

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator divides the widget type prefix from the logical name in Qt
// Designer object names, e.g. comboBox_test.
const Separator = "_"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// MalformedNameError reports an input line that does not follow the
// prefix_logicalName convention. Line is 1-based when known, 0 otherwise.
type MalformedNameError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedNameError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("widget: line %d: malformed name %q: %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("widget: malformed name %q: %s", e.Text, e.Reason)
}

// ParseName splits a widget identifier into its type prefix and logical name.
// The line is trimmed before parsing; the split happens at the first
// separator so logical names may themselves contain underscores.
func ParseName(line string) (typePrefix, logicalName string, err error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return "", "", &MalformedNameError{Text: line, Reason: "empty identifier"}
	}

	prefix, name, found := strings.Cut(text, Separator)
	if !found {
		return "", "", &MalformedNameError{Text: text, Reason: "missing separator " + Separator}
	}
	if prefix == "" {
		return "", "", &MalformedNameError{Text: text, Reason: "empty type prefix"}
	}
	if name == "" {
		return "", "", &MalformedNameError{Text: text, Reason: "empty logical name"}
	}
	if !identifierPattern.MatchString(name) {
		return "", "", &MalformedNameError{Text: text, Reason: fmt.Sprintf("logical name %q is not a valid identifier", name)}
	}
	if !identifierPattern.MatchString(prefix) {
		return "", "", &MalformedNameError{Text: text, Reason: fmt.Sprintf("type prefix %q is not a valid identifier", prefix)}
	}

	return prefix, name, nil
}

// RenderName is the inverse of ParseName, rebuilding the raw identifier from
// its parts.
func RenderName(typePrefix, logicalName string) string {
	return typePrefix + Separator + logicalName
}
