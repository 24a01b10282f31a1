package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kissoflove/mvcgen/pkg/naming"
)

// DuplicateNameError reports two widgets that resolve to the same logical
// name and would therefore produce colliding identifiers across the generated
// files. It aborts the run.
type DuplicateNameError struct {
	LogicalName string
	First       string
	Second      string
	Line        int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("widget: line %d: duplicate logical name %q (%s and %s)", e.Line, e.LogicalName, e.First, e.Second)
}

// Builder resolves raw widget-list text into ordered descriptors. All derived
// identifiers are computed here, once, so the four generated files can never
// disagree on a name.
type Builder struct {
	scheme naming.Scheme
}

// NewBuilder constructs a Builder; the scheme is normalised so sparse
// overlays are safe to pass.
func NewBuilder(scheme naming.Scheme) *Builder {
	return &Builder{scheme: scheme.Normalized()}
}

// Scheme returns the normalised naming scheme the builder derives names with.
func (b *Builder) Scheme() naming.Scheme {
	return b.scheme
}

// Build parses the raw widget-list text. Blank lines are skipped; a malformed
// identifier or a duplicate logical name aborts with an error, while unknown
// widget types are skipped and collected as warnings.
func (b *Builder) Build(input string) ([]Descriptor, []Warning, error) {
	return b.BuildLines(strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n"))
}

// BuildLines is Build over pre-split lines, preserving 1-based line numbers
// for diagnostics.
func (b *Builder) BuildLines(lines []string) ([]Descriptor, []Warning, error) {
	var (
		descriptors []Descriptor
		warnings    []Warning
		firstSeen   = make(map[string]string, len(lines))
	)

	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		prefix, name, err := ParseName(text)
		if err != nil {
			var malformed *MalformedNameError
			if errors.As(err, &malformed) {
				malformed.Line = i + 1
			}
			return nil, nil, err
		}

		record, err := CapabilityFor(prefix)
		if err != nil {
			warnings = append(warnings, Warning{
				Line:    i + 1,
				RawName: text,
				Message: fmt.Sprintf("line %d: skipping %q: unknown widget type %q", i+1, text, prefix),
			})
			continue
		}

		if first, seen := firstSeen[name]; seen {
			return nil, nil, &DuplicateNameError{
				LogicalName: name,
				First:       first,
				Second:      text,
				Line:        i + 1,
			}
		}
		firstSeen[name] = text

		descriptors = append(descriptors, b.describe(text, prefix, name, record))
	}

	return descriptors, warnings, nil
}

func (b *Builder) describe(raw, prefix, name string, record *CapabilityRecord) Descriptor {
	d := Descriptor{
		RawName:     raw,
		TypePrefix:  prefix,
		LogicalName: name,
		Capability:  record,
		Names: DerivedNames{
			Property:        name,
			EnabledProperty: b.scheme.EnabledProperty(name),
		},
	}

	if record.Signal != nil {
		d.Names.Handler = b.scheme.Handler(name)
		d.Names.ControllerMethod = b.scheme.Mutator(name)
	}
	if record.ModelBinding != nil {
		d.Names.ModelObject = b.scheme.ModelObject(name)
		d.Names.ItemsProperty = b.scheme.ItemsProperty(name)
	}
	if record.Value != nil {
		d.Names.ConfigOption = name
		d.DefaultValue = record.ConfigKind.DefaultLiteral()
	}

	return d
}
