package widget

// ConfigKind names the ConfigParser accessor used when persisting a widget's
// value. The values are the literal Python method names so templates can emit
// them verbatim.
type ConfigKind string

const (
	ConfigKindString  ConfigKind = "get"
	ConfigKindInt     ConfigKind = "getint"
	ConfigKindFloat   ConfigKind = "getfloat"
	ConfigKindBoolean ConfigKind = "getboolean"
)

// DefaultLiteral returns the Python literal a plain model attribute of this
// kind is initialised with.
func (k ConfigKind) DefaultLiteral() string {
	switch k {
	case ConfigKindInt:
		return "0"
	case ConfigKindFloat:
		return "0.0"
	case ConfigKindBoolean:
		return "False"
	default:
		return "''"
	}
}

// Valid reports whether the kind is one of the supported ConfigParser
// accessors.
func (k ConfigKind) Valid() bool {
	switch k {
	case ConfigKindString, ConfigKindInt, ConfigKindFloat, ConfigKindBoolean:
		return true
	default:
		return false
	}
}

// ValueAccessor holds the getter/setter call fragments for a widget's value.
// Both are complete Python call expressions relative to the widget instance;
// setters always reference the local variable `value`.
type ValueAccessor struct {
	Getter string `json:"getter"`
	Setter string `json:"setter"`
}

// Signal describes the Qt signal a widget emits when the user changes its
// value. Arg names the payload parameter of the generated handler; an empty
// Arg means the signal carries no payload and the handler forwards the
// widget's current property value instead.
type Signal struct {
	Name string `json:"name"`
	Arg  string `json:"arg,omitempty"`
}

// Model binding kinds select the items-property shape emitted for the bound
// Qt model class.
const (
	ModelKindStringList   = "stringlist"
	ModelKindStandardItem = "standarditem"
)

// ModelBinding describes the Qt model object instantiated for list/table
// backed widgets.
type ModelBinding struct {
	// ClassName is the Qt model class, e.g. QStringListModel.
	ClassName string `json:"className"`
	// Import is the PyQt module the class is imported from.
	Import string `json:"import"`
	// Kind selects the items accessor shape, one of the ModelKind constants.
	Kind string `json:"kind"`
}

// CapabilityRecord is the fixed set of code-generation behaviours associated
// with one widget type. Records live in the process-wide table built by
// capabilityTable and are shared read-only between descriptors.
type CapabilityRecord struct {
	// Value is nil for widgets whose only value is the bound model's contents
	// (list/table/tree views).
	Value *ValueAccessor `json:"value,omitempty"`
	// Enabled reports whether enabled-state properties are generated.
	Enabled bool `json:"enabled"`
	// Signal is nil for non-interactive or output-only widgets.
	Signal *Signal `json:"signal,omitempty"`
	// ModelBinding is nil for widgets that do not accept a Qt model.
	ModelBinding *ModelBinding `json:"modelBinding,omitempty"`
	// ConfigKind is empty when Value is nil; such widgets persist nothing.
	ConfigKind ConfigKind `json:"configKind,omitempty"`
}

// DerivedNames collects every generated identifier derived from a widget's
// logical name. The builder resolves them once so the four output files can
// never disagree on a name.
type DerivedNames struct {
	Property         string `json:"property"`
	EnabledProperty  string `json:"enabledProperty"`
	Handler          string `json:"handler"`
	ControllerMethod string `json:"controllerMethod"`
	ModelObject      string `json:"modelObject"`
	ItemsProperty    string `json:"itemsProperty"`
	ConfigOption     string `json:"configOption"`
}

// Descriptor is one fully resolved widget from the input list.
type Descriptor struct {
	RawName     string            `json:"rawName"`
	TypePrefix  string            `json:"typePrefix"`
	LogicalName string            `json:"logicalName"`
	Capability  *CapabilityRecord `json:"capability"`
	Names       DerivedNames      `json:"names"`
	// DefaultValue is the Python literal the plain model attribute starts
	// with, resolved from the capability's config kind.
	DefaultValue string `json:"defaultValue,omitempty"`
}

// Warning records a non-fatal condition encountered while building
// descriptors. Warnings are surfaced after a successful run, never
// interleaved with generation.
type Warning struct {
	Line    int    `json:"line"`
	RawName string `json:"rawName"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}
