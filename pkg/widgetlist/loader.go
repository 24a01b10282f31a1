package widgetlist

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
	"unicode/utf8"
)

// Document wraps a loaded widget list together with its origin so later
// diagnostics can name the source.
type Document struct {
	Location string
	Data     []byte
}

// NewDocument validates the payload and attaches the source location. Widget
// lists are plain UTF-8 text, one identifier per line.
func NewDocument(src Source, data []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("widgetlist: source is nil")
	}
	if !utf8.Valid(data) {
		return Document{}, errors.New("widgetlist: document is not valid UTF-8")
	}
	return Document{Location: src.Location(), Data: data}, nil
}

// Text returns the document body as a string.
func (d Document) Text() string {
	return string(d.Data)
}

// Loader fetches widget lists from different sources (filesystem, fs.FS,
// HTTP). Implementations live under internal/widgetlist but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources. Offline-first: HTTP
// is disabled unless explicitly enabled.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; nil disables
	// SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour. Nil means
	// URL sources are disabled unless AllowHTTPFallback is set.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote widget lists.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with the default client and assigns
// an optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
