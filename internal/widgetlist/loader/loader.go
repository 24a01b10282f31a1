package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

// Loader implements widgetlist.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level mvcgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ widgetlist.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options widgetlist.LoaderOptions) widgetlist.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a widget list from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src widgetlist.Source) (widgetlist.Document, error) {
	if src == nil {
		return widgetlist.Document{}, errors.New("widgetlist loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case widgetlist.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case widgetlist.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case widgetlist.SourceKindURL:
		if !l.allowHTTP {
			return widgetlist.Document{}, errors.New("widgetlist loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("widgetlist loader: unsupported source kind")
	}
	if err != nil {
		return widgetlist.Document{}, err
	}

	return widgetlist.NewDocument(src, data)
}
