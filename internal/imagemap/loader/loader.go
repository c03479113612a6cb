package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

// Loader implements imagemap.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level mapsvg package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ imagemap.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options imagemap.LoaderOptions) imagemap.Loader {
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

// Load fetches a document from the provided source and wraps it in a
// Document. The input dialect is inferred from the source location.
func (l *Loader) Load(ctx context.Context, src imagemap.Source) (imagemap.Document, error) {
	if src == nil {
		return imagemap.Document{}, errors.New("imagemap loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case imagemap.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case imagemap.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case imagemap.SourceKindURL:
		if !l.allowHTTP {
			return imagemap.Document{}, errors.New("imagemap loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("imagemap loader: unsupported source kind")
	}
	if err != nil {
		return imagemap.Document{}, err
	}

	return imagemap.NewDocument(src, data)
}
