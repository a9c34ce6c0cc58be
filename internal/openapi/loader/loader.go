package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
)

// Loader reads the management API description from disk, an embedded
// filesystem or a URL.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
	limit   int64
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. HTTP sources are only
// accepted when a client was supplied or fallback was enabled.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	l := &Loader{fs: options.FileSystem, timeout: options.RequestTimeout, limit: options.MaxDocumentSize}
	if l.limit <= 0 {
		l.limit = pkgopenapi.DefaultMaxDocumentSize
	}
	if options.HTTPClient != nil {
		client := *options.HTTPClient
		if l.timeout > 0 && client.Timeout == 0 {
			client.Timeout = l.timeout
		}
		l.http = &client
	} else if options.AllowHTTPFallback {
		l.http = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load reads src and wraps the payload in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	data, err := l.read(ctx, src)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	if int64(len(data)) > l.limit {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s exceeds %d bytes", src.Location(), l.limit)
	}
	return pkgopenapi.NewDocument(src, data)
}

func (l *Loader) read(ctx context.Context, src pkgopenapi.Source) ([]byte, error) {
	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		return loadFile(ctx, src.Location())
	case pkgopenapi.SourceKindFS:
		return loadFromFS(ctx, l.fs, src.Location())
	case pkgopenapi.SourceKindURL:
		if l.http == nil {
			return nil, errors.New("openapi loader: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location(), l.timeout, l.limit)
	default:
		return nil, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
}
