package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
)

const payload = "openapi: 3.0.3\ninfo:\n  title: t\n  version: 1.0.0\npaths: {}\n"

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if string(doc.Raw()) != payload || doc.Location() != path {
		t.Fatalf("unexpected document %q from %s", doc.Raw(), doc.Location())
	}

	_, err = New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), pkgopenapi.SourceFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil || !strings.Contains(err.Error(), "openapi loader: read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	files := fstest.MapFS{"specs/api.yaml": {Data: []byte(payload)}}
	loader := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("specs/api.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	if _, err := New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), pkgopenapi.SourceFromFS("specs/api.yaml")); err == nil {
		t.Fatalf("expected error without a filesystem")
	}
}

func TestLoadFSRejectsOversizedDocument(t *testing.T) {
	files := fstest.MapFS{
		"big.yaml": {Data: make([]byte, 65)},
		"api.yaml": {Data: []byte(payload)},
	}
	loader := New(pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithFileSystem(files),
		pkgopenapi.WithMaxDocumentSize(64),
	))

	_, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("big.yaml"))
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size error, got %v", err)
	}
	if _, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("./api.yaml")); err != nil {
		t.Fatalf("leading ./ must be accepted: %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api.yaml" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	offline := New(pkgopenapi.NewLoaderOptions())
	if _, err := offline.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL+"/api.yaml")); err == nil {
		t.Fatalf("expected http sources to be disabled by default")
	}

	loader := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))
	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL+"/api.yaml"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	_, err = loader.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL+"/missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoadRejectsNilSource(t *testing.T) {
	if _, err := New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
