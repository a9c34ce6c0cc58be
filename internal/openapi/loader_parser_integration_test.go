package openapi_test

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-polaris"
	"github.com/goliatone/go-polaris/pkg/management"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
)

func TestLoaderParserIntegration(t *testing.T) {
	ctx := context.Background()

	data, err := fs.ReadFile(management.OpenAPIFS(), management.OpenAPIFile)
	if err != nil {
		t.Fatalf("read embedded document: %v", err)
	}

	tmp := t.TempDir()
	filePath := filepath.Join(tmp, management.OpenAPIFile)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		t.Fatalf("write temp fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	loader := polaris.NewLoader(
		pkgopenapi.WithFileSystem(management.OpenAPIFS()),
		pkgopenapi.WithHTTPFallback(0),
	)
	parser := polaris.NewParser()

	sources := map[string]pkgopenapi.Source{
		"file": pkgopenapi.SourceFromFile(filePath),
		"fs":   pkgopenapi.SourceFromFS(management.OpenAPIFile),
		"url":  pkgopenapi.SourceFromURL(server.URL),
	}

	var baseline map[string]pkgopenapi.Schema
	for kind, src := range sources {
		doc, err := loader.Load(ctx, src)
		if err != nil {
			t.Fatalf("%s: load: %v", kind, err)
		}
		operations, err := parser.Operations(ctx, doc)
		if err != nil {
			t.Fatalf("%s: operations: %v", kind, err)
		}
		if _, ok := operations["getServiceIdentity"]; !ok {
			t.Fatalf("%s: expected getServiceIdentity operation, got %d operations", kind, len(operations))
		}
		schemas, err := parser.Schemas(ctx, doc)
		if err != nil {
			t.Fatalf("%s: schemas: %v", kind, err)
		}
		if baseline == nil {
			baseline = schemas
			continue
		}
		if diff := cmp.Diff(baseline, schemas); diff != "" {
			t.Fatalf("%s: schemas differ between sources (-first +got):\n%s", kind, diff)
		}
	}
}
