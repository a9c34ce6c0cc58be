package polaris_test

import (
	"io/fs"
	"testing"

	polaris "github.com/goliatone/go-polaris"
	"github.com/goliatone/go-polaris/pkg/management"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
	"github.com/goliatone/go-polaris/pkg/testsupport"
)

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"model.tpl", "registry.tpl"} {
		if _, err := fs.Stat(polaris.EmbeddedTemplates(), name); err != nil {
			t.Fatalf("template %s missing: %v", name, err)
		}
	}
}

func TestGenerateModelsFromFSSource(t *testing.T) {
	ctx := testsupport.Context()
	loader := polaris.NewLoader(pkgopenapi.WithFileSystem(management.OpenAPIFS()))
	doc, err := loader.Load(ctx, pkgopenapi.SourceFromFS(management.OpenAPIFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	files, err := polaris.GenerateModelsFromDocument(ctx, doc, []string{"ServiceIdentityInfo"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, ok := files["model_service_identity_info.go"]; !ok || len(files) != 1 {
		t.Fatalf("unexpected files: %d", len(files))
	}

	schemas, err := polaris.Descriptors(ctx, doc, []string{"ServiceIdentityInfo"})
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}
	want, _ := management.Registry().Schema("ServiceIdentityInfo")
	if len(schemas) != 1 || schemas[0].Name != want.Name || len(schemas[0].Fields) != len(want.Fields) {
		t.Fatalf("unexpected descriptors: %+v", schemas)
	}
}
