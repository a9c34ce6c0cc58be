package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-polaris/pkg/codegen"
	"github.com/goliatone/go-polaris/pkg/management"
	"github.com/goliatone/go-polaris/pkg/model"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
	"github.com/goliatone/go-polaris/pkg/orchestrator"
	"github.com/goliatone/go-polaris/pkg/testsupport"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func TestOrchestrator_DescriptorsMatchRegistry(t *testing.T) {
	ctx := testsupport.Context()
	doc := management.OpenAPIDocument()

	orch := orchestrator.New()
	got, err := orch.Descriptors(ctx, orchestrator.Request{
		Document: &doc,
		Schemas:  management.Registry().Names(),
	})
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}
	if diff := cmp.Diff(management.Registry().Schemas(), got); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_GenerateSelectedSchema(t *testing.T) {
	ctx := testsupport.Context()
	doc := management.OpenAPIDocument()

	gen, err := codegen.New(codegen.WithPackageName("polarismodels"), codegen.WithRegistry(false))
	if err != nil {
		t.Fatalf("codegen.New: %v", err)
	}
	orch := orchestrator.New(orchestrator.WithGenerator(gen))
	files, err := orch.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Schemas:  []string{"AwsIamServiceIdentityInfo"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	src, ok := files["model_aws_iam_service_identity_info.go"]
	if len(files) != 1 || !ok {
		t.Fatalf("unexpected files: %v", keys(files))
	}
	for _, fragment := range []string{
		"package polarismodels",
		"func NewAwsIamServiceIdentityInfo(opts ...AwsIamServiceIdentityInfoOption) (AwsIamServiceIdentityInfo, error) {",
		`d.String("iamArn")`,
	} {
		if !strings.Contains(string(src), fragment) {
			t.Fatalf("generated source missing %q", fragment)
		}
	}
}

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	doc := management.OpenAPIDocument()
	called := 0
	transformer := orchestrator.TransformerFunc(func(_ context.Context, schema *model.Schema) error {
		called++
		schema.Description = "patched"
		return nil
	})

	orch := orchestrator.New(orchestrator.WithSchemaTransformer(transformer))
	got, err := orch.Descriptors(context.Background(), orchestrator.Request{
		Document: &doc,
		Schemas:  []string{"Principal", "AwsIamServiceIdentityInfo"},
	})
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}
	if called != 2 || got[0].Description != "patched" || got[1].Description != "patched" {
		t.Fatalf("transformer not applied: called=%d %+v", called, got)
	}

	failing := orchestrator.TransformerFunc(func(context.Context, *model.Schema) error {
		return errors.New("boom")
	})
	orch = orchestrator.New(orchestrator.WithSchemaTransformer(failing))
	if _, err := orch.Descriptors(context.Background(), orchestrator.Request{Document: &doc}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestOrchestrator_PresetTransformer(t *testing.T) {
	files := fstest.MapFS{
		"preset.yaml": {Data: []byte(`
schemas:
  Principal:
    description: A Polaris principal
    fields:
      clientId:
        readOnly: false
        rename: oauth_client_id
      properties.items:
        format: email
`)},
	}
	preset, err := orchestrator.NewPresetTransformerFromFS(files, "preset.yaml")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	schema, _ := management.Registry().Schema("Principal")
	if err := preset.Transform(context.Background(), &schema); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if schema.Description != "A Polaris principal" {
		t.Fatalf("description = %q", schema.Description)
	}
	clientID, ok := schema.Field("clientId")
	if !ok || clientID.Name != "oauth_client_id" || clientID.ReadOnly {
		t.Fatalf("clientId patch missing: %+v", clientID)
	}
	props, _ := schema.Field("properties")
	if props.Items == nil || props.Items.Format != "email" {
		t.Fatalf("items patch missing: %+v", props.Items)
	}

	original, _ := management.Registry().Schema("Principal")
	if original.Description == "A Polaris principal" {
		t.Fatalf("registry descriptor must not be mutated")
	}

	bad, err := orchestrator.NewPresetTransformer([]byte("schemas:\n  Principal:\n    fields:\n      nope: {format: uri}\n"))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if err := bad.Transform(context.Background(), &schema); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestOrchestrator_PresetOptsIntoARNFormat(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`
schemas:
  AwsIamServiceIdentityInfo:
    fields:
      iamArn:
        format: aws-arn
`))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	payload := wire.MustParse(`{"iamArn":"polaris-service-user"}`)
	schema, _ := management.Registry().Schema("AwsIamServiceIdentityInfo")
	if _, err := model.NewDocument(schema, payload); err != nil {
		t.Fatalf("generated descriptor must accept any string: %v", err)
	}

	if err := preset.Transform(context.Background(), &schema); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if _, err := model.NewDocument(schema, payload); !errors.Is(err, model.ErrFormat) {
		t.Fatalf("expected format error after preset, got %v", err)
	}
	if _, err := model.NewDocument(schema, wire.MustParse(`{"iamArn":"arn:aws:iam::111122223333:user/polaris-service-user"}`)); err != nil {
		t.Fatalf("ARN must pass: %v", err)
	}
}

func TestOrchestrator_RequiresInput(t *testing.T) {
	orch := orchestrator.New()
	if _, err := orch.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error without source or document")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Generate(ctx, orchestrator.Request{Source: pkgopenapi.SourceFromFile("missing.yaml")}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	doc := management.OpenAPIDocument()
	if _, err := orch.Descriptors(context.Background(), orchestrator.Request{Document: &doc, Schemas: []string{"Missing"}}); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func keys(files map[string][]byte) []string {
	out := make([]string, 0, len(files))
	for name := range files {
		out = append(out, name)
	}
	return out
}
