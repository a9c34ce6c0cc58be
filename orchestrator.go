package polaris

import (
	"context"

	"github.com/goliatone/go-polaris/pkg/model"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
	"github.com/goliatone/go-polaris/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers of the root package.
type Request = orchestrator.Request

// Transformer aliases orchestrator.Transformer.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateModels loads the OpenAPI source and renders Go sources for the
// named component schemas, or every object schema when none are named.
func GenerateModels(ctx context.Context, source pkgopenapi.Source, schemas []string, options ...orchestrator.Option) (map[string][]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:  source,
		Schemas: schemas,
	})
}

// GenerateModelsFromDocument renders models from a pre-loaded document,
// bypassing the loader stage.
func GenerateModelsFromDocument(ctx context.Context, doc pkgopenapi.Document, schemas []string, options ...orchestrator.Option) (map[string][]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Schemas:  schemas,
	})
}

// Descriptors returns the model descriptors derived from a pre-loaded
// document.
func Descriptors(ctx context.Context, doc pkgopenapi.Document, schemas []string, options ...orchestrator.Option) ([]model.Schema, error) {
	gen := orchestrator.New(options...)
	return gen.Descriptors(ctx, orchestrator.Request{
		Document: &doc,
		Schemas:  schemas,
	})
}
