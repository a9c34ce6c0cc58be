package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-polaris/internal/openapi/loader"
	internalParser "github.com/goliatone/go-polaris/internal/openapi/parser"
	"github.com/goliatone/go-polaris/pkg/codegen"
	"github.com/goliatone/go-polaris/pkg/model"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithGenerator injects a configured code generator.
func WithGenerator(generator *codegen.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithSchemaTransformer registers a Transformer that can patch descriptors
// after they are derived from the document and before code generation.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to generated
// model sources. Missing stages fall back to the built-in implementations.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	generator       *codegen.Generator
	transformer     Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate models.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkgopenapi.Document

	// Schemas selects component schemas by name. Empty selects every object
	// schema in the document.
	Schemas []string
}

// Descriptors loads and parses the document and returns the model
// descriptors for the requested schemas, sorted by name.
func (o *Orchestrator) Descriptors(ctx context.Context, req Request) ([]model.Schema, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	components, err := o.parser.Schemas(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse schemas: %w", err)
	}

	schemas, err := pkgopenapi.ModelSchemas(components, req.Schemas...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build descriptors: %w", err)
	}

	if err := o.applyTransformer(ctx, schemas); err != nil {
		return nil, err
	}
	return schemas, nil
}

// Generate executes the loader → parser → descriptor → generator sequence and
// returns the generated Go sources keyed by file name.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (map[string][]byte, error) {
	schemas, err := o.Descriptors(ctx, req)
	if err != nil {
		return nil, err
	}
	files, err := o.generator.Generate(schemas)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: generate models: %w", err)
	}
	return files, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, schemas []model.Schema) error {
	if o.transformer == nil {
		return nil
	}
	for i := range schemas {
		if err := o.transformer.Transform(ctx, &schemas[i]); err != nil {
			return fmt.Errorf("orchestrator: transform %s: %w", schemas[i].Name, err)
		}
		if err := schemas[i].Validate(); err != nil {
			return fmt.Errorf("orchestrator: transform %s: %w", schemas[i].Name, err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.generator == nil {
		generator, err := codegen.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default generator: %w", err)
		}
		o.generator = generator
	}
	o.defaultsApplied = true
}
