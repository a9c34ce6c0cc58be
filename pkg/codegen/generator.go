package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"github.com/goliatone/go-polaris/pkg/codegen/gotemplate"
	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/openapi"
)

const (
	// DefaultHeader marks generated files for tooling and reviewers.
	DefaultHeader = "// Code generated by polaris-modelgen. DO NOT EDIT."
	// DefaultPackage is used when no package name is configured.
	DefaultPackage = "models"
	// RegistryFile is the name of the optional registry file.
	RegistryFile = "registry.go"

	modelImport = "github.com/goliatone/go-polaris/pkg/model"
	wireImport  = "github.com/goliatone/go-polaris/pkg/wire"

	modelTemplate    = "model"
	registryTemplate = "registry"
)

// Generator renders Go model source from model descriptors.
type Generator struct {
	packageName string
	header      string
	templateDir string
	renderer    *gotemplate.Engine
	registry    bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackageName sets the package clause of generated files.
func WithPackageName(name string) Option {
	return func(g *Generator) {
		g.packageName = strings.TrimSpace(name)
	}
}

// WithHeader replaces the leading comment of generated files. Each line is
// prefixed with "// " when it is not a comment already.
func WithHeader(header string) Option {
	return func(g *Generator) {
		g.header = commentBlock(header)
	}
}

// WithTemplateDir renders model.tpl and registry.tpl from dir when present
// there, falling back to the embedded templates. Templates see the view
// fields plus the ModelImport and WireImport globals.
func WithTemplateDir(dir string) Option {
	return func(g *Generator) {
		g.templateDir = strings.TrimSpace(dir)
	}
}

// WithRegistry also emits registry.go declaring the package registry that
// generated files register with. Leave it off when the target package
// declares its own.
func WithRegistry(enabled bool) Option {
	return func(g *Generator) {
		g.registry = enabled
	}
}

// New constructs a Generator rendering through the pongo2 engine.
func New(options ...Option) (*Generator, error) {
	g := &Generator{
		packageName: DefaultPackage,
		header:      DefaultHeader,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	if !token.IsIdentifier(g.packageName) {
		return nil, fmt.Errorf("codegen: invalid package name %q", g.packageName)
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(TemplatesFS()),
		gotemplate.WithOverrideDir(g.templateDir),
		gotemplate.WithGlobalData(map[string]any{
			"ModelImport": modelImport,
			"WireImport":  wireImport,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("codegen: template engine: %w", err)
	}
	g.renderer = engine
	return g, nil
}

// FileName returns the file a schema is rendered into.
func FileName(schemaName string) string {
	return "model_" + openapi.SnakeCase(schemaName) + ".go"
}

// Generate renders one gofmt-ed file per schema, keyed by FileName. Output
// depends only on the schemas and the generator options.
func (g *Generator) Generate(schemas []model.Schema) (map[string][]byte, error) {
	if g == nil || g.renderer == nil {
		return nil, errors.New("codegen: generator is not initialised")
	}
	if len(schemas) == 0 {
		return nil, errors.New("codegen: no schemas to generate")
	}

	files := make(map[string][]byte, len(schemas)+1)
	for _, schema := range schemas {
		if err := schema.Validate(); err != nil {
			return nil, fmt.Errorf("codegen: %w", err)
		}
		name := FileName(schema.Name)
		if _, dup := files[name]; dup {
			return nil, fmt.Errorf("codegen: schemas collide on file %s", name)
		}

		view, err := g.view(schema)
		if err != nil {
			return nil, err
		}
		src, err := g.render(modelTemplate, view)
		if err != nil {
			return nil, fmt.Errorf("codegen: schema %s: %w", schema.Name, err)
		}
		files[name] = src
	}

	if g.registry {
		src, err := g.render(registryTemplate, map[string]any{
			"Header":  g.header,
			"Package": g.packageName,
		})
		if err != nil {
			return nil, fmt.Errorf("codegen: registry: %w", err)
		}
		files[RegistryFile] = src
	}
	return files, nil
}

func (g *Generator) render(name string, data any) ([]byte, error) {
	out, err := g.renderer.RenderTemplate(name, data)
	if err != nil {
		return nil, err
	}
	src, err := format.Source([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("format %s output: %w", name, err)
	}
	return src, nil
}

func commentBlock(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultHeader
	}
	lines := strings.Split(header, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if !strings.HasPrefix(line, "//") {
			line = "// " + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
