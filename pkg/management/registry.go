package management

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/openapi"
	"github.com/goliatone/go-polaris/pkg/wire"
)

// OpenAPIFile is the name of the embedded API description.
const OpenAPIFile = "polaris-management-service.yml"

//go:embed polaris-management-service.yml
var specFS embed.FS

var registry = model.NewRegistry()

// Registry returns the registry holding every generated model. It also
// resolves nested references for model.Document.
func Registry() *model.Registry {
	return registry
}

// Decode decodes v as the named model using the shared registry.
func Decode(name string, v wire.Value, opts ...model.DecodeOption) (model.Model, error) {
	return registry.Decode(name, v, opts...)
}

// NewDocument validates v against the named descriptor without the generated
// type, resolving nested models through the registry.
func NewDocument(name string, v wire.Value, opts ...model.DecodeOption) (model.Document, error) {
	schema, ok := registry.Schema(name)
	if !ok {
		return model.Document{}, fmt.Errorf("management: unknown model %q", name)
	}
	return model.NewDocument(schema, v, append([]model.DecodeOption{model.WithResolver(registry)}, opts...)...)
}

// OpenAPIFS exposes the embedded API description for loaders.
func OpenAPIFS() fs.FS {
	return specFS
}

// OpenAPIDocument returns the embedded API description the models are
// generated from.
func OpenAPIDocument() openapi.Document {
	raw, err := specFS.ReadFile(OpenAPIFile)
	if err != nil {
		panic(fmt.Sprintf("management: read embedded %s: %v", OpenAPIFile, err))
	}
	return openapi.MustNewDocument(openapi.SourceFromFS(OpenAPIFile), raw)
}
