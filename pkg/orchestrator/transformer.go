package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-polaris/pkg/model"
)

// Transformer mutates a descriptor before code generation. Implementations
// can adjust descriptions, formats or internal names.
type Transformer interface {
	Transform(ctx context.Context, schema *model.Schema) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, schema *model.Schema) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, schema *model.Schema) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, schema)
}

// PresetTransformer applies declarative overrides loaded from a YAML (or
// JSON) document. Field paths are wire names; "items" descends into array
// and map elements:
//
//	schemas:
//	  AwsStorageConfigInfo:
//	    description: S3 storage settings
//	    fields:
//	      roleArn:
//	        format: aws-arn
//	      allowedLocations.items:
//	        format: uri
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Schemas map[string]presetSchema `yaml:"schemas"`
}

type presetSchema struct {
	Description string                 `yaml:"description"`
	Fields      map[string]fieldPatch `yaml:"fields"`
}

type fieldPatch struct {
	Description string `yaml:"description"`
	Format      string `yaml:"format"`
	Rename      string `yaml:"rename"`
	ReadOnly    *bool  `yaml:"readOnly"`
	Nullable    *bool  `yaml:"nullable"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches registered for schema.Name. Schemas without
// an entry are left untouched.
func (t *PresetTransformer) Transform(ctx context.Context, schema *model.Schema) error {
	if schema == nil {
		return errors.New("preset transformer: schema is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	preset, ok := t.document.Schemas[schema.Name]
	if !ok {
		return nil
	}
	if preset.Description != "" {
		schema.Description = preset.Description
	}
	for path, patch := range preset.Fields {
		field := findFieldByPath(schema.Fields, path)
		if field == nil {
			return fmt.Errorf("preset transformer: %s: field %q not found", schema.Name, path)
		}
		applyFieldPatch(field, patch)
	}
	return nil
}

func applyFieldPatch(field *model.Field, patch fieldPatch) {
	if patch.Description != "" {
		field.Description = patch.Description
	}
	if patch.Format != "" {
		field.Format = patch.Format
	}
	if patch.ReadOnly != nil {
		field.ReadOnly = *patch.ReadOnly
	}
	if patch.Nullable != nil {
		field.Nullable = *patch.Nullable
	}
	if name := strings.TrimSpace(patch.Rename); name != "" {
		field.Name = name
	}
}

func findFieldByPath(fields []model.Field, path string) *model.Field {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	segments := strings.Split(path, ".")
	for idx := range fields {
		field := &fields[idx]
		if field.WireName != segments[0] {
			continue
		}
		return descendItems(field, segments[1:])
	}
	return nil
}

func descendItems(field *model.Field, segments []string) *model.Field {
	for _, segment := range segments {
		if segment != "items" || field.Items == nil {
			return nil
		}
		field = field.Items
	}
	return field
}
