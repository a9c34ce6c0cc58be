package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/wire"
)

const skipOption = "(skip)"

type collectConfig struct {
	resolver model.SchemaResolver
	defaults *wire.Object
	decode   []model.DecodeOption
}

// Option configures Collect.
type Option func(*collectConfig)

// WithResolver resolves nested object fields so they can be collected
// recursively. Without a resolver nested objects are entered as raw JSON.
func WithResolver(resolver model.SchemaResolver) Option {
	return func(cfg *collectConfig) {
		cfg.resolver = resolver
	}
}

// WithDefaults pre-fills prompts with values from an existing payload.
func WithDefaults(defaults *wire.Object) Option {
	return func(cfg *collectConfig) {
		cfg.defaults = defaults
	}
}

// WithDecodeOptions forwards options to the per-field validation.
func WithDecodeOptions(options ...model.DecodeOption) Option {
	return func(cfg *collectConfig) {
		cfg.decode = append(cfg.decode, options...)
	}
}

// Collect walks schema in declaration order and prompts for every writable
// field. Optional fields left empty stay absent from the result. Each answer
// is checked against the field descriptor before moving on.
func Collect(ctx context.Context, schema model.Schema, driver Driver, opts ...Option) (*wire.Object, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	cfg := collectConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	c := &collector{driver: driver, cfg: cfg}
	return c.object(ctx, schema, cfg.defaults, "")
}

type collector struct {
	driver Driver
	cfg    collectConfig
}

func (c *collector) object(ctx context.Context, schema model.Schema, defaults *wire.Object, prefix string) (*wire.Object, error) {
	out := wire.NewObject()
	for _, field := range schema.Fields {
		if field.ReadOnly {
			continue
		}
		var current wire.Value
		hasDefault := false
		if defaults != nil {
			current, hasDefault = defaults.Get(field.WireName)
		}
		value, ok, err := c.field(ctx, schema, field, prefix+field.WireName, current, hasDefault)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Set(field.WireName, value)
		}
	}
	return out, nil
}

func (c *collector) field(ctx context.Context, schema model.Schema, field model.Field, label string, current wire.Value, hasDefault bool) (wire.Value, bool, error) {
	if field.Type == model.FieldTypeObject && field.Ref != "" && c.cfg.resolver != nil {
		return c.nested(ctx, field, label, current, hasDefault)
	}
	switch {
	case field.Type == model.FieldTypeBoolean:
		return c.boolean(ctx, field, label, current, hasDefault)
	case len(field.Enum) > 0:
		return c.enum(ctx, field, label, current)
	}

	for {
		raw, err := c.ask(ctx, field, label, defaultText(field, current, hasDefault))
		if err != nil {
			return wire.Value{}, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" && !field.Required {
			return wire.Value{}, false, nil
		}
		value, err := parseAnswer(field, raw)
		if err == nil {
			err = c.check(schema, field, value)
		}
		if err == nil {
			return value, true, nil
		}
		if infoErr := c.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", label, err)); infoErr != nil {
			return wire.Value{}, false, infoErr
		}
	}
}

func (c *collector) ask(ctx context.Context, field model.Field, label, def string) (string, error) {
	cfg := InputConfig{
		Message: message(field, label),
		Default: def,
		Help:    help(field),
	}
	if field.Format == "password" {
		return c.driver.Password(ctx, cfg)
	}
	return c.driver.Input(ctx, cfg)
}

func (c *collector) boolean(ctx context.Context, field model.Field, label string, current wire.Value, hasDefault bool) (wire.Value, bool, error) {
	def, _ := current.AsBool()
	if field.Required {
		v, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message(field, label), Default: def, Help: help(field)})
		if err != nil {
			return wire.Value{}, false, err
		}
		return wire.Bool(v), true, nil
	}
	options := []string{skipOption, "true", "false"}
	index := 0
	if _, ok := current.AsBool(); ok && hasDefault {
		index = indexOf(options, fmt.Sprint(def))
	}
	idx, err := c.driver.Select(ctx, SelectConfig{Message: message(field, label), Options: options, DefaultIndex: index, Help: help(field)})
	if err != nil {
		return wire.Value{}, false, err
	}
	switch idx {
	case 1:
		return wire.Bool(true), true, nil
	case 2:
		return wire.Bool(false), true, nil
	default:
		return wire.Value{}, false, nil
	}
}

func (c *collector) enum(ctx context.Context, field model.Field, label string, current wire.Value) (wire.Value, bool, error) {
	options := append([]string(nil), field.Enum...)
	if !field.Required {
		options = append([]string{skipOption}, options...)
	}
	index := 0
	if s, ok := current.AsString(); ok {
		if i := indexOf(options, s); i >= 0 {
			index = i
		}
	}
	idx, err := c.driver.Select(ctx, SelectConfig{Message: message(field, label), Options: options, DefaultIndex: index, Help: help(field)})
	if err != nil {
		return wire.Value{}, false, err
	}
	if idx < 0 || idx >= len(options) {
		return wire.Value{}, false, fmt.Errorf("prompt: %s: selection %d out of range", label, idx)
	}
	if options[idx] == skipOption {
		return wire.Value{}, false, nil
	}
	return wire.String(options[idx]), true, nil
}

func (c *collector) nested(ctx context.Context, field model.Field, label string, current wire.Value, hasDefault bool) (wire.Value, bool, error) {
	schema, ok := c.cfg.resolver.Schema(field.Ref)
	if !ok {
		return wire.Value{}, false, fmt.Errorf("%w: %s", ErrUnresolved, field.Ref)
	}
	if !field.Required {
		include, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Provide %s (%s)?", label, field.Ref),
			Default: hasDefault && !current.IsNull(),
		})
		if err != nil {
			return wire.Value{}, false, err
		}
		if !include {
			return wire.Value{}, false, nil
		}
	}
	defaults, _ := current.AsObject()
	obj, err := c.object(ctx, schema, defaults, label+".")
	if err != nil {
		return wire.Value{}, false, err
	}
	return wire.ObjectValue(obj), true, nil
}

// check validates a single answer by decoding it against a one-field schema.
func (c *collector) check(schema model.Schema, field model.Field, value wire.Value) error {
	single := model.Schema{Name: schema.Name, Fields: []model.Field{field}}
	obj := wire.NewObject()
	obj.Set(field.WireName, value)
	opts := append([]model.DecodeOption(nil), c.cfg.decode...)
	if c.cfg.resolver != nil {
		opts = append(opts, model.WithResolver(c.cfg.resolver))
	}
	_, err := model.NewDocument(single, wire.ObjectValue(obj), opts...)
	if err == nil {
		return nil
	}
	var verr *model.ValidationError
	if errors.As(err, &verr) && verr.Len() > 0 {
		return verr.Issues()[0].Err
	}
	return err
}

// parseAnswer turns free text into a wire value for the field's type.
// Numbers keep their literal form; arrays and maps of strings use the
// "a,b" and "k=v,k2=v2" shorthands, everything else is read as JSON.
func parseAnswer(field model.Field, raw string) (wire.Value, error) {
	if raw == "null" && field.Nullable {
		return wire.Null(), nil
	}
	switch field.Type {
	case model.FieldTypeString:
		return wire.String(raw), nil
	case model.FieldTypeInteger, model.FieldTypeNumber:
		v, err := wire.Number(json.Number(raw))
		if err != nil {
			return wire.Value{}, fmt.Errorf("%q is not a number", raw)
		}
		return v, nil
	case model.FieldTypeArray:
		if isStringItems(field) && !strings.HasPrefix(raw, "[") {
			var items []wire.Value
			for _, part := range splitList(raw) {
				items = append(items, wire.String(part))
			}
			return wire.Array(items...), nil
		}
	case model.FieldTypeMap:
		if isStringItems(field) && !strings.HasPrefix(raw, "{") {
			obj := wire.NewObject()
			for _, part := range splitList(raw) {
				key, value, ok := strings.Cut(part, "=")
				if !ok {
					return wire.Value{}, fmt.Errorf("expected key=value, got %q", part)
				}
				obj.Set(strings.TrimSpace(key), wire.String(strings.TrimSpace(value)))
			}
			return wire.ObjectValue(obj), nil
		}
	}
	return wire.Parse([]byte(raw))
}

func isStringItems(field model.Field) bool {
	return field.Items != nil && field.Items.Type == model.FieldTypeString
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultText(field model.Field, current wire.Value, hasDefault bool) string {
	if !hasDefault || field.Format == "password" {
		return ""
	}
	if s, ok := current.AsString(); ok {
		return s
	}
	if current.IsNull() {
		return "null"
	}
	switch field.Type {
	case model.FieldTypeArray:
		if isStringItems(field) {
			items, _ := current.AsArray()
			parts := make([]string, 0, len(items))
			for _, item := range items {
				s, ok := item.AsString()
				if !ok {
					return current.String()
				}
				parts = append(parts, s)
			}
			return strings.Join(parts, ",")
		}
	case model.FieldTypeMap:
		if obj, ok := current.AsObject(); ok && isStringItems(field) {
			var parts []string
			simple := true
			obj.Range(func(key string, value wire.Value) bool {
				s, ok := value.AsString()
				if !ok {
					simple = false
					return false
				}
				parts = append(parts, key+"="+s)
				return true
			})
			if simple {
				return strings.Join(parts, ",")
			}
		}
	}
	return current.String()
}

func message(field model.Field, label string) string {
	if field.Required {
		return label + " *"
	}
	return label
}

func help(field model.Field) string {
	parts := make([]string, 0, 3)
	if field.Description != "" {
		parts = append(parts, field.Description)
	}
	if field.Format != "" {
		parts = append(parts, "format: "+field.Format)
	}
	if !field.Required {
		parts = append(parts, "leave empty to skip")
	}
	return strings.Join(parts, "; ")
}
