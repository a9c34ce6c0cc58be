package model

import (
	"fmt"
	"strings"
)

// UnknownPolicy decides what decoding does with keys the schema does not
// declare.
type UnknownPolicy int

const (
	// UnknownIgnore drops unknown keys. This is the default.
	UnknownIgnore UnknownPolicy = iota
	// UnknownReject fails decoding with an UnknownFieldError per key.
	UnknownReject
	// UnknownRetain keeps unknown keys verbatim; they are re-emitted by ToWire
	// after the schema fields.
	UnknownRetain
)

// DefaultUnknownPolicy is applied when no WithUnknownPolicy option is given.
const DefaultUnknownPolicy = UnknownIgnore

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownIgnore:
		return "ignore"
	case UnknownReject:
		return "reject"
	case UnknownRetain:
		return "retain"
	default:
		return fmt.Sprintf("UnknownPolicy(%d)", int(p))
	}
}

// ParseUnknownPolicy parses "ignore", "reject" or "retain".
func ParseUnknownPolicy(raw string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ignore":
		return UnknownIgnore, nil
	case "reject", "strict":
		return UnknownReject, nil
	case "retain", "keep":
		return UnknownRetain, nil
	default:
		return UnknownIgnore, fmt.Errorf("model: unknown policy %q (want ignore, reject or retain)", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p UnknownPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *UnknownPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseUnknownPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DecodeOptions configures FromWire decoding.
type DecodeOptions struct {
	// Unknown selects the unknown-key policy.
	Unknown UnknownPolicy

	// SkipFormats disables format checks (aws-arn, uri, ...). Type, enum
	// and required checks always run.
	SkipFormats bool

	// Formats overrides the format registry; nil means DefaultFormats().
	Formats *FormatRegistry

	// Resolver resolves Field.Ref for schema-driven documents. Typed models
	// decode nested values through their own FromWire functions and ignore it.
	Resolver SchemaResolver
}

// DecodeOption mutates DecodeOptions.
type DecodeOption func(*DecodeOptions)

// WithUnknownPolicy selects the unknown-key policy.
func WithUnknownPolicy(policy UnknownPolicy) DecodeOption {
	return func(opts *DecodeOptions) {
		opts.Unknown = policy
	}
}

// WithFormatChecks toggles format validation.
func WithFormatChecks(enabled bool) DecodeOption {
	return func(opts *DecodeOptions) {
		opts.SkipFormats = !enabled
	}
}

// WithFormats replaces the format registry.
func WithFormats(formats *FormatRegistry) DecodeOption {
	return func(opts *DecodeOptions) {
		opts.Formats = formats
	}
}

// WithResolver installs the schema resolver used for nested documents.
func WithResolver(resolver SchemaResolver) DecodeOption {
	return func(opts *DecodeOptions) {
		opts.Resolver = resolver
	}
}

// WithOptions copies a fully built DecodeOptions, used to hand options down
// to nested decoders.
func WithOptions(options DecodeOptions) DecodeOption {
	return func(opts *DecodeOptions) {
		*opts = options
	}
}

// NewDecodeOptions applies options over the defaults.
func NewDecodeOptions(options ...DecodeOption) DecodeOptions {
	cfg := DecodeOptions{Unknown: DefaultUnknownPolicy}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.Formats == nil {
		cfg.Formats = DefaultFormats()
	}
	return cfg
}
