package validation

import (
	"errors"
	"strings"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/wire"
)

// Issue represents one validation problem with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of decoding a payload against a model.
type Result struct {
	Schema string  `json:"schema,omitempty"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Decoder decodes payloads by model name. *model.Registry satisfies it.
type Decoder interface {
	Decode(name string, v wire.Value, opts ...model.DecodeOption) (model.Model, error)
}

var _ Decoder = (*model.Registry)(nil)

// Check decodes v as the named model and reports the outcome. The model is
// nil when the payload is invalid.
func Check(dec Decoder, name string, v wire.Value, opts ...model.DecodeOption) (model.Model, Result) {
	if dec == nil {
		return nil, Result{Schema: name, Issues: []Issue{{Message: "validation: decoder is nil"}}}
	}
	m, err := dec.Decode(name, v, opts...)
	result := FromError(err)
	if result.Schema == "" {
		result.Schema = name
	}
	if err != nil {
		return nil, result
	}
	return m, result
}

// FromError flattens err into a Result. A nil error is a valid result.
func FromError(err error) Result {
	if err == nil {
		return Result{Valid: true}
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		result := Result{Schema: verr.Schema}
		for _, fe := range verr.Issues() {
			result.Issues = append(result.Issues, issueFromFieldError(fe))
		}
		if len(result.Issues) > 0 {
			return result
		}
	}

	var unknown *model.UnknownFieldError
	if errors.As(err, &unknown) {
		result := Result{Schema: unknown.Schema}
		for _, key := range unknown.Keys {
			result.Issues = append(result.Issues, Issue{
				Path:    key,
				Rule:    model.RuleUnknown,
				Message: model.ErrUnknownField.Error(),
			})
		}
		return result
	}

	return Result{Issues: []Issue{issueFromError(err)}}
}

func issueFromFieldError(fe model.FieldError) Issue {
	msg := ""
	if fe.Err != nil {
		msg = strings.TrimSpace(fe.Err.Error())
	}
	return Issue{
		Path:    fe.Path,
		Field:   fe.Field,
		Rule:    fe.Rule,
		Message: msg,
	}
}

func issueFromError(err error) Issue {
	msg := strings.TrimSpace(err.Error())
	for _, prefix := range []string{"model registry: ", "model: ", "wire: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return Issue{Message: strings.TrimSpace(msg)}
}
