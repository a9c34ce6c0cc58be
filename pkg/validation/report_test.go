package validation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-polaris/pkg/management"
	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/validation"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func TestFromErrorNil(t *testing.T) {
	if got := validation.FromError(nil); !got.Valid || len(got.Issues) != 0 {
		t.Fatalf("expected valid result, got %+v", got)
	}
}

func TestCheckFlattensValidationErrors(t *testing.T) {
	payload := wire.MustParse(`{"principal":{"name":""},"credentials":{"clientId":7},"extra":1}`)
	m, result := validation.Check(management.Registry(), "PrincipalWithCredentials", payload, model.WithUnknownPolicy(model.UnknownReject))
	if m != nil {
		t.Fatalf("expected no model for an invalid payload")
	}
	if result.Valid || result.Schema != "PrincipalWithCredentials" {
		t.Fatalf("unexpected result header %+v", result)
	}
	var got []string
	for _, issue := range result.Issues {
		got = append(got, issue.Path+"|"+issue.Field+"|"+issue.Rule)
	}
	wantPaths := []string{
		"principal.name|principal|length",
		"credentials.clientId|credentials|type",
		"extra||unknown",
	}
	if diff := cmp.Diff(wantPaths, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckValidPayload(t *testing.T) {
	m, result := validation.Check(management.Registry(), "AwsIamServiceIdentityInfo", wire.MustParse(`{}`))
	if !result.Valid || m == nil {
		t.Fatalf("expected valid result, got %+v", result)
	}
	if result.Schema != "AwsIamServiceIdentityInfo" {
		t.Fatalf("schema = %q", result.Schema)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"schema":"AwsIamServiceIdentityInfo","valid":true}` {
		t.Fatalf("json = %s", raw)
	}
}

func TestFromErrorFallbacks(t *testing.T) {
	unknown := &model.UnknownFieldError{Schema: "Identity", Keys: []string{"a", "b"}}
	got := validation.FromError(unknown)
	want := validation.Result{
		Schema: "Identity",
		Issues: []validation.Issue{
			{Path: "a", Rule: model.RuleUnknown, Message: model.ErrUnknownField.Error()},
			{Path: "b", Rule: model.RuleUnknown, Message: model.ErrUnknownField.Error()},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	_, result := validation.Check(management.Registry(), "Nope", wire.MustParse(`{}`))
	if result.Valid || len(result.Issues) != 1 || result.Issues[0].Message != `unknown schema "Nope"` {
		t.Fatalf("unexpected result %+v", result)
	}

	plain := validation.FromError(errors.New("model: boom"))
	if plain.Valid || plain.Issues[0].Message != "boom" {
		t.Fatalf("unexpected result %+v", plain)
	}
}
