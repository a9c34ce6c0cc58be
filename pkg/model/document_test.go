package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func identitySchema() model.Schema {
	return model.Schema{
		Name: "Identity",
		Fields: []model.Field{
			{Name: "identity_type", WireName: "identityType", Type: model.FieldTypeString, Required: true, Enum: []string{"AWS_IAM"}},
			{Name: "iam_arn", WireName: "iamArn", Type: model.FieldTypeString, Format: "aws-arn"},
			{Name: "tags", WireName: "tags", Type: model.FieldTypeArray, Items: &model.Field{Type: model.FieldTypeString}},
			{Name: "labels", WireName: "labels", Type: model.FieldTypeMap, Items: &model.Field{Type: model.FieldTypeString}},
			{Name: "count", WireName: "count", Type: model.FieldTypeInteger, Format: "int32"},
		},
	}
}

func wrapperSchema() model.Schema {
	return model.Schema{
		Name: "Wrapper",
		Fields: []model.Field{
			{Name: "identity", WireName: "identity", Type: model.FieldTypeObject, Ref: "Identity", Required: true},
			{Name: "note", WireName: "note", Type: model.FieldTypeString, Nullable: true},
		},
	}
}

func issueSummary(t *testing.T, err error) []string {
	t.Helper()
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *model.ValidationError, got %T (%v)", err, err)
	}
	var out []string
	for _, issue := range verr.Issues() {
		out = append(out, issue.Path+"|"+issue.Rule)
	}
	return out
}

func TestDocumentRoundTripPreservesOrder(t *testing.T) {
	input := `{"identityType":"AWS_IAM","iamArn":"arn:aws:iam::111122223333:user/polaris-service-user","tags":["a","b"],"labels":{"z":"1","a":"2"},"count":7}`

	doc, err := model.NewDocument(identitySchema(), wire.MustParse(input))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if got := doc.ToWire().String(); got != input {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, input)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, ok := doc.Get("count"); !ok || got.String() != "7" {
		t.Fatalf("expected count 7, got %v (%v)", got, ok)
	}
}

func TestDocumentCollectsEveryIssue(t *testing.T) {
	input := `{"identityType":"GCP","iamArn":"nope","tags":["a",1],"count":3000000000}`

	_, err := model.NewDocument(identitySchema(), wire.MustParse(input))
	if err == nil {
		t.Fatalf("expected validation error")
	}

	want := []string{
		"identityType|enum",
		"iamArn|format",
		"tags[1]|type",
		"count|format",
	}
	if diff := cmp.Diff(want, issueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(err, model.ErrEnum) || !errors.Is(err, model.ErrFormat) || !errors.Is(err, model.ErrTypeMismatch) {
		t.Fatalf("expected sentinels reachable through aggregate, got %v", err)
	}
}

func TestDocumentRequiredAndNull(t *testing.T) {
	_, err := model.NewDocument(identitySchema(), wire.MustParse(`{}`))
	if !errors.Is(err, model.ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
	const want = "model: Identity: validation failed: identityType: required field is missing (rule required)"
	if err.Error() != want {
		t.Fatalf("unexpected message:\n got %q\nwant %q", err.Error(), want)
	}

	_, err = model.NewDocument(identitySchema(), wire.MustParse(`{"identityType":null}`))
	if !errors.Is(err, model.ErrNull) {
		t.Fatalf("expected ErrNull, got %v", err)
	}

	doc, err := model.NewDocument(identitySchema(), wire.MustParse(`{"identityType":"AWS_IAM","iamArn":null}`))
	if err != nil {
		t.Fatalf("optional null should be accepted: %v", err)
	}
	if got := doc.ToWire().String(); got != `{"identityType":"AWS_IAM","iamArn":null}` {
		t.Fatalf("explicit null not preserved: %s", got)
	}
}

func TestDocumentRejectsNonObjectRoot(t *testing.T) {
	_, err := model.NewDocument(identitySchema(), wire.String("AWS_IAM"))
	if diff := cmp.Diff([]string{"|type"}, issueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownPolicies(t *testing.T) {
	input := wire.MustParse(`{"identityType":"AWS_IAM","extra":1}`)

	tests := []struct {
		name    string
		policy  model.UnknownPolicy
		want    string
		wantErr bool
	}{
		{name: "ignore", policy: model.UnknownIgnore, want: `{"identityType":"AWS_IAM"}`},
		{name: "reject", policy: model.UnknownReject, wantErr: true},
		{name: "retain", policy: model.UnknownRetain, want: `{"identityType":"AWS_IAM","extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := model.NewDocument(identitySchema(), input, model.WithUnknownPolicy(tt.policy))
			if tt.wantErr {
				var unknown *model.UnknownFieldError
				if !errors.As(err, &unknown) {
					t.Fatalf("expected UnknownFieldError, got %v", err)
				}
				if diff := cmp.Diff([]string{"extra"}, unknown.Keys); diff != "" {
					t.Fatalf("keys mismatch (-want +got):\n%s", diff)
				}
				if !errors.Is(err, model.ErrUnknownField) {
					t.Fatalf("expected ErrUnknownField")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDocument: %v", err)
			}
			if got := doc.ToWire().String(); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDefaultUnknownPolicyIsIgnore(t *testing.T) {
	if model.NewDecodeOptions().Unknown != model.UnknownIgnore {
		t.Fatalf("expected ignore as default policy")
	}
}

func TestDocumentEqual(t *testing.T) {
	a, err := model.NewDocument(identitySchema(), wire.MustParse(`{"identityType":"AWS_IAM","count":1}`))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	b, err := model.NewDocument(identitySchema(), wire.MustParse(`{"count":1.0,"identityType":"AWS_IAM"}`))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	c, err := model.NewDocument(identitySchema(), wire.MustParse(`{"identityType":"AWS_IAM","count":1,"iamArn":null}`))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected documents to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("absent and null must not compare equal")
	}
}

func TestRegistryDecodeResolvesNestedSchemas(t *testing.T) {
	registry := model.NewRegistry()
	registry.MustRegister(identitySchema(), nil)
	registry.MustRegister(wrapperSchema(), nil)

	_, err := registry.Decode("Wrapper", wire.MustParse(`{"identity":{"identityType":"AWS_IAM","iamArn":"bad"}}`))
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	issues := verr.Issues()
	if len(issues) != 1 || issues[0].Path != "identity.iamArn" || issues[0].Field != "identity" {
		t.Fatalf("unexpected issues: %+v", issues)
	}

	got, err := registry.Decode("Wrapper", wire.MustParse(`{"identity":{"identityType":"AWS_IAM","x":1},"note":null}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := `{"identity":{"identityType":"AWS_IAM"},"note":null}`; got.ToWire().String() != want {
		t.Fatalf("got %s, want %s", got.ToWire().String(), want)
	}
	if got.SchemaName() != "Wrapper" {
		t.Fatalf("unexpected schema name %q", got.SchemaName())
	}
}

func TestRegistryNamesAndErrors(t *testing.T) {
	registry := model.NewRegistry()
	registry.MustRegister(wrapperSchema(), nil)
	registry.MustRegister(identitySchema(), nil)

	if diff := cmp.Diff([]string{"Identity", "Wrapper"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(identitySchema(), nil); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Decode("Missing", wire.MustParse(`{}`)); err == nil {
		t.Fatalf("expected unknown schema error")
	}
	if err := registry.Register(model.Schema{Name: "Bad", Fields: []model.Field{{Name: "a", WireName: "a", Type: model.FieldTypeArray}}}, nil); err == nil {
		t.Fatalf("expected descriptor validation error")
	}
	schema, ok := registry.Schema("Identity")
	if !ok || len(schema.Fields) != 5 {
		t.Fatalf("unexpected schema lookup result: %+v %v", schema, ok)
	}
}

func TestFieldsToWire(t *testing.T) {
	got, err := model.FieldsToWire(identitySchema(), map[string]any{
		"iam_arn":       nil,
		"identity_type": "AWS_IAM",
		"tags":          []string{"x"},
	})
	if err != nil {
		t.Fatalf("FieldsToWire: %v", err)
	}
	if want := `{"identityType":"AWS_IAM","iamArn":null,"tags":["x"]}`; got.String() != want {
		t.Fatalf("got %s, want %s", got.String(), want)
	}

	_, err = model.FieldsToWire(identitySchema(), map[string]any{
		"identity_type": make(chan int),
		"bogus":         1,
	})
	want := []string{"identityType|type", "bogus|unknown"}
	if diff := cmp.Diff(want, issueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
