package model_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func TestOptionalStates(t *testing.T) {
	var absent model.Optional[string]
	if absent.IsSet() || absent.IsNull() || absent.IsPresent() {
		t.Fatalf("zero value must be absent")
	}
	if got := absent.OrElse("fallback"); got != "fallback" {
		t.Fatalf("OrElse on absent returned %q", got)
	}

	null := model.Null[string]()
	if !null.IsSet() || !null.IsNull() || null.IsPresent() {
		t.Fatalf("null optional has wrong state")
	}
	if _, ok := null.Get(); ok {
		t.Fatalf("null optional must not report a value")
	}

	empty := model.Some("")
	if !empty.IsPresent() {
		t.Fatalf("present empty string must be present")
	}
	if v, ok := empty.Get(); !ok || v != "" {
		t.Fatalf("unexpected Get result %q %v", v, ok)
	}

	if model.EqualOptional(absent, null) || model.EqualOptional(null, empty) || model.EqualOptional(absent, empty) {
		t.Fatalf("absent, null and present must be distinct")
	}
	if !model.EqualOptional(model.Some("a"), model.Some("a")) {
		t.Fatalf("equal values must compare equal")
	}
}

func TestOptionalMustGetPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	model.None[int]().MustGet()
}

func TestEncoderWritesPresenceStates(t *testing.T) {
	enc := model.NewEncoder()
	enc.String("a", model.Some("x"))
	enc.String("b", model.None[string]())
	enc.Bool("c", model.Null[bool]())
	enc.Int32("d", model.Some[int32](3))
	enc.StringMap("e", model.Some(map[string]string{"z": "1", "a": "2"}))
	enc.StringSlice("f", model.Some[[]string](nil))

	extras := wire.NewObject()
	extras.Set("a", wire.String("ignored"))
	extras.Set("g", wire.Bool(true))
	enc.Extras(extras)

	const want = `{"a":"x","c":null,"d":3,"e":{"a":"2","z":"1"},"f":[],"g":true}`
	if got := enc.Value().String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseUnknownPolicy(t *testing.T) {
	for raw, want := range map[string]model.UnknownPolicy{
		"":       model.UnknownIgnore,
		"ignore": model.UnknownIgnore,
		"Reject": model.UnknownReject,
		"retain": model.UnknownRetain,
	} {
		got, err := model.ParseUnknownPolicy(raw)
		if err != nil || got != want {
			t.Fatalf("ParseUnknownPolicy(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := model.ParseUnknownPolicy("drop"); err == nil {
		t.Fatalf("expected error for unsupported policy")
	}
}

func TestFormatRegistry(t *testing.T) {
	formats := model.NewFormatRegistry()
	if err := formats.Check("aws-arn", "arn:aws:iam::111122223333:user/polaris-service-user"); err != nil {
		t.Fatalf("valid arn rejected: %v", err)
	}
	if err := formats.Check("aws-arn", "user/polaris"); err == nil {
		t.Fatalf("invalid arn accepted")
	}
	if err := formats.Check("unheard-of", "anything"); err != nil {
		t.Fatalf("unknown formats must pass: %v", err)
	}
	if err := formats.Register("upper", func(v string) error {
		if strings.ToUpper(v) != v {
			return errors.New("not upper case")
		}
		return nil
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := formats.Check("upper", "abc"); err == nil {
		t.Fatalf("custom checker not applied")
	}
}

func TestFormatChecksCanBeDisabled(t *testing.T) {
	payload := wire.MustParse(`{"identityType":"AWS_IAM","iamArn":"not-an-arn"}`)
	if _, err := model.NewDocument(identitySchema(), payload); !errors.Is(err, model.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := model.NewDocument(identitySchema(), payload, model.WithFormatChecks(false)); err != nil {
		t.Fatalf("format checks disabled but got %v", err)
	}
}

func TestValidationErrorJSON(t *testing.T) {
	_, err := model.NewDocument(identitySchema(), wire.MustParse(`{}`))
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	data, marshalErr := json.Marshal(verr)
	if marshalErr != nil {
		t.Fatalf("marshal: %v", marshalErr)
	}
	const want = `{"schema":"Identity","issues":[{"path":"identityType","field":"identity_type","rule":"required","message":"required field is missing"}]}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestNonFiniteNumbersAreFormatErrors(t *testing.T) {
	schema := model.Schema{
		Name: "Gauge",
		Fields: []model.Field{
			{Name: "ratio", WireName: "ratio", Type: model.FieldTypeNumber},
		},
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := model.CheckFinite(schema, "ratio", model.Some(f))
		if !errors.Is(err, model.ErrFormat) {
			t.Fatalf("CheckFinite(%v): expected ErrFormat, got %v", f, err)
		}
		var verr *model.ValidationError
		if !errors.As(err, &verr) || verr.Issues()[0].Path != "ratio" || verr.Issues()[0].Rule != model.RuleFormat {
			t.Fatalf("CheckFinite(%v): unexpected issues %v", f, err)
		}

		enc := model.NewEncoder()
		enc.Float64("ratio", model.Some(f))
		if got := enc.Value().String(); got != `{}` {
			t.Fatalf("non-finite numbers must never be written as null, got %s", got)
		}

		_, err = model.FieldsToWire(schema, map[string]any{"ratio": f})
		if !errors.Is(err, model.ErrFormat) || errors.Is(err, model.ErrTypeMismatch) {
			t.Fatalf("FieldsToWire(%v): expected ErrFormat, got %v", f, err)
		}
	}

	for _, v := range []model.Optional[float64]{model.Some(1.5), model.Null[float64](), model.None[float64]()} {
		if err := model.CheckFinite(schema, "ratio", v); err != nil {
			t.Fatalf("CheckFinite: unexpected error %v", err)
		}
	}
}
