package management_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-polaris/pkg/management"
	"github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/testsupport"
	"github.com/goliatone/go-polaris/pkg/wire"
)

func TestRegistryListsGeneratedModels(t *testing.T) {
	want := []string{
		"AwsIamServiceIdentityInfo",
		"AwsStorageConfigInfo",
		"Principal",
		"PrincipalWithCredentials",
		"PrincipalWithCredentialsCredentials",
		"ServiceIdentityInfo",
	}
	if diff := cmp.Diff(want, management.Registry().Names()); diff != "" {
		t.Fatalf("registry names mismatch (-want +got):\n%s", diff)
	}
}

func TestPrincipalRequiredField(t *testing.T) {
	_, err := management.NewPrincipalFromFields(map[string]any{"client_id": "abc"})
	if !errors.Is(err, model.ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}

	p, err := management.NewPrincipal("alice")
	if err != nil {
		t.Fatalf("NewPrincipal: %v", err)
	}
	if p.HasClientId() || p.HasProperties() || p.HasCreateTimestamp() || p.HasLastUpdateTimestamp() || p.HasEntityVersion() {
		t.Fatalf("optional fields must be absent")
	}
	if got := p.ToWire().String(); got != `{"name":"alice"}` {
		t.Fatalf("ToWire = %s", got)
	}

	if _, err := management.NewPrincipal(""); !errors.Is(err, model.ErrLength) {
		t.Fatalf("expected length error for empty name, got %v", err)
	}
}

func TestPrincipalRoundTrip(t *testing.T) {
	props := map[string]string{"team": "data", "env": "prod"}
	p, err := management.NewPrincipal("alice",
		management.WithPrincipalProperties(props),
		management.WithPrincipalCreateTimestamp(9007199254740993),
		management.WithPrincipalEntityVersion(3),
		management.WithPrincipalClientIdNull(),
	)
	if err != nil {
		t.Fatalf("NewPrincipal: %v", err)
	}
	props["team"] = "mutated"
	if got := p.GetProperties()["team"]; got != "data" {
		t.Fatalf("constructor must copy maps, got %q", got)
	}

	const want = `{"name":"alice","clientId":null,"properties":{"env":"prod","team":"data"},"createTimestamp":9007199254740993,"entityVersion":3}`
	if got := p.ToWire().String(); got != want {
		t.Fatalf("ToWire = %s\nwant      %s", got, want)
	}

	decoded, err := management.PrincipalFromWire(wire.MustParse(want))
	if err != nil {
		t.Fatalf("PrincipalFromWire: %v", err)
	}
	if !decoded.Equal(p) {
		t.Fatalf("round trip changed the principal: %s", decoded.ToWire())
	}
	if decoded.GetCreateTimestamp() != 9007199254740993 {
		t.Fatalf("int64 precision lost: %d", decoded.GetCreateTimestamp())
	}
}

func TestPrincipalTypeChecks(t *testing.T) {
	_, err := management.PrincipalFromWire(wire.MustParse(`{"name":"a","entityVersion":3000000000,"createTimestamp":1.5,"properties":{"k":1}}`))
	want := []string{"properties.k|type", "createTimestamp|type", "entityVersion|format"}
	if diff := cmp.Diff(want, testsupport.IssueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	_, err = management.NewPrincipalFromFields(map[string]any{"name": "a", "entity_version": "3"})
	if !errors.Is(err, model.ErrTypeMismatch) {
		t.Fatalf("strings must not be coerced into integers, got %v", err)
	}
}

func TestPrincipalWithCredentialsNested(t *testing.T) {
	principal, err := management.NewPrincipal("svc")
	if err != nil {
		t.Fatalf("NewPrincipal: %v", err)
	}
	creds, err := management.NewPrincipalWithCredentialsCredentials(
		management.WithPrincipalWithCredentialsCredentialsClientId("client"),
		management.WithPrincipalWithCredentialsCredentialsClientSecret("secret"),
	)
	if err != nil {
		t.Fatalf("NewPrincipalWithCredentialsCredentials: %v", err)
	}
	pwc, err := management.NewPrincipalWithCredentials(principal, creds)
	if err != nil {
		t.Fatalf("NewPrincipalWithCredentials: %v", err)
	}

	const want = `{"principal":{"name":"svc"},"credentials":{"clientId":"client","clientSecret":"secret"}}`
	if got := pwc.ToWire().String(); got != want {
		t.Fatalf("ToWire = %s", got)
	}
	decoded, err := management.PrincipalWithCredentialsFromWire(wire.MustParse(want))
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if !decoded.Equal(pwc) || !decoded.GetPrincipal().Equal(principal) {
		t.Fatalf("nested round trip mismatch")
	}

	if _, err := management.NewPrincipalWithCredentials(management.Principal{}, creds); err == nil {
		t.Fatalf("an empty nested principal must fail validation")
	} else if diff := cmp.Diff([]string{"principal.name|required"}, testsupport.IssueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	_, err = management.PrincipalWithCredentialsFromWire(wire.MustParse(`{"principal":{"name":"svc","x":1}}`), model.WithUnknownPolicy(model.UnknownReject))
	want2 := []string{"principal.x|unknown", "credentials|required"}
	if diff := cmp.Diff(want2, testsupport.IssueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestPrincipalRejectsFractionalIntegers(t *testing.T) {
	for _, payload := range []string{
		`{"name":"alice","createTimestamp":1.00000000000000000001}`,
		`{"name":"alice","entityVersion":2.5}`,
	} {
		_, err := management.PrincipalFromWire(wire.MustParse(payload))
		if !errors.Is(err, model.ErrTypeMismatch) {
			t.Fatalf("%s: expected type mismatch, got %v", payload, err)
		}
	}

	p, err := management.PrincipalFromWire(wire.MustParse(`{"name":"alice","createTimestamp":1.0e0}`))
	if err != nil {
		t.Fatalf("integral literal must decode: %v", err)
	}
	if p.GetCreateTimestamp() != 1 {
		t.Fatalf("createTimestamp = %d", p.GetCreateTimestamp())
	}
}

func TestAwsStorageConfigInfo(t *testing.T) {
	cfg, err := management.NewAwsStorageConfigInfo(
		management.AwsStorageConfigInfoStorageTypeS3,
		"arn:aws:iam::123456789001:role/polaris-storage",
		management.WithAwsStorageConfigInfoAllowedLocations([]string{"s3://bucket/prefix/"}),
		management.WithAwsStorageConfigInfoRegion("us-east-2"),
		management.WithAwsStorageConfigInfoPathStyleAccess(false),
	)
	if err != nil {
		t.Fatalf("NewAwsStorageConfigInfo: %v", err)
	}
	const want = `{"storageType":"S3","allowedLocations":["s3://bucket/prefix/"],"roleArn":"arn:aws:iam::123456789001:role/polaris-storage","region":"us-east-2","pathStyleAccess":false}`
	if got := cfg.ToWire().String(); got != want {
		t.Fatalf("ToWire = %s", got)
	}
	if v, ok := cfg.GetPathStyleAccessOk(); !ok || v {
		t.Fatalf("present false must be distinguishable from absent")
	}

	_, err = management.NewAwsStorageConfigInfo("S4", "arn:aws:iam::123456789001:role/x", management.WithAwsStorageConfigInfoEndpoint("localhost:9000"))
	if diff := cmp.Diff([]string{"storageType|enum"}, testsupport.IssueSummary(t, err)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	plain, err := management.NewAwsStorageConfigInfo(management.AwsStorageConfigInfoStorageTypeS3, "polaris-storage",
		management.WithAwsStorageConfigInfoEndpoint("localhost:9000"))
	if err != nil {
		t.Fatalf("string fields without a declared format accept any value: %v", err)
	}
	if plain.GetRoleArn() != "polaris-storage" || plain.GetEndpoint() != "localhost:9000" {
		t.Fatalf("values must be preserved: %s", plain.ToWire())
	}
}

func TestServiceIdentityInfo(t *testing.T) {
	info, err := management.NewServiceIdentityInfo(management.ServiceIdentityInfoIdentityTypeAwsIam)
	if err != nil {
		t.Fatalf("NewServiceIdentityInfo: %v", err)
	}
	if got := info.ToWire().String(); got != `{"identityType":"AWS_IAM"}` {
		t.Fatalf("ToWire = %s", got)
	}
	if _, err := management.ServiceIdentityInfoFromWire(wire.MustParse(`{"identityType":null}`)); !errors.Is(err, model.ErrNull) {
		t.Fatalf("required fields must reject null, got %v", err)
	}
}

func TestTypedModelsAndDocumentsAgree(t *testing.T) {
	cases := []struct {
		model   string
		payload string
	}{
		{"AwsIamServiceIdentityInfo", `{}`},
		{"AwsIamServiceIdentityInfo", `{"iamArn":"arn:aws:iam::111122223333:user/polaris-service-user"}`},
		{"AwsIamServiceIdentityInfo", `{"iamArn":null}`},
		{"AwsIamServiceIdentityInfo", `{"iamArn":1}`},
		{"AwsIamServiceIdentityInfo", `{"iamArn":"user"}`},
		{"AwsIamServiceIdentityInfo", `"x"`},
		{"Principal", `{"name":"a","properties":{"k":"v"},"entityVersion":2}`},
		{"Principal", `{"properties":{"k":"v"}}`},
		{"Principal", `{"name":"a","createTimestamp":"1"}`},
		{"PrincipalWithCredentials", `{"principal":{"name":"a"},"credentials":{}}`},
		{"PrincipalWithCredentials", `{"principal":{},"credentials":{"clientId":3}}`},
		{"PrincipalWithCredentials", `{"principal":null,"credentials":{}}`},
		{"AwsStorageConfigInfo", `{"storageType":"GCS","roleArn":"arn:aws:iam::1:role/r","allowedLocations":["gs://b/"]}`},
		{"AwsStorageConfigInfo", `{"storageType":"GCS","roleArn":"arn:aws:iam::1:role/r","allowedLocations":[null]}`},
		{"ServiceIdentityInfo", `{"identityType":"AWS_IAM","extra":true}`},
	}

	for _, policy := range []model.UnknownPolicy{model.UnknownIgnore, model.UnknownReject, model.UnknownRetain} {
		for _, tc := range cases {
			payload := wire.MustParse(tc.payload)
			typed, typedErr := management.Decode(tc.model, payload, model.WithUnknownPolicy(policy))
			doc, docErr := management.NewDocument(tc.model, payload, model.WithUnknownPolicy(policy))

			if (typedErr == nil) != (docErr == nil) {
				t.Fatalf("%s %s (%s): typed err=%v, document err=%v", tc.model, tc.payload, policy, typedErr, docErr)
			}
			if typedErr != nil {
				if diff := cmp.Diff(testsupport.IssueSummary(t, typedErr), testsupport.IssueSummary(t, docErr)); diff != "" {
					t.Fatalf("%s %s (%s): issues differ (-typed +document):\n%s", tc.model, tc.payload, policy, diff)
				}
				continue
			}
			if !typed.ToWire().Equal(doc.ToWire()) {
				t.Fatalf("%s %s (%s): typed %s, document %s", tc.model, tc.payload, policy, typed.ToWire(), doc.ToWire())
			}
		}
	}
}
