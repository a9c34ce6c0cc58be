package testsupport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	pkgmodel "github.com/goliatone/go-polaris/pkg/model"
	"github.com/goliatone/go-polaris/pkg/wire"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustParseWire parses a JSON document, typically command output, into a
// wire value. Failures stop the test and print the offending text.
func MustParseWire(t *testing.T, text string) wire.Value {
	t.Helper()

	v, err := wire.Parse([]byte(text))
	if err != nil {
		t.Fatalf("parse wire payload: %v\n%s", err, text)
	}
	return v
}

// IssueSummary flattens a *model.ValidationError into "path|rule" strings so
// tests can compare issue lists with cmp.Diff.
func IssueSummary(t *testing.T, err error) []string {
	t.Helper()

	var verr *pkgmodel.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *model.ValidationError, got %T (%v)", err, err)
	}
	out := make([]string, 0, verr.Len())
	for _, issue := range verr.Issues() {
		out = append(out, issue.Path+"|"+issue.Rule)
	}
	return out
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
