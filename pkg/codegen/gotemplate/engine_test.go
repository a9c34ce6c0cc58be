package gotemplate_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-polaris/pkg/codegen/gotemplate"
	"github.com/goliatone/go-polaris/pkg/testsupport"
)

var templates = fstest.MapFS{
	"hello.tpl":   {Data: []byte("Hello {{ name }}!")},
	"filters.tpl": {Data: []byte("{{ wire|goname }} {{ wire|goname|lowerfirst }} [{{ padded|trim }}]")},
	"global.tpl":  {Data: []byte("env={{ settings.env }}")},
	"blocks.tpl":  {Data: []byte("start\n{% for item in items %}\n  - {{ item }}\n{% endfor %}\nend\n")},
	"schema.tpl":  {Data: []byte("{{ Name|lowerfirst }}Schema")},
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templates)}, opts...)...)
	if err != nil {
		t.Fatalf("gotemplate.New: %v", err)
	}
	return engine
}

func TestRenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada!" || written != result {
		t.Fatalf("unexpected output %q / %q", result, written)
	}
}

func TestDefaultFilters(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("filters", map[string]any{"wire": "iam_arn", "padded": "  x  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "IamArn iamArn [x]" {
		t.Fatalf("filters = %q", got)
	}
}

func TestStructDataIsAddressedByFieldName(t *testing.T) {
	engine := newEngine(t)
	data := struct{ Name string }{Name: "Principal"}
	got, err := engine.RenderTemplate("schema", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "principalSchema" {
		t.Fatalf("render = %q", got)
	}
}

func TestGlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	got, err := engine.RenderTemplate("global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("render = %q", got)
	}
}

func TestTrimBlocks(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("blocks", map[string]any{"items": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "start\n  - a\n  - b\nend\n" {
		t.Fatalf("render = %q", got)
	}
}

func TestOverrideDirShadowsFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Hi {{ name }}."), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	engine := newEngine(t, gotemplate.WithOverrideDir(dir))

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi Ada." {
		t.Fatalf("override not applied: %q", got)
	}
	got, err = engine.RenderTemplate("filters", map[string]any{"wire": "iam_arn", "padded": "x"})
	if err != nil || got != "IamArn iamArn [x]" {
		t.Fatalf("templates missing from the override dir must fall back, got %q (%v)", got, err)
	}

	if _, err := gotemplate.New(gotemplate.WithOverrideDir(filepath.Join(dir, "hello.tpl"))); err == nil {
		t.Fatalf("expected error when the override dir is a file")
	}
}

func TestNewRequiresTemplates(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGoName(t *testing.T) {
	cases := map[string]string{
		"iamArn":     "IamArn",
		"path-style": "PathStyle",
		"client_id":  "ClientId",
		"s3":         "S3",
		"":           "",
	}
	for in, want := range cases {
		if got := gotemplate.GoName(in); got != want {
			t.Fatalf("GoName(%q) = %q, want %q", in, got, want)
		}
	}
}
