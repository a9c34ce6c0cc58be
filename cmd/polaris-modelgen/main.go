package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	polaris "github.com/goliatone/go-polaris"
	"github.com/goliatone/go-polaris/internal/logging"
	"github.com/goliatone/go-polaris/pkg/codegen"
	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
	"github.com/goliatone/go-polaris/pkg/orchestrator"
)

type options struct {
	spec      string
	out       string
	pkg       string
	schemas   string
	registry  bool
	preset    string
	templates string
	check     bool
	logLevel  string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "polaris-modelgen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polaris-modelgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -spec <file|url> [flags]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(fs.Output(), "\nGenerate typed Go models from OpenAPI component schemas.\n\n")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.spec, "spec", "", "OpenAPI document path or URL")
	fs.StringVar(&opts.out, "out", ".", "output directory")
	fs.StringVar(&opts.pkg, "package", codegen.DefaultPackage, "Go package name of the generated files")
	fs.StringVar(&opts.schemas, "schemas", "", "comma separated component schemas (default: every object schema)")
	fs.BoolVar(&opts.registry, "registry", false, "also emit "+codegen.RegistryFile)
	fs.StringVar(&opts.preset, "preset", "", "YAML preset patching descriptors before generation")
	fs.StringVar(&opts.templates, "templates", "", "directory whose model.tpl/registry.tpl replace the embedded templates")
	fs.BoolVar(&opts.check, "check", false, "report files that differ from the output directory instead of writing")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.spec) == "" {
		fs.Usage()
		return fmt.Errorf("-spec is required")
	}

	logger, err := logging.Setup(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	files, err := generate(ctx, opts, logger)
	if err != nil {
		return err
	}
	if opts.check {
		return check(opts.out, files, stdout)
	}
	return write(opts.out, files, stdout, logger)
}

func generate(ctx context.Context, opts options, logger *slog.Logger) (map[string][]byte, error) {
	src, err := pkgopenapi.ParseSource(opts.spec)
	if err != nil {
		return nil, err
	}

	generator, err := codegen.New(
		codegen.WithPackageName(opts.pkg),
		codegen.WithRegistry(opts.registry),
		codegen.WithTemplateDir(opts.templates),
	)
	if err != nil {
		return nil, err
	}

	orchOpts := []orchestrator.Option{
		orchestrator.WithLoader(polaris.NewLoader(pkgopenapi.WithDefaultSources())),
		orchestrator.WithGenerator(generator),
	}
	if opts.preset != "" {
		data, err := os.ReadFile(opts.preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		orchOpts = append(orchOpts, orchestrator.WithSchemaTransformer(preset))
	}

	logger.Debug("generating models", "spec", src.Location(), "package", opts.pkg, "schemas", opts.schemas, "templates", opts.templates)
	return polaris.GenerateModels(ctx, src, splitList(opts.schemas), orchOpts...)
}

func write(dir string, files map[string][]byte, stdout io.Writer, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, name := range sortedNames(files) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("wrote model", "path", path, "bytes", len(files[name]))
		fmt.Fprintln(stdout, path)
	}
	return nil
}

func check(dir string, files map[string][]byte, stdout io.Writer) error {
	var stale []string
	for _, name := range sortedNames(files) {
		current, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || !bytes.Equal(current, files[name]) {
			stale = append(stale, name)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	for _, name := range stale {
		fmt.Fprintln(stdout, filepath.Join(dir, name))
	}
	return fmt.Errorf("%d generated file(s) out of date", len(stale))
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
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
