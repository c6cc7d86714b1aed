package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/neoziro/gql/internal/language"
	"github.com/neoziro/gql/internal/otel"
	"github.com/neoziro/gql/internal/schema"

	"go.opentelemetry.io/otel/attribute"
)

const rootUsage = `gql — GraphQL SDL schema linter & tools

USAGE:
  gql <command> [flags]

COMMANDS:
  check            Lint SDL files and report every diagnostic
  print            Build SDL files and print the canonical schema
  help             Show help for any command
`

const checkUsage = `check FLAGS:
  -json                     Emit diagnostics as JSON instead of text
  -otel.endpoint <addr>     OTLP collector endpoint
  -otel.service <name>      OpenTelemetry service name (default: gql)

  gql check schema.graphql [more.graphql...]
  (Exits non-zero when any error-severity diagnostic is found)
`

const printUsage = `print FLAGS:
  -out <file>               Write canonical SDL to file (default: stdout)

  gql print schema.graphql
  (Diagnostics always run; exits non-zero on errors)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	switch cmd := args[0]; cmd {
	case "check":
		return cmdCheck(args[1:])
	case "print":
		return cmdPrint(args[1:])
	case "help":
		return cmdHelp(args[1:])
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "check":
		fmt.Print(checkUsage)
	case "print":
		fmt.Print(printUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCheck(args []string) error {
	asJSON := false
	otelEndpoint := ""
	otelService := "gql"

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.BoolVar(&asJSON, "json", asJSON, "Emit diagnostics as JSON")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("no input files")
	}

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	tracer := otel.Tracer()

	failed := false
	for _, path := range fs.Args() {
		_, span := tracer.Start(context.Background(), "gql.check")
		span.SetAttributes(attribute.String("file", path))

		diags, err := checkFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			failed = true
			span.End()
			continue
		}
		if err := reportDiagnostics(path, diags, asJSON); err != nil {
			span.End()
			return err
		}
		span.SetAttributes(attribute.Int("diagnostics", len(diags)))
		span.End()
		if schema.HasErrors(diags) {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("problems found")
	}
	return nil
}

func checkFile(path string) ([]*schema.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := language.ParseSchema(path, string(src))
	if err != nil {
		return nil, err
	}
	_, diags := schema.Build(doc)
	return diags, nil
}

func reportDiagnostics(path string, diags []*schema.Diagnostic, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			File        string               `json:"file"`
			Diagnostics []*schema.Diagnostic `json:"diagnostics"`
		}{File: path, Diagnostics: diags})
	}
	for _, d := range diags {
		fmt.Printf("%s: %s\n", path, d)
	}
	return nil
}

func cmdPrint(args []string) error {
	outFile := ""
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&outFile, "out", outFile, "Write canonical SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, printUsage)
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, printUsage)
		return fmt.Errorf("print takes exactly one input file")
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := language.ParseSchema(path, string(src))
	if err != nil {
		return err
	}
	s, diags := schema.Build(doc)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, d)
	}
	if schema.HasErrors(diags) {
		return fmt.Errorf("problems found")
	}

	sdl := schema.Render(s)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}
