package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	verr "github.com/nihei9/gideon/error"
	spec "github.com/nihei9/gideon/spec/grammar"
	"github.com/nihei9/gideon/spec/grammar/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTree = "tree"
	formatJSON = "json"
	formatYAML = "yaml"
)

var parseFlags = struct {
	format      *string
	output      *string
	probeErrors *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse [<grammar file path>]",
		Short:   "Parse a grammar description and print its concrete syntax tree",
		Example: `  gideon parse json.gideon --format yaml`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.format = cmd.Flags().StringP("format", "f", formatTree, "output format (tree, json, or yaml)")
	parseFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	parseFlags.probeErrors = cmd.Flags().Bool("probe-errors", false, "also report tokens dropped after the last declaration")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format := *parseFlags.format
	if !cmd.Flags().Changed("format") && conf.Format != "" {
		format = conf.Format
	}
	if err := validateFormat(format); err != nil {
		return err
	}
	probeErrors := *parseFlags.probeErrors
	if !cmd.Flags().Changed("probe-errors") {
		probeErrors = conf.ProbeErrors
	}

	var srcPath string
	if len(args) > 0 {
		srcPath = args[0]
	}
	src, srcName, err := readSource(cmd.InOrStdin(), srcPath)
	if err != nil {
		return err
	}

	opts := []parser.ParserOption{
		parser.Logger(logger),
	}
	if probeErrors {
		opts = append(opts, parser.CollectProbeErrors())
	}
	p := parser.NewParser(src, opts...)
	g, err := p.Parse()
	if err != nil {
		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			printDiagnostics(cmd.ErrOrStderr(), srcName, src, []*parser.Error{parseErr})
			return fmt.Errorf("%v is not a grammar", srcName)
		}
		return err
	}

	w := cmd.OutOrStdout()
	if *parseFlags.output != "" {
		f, err := os.Create(*parseFlags.output)
		if err != nil {
			return fmt.Errorf("Cannot create the output file %s: %w", *parseFlags.output, err)
		}
		defer f.Close()
		w = f
	}
	err = writeTree(w, format, parser.Describe(g))
	if err != nil {
		return err
	}

	errs := parser.Errors(g)
	errs = append(errs, p.ProbeErrors()...)
	if len(errs) > 0 {
		printDiagnostics(cmd.ErrOrStderr(), srcName, src, errs)
		return fmt.Errorf("%v error(s) found in %v", len(errs), srcName)
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatTree, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format: %v", format)
}

func writeTree(w io.Writer, format string, tree *spec.Node) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\n", string(b))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(tree)
		if err != nil {
			return err
		}
		return enc.Close()
	default:
		spec.PrintTree(w, tree)
	}
	return nil
}

// readSource reads a whole source into a character buffer. When the path is empty, it reads `stdin`.
func readSource(stdin io.Reader, path string) ([]rune, string, error) {
	r := stdin
	name := "<stdin>"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("Cannot open the source file %s: %w", path, err)
		}
		defer f.Close()
		r = f
		name = path
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("Cannot read the source %s: %w", name, err)
	}
	return []rune(string(b)), name, nil
}

func printDiagnostics(w io.Writer, srcName string, src []rune, errs []*parser.Error) {
	red := color.New(color.FgRed)
	for _, err := range errs {
		specErr := &verr.SpecError{
			Cause:      err.Cause,
			SourceName: srcName,
			Source:     src,
			Line:       err.Pos.Line,
			Offset:     err.Pos.Offset,
		}
		red.Fprintln(w, specErr.Error())
	}
}
