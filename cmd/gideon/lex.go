package main

import (
	"errors"
	"fmt"

	"github.com/nihei9/gideon/spec/grammar/parser"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lex [<grammar file path>]",
		Short:   "Tokenize a grammar description",
		Example: `  cat json.gideon | gideon lex`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runLex,
	}
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	var srcPath string
	if len(args) > 0 {
		srcPath = args[0]
	}
	src, srcName, err := readSource(cmd.InOrStdin(), srcPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	l := parser.NewLexer(src, parser.LexerLogger(logger))
	var errs []*parser.Error
	for {
		out := l.Next()
		tok, ok := out.Value()
		if ok {
			fmt.Fprintln(w, tok)
			continue
		}
		if errors.Is(out.Err(), parser.ErrEOI) {
			break
		}
		errs = append(errs, out.Failure())
	}

	if len(errs) > 0 {
		printDiagnostics(cmd.ErrOrStderr(), srcName, src, errs)
		return fmt.Errorf("%v error(s) found in %v", len(errs), srcName)
	}
	return nil
}
