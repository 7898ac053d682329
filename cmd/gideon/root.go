package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config  *string
	verbose *bool
	noColor *bool
}{}

// These are set up before any subcommand runs.
var (
	conf   *config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gideon",
	Short: "Parse a grammar description into a concrete syntax tree",
	Long: `gideon provides two features:
- Parses a grammar description and prints its concrete syntax tree.
  Errors are reported at the smallest part of the tree they affect.
- Tokenizes a grammar description.
  This feature is primarily aimed at debugging the grammar description.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setUp,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().String("config", "", "config file path (default $GIDEON_CONFIG)")
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs of the lexer and the parser")
	rootFlags.noColor = rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func setUp(cmd *cobra.Command, args []string) error {
	path := *rootFlags.config
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	c, err := loadConfig(path)
	if err != nil {
		return err
	}
	conf = c

	if *rootFlags.noColor || (conf.Color != nil && !*conf.Color) {
		color.NoColor = true
	}

	logger = newLogger(cmd.ErrOrStderr(), *rootFlags.verbose)

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
