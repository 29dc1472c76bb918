// Package main provides the signum binary entry point.
// Signum renders provenance labels into HTML documents from the signum:*
// metadata declared in their head.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/signum/config"
	"github.com/c360studio/signum/processor/annotator"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "signum"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render Signum provenance labels into HTML documents",
		Long: `Signum reads provenance metadata declared in a document head

  <meta name="signum:level" content="H-AE">
  <meta name="signum:version" content="1.0.0">
  <meta name="signum:timestamp" content="2025-04-01T12:00:00Z">
  <meta name="signum:asserter" content="handle:example.social:alice">

and renders an accessible label into every element marked with
data-signum-placeholder. Styling comes from the Signum stylesheet.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(
		renderCmd(opts),
		inspectCmd(opts),
		watchCmd(opts),
		levelsCmd(),
		initCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// setup loads configuration and builds the operator logger. Flags override the
// config file.
func (o *globalOptions) setup(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	bootstrap := newLogger(stderr, o.logLevel, o.logFormat)

	cfg, err := config.NewLoader(bootstrap).Load(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// annotatorConfig maps the loaded configuration onto an annotator.
func annotatorConfig(cfg *config.Config) annotator.Config {
	return annotator.Config{
		Prefix: cfg.Metadata.Prefix,
		Render: cfg.Render,
	}
}
