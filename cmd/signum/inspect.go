package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/c360studio/signum/processor/annotator"
	"github.com/c360studio/signum/source"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func inspectCmd(g *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the metadata, validation outcome and label of a document",
		Long: `Inspect reads a document's Signum metadata and reports what a render
pass would do without changing the document. Use "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := annotator.New(annotatorConfig(cfg), nil, logger)
			if err != nil {
				return err
			}

			var doc *source.Document
			if args[0] == "-" {
				doc, err = source.Parse(cmd.InOrStdin())
			} else {
				doc, err = source.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			res := a.Inspect(doc)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printInspection(cmd.OutOrStdout(), args[0], cfg.Metadata.Prefix, res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printInspection(w io.Writer, name, prefix string, res annotator.Result) {
	fmt.Fprintf(w, "Document: %s\n", name)
	fmt.Fprintln(w, "Metadata:")
	for _, field := range vocab.Fields() {
		value := res.Record.Get(field)
		if value == "" {
			value = "(absent)"
		}
		fmt.Fprintf(w, "  %-20s %s\n", prefix+field, value)
	}

	if !res.Validation.Valid {
		fmt.Fprintf(w, "Status: %s (%s)\n", res.Status, res.Validation.Describe())
		return
	}

	fmt.Fprintf(w, "Status: %s\n", res.Status)
	fmt.Fprintf(w, "Slots: %d\n", res.Slots)
	fmt.Fprintf(w, "Class: %s\n", res.LevelClass)
	fmt.Fprintf(w, "Label: %s\n", res.Label.Accessible)
	fmt.Fprintln(w, "Tooltip:")
	for _, line := range res.Label.Tooltip.Lines {
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(line))
	}
}
