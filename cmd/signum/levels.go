package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/signum/processor/renderer"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the provenance levels and their CSS classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCLASS")
			for _, l := range vocab.Levels() {
				name, _ := l.Name()
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l, name, l.ClassName(renderer.DefaultClassPrefix))
			}
			return tw.Flush()
		},
	}
}
