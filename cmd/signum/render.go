package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/signum/processor/annotator"
	"github.com/c360studio/signum/processor/batch"
)

type renderOptions struct {
	inPlace     bool
	outDir      string
	metricsFile string
	strict      bool
	jobs        int
}

func renderCmd(g *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file|dir|glob]...",
		Short: "Render labels into documents",
		Long: `Render labels into HTML documents.

With no arguments, or "-", the document is read from stdin and written to
stdout. A single file is written to stdout unless --in-place or --out-dir is
given. Several files, directories or ** globs require one of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.inPlace, "in-place", "i", false, "Rewrite files in place")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Write results under this directory, mirroring the input layout")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write pass metrics in Prometheus text format to this file")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Documents to process in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any document is skipped for missing or invalid metadata")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, opts *renderOptions, args []string) error {
	if opts.inPlace && opts.outDir != "" {
		return fmt.Errorf("--in-place and --out-dir are mutually exclusive")
	}

	cfg, logger, err := g.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	a, err := annotator.New(annotatorConfig(cfg), annotator.NewMetrics(registry), logger)
	if err != nil {
		return err
	}

	var passes []annotator.Result
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		res, err := renderStream(a, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		passes = append(passes, res)
	} else {
		files, err := batch.ResolveFiles(args, cfg.Watch.Extensions)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no documents found")
		}

		toStdout := !opts.inPlace && opts.outDir == ""
		if toStdout && len(files) > 1 {
			return fmt.Errorf("%d documents matched; use --in-place or --out-dir", len(files))
		}

		p := batch.NewProcessor(a, logger)
		if opts.jobs > 0 {
			p.SetConcurrency(opts.jobs)
		}
		if toStdout {
			res, err := p.Read(files[0].Path)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(res.Content); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			passes = append(passes, res.Pass)
		} else {
			results, err := p.ProcessFiles(cmd.Context(), files, opts.outDir)
			for _, r := range results {
				passes = append(passes, r.Pass)
			}
			if err != nil {
				return err
			}
		}
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if opts.strict {
		skipped := 0
		for _, p := range passes {
			if p.Status == annotator.StatusSkipped {
				skipped++
			}
		}
		if skipped > 0 {
			return fmt.Errorf("%d of %d documents skipped", skipped, len(passes))
		}
	}
	return nil
}

func renderStream(a *annotator.Annotator, r io.Reader, w io.Writer) (annotator.Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return annotator.Result{}, fmt.Errorf("read input: %w", err)
	}

	out, res, err := a.AnnotateBytes(content)
	if err != nil {
		return res, err
	}

	if _, err := w.Write(out); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}
