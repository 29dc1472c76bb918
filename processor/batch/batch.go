// Package batch renders Signum labels into HTML files on disk.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/c360studio/signum/processor/annotator"
)

// ErrOutputCollision is returned when two inputs would be written to the same
// output file.
var ErrOutputCollision = errors.New("output path collision")

// FileResult reports the outcome for one file.
type FileResult struct {
	File    File
	Output  string
	Pass    annotator.Result
	Written bool

	// Content is the document after the pass.
	Content []byte
}

// Processor annotates files.
type Processor struct {
	annotator   *annotator.Annotator
	logger      *slog.Logger
	concurrency int
}

// NewProcessor creates a file processor around a.
func NewProcessor(a *annotator.Annotator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{annotator: a, logger: logger, concurrency: runtime.GOMAXPROCS(0)}
}

// SetConcurrency bounds how many files ProcessFiles handles at once. Values
// below one select one.
func (p *Processor) SetConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	p.concurrency = n
}

// Read runs one pass over the file at path without writing anything.
func (p *Processor) Read(path string) (FileResult, error) {
	res := FileResult{File: File{Path: path, Rel: filepath.Base(path)}}

	content, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	out, pass, err := p.annotator.AnnotateBytes(content)
	if err != nil {
		return res, fmt.Errorf("annotate %s: %w", path, err)
	}
	res.Pass = pass
	res.Content = out
	return res, nil
}

// ProcessFile runs one pass over src and writes the result to dst. An empty dst
// rewrites src in place. Files are only written when the pass rendered at least
// one slot and the bytes differ from what is already at dst.
func (p *Processor) ProcessFile(src, dst string) (FileResult, error) {
	if dst == "" {
		dst = src
	}

	info, err := os.Stat(src)
	if err != nil {
		return FileResult{File: File{Path: src, Rel: filepath.Base(src)}, Output: dst}, fmt.Errorf("stat %s: %w", src, err)
	}

	res, err := p.Read(src)
	res.Output = dst
	if err != nil {
		return res, err
	}
	pass, out := res.Pass, res.Content

	if pass.Rendered == 0 && dst == src {
		return res, nil
	}

	if existing, err := os.ReadFile(dst); err == nil && bytes.Equal(existing, out) {
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return res, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dst, out, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write %s: %w", dst, err)
	}
	res.Written = true

	p.logger.Debug("Wrote document",
		"path", dst,
		"status", pass.Status,
		"rendered", pass.Rendered)
	return res, nil
}

// ProcessFiles processes every file using up to Concurrency workers. With an
// empty outDir files are rewritten in place; otherwise each file is written to
// outDir/<Rel>. Processing stops at the first I/O error or when ctx is
// cancelled. Results are returned in input order for the files that completed.
func (p *Processor) ProcessFiles(ctx context.Context, files []File, outDir string) ([]FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if outDir != "" {
		if err := checkDestinations(files, outDir); err != nil {
			return nil, err
		}
	}

	results := make([]FileResult, len(files))
	done := make([]bool, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)

	for i, f := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			dst := ""
			if outDir != "" {
				dst = filepath.Join(outDir, f.Rel)
			}

			res, err := p.ProcessFile(f.Path, dst)
			res.File = f
			results[i] = res
			done[i] = true
			if err != nil {
				return err
			}

			p.logger.Info("Processed document",
				"path", f.Path,
				"status", res.Pass.Status,
				"slots", res.Pass.Rendered,
				"written", res.Written)
			return nil
		})
	}
	err := eg.Wait()

	completed := make([]FileResult, 0, len(files))
	for i, ok := range done {
		if ok {
			completed = append(completed, results[i])
		}
	}
	return completed, err
}

// checkDestinations rejects file sets where two inputs map to one output.
func checkDestinations(files []File, outDir string) error {
	owners := make(map[string]string, len(files))
	for _, f := range files {
		dst := filepath.Join(outDir, f.Rel)
		if prev, ok := owners[dst]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrOutputCollision, prev, f.Path, dst)
		}
		owners[dst] = f.Path
	}
	return nil
}
