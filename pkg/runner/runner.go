package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gowikitext/pkg/fsutil"
	"github.com/yaklabco/gowikitext/pkg/site"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// OutputExtension is the file extension for converted markup.
const OutputExtension = ".wiki"

// Runner orchestrates multi-file conversion.
type Runner struct {
	// Table is the session rule table shared by all workers.
	Table *wikitext.Table

	// Resolver classifies internal links. Nil treats all links external.
	Resolver *site.Resolver

	// Logger receives per-file diagnostics. Nil disables logging.
	Logger *log.Logger
}

// New creates a new Runner with the given rule table and link resolver.
func New(table *wikitext.Table, resolver *site.Resolver, logger *log.Logger) *Runner {
	return &Runner{Table: table, Resolver: resolver, Logger: logger}
}

// Run discovers files under opts.Paths and converts them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Converts files concurrently using a worker pool
//   - Writes markup atomically next to each input (or under opts.OutputDir)
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	files, err := Discover(ctx, workDir, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	selector := ""
	if opts.Config != nil {
		selector = opts.Config.Select
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts.OutputDir, selector)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index outcomes by path and rebuild
	// in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker converts files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir, outputDir, selector string,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.convertFile(ctx, path, workDir, outputDir, selector)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertFile converts one HTML file and writes the markup atomically.
func (r *Runner) convertFile(ctx context.Context, path, workDir, outputDir, selector string) FileOutcome {
	outcome := FileOutcome{Path: path}

	src, err := os.Open(path)
	if err != nil {
		outcome.Error = fmt.Errorf("open %s: %w", path, err)
		return outcome
	}
	defer src.Close()

	res, err := wikitext.Convert(src, wikitext.ConvertOptions{
		Table:    r.Table,
		Resolver: r.Resolver,
		Logger:   r.Logger,
		Selector: selector,
	})
	if err != nil {
		outcome.Error = fmt.Errorf("convert %s: %w", path, err)
		return outcome
	}
	outcome.Warnings = res.Warnings

	outPath, err := outputPathFor(path, workDir, outputDir)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		outcome.Error = fmt.Errorf("create output directory: %w", err)
		return outcome
	}

	if err := fsutil.WriteAtomic(ctx, outPath, []byte(res.Markup), 0); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}

	outcome.OutputPath = outPath
	outcome.BytesWritten = int64(len(res.Markup))

	if r.Logger != nil {
		r.Logger.Debug("converted file", "path", path, "output", outPath, "warnings", res.Warnings)
	}

	return outcome
}

// outputPathFor maps an input path to its markup destination. With no output
// directory the markup lands next to the input with the extension swapped.
func outputPathFor(path, workDir, outputDir string) (string, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path)) + OutputExtension
	if outputDir == "" {
		return base, nil
	}

	rel, err := filepath.Rel(workDir, base)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Input outside the working directory: flatten to the base name.
		rel = filepath.Base(base)
	}
	return filepath.Join(outputDir, rel), nil
}
