package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gowikitext/internal/configloader"
	"github.com/yaklabco/gowikitext/internal/logging"
	"github.com/yaklabco/gowikitext/internal/ui/pretty"
	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/fsutil"
	"github.com/yaklabco/gowikitext/pkg/runner"
	"github.com/yaklabco/gowikitext/pkg/site"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// ErrConversionIssues is returned when conversion fails or, in strict
// mode, produces warnings. It signals the exit code without double logging.
var ErrConversionIssues = errors.New("conversion issues found")

type convertFlags struct {
	output  string
	strict  bool
	summary bool
}

func newConvertCommand() *cobra.Command {
	var cfg config.Config
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert HTML files to MediaWiki markup",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &cfg, flags)
		},
	}

	addConvertFlags(cmd, &cfg, flags)

	return cmd
}

const convertLongDescription = `Convert HTML documents to MediaWiki markup.

With no arguments, reads HTML from standard input and writes markup to
standard output. With file or directory arguments, converts each .html
and .htm file, writing a .wiki file next to it (or under --output).

Examples:
  gowikitext convert < page.html          # stdin to stdout
  gowikitext convert docs/                # convert a directory tree
  gowikitext convert page.html            # single file to stdout
  gowikitext convert docs/ -o out/        # mirror tree under out/
  gowikitext convert --base-url https://en.wikipedia.org/wiki/ docs/`

func runConvert(cmd *cobra.Command, args []string, cfg *config.Config, flags *convertFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	finalCfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldBaseURL, finalCfg.BaseURL,
		logging.FieldSelector, finalCfg.Select,
		logging.FieldJobs, finalCfg.Jobs,
	)

	table, err := wikitext.NewTable(wikitext.Options{
		PreserveBold:       finalCfg.PreserveBold,
		PreserveItalic:     finalCfg.PreserveItalic,
		DetectCodeLanguage: finalCfg.DetectCodeLanguage,
	})
	if err != nil {
		return fmt.Errorf("build rule table: %w", err)
	}

	resolver, err := site.New(finalCfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", finalCfg.BaseURL, err)
	}

	// No paths: stream stdin to stdout (or --output).
	if len(args) == 0 {
		// An interactive terminal on stdin means the user forgot the input.
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return cmd.Usage()
		}
		return convertStream(ctx, cmd, table, resolver, finalCfg, flags)
	}

	// Single regular file with no output directory: write to stdout.
	if len(args) == 1 && flags.output == "" {
		if info, statErr := os.Stat(args[0]); statErr == nil && !info.IsDir() {
			src, openErr := os.Open(args[0])
			if openErr != nil {
				return fmt.Errorf("open %s: %w", args[0], openErr)
			}
			defer src.Close()
			return convertTo(cmd.OutOrStdout(), src, table, resolver, finalCfg, flags)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	r := runner.New(table, resolver, logger)
	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		OutputDir:    flags.output,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting conversion run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := r.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("conversion run failed"), err)
	}

	out := cmd.OutOrStdout()
	for _, outcome := range result.Files {
		fmt.Fprint(out, styles.FormatFileLine(outcome))
	}
	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrConversionIssues
	}
	return nil
}

// convertStream converts stdin and writes markup to stdout or --output.
func convertStream(ctx context.Context, cmd *cobra.Command, table *wikitext.Table, resolver *site.Resolver, cfg *config.Config, flags *convertFlags) error {
	if flags.output == "" || flags.output == "-" {
		return convertTo(cmd.OutOrStdout(), cmd.InOrStdin(), table, resolver, cfg, flags)
	}

	res, err := wikitext.Convert(cmd.InOrStdin(), wikitext.ConvertOptions{
		Table:    table,
		Resolver: resolver,
		Logger:   logging.Default(),
		Selector: cfg.Select,
	})
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, flags.output, []byte(res.Markup), 0); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	if flags.strict && res.Warnings > 0 {
		return ErrConversionIssues
	}
	return nil
}

// convertTo converts one document from src and writes markup to w.
func convertTo(w io.Writer, src io.Reader, table *wikitext.Table, resolver *site.Resolver, cfg *config.Config, flags *convertFlags) error {
	res, err := wikitext.Convert(src, wikitext.ConvertOptions{
		Table:    table,
		Resolver: resolver,
		Logger:   logging.Default(),
		Selector: cfg.Select,
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, res.Markup); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if flags.strict && res.Warnings > 0 {
		return ErrConversionIssues
	}
	return nil
}

func addConvertFlags(cmd *cobra.Command, cfg *config.Config, flags *convertFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file (stdin/single file) or directory (directory walks)")
	cmd.Flags().StringVar(&cfg.BaseURL, "base-url", "",
		"wiki base article URL for internal link detection")
	cmd.Flags().StringVar(&cfg.Select, "select", "",
		"CSS selector restricting conversion to a subtree")
	cmd.Flags().BoolVar(&cfg.PreserveBold, "preserve-bold", false,
		"emit <b> tags instead of ''' markup")
	cmd.Flags().BoolVar(&cfg.PreserveItalic, "preserve-italic", false,
		"emit <i> tags instead of '' markup")
	cmd.Flags().BoolVar(&cfg.DetectCodeLanguage, "detect-lang", false,
		"render code-shaped pre blocks with <syntaxhighlight>")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a full summary block after converting")
}
