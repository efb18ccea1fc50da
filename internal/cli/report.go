package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/solreport/internal/config"
	"github.com/roach88/solreport/internal/logging"
	"github.com/roach88/solreport/internal/namemap"
	"github.com/roach88/solreport/internal/solution"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	ConfigPath  string
	NameMap     string
	NameMapKind string
	Solution    string
	Prefix      string
	Parallel    bool

	// NewRunID overrides run id generation (for testing).
	NewRunID func() string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Validate a solver decision file and summarize the selection",
		Long: `Read the solver decision file, check that every build decision is 0 or 1,
and report how many candidates were selected, their total storage cost, the
share of the storage budget used, and the members of each selected candidate.

Companion files are located by prefix: <prefix>candidates.txt,
<prefix>storage.txt, <prefix>total_storage.txt and <prefix>T.txt.

Example:
  solreport report --names columns.txt --solution glpk.out --prefix params/run1_
  solreport report --config run.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML run config")
	cmd.Flags().StringVar(&opts.NameMap, "names", "", "path to the name map")
	cmd.Flags().StringVar(&opts.NameMapKind, "names-kind", config.NameMapText, "name map source kind (text|sqlite)")
	cmd.Flags().StringVar(&opts.Solution, "solution", "", "path to the solver decision file")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "filename prefix of the companion parameter files")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "load companion files concurrently")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		_ = formatter.Error(&CLIError{Code: ErrCodeInvalidConfig, Message: err.Error()})
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	formatter.Format = cfg.Format

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	gen := &solution.Generator{
		Names:    nameSource(cfg),
		Parallel: cfg.Parallel,
		Logger:   logger,
		NewRunID: opts.NewRunID,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := gen.Generate(ctx, cfg.Solution, cfg.Prefix)
	if err != nil {
		logger.Debug("report failed", zap.Error(err))
		return fail(formatter, "report failed", err)
	}
	return formatter.Success(report)
}

// resolveConfig merges the optional config file with explicitly set flags.
// Flags win over file values.
func resolveConfig(opts *ReportOptions, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if opts.ConfigPath == "" || flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("names") {
		cfg.NameMap = opts.NameMap
	}
	if opts.ConfigPath == "" || flags.Changed("names-kind") {
		cfg.NameMapKind = opts.NameMapKind
	}
	if flags.Changed("solution") {
		cfg.Solution = opts.Solution
	}
	if flags.Changed("prefix") {
		cfg.Prefix = opts.Prefix
	}
	cfg.Parallel = cfg.Parallel || opts.Parallel
	cfg.Verbose = cfg.Verbose || opts.Verbose

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.NameMap == "" {
		return nil, errors.New("no name map given (use --names or name_map)")
	}
	if cfg.Solution == "" {
		return nil, errors.New("no solution file given (use --solution or solution)")
	}
	return cfg, nil
}

func nameSource(cfg *config.Config) solution.NameSource {
	return func(ctx context.Context) (namemap.Map, error) {
		var (
			tbl *namemap.Table
			err error
		)
		switch cfg.NameMapKind {
		case config.NameMapSQLite:
			tbl, err = namemap.OpenSQLite(ctx, cfg.NameMap)
		default:
			tbl, err = namemap.LoadText(cfg.NameMap)
		}
		if err != nil {
			return nil, err
		}
		return tbl, nil
	}
}
