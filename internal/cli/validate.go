package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/semid/internal/analyzer"
	"github.com/roach88/semid/internal/corpus"
	"github.com/roach88/semid/internal/ident"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	DBPath     string
	ConfigPath string
	Seed       uint64
	seeded     bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [corpus.json]",
		Short: "Validate semantic ID generation against a bead corpus",
		Long: `Validate the semantic ID scheme against a corpus of existing beads.

Reads a JSON record batch from the given file, from stdin when the
argument is omitted or "-", or straight from a beads SQLite database
with --db. Generates an ID for every record, aggregates collision and
distribution statistics, and prints a validation report with a
PROCEED / REVIEW NEEDED recommendation.

Pipe-friendly: bd list --all --limit 0 --json | semid validate`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			opts.seeded = cmd.Flags().Changed("seed")
			return runValidate(rootOpts, opts, path, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "load the corpus from a beads SQLite database")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "analyzer options YAML file")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed the suffix source for a reproducible run")

	return cmd
}

func runValidate(rootOpts *RootOptions, opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   rootOpts.Verbose,
	}

	records, err := loadCorpus(opts, path, cmd.InOrStdin())
	if err != nil {
		var loadErr *corpus.LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message)
		}
		return WrapExitError(ExitCommandError, "loading corpus", err)
	}
	formatter.VerboseLog("Loaded %d record(s)", len(records))

	aopts := analyzer.DefaultOptions()
	if opts.ConfigPath != "" {
		aopts, err = analyzer.LoadOptions(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading analyzer options", err)
		}
	}

	var src ident.SuffixSource = ident.NewSuffixSource()
	if opts.seeded {
		src = ident.NewSeededSuffixSource(opts.Seed)
		formatter.VerboseLog("Suffix source seeded with %d", opts.Seed)
	}

	report := analyzer.Analyze(records, src, aopts)

	if rootOpts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else if err := report.Render(formatter.Writer); err != nil {
		return err
	}

	if !report.Passed() {
		return NewExitError(ExitFailure, "acceptance criteria not met")
	}
	return nil
}

// loadCorpus resolves the input source: --db, a file path, or stdin.
func loadCorpus(opts *ValidateOptions, path string, stdin io.Reader) ([]corpus.Record, error) {
	if opts.DBPath != "" {
		if path != "" {
			return nil, &corpus.LoadError{Code: corpus.ErrCodeGeneric, Message: "cannot combine --db with a corpus file"}
		}
		return corpus.LoadSQLite(opts.DBPath)
	}
	if path == "" || path == "-" {
		return corpus.LoadJSON(stdin)
	}
	return corpus.LoadJSONFile(path)
}
