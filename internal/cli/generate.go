package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/semid/internal/ident"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Title  string
	Type   string
	Prefix string
	Seed   uint64
	seeded bool
}

// GenerateResult is the structured output of a single generation.
type GenerateResult struct {
	SemanticID string `json:"semantic_id"`
	Prefix     string `json:"prefix"`
	TypeCode   string `json:"type_code"`
	Slug       string `json:"slug"`
	Suffix     string `json:"suffix"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single semantic ID",
		Long: `Generate one semantic ID from a title and issue type.

Example:
  semid generate --title "Fix login bug" --type bug
  gt-bug-fix_login_bugk3x9`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "bead title to slugify")
	cmd.Flags().StringVar(&opts.Type, "type", "unknown", "issue type (bug, task, epic, ...)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", ident.DefaultPrefix, "namespace prefix")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed the suffix source for a reproducible run")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	var src ident.SuffixSource = ident.NewSuffixSource()
	if opts.seeded {
		src = ident.NewSeededSuffixSource(opts.Seed)
	}

	result := GenerateResult{
		Prefix:   opts.Prefix,
		TypeCode: ident.TypeCode(opts.Type),
		Slug:     ident.Slug(opts.Title),
		Suffix:   src.Next(),
	}
	result.SemanticID = ident.Compose(result.Prefix, result.TypeCode, result.Slug, result.Suffix)
	formatter.VerboseLog("slug length %d, total length %d", len(result.Slug), len(result.SemanticID))

	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}
	_, err := fmt.Fprintln(formatter.Writer, result.SemanticID)
	return err
}
