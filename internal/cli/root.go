// Package cli provides the command-line interface for sqlfmt.
package cli

import (
	"log/slog"
	"os"

	"github.com/aka-chestnut/sql-formatter/internal/cli/commands"
	"github.com/aka-chestnut/sql-formatter/internal/cli/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command. Running it with file
// arguments (or stdin) formats SQL.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		write   bool
		check   bool
		watch   bool
	)

	rootCmd := &cobra.Command{
		Use:   "sqlfmt [files...]",
		Short: "sqlfmt - SQL pretty-printer",
		Long: `sqlfmt formats SQL queries across sixteen dialects.

It rewrites only the whitespace between tokens: every identifier, literal,
comment and operator in the input survives verbatim. Reads files or stdin
and writes to stdout, in place with --write, or reports drift with --check.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			cfg, err := config.Load(cfgFile, cmd.Flags(), logger)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			run := &commands.FormatRun{
				Options: opts,
				Write:   write,
				Check:   check,
				Watch:   watch,
				Logger:  logger,
				Stdin:   cmd.InOrStdin(),
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
			}
			return run.Run(cmd.Context(), args)
		},
	}

	rootCmd.SetVersionTemplate(`sqlfmt {{.Version}}
`)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: discovered sqlfmt.yaml)")
	rootCmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	rootCmd.Flags().BoolVar(&check, "check", false, "exit non-zero when files are not formatted")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reformat files whenever they change (implies --write)")

	rootCmd.Flags().StringP("language", "l", "sql", "SQL dialect tag")
	rootCmd.Flags().Int("tab-width", 2, "spaces per indentation level")
	rootCmd.Flags().Bool("use-tabs", false, "indent with tabs")
	rootCmd.Flags().String("keyword-case", "upper", "keyword casing (preserve|upper|lower)")
	rootCmd.Flags().String("identifier-case", "preserve", "identifier casing (preserve|upper|lower)")
	rootCmd.Flags().String("function-case", "preserve", "function name casing (preserve|upper|lower)")
	rootCmd.Flags().String("data-type-case", "preserve", "data type casing (preserve|upper|lower)")
	rootCmd.Flags().String("indent-style", "standard", "indentation style (standard|tabularLeft|tabularRight)")
	rootCmd.Flags().String("logical-operator-newline", "before", "newline placement around AND/OR (before|after)")
	rootCmd.Flags().Int("expression-width", 50, "maximum inline expression width")
	rootCmd.Flags().Int("lines-between-queries", 1, "blank lines between statements")
	rootCmd.Flags().Bool("dense-operators", false, "pack binary operators without spaces")
	rootCmd.Flags().Bool("newline-before-semicolon", false, "place ; on its own line")
	rootCmd.Flags().Bool("newline-before-open-paren", false, "break before (")
	rootCmd.Flags().Bool("newline-before-close-paren", true, "break before )")
	rootCmd.Flags().Bool("tabulate-alias", false, "align aliases in tabular styles")
	rootCmd.Flags().String("comma-position", "after", "comma placement (after|before|tabular)")
	rootCmd.Flags().String("multiline-lists", "always", "list breaking policy (always|avoid|expressionWidth|N)")
	rootCmd.Flags().String("alias-as", "preserve", "AS keyword policy (preserve|always|never)")
	rootCmd.Flags().StringSlice("params", nil, "placeholder value (name=value or positional), repeatable")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return commands.DialectTags(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit))

	return rootCmd
}

// newLogger builds the CLI logger; debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
