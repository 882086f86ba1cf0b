package cli

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
	"github.com/AntonioJCosta/dirmarks/internal/handlers/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const inputFlag = "input"

// dialectFlag binds an output dialect to its command line flag. The long
// flag name is the dialect name.
type dialectFlag struct {
	dialect   bookmark.Dialect
	shorthand string
	usage     string
}

var dialectFlagSpecs = map[bookmark.Dialect]dialectFlag{
	bookmark.DialectLF:      {shorthand: "l", usage: "Write lf keybindings (map g<shortcut> cd <path>) to this file."},
	bookmark.DialectZsh:     {shorthand: "z", usage: "Write zsh named directories (hash -d <shortcut>=<path>) to this file."},
	bookmark.DialectCdAlias: {shorthand: "c", usage: "Write shell cd aliases (alias cd<shortcut>=\"<path>\") to this file."},
}

// dialectFlags returns the flag of every dialect in bookmark.Dialects order.
func dialectFlags() []dialectFlag {
	flags := make([]dialectFlag, 0, len(dialectFlagSpecs))
	for _, d := range bookmark.Dialects() {
		df := dialectFlagSpecs[d]
		df.dialect = d
		flags = append(flags, df)
	}
	return flags
}

// NewRootCommand creates the dirmarks command tree. logLevel is lowered to
// debug when --verbose is given.
func NewRootCommand(
	version string,
	exportService ports.BookmarkExportService,
	formatter ports.BookmarkFormatter,
	encoder ports.BookmarkEncoder,
	logLevel *slog.LevelVar,
) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "dirmarks",
		Short: "dirmarks turns a bookmark file into lf, zsh or cd alias definitions.",
		Long: `dirmarks reads a bookmark file with one "<shortcut> <path>" pair per line
and writes it out in exactly one of three formats:

  --lf        lf keybindings          map g<shortcut> cd <path>
  --zsh       zsh named directories   hash -d <shortcut>=<path>
  --cd-alias  shell cd aliases        alias cd<shortcut>="<path>"

Lines starting with '#' and blank lines are ignored.`,
		Example:       "  dirmarks -i ~/.config/bookmarks --zsh ~/.config/zsh/named-dirs.zsh",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && logLevel != nil {
				logLevel.Set(slog.LevelDebug)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, exportService)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug details to stderr.")
	rootCmd.Flags().StringP(inputFlag, "i", "", "Bookmark file to read (required).")
	for _, df := range dialectFlags() {
		rootCmd.Flags().StringP(string(df.dialect), df.shorthand, "", df.usage)
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(NewListCommand(exportService, encoder))
	rootCmd.AddCommand(NewDialectsCommand(formatter))

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, exportService ports.BookmarkExportService) error {
	req, err := parseExportRequest(cmd.Flags())
	if err != nil {
		return err
	}

	result, err := exportService.Export(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s).\n",
		ui.SuccessColor(fmt.Sprintf("Wrote %d bookmark(s) to %s", result.Entries, ui.FriendlyPath(req.OutputPath))),
		ui.DialectColor(string(req.Dialect)))
	return nil
}

// parseExportRequest validates the input flag and requires exactly one
// dialect flag. Every violation is a *UsageError.
func parseExportRequest(flags *pflag.FlagSet) (ports.ExportRequest, error) {
	inputPath, err := requiredPathFlag(flags, inputFlag)
	if err != nil {
		return ports.ExportRequest{}, err
	}

	var selected []dialectFlag
	for _, df := range dialectFlags() {
		if flags.Changed(string(df.dialect)) {
			selected = append(selected, df)
		}
	}
	switch len(selected) {
	case 0:
		return ports.ExportRequest{}, usageErrorf("one output mode is required: --lf, --zsh or --cd-alias")
	case 1:
	default:
		names := make([]string, 0, len(selected))
		for _, df := range selected {
			names = append(names, "--"+string(df.dialect))
		}
		return ports.ExportRequest{}, usageErrorf("output modes are mutually exclusive, got %v", names)
	}

	outputPath, err := requiredPathFlag(flags, string(selected[0].dialect))
	if err != nil {
		return ports.ExportRequest{}, err
	}

	return ports.ExportRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Dialect:    selected[0].dialect,
	}, nil
}

func requiredPathFlag(flags *pflag.FlagSet, name string) (string, error) {
	if !flags.Changed(name) {
		return "", usageErrorf("required flag --%s not set", name)
	}
	value, err := flags.GetString(name)
	if err != nil {
		return "", usageErrorf("reading --%s: %v", name, err)
	}
	if value == "" {
		return "", usageErrorf("--%s must not be empty", name)
	}
	return value, nil
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
