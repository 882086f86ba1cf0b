package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
	"github.com/AntonioJCosta/dirmarks/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the 'dialects' subcommand.
func NewDialectsCommand(formatter ports.BookmarkFormatter) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "Show the supported output formats and their line templates.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Dialect", "Flag", "Line Template"})
			table.SetBorder(true)
			table.SetAutoWrapText(false)

			for _, df := range dialectFlags() {
				template, err := formatter.Template(df.dialect)
				if err != nil {
					return fmt.Errorf("could not describe dialect %s: %w", df.dialect, err)
				}
				flag := fmt.Sprintf("-%s, --%s", df.shorthand, df.dialect)
				table.Append([]string{ui.DialectColor(string(df.dialect)), flag, template})
			}
			table.Render()
			return nil
		},
	}
}
