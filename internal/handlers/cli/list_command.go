package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
	"github.com/AntonioJCosta/dirmarks/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(exportService ports.BookmarkExportService, encoder ports.BookmarkEncoder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the bookmarks in a bookmark file.",
		Long: `Parses the bookmark file and shows its entries in file order,
as a table or, with --yaml, as a YAML list of shortcut/path pairs.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, exportService, encoder)
		},
	}

	cmd.Flags().StringP(inputFlag, "i", "", "Bookmark file to read (required).")
	cmd.Flags().Bool("yaml", false, "Print bookmarks as YAML instead of a table.")

	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	exportService ports.BookmarkExportService,
	encoder ports.BookmarkEncoder,
) error {
	inputPath, err := requiredPathFlag(cmd.Flags(), inputFlag)
	if err != nil {
		return err
	}
	asYAML, _ := cmd.Flags().GetBool("yaml")

	list, err := exportService.ListBookmarks(inputPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asYAML {
		doc, err := encoder.Encode(list)
		if err != nil {
			return fmt.Errorf("could not encode bookmarks: %w", err)
		}
		_, err = out.Write(doc)
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No bookmarks found in %s.", ui.FriendlyPath(inputPath))))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Bookmarks in %s:", ui.FriendlyPath(inputPath))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Shortcut", "Path"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range list {
		table.Append([]string{ui.ShortcutColor(entry.Shortcut), ui.PathColor(entry.Path)})
	}
	table.Render()
	return nil
}
