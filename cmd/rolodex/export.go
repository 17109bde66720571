// Export command writes the authenticated user's contacts to a
// spreadsheet.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/export"
)

var (
	exportUser string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your contacts to an .xlsx file",
	Long: `Export writes every contact owned by the authenticated user to an
Excel workbook.

Example:
  rolodex export --user alice --out contacts.xlsx`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportUser, "user", "", "account username (prompted when omitted)")
	exportCmd.Flags().StringVar(&exportOut, "out", "contacts.xlsx", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := loginSession(cmd.Context(), store, exportUser)
	if err != nil {
		return err
	}

	list, err := session.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	if err := export.Contacts(exportOut, list); err != nil {
		return fmt.Errorf("export contacts: %w", err)
	}

	fmt.Printf("Exported %d contacts to %s\n", len(list), exportOut)
	return nil
}
