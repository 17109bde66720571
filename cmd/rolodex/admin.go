// Admin command group: privileged maintenance operations that are not
// part of the normal contact flow.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var adminCmd = &cobra.Command{
	Use:    "admin",
	Short:  "Administrative maintenance commands",
	Hidden: true,
}

var adminClearCmd = &cobra.Command{
	Use:   "clear <table>",
	Short: "Wipe every row from a table",
	Long: `Clear deletes all rows from the named table. Valid tables: ` +
		strings.Join(types.StandardTableNames, ", ") + `.

This is destructive and cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdminClear,
}

func init() {
	adminCmd.AddCommand(adminClearCmd)
}

func runAdminClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	table := args[0]
	if err := store.Clear(cmd.Context(), table); err != nil {
		if errors.Is(err, types.ErrTableUnknown) {
			return fmt.Errorf("unknown table %q (valid: %s)",
				table, strings.Join(types.StandardTableNames, ", "))
		}
		return fmt.Errorf("clear table: %w", err)
	}

	fmt.Printf("Cleared table %s\n", table)
	return nil
}
