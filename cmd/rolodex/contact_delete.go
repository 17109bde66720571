// Contact delete command removes an owned contact.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var deleteID int64

var contactDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a contact",
	Long: `Delete removes a contact you own. Deleting an id that does not
exist is not an error.

Example:
  rolodex contact delete --user alice --id 3`,
	RunE: runContactDelete,
}

func init() {
	contactDeleteCmd.Flags().Int64Var(&deleteID, "id", 0, "contact id (required)")
	_ = contactDeleteCmd.MarkFlagRequired("id")
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	if deleteID <= 0 {
		return fmt.Errorf("contact id %d: %w", deleteID, types.ErrInvalidID)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := loginSession(cmd.Context(), store, contactUser)
	if err != nil {
		return err
	}

	if err := session.Delete(cmd.Context(), deleteID); err != nil {
		if errors.Is(err, types.ErrNotOwner) {
			return fmt.Errorf("contact %d belongs to another user", deleteID)
		}
		return fmt.Errorf("delete contact: %w", err)
	}

	fmt.Printf("Deleted contact %d\n", deleteID)
	return nil
}
