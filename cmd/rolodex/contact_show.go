// Contact show command prints one owned contact in detail.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/pkg/types"
)

var showID int64

var contactShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a contact's details",
	Long: `Show prints every stored field of a contact you own.

Example:
  rolodex contact show --user alice --id 3`,
	RunE: runContactShow,
}

func init() {
	contactShowCmd.Flags().Int64Var(&showID, "id", 0, "contact id (required)")
	_ = contactShowCmd.MarkFlagRequired("id")
}

func runContactShow(cmd *cobra.Command, args []string) error {
	if showID <= 0 {
		return fmt.Errorf("contact id %d: %w", showID, types.ErrInvalidID)
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

	contact, err := session.Details(cmd.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound):
			return fmt.Errorf("contact %d not found", showID)
		case errors.Is(err, types.ErrNotOwner):
			return fmt.Errorf("contact %d belongs to another user", showID)
		}
		return fmt.Errorf("show contact: %w", err)
	}

	return printContact(contact)
}
