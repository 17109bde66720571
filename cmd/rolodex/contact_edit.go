// Contact edit command updates fields on an owned contact.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/validate"
	"github.com/dukaforge/rolodex/pkg/types"
)

var (
	editID        int64
	editFirstName string
	editLastName  string
	editPhone     string
	editEmail     string
)

var contactEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a contact",
	Long: `Edit updates the given fields on a contact you own. Omitted fields
keep their current value; a field cannot be cleared.

Example:
  rolodex contact edit --user alice --id 3 --phone "8 495 1234567"`,
	RunE: runContactEdit,
}

func init() {
	contactEditCmd.Flags().Int64Var(&editID, "id", 0, "contact id (required)")
	contactEditCmd.Flags().StringVar(&editFirstName, "first", "", "new first name")
	contactEditCmd.Flags().StringVar(&editLastName, "last", "", "new last name")
	contactEditCmd.Flags().StringVar(&editPhone, "phone", "", "new phone number")
	contactEditCmd.Flags().StringVar(&editEmail, "email", "", "new email address")
	_ = contactEditCmd.MarkFlagRequired("id")
}

func runContactEdit(cmd *cobra.Command, args []string) error {
	if editID <= 0 {
		return fmt.Errorf("contact id %d: %w", editID, types.ErrInvalidID)
	}
	if editPhone != "" && !validate.IsValidPhone(editPhone) {
		return fmt.Errorf("invalid phone number %q", editPhone)
	}
	if editEmail != "" && !validate.IsValidEmail(editEmail) {
		return fmt.Errorf("invalid email address %q", editEmail)
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

	err = session.Edit(cmd.Context(), editID, editFirstName, editLastName, editPhone, editEmail)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound):
			return fmt.Errorf("contact %d not found", editID)
		case errors.Is(err, types.ErrNotOwner):
			return fmt.Errorf("contact %d belongs to another user", editID)
		}
		return fmt.Errorf("edit contact: %w", err)
	}

	fmt.Printf("Updated contact %d\n", editID)
	return nil
}
