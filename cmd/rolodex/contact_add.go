// Contact add command creates a new contact for the authenticated user.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/validate"
	"github.com/dukaforge/rolodex/pkg/types"
)

var (
	addFirstName string
	addLastName  string
	addPhone     string
	addEmail     string
)

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Long: `Add creates a contact owned by the authenticated user. The phone
number must be unique across all accounts.

Example:
  rolodex contact add --user alice --first Ivan --last Petrov --phone "+7 916 1234567" --email ivan@gogle.com`,
	RunE: runContactAdd,
}

func init() {
	contactAddCmd.Flags().StringVar(&addFirstName, "first", "", "first name (required)")
	contactAddCmd.Flags().StringVar(&addLastName, "last", "", "last name (required)")
	contactAddCmd.Flags().StringVar(&addPhone, "phone", "", "phone number (required)")
	contactAddCmd.Flags().StringVar(&addEmail, "email", "", "email address (required)")
	_ = contactAddCmd.MarkFlagRequired("first")
	_ = contactAddCmd.MarkFlagRequired("last")
	_ = contactAddCmd.MarkFlagRequired("phone")
	_ = contactAddCmd.MarkFlagRequired("email")
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	if !validate.IsValidPhone(addPhone) {
		return fmt.Errorf("invalid phone number %q", addPhone)
	}
	if !validate.IsValidEmail(addEmail) {
		return fmt.Errorf("invalid email address %q", addEmail)
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

	id, err := session.Add(cmd.Context(), addFirstName, addLastName, addPhone, addEmail)
	if err != nil {
		if errors.Is(err, types.ErrDuplicatePhone) {
			return fmt.Errorf("a contact with phone %q already exists", addPhone)
		}
		return fmt.Errorf("add contact: %w", err)
	}

	fmt.Printf("Created contact %d\n", id)
	return nil
}
