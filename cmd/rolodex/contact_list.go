// Contact list command prints the authenticated user's contacts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your contacts",
	Long: `List prints all contacts owned by the authenticated user in the
order they were added.

Example:
  rolodex contact list --user alice
  rolodex contact list --user alice --json`,
	RunE: runContactList,
}

func runContactList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := loginSession(cmd.Context(), store, contactUser)
	if err != nil {
		return err
	}

	list, err := session.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	return printContacts(list)
}
