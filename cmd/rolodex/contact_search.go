// Contact search command finds contacts by substring.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var contactSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search your contacts",
	Long: `Search returns your contacts whose first name, last name, phone, or
email contains the query as a case-sensitive substring.

Example:
  rolodex contact search --user alice Ivan`,
	Args: cobra.ExactArgs(1),
	RunE: runContactSearch,
}

func runContactSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := loginSession(cmd.Context(), store, contactUser)
	if err != nil {
		return err
	}

	list, err := session.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search contacts: %w", err)
	}

	return printContacts(list)
}
