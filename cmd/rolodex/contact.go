// Contact command group: one-shot CRUD and search operations.
// Every subcommand authenticates first; field validation happens here at
// the boundary, so the managers only see well-formed input.
package main

import "github.com/spf13/cobra"

// contactUser is the --user flag shared by all contact subcommands.
var contactUser string

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

func init() {
	contactCmd.PersistentFlags().StringVar(&contactUser, "user", "", "account username (prompted when omitted)")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactEditCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactSearchCmd)
	contactCmd.AddCommand(contactShowCmd)
}
