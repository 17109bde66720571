// Register command creates a new operator account.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/rolodex/internal/accounts"
	"github.com/dukaforge/rolodex/pkg/types"
)

var registerUser string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Register creates a new account with a unique username. The password
is read from the terminal without echo and only its digest is stored.

Example:
  rolodex register --user alice`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerUser, "user", "", "username for the new account")
}

func runRegister(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	username := registerUser
	if username == "" {
		reader := bufio.NewReader(os.Stdin)
		username, err = getSimpleText(reader, "Username", os.Stdout)
		if err != nil {
			return err
		}
	}
	if username == "" {
		return errors.New("username must not be empty")
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	auth := accounts.NewManager(store, logger)
	id, err := auth.Register(cmd.Context(), username, string(password))
	if err != nil {
		if errors.Is(err, types.ErrDuplicateUsername) {
			return fmt.Errorf("username %q is already taken", username)
		}
		return fmt.Errorf("register: %w", err)
	}

	fmt.Printf("Registered %s (user id %d)\n", username, id)
	return nil
}
