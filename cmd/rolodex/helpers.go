// Shared helpers for rolodex CLI commands.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/rolodex/internal/accounts"
	"github.com/dukaforge/rolodex/internal/contacts"
	"github.com/dukaforge/rolodex/internal/sqlite"
	"github.com/dukaforge/rolodex/pkg/types"
)

// openStore resolves the data directory, creates a SQLite store, and
// opens it. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore(logger)
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// promptCredentials reads the username from the --user flag (prompting
// when empty) and reads the password without echo.
func promptCredentials(username string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		var err error
		username, err = getSimpleText(reader, "Username", os.Stdout)
		if err != nil {
			return "", "", err
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", "", err
	}

	return username, string(password), nil
}

// loginSession authenticates with the store and returns a contact
// session bound to the authenticated user. Invalid credentials are an
// error here: a one-shot command has no prompt loop to fall back to.
func loginSession(ctx context.Context, store types.Store, username string) (*contacts.Session, error) {
	username, password, err := promptCredentials(username)
	if err != nil {
		return nil, err
	}

	auth := accounts.NewManager(store, logger)
	userID, ok, err := auth.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, errors.New("invalid username or password")
	}

	return contacts.NewManager(store, logger).ForUser(userID), nil
}

// printContacts renders a contact list as text or JSON depending on the
// --json flag.
func printContacts(list []types.Contact) error {
	if flagJSON {
		out, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contacts: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(list) == 0 {
		fmt.Println("No contacts.")
		return nil
	}
	for _, c := range list {
		fmt.Printf("ID: %d, Name: %s, Phone: %s\n", c.ID, c.FullName(), c.Phone)
	}
	return nil
}

// printContact renders a single contact in detail form.
func printContact(c *types.Contact) error {
	if flagJSON {
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("ID:         %d\n", c.ID)
	fmt.Printf("First name: %s\n", c.FirstName)
	fmt.Printf("Last name:  %s\n", c.LastName)
	fmt.Printf("Phone:      %s\n", c.Phone)
	fmt.Printf("Email:      %s\n", c.Email)
	return nil
}
