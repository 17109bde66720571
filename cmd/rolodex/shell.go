// Shell command: the interactive menu loop. The shell owns all format
// validation and re-prompting; the managers underneath only enforce
// business rules.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/internal/accounts"
	"github.com/dukaforge/rolodex/internal/contacts"
	"github.com/dukaforge/rolodex/internal/export"
	"github.com/dukaforge/rolodex/internal/validate"
	"github.com/dukaforge/rolodex/pkg/types"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Shell starts an interactive session: register or log in, then manage
contacts from a numbered menu until you exit.`,
	RunE: runShell,
}

// shellApp bundles the I/O streams and managers the menu loop works
// with. Tests drive it with in-memory streams.
type shellApp struct {
	reader   *bufio.Reader
	out      io.Writer
	auth     *accounts.Manager
	contacts *contacts.Manager
	logger   *zap.Logger

	// promptPassword is a seam over the terminal password reader.
	promptPassword func(w io.Writer) ([]byte, error)
}

func runShell(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	app := &shellApp{
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		auth:           accounts.NewManager(store, logger),
		contacts:       contacts.NewManager(store, logger),
		logger:         logger,
		promptPassword: getPassword,
	}

	return app.run(cmd.Context())
}

// run drives the outer menu: register, log in, or exit.
func (a *shellApp) run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to rolodex!")

	for {
		fmt.Fprintln(a.out, "\nMenu:")
		fmt.Fprintln(a.out, "1. Register")
		fmt.Fprintln(a.out, "2. Log in")
		fmt.Fprintln(a.out, "3. Exit")

		choice, err := getSimpleText(a.reader, "Choose an action", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			a.register(ctx)
		case "2":
			a.login(ctx)
		case "3":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown choice:", choice)
		}
	}
}

// register prompts for credentials and creates an account. Failures are
// reported and the user returns to the menu.
func (a *shellApp) register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return
	}
	if username == "" {
		fmt.Fprintln(a.out, "Username must not be empty.")
		return
	}

	password, err := a.promptPassword(a.out)
	if err != nil {
		return
	}

	if _, err := a.auth.Register(ctx, username, string(password)); err != nil {
		if errors.Is(err, types.ErrDuplicateUsername) {
			fmt.Fprintln(a.out, "That username is already taken.")
			return
		}
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Registered successfully!")
}

// login authenticates and, on success, enters the contact menu with a
// session bound to the authenticated user.
func (a *shellApp) login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return
	}

	password, err := a.promptPassword(a.out)
	if err != nil {
		return
	}

	userID, ok, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid username or password!")
		return
	}

	sessionID := uuid.NewString()
	a.logger.Info("shell session started",
		zap.String("session_id", sessionID), zap.Int64("user_id", userID))

	fmt.Fprintln(a.out, "Login successful!")
	a.contactMenu(ctx, a.contacts.ForUser(userID))

	a.logger.Info("shell session ended", zap.String("session_id", sessionID))
}

// contactMenu drives the per-user contact loop until logout.
func (a *shellApp) contactMenu(ctx context.Context, session *contacts.Session) {
	for {
		fmt.Fprintln(a.out, "\nContact menu:")
		fmt.Fprintln(a.out, "1. Add contact")
		fmt.Fprintln(a.out, "2. View contacts")
		fmt.Fprintln(a.out, "3. Edit contact")
		fmt.Fprintln(a.out, "4. Delete contact")
		fmt.Fprintln(a.out, "5. Search contacts")
		fmt.Fprintln(a.out, "6. View contact details")
		fmt.Fprintln(a.out, "7. Export contacts")
		fmt.Fprintln(a.out, "8. Log out")

		choice, err := getSimpleText(a.reader, "Choose an action", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.addContact(ctx, session)
		case "2":
			a.viewContacts(ctx, session)
		case "3":
			a.editContact(ctx, session)
		case "4":
			a.deleteContact(ctx, session)
		case "5":
			a.searchContacts(ctx, session)
		case "6":
			a.showContact(ctx, session)
		case "7":
			a.exportContacts(ctx, session)
		case "8":
			return
		default:
			fmt.Fprintln(a.out, "Unknown choice:", choice)
		}
	}
}

func (a *shellApp) addContact(ctx context.Context, session *contacts.Session) {
	for {
		fmt.Fprintln(a.out, "\nAdding a contact:")
		firstName, err := getSimpleText(a.reader, "First name", a.out)
		if err != nil {
			return
		}
		lastName, err := getSimpleText(a.reader, "Last name", a.out)
		if err != nil {
			return
		}
		phone, err := getValidated(a.reader, "Phone number", a.out, false,
			validate.IsValidPhone, "Invalid phone number format, try again.")
		if err != nil {
			return
		}
		email, err := getValidated(a.reader, "Email", a.out, false,
			validate.IsValidEmail, "Invalid email format, try again.")
		if err != nil {
			return
		}

		if _, err := session.Add(ctx, firstName, lastName, phone, email); err != nil {
			if errors.Is(err, types.ErrDuplicatePhone) {
				fmt.Fprintln(a.out, "A contact with that phone number already exists!")
			} else {
				fmt.Fprintln(a.out, "Could not add contact:", err)
			}
		} else {
			fmt.Fprintln(a.out, "Contact added!")
		}

		more, err := getSimpleText(a.reader, "Add another? (y/n)", a.out)
		if err != nil || more != "y" {
			return
		}
	}
}

func (a *shellApp) viewContacts(ctx context.Context, session *contacts.Session) {
	list, err := session.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list contacts:", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Your contact list is empty!")
		return
	}
	fmt.Fprintln(a.out, "\nYour contacts:")
	for _, c := range list {
		fmt.Fprintf(a.out, "ID: %d, Name: %s, Phone: %s\n", c.ID, c.FullName(), c.Phone)
	}
}

func (a *shellApp) editContact(ctx context.Context, session *contacts.Session) {
	a.viewContacts(ctx, session)

	id, ok := a.promptContactID("Contact id to edit")
	if !ok {
		return
	}

	current, err := session.Details(ctx, id)
	if err != nil {
		a.reportLookupErr(id, err)
		return
	}

	fmt.Fprintln(a.out, "Current values:")
	fmt.Fprintln(a.out, "First name:", current.FirstName)
	fmt.Fprintln(a.out, "Last name:", current.LastName)
	fmt.Fprintln(a.out, "Phone:", current.Phone)
	fmt.Fprintln(a.out, "Email:", current.Email)
	fmt.Fprintln(a.out, "\nEnter new values (leave empty to keep the current one):")

	firstName, err := getSimpleText(a.reader, "New first name", a.out)
	if err != nil {
		return
	}
	lastName, err := getSimpleText(a.reader, "New last name", a.out)
	if err != nil {
		return
	}
	phone, err := getValidated(a.reader, "New phone number", a.out, true,
		validate.IsValidPhone, "Invalid phone number format, try again.")
	if err != nil {
		return
	}
	email, err := getValidated(a.reader, "New email", a.out, true,
		validate.IsValidEmail, "Invalid email format, try again.")
	if err != nil {
		return
	}

	if err := session.Edit(ctx, id, firstName, lastName, phone, email); err != nil {
		fmt.Fprintln(a.out, "Could not edit contact:", err)
		return
	}
	fmt.Fprintln(a.out, "Contact updated!")
}

func (a *shellApp) deleteContact(ctx context.Context, session *contacts.Session) {
	id, ok := a.promptContactID("Contact id to delete")
	if !ok {
		return
	}

	confirm, err := getSimpleText(a.reader, "Really delete this contact? (y/n)", a.out)
	if err != nil || confirm != "y" {
		return
	}

	if err := session.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotOwner) {
			fmt.Fprintln(a.out, "That contact belongs to another user!")
			return
		}
		fmt.Fprintln(a.out, "Could not delete contact:", err)
		return
	}
	fmt.Fprintln(a.out, "Contact deleted!")
}

func (a *shellApp) searchContacts(ctx context.Context, session *contacts.Session) {
	query, err := getSimpleText(a.reader, "Search query", a.out)
	if err != nil {
		return
	}

	list, err := session.Search(ctx, query)
	if err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nothing found.")
		return
	}
	for _, c := range list {
		fmt.Fprintf(a.out, "ID: %d, Name: %s, Phone: %s, Email: %s\n",
			c.ID, c.FullName(), c.Phone, c.Email)
	}
}

func (a *shellApp) showContact(ctx context.Context, session *contacts.Session) {
	id, ok := a.promptContactID("Contact id")
	if !ok {
		return
	}

	contact, err := session.Details(ctx, id)
	if err != nil {
		a.reportLookupErr(id, err)
		return
	}

	fmt.Fprintln(a.out, "Contact details:")
	fmt.Fprintln(a.out, "First name:", contact.FirstName)
	fmt.Fprintln(a.out, "Last name:", contact.LastName)
	fmt.Fprintln(a.out, "Phone:", contact.Phone)
	fmt.Fprintln(a.out, "Email:", contact.Email)
}

func (a *shellApp) exportContacts(ctx context.Context, session *contacts.Session) {
	path, err := getSimpleText(a.reader, "Output file (default contacts.xlsx)", a.out)
	if err != nil {
		return
	}
	if path == "" {
		path = "contacts.xlsx"
	}

	list, err := session.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list contacts:", err)
		return
	}
	if err := export.Contacts(path, list); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Exported %d contacts to %s\n", len(list), path)
}

// promptContactID reads and parses a contact id; a bad number is
// reported and aborts the action.
func (a *shellApp) promptContactID(prompt string) (int64, bool) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid contact id:", text)
		return 0, false
	}
	return id, true
}

// reportLookupErr prints the user-facing message for a details lookup
// failure.
func (a *shellApp) reportLookupErr(id int64, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		fmt.Fprintln(a.out, "No contact with that id!")
	case errors.Is(err, types.ErrNotOwner):
		fmt.Fprintln(a.out, "That contact belongs to another user!")
	default:
		fmt.Fprintln(a.out, "Lookup failed:", err)
	}
}
