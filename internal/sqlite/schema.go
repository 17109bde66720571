// Schema DDL for the rolodex database. All statements are idempotent so
// opening an already-initialized store is safe.
package sqlite

const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);`

	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);`
)

const (
	idxContactsUser = `CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createContacts,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContactsUser,
}
