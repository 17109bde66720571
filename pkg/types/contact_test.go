package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactFullName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"both names", Contact{FirstName: "Ivan", LastName: "Petrov"}, "Ivan Petrov"},
		{"first only", Contact{FirstName: "Ivan"}, "Ivan"},
		{"last only", Contact{LastName: "Petrov"}, "Petrov"},
		{"neither", Contact{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.FullName())
		})
	}
}

func TestContactMatches(t *testing.T) {
	c := Contact{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+7 916 1234567",
		Email:     "ivan@gogle.com",
	}

	assert.True(t, c.Matches("Ivan"))
	assert.True(t, c.Matches("Petr"))
	assert.True(t, c.Matches("916"))
	assert.True(t, c.Matches("gogle"))
	assert.True(t, c.Matches(""), "empty query matches everything")

	assert.False(t, c.Matches("ivan@yandex"))
	assert.False(t, c.Matches("IVAN"), "matching is case-sensitive")
}
