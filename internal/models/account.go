package models

import (
	"fmt"
	"strings"
)

// Account fields that can be edited by name.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldUsername  = "username"
	FieldPassword  = "password"
)

// EditableFields lists the fields accepted by Account.Set, in menu order.
var EditableFields = []string{FieldFirstName, FieldLastName, FieldUsername, FieldPassword}

// Account is a registered user. Passwords are stored verbatim.
type Account struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

func (a Account) String() string {
	if a.IsAdmin {
		return a.Username + " (Admin)"
	}
	return a.Username
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("account with empty username")
	}
	return nil
}

// Set assigns value to the named field and reports whether the field exists.
func (a *Account) Set(field, value string) bool {
	switch field {
	case FieldFirstName:
		a.FirstName = value
	case FieldLastName:
		a.LastName = value
	case FieldUsername:
		a.Username = value
	case FieldPassword:
		a.Password = value
	default:
		return false
	}
	return true
}
