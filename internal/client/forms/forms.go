// Package forms validates user input before it is dispatched. Invalid
// forms never reach the server; errors are keyed by field so screens
// can surface them inline.
package forms

import (
	"net/mail"
	"strings"
)

// Errors maps a field name to its validation message. A nil or empty
// map means the form is valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) Errors {
	errs := Errors{}
	if !validEmail(strings.TrimSpace(email)) {
		errs["email"] = "Invalid email format"
	}
	if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

// ValidateRegister checks the registration form. The phone number is
// optional and unconstrained, so it is not checked here.
func ValidateRegister(name, email, password, confirm string) Errors {
	errs := Errors{}
	if len(strings.TrimSpace(name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !validEmail(strings.TrimSpace(email)) {
		errs["email"] = "Invalid email format"
	}
	if len(password) < 4 {
		errs["password"] = "Password must be at least 4 characters"
	}
	if password != confirm {
		errs["confirm"] = "Passwords do not match"
	}
	return errs
}
