package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	assert.True(t, ValidateLogin("budi@example.com", "secret1").Valid())

	errs := ValidateLogin("not-an-email", "short")
	assert.False(t, errs.Valid())
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestValidateRegister(t *testing.T) {
	assert.True(t, ValidateRegister("Budi", "budi@example.com", "pass", "pass").Valid())

	errs := ValidateRegister("B", "nope", "abc", "abcd")
	assert.False(t, errs.Valid())
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "confirm")
}

func TestValidateRegister_ConfirmMismatchOnly(t *testing.T) {
	errs := ValidateRegister("Budi", "budi@example.com", "password1", "password2")
	assert.Equal(t, Errors{"confirm": "Passwords do not match"}, errs)
}
