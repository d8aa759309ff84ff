package analyses

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validEmail does syntactic validation only. Beyond the standard check it
// requires a dot in the domain part, so "user@localhost" is rejected.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	if err := validate.Var(email, "email"); err != nil {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
