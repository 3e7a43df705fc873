package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// NormalizeCredentials trims both fields the way registration and login read them.
func NormalizeCredentials(username, password string) (string, string) {
	return strings.TrimSpace(username), strings.TrimSpace(password)
}

// ValidateRegistration checks already normalized credentials; the first failing rule wins.
func ValidateRegistration(username, password string) error {
	if username == "" || password == "" {
		return httperr.ErrBusiness(httperr.CodeMissingCredentials)
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return httperr.ErrBusiness(httperr.CodeUsernameTooShort)
	}
	if TooLong(username, MaxUsernameLength) {
		return httperr.ErrBusiness(httperr.CodeUsernameTooLong)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return httperr.ErrBusiness(httperr.CodePasswordTooShort)
	}
	return nil
}
