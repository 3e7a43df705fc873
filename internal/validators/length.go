package validators

import "unicode/utf8"

// Column sizes of the text fields users can fill in.
const (
	MaxUsernameLength    = 80
	MaxNameLength        = 120
	MaxPhoneLength       = 50
	MaxEmailLength       = 120
	MaxDescriptionLength = 255
	MaxNotesLength       = 255
)

// TooLong reports whether s holds more than max characters.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
