package httperr

import "errors"

const (
	CodeMissingFields      = "missing_fields"
	CodeNotFound           = "not_found"
	CodeInvalidDateTime    = "invalid_date_or_time"
	CodePastDate           = "past_date"
	CodeSlotConflict       = "slot_conflict"
	CodeValidation         = "validation_error"
	CodeTooLong            = "too_long"
	CodeMissingCredentials = "missing_credentials"
	CodeUsernameTooShort   = "username_too_short"
	CodeUsernameTooLong    = "username_too_long"
	CodePasswordTooShort   = "password_too_short"
	CodeUsernameTaken      = "username_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeHasAppointments    = "has_appointments"
	CodeNoClientProfile    = "no_client_profile"
	CodeNotOwner           = "not_owner"
	CodeAppointmentInPast  = "appointment_in_past"
	CodeInvalidStatus      = "invalid_status"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" for any other error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
