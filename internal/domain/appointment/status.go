package appointment

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

// Status is free text set by admins; the constants below are the values the
// application itself writes or knows how to label.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
	StatusCompleted Status = "completada"
)

// MaxStatusLength matches the appointments.status column.
const MaxStatusLength = 20

var labels = map[Status]string{
	StatusPending:   "Pendiente",
	StatusConfirmed: "Confirmada",
	StatusCancelled: "Cancelada",
	StatusCompleted: "Completada",
}

func InitialStatus() Status {
	return StatusPending
}

// KnownStatuses is the order used by the admin status menu.
func KnownStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

// ParseStatus accepts any non-empty value that fits the column.
func ParseStatus(raw string) (Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" || utf8.RuneCountInString(s) > MaxStatusLength {
		return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	return Status(s), nil
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}
