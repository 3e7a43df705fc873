package dto

import "time"

// AppointmentListDTO is one row of the admin and client appointment tables.
// StartTime is already in the shop's location.
type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email"`
	ServiceName string    `json:"service_name"`
	BarberName  string    `json:"barber_name"`
	Notes       string    `json:"notes"`
	Cancellable bool      `json:"cancellable"`
}
