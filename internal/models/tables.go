package models

// Tables lists every migrated record, parents first.
var Tables = []any{
	&User{},
	&Client{},
	&Service{},
	&Barber{},
	&Appointment{},
	&AuditLog{},
}
