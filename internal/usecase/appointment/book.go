package appointment

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/timezone"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID uint

	FullName string
	Phone    string
	Email    string

	ServiceID string
	BarberID  string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Notes = strings.TrimSpace(in.Notes)

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.FullName == "" || in.Phone == "" ||
		strings.TrimSpace(in.ServiceID) == "" || strings.TrimSpace(in.BarberID) == "" ||
		strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingFields)
	}

	if validators.TooLong(in.FullName, validators.MaxNameLength) ||
		validators.TooLong(in.Phone, validators.MaxPhoneLength) ||
		validators.TooLong(in.Email, validators.MaxEmailLength) ||
		validators.TooLong(in.Notes, validators.MaxNotesLength) {
		return nil, httperr.ErrBusiness(httperr.CodeTooLong)
	}

	// --------------------------------------------------
	// 2️⃣ Serviço e barbeiro
	// --------------------------------------------------
	service, err := uc.resolveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	barber, err := uc.resolveBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(uc.loc, strings.TrimSpace(in.Date), strings.TrimSpace(in.Time))
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	// --------------------------------------------------
	// 4️⃣ Passado
	// --------------------------------------------------
	if start.Before(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// --------------------------------------------------
	// 5️⃣ Cliente + conflito + criação, numa transação
	// --------------------------------------------------
	ap := &models.Appointment{
		ServiceID: service.ID,
		BarberID:  barber.ID,
		StartTime: start,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	var created bool
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.AssertSlotFree(ctx, barber.ID, start); err != nil {
			return err
		}

		client, isNew, err := findOrCreateClient(ctx, tx, in)
		if err != nil {
			return err
		}
		created = isNew
		ap.ClientID = client.ID

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	if created {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "client_created",
			Entity:   "client",
			EntityID: &ap.ClientID,
		})
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"service_id": service.ID,
			"barber_id":  barber.ID,
			"start_time": ap.StartTime,
		},
	})

	return ap, nil
}

// findOrCreateClient never updates an existing profile with the submitted values.
func findOrCreateClient(
	ctx context.Context,
	tx domain.Repository,
	in BookAppointmentInput,
) (*models.Client, bool, error) {

	client, err := tx.FindClientByUser(ctx, in.UserID)
	if err == nil {
		return client, false, nil
	}
	if !httperr.IsNotFound(err) {
		return nil, false, err
	}

	client = &models.Client{
		UserID:   in.UserID,
		FullName: in.FullName,
		Phone:    in.Phone,
		Email:    in.Email,
	}
	if err := tx.CreateClient(ctx, client); err != nil {
		return nil, false, err
	}
	return client, true, nil
}

func (uc *BookAppointment) resolveService(ctx context.Context, raw string) (*models.Service, error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	service, err := uc.repo.GetService(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return service, nil
}

func (uc *BookAppointment) resolveBarber(ctx context.Context, raw string) (*models.Barber, error) {
	id, ok := parseID(raw)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	barber, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return barber, nil
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
