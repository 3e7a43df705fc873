package catalog

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// ServiceInput carries the raw form values; Duration and Price are parsed here.
type ServiceInput struct {
	Name        string
	Description string
	Duration    string
	Price       string
}

func (in ServiceInput) apply(s *models.Service) error {
	name := strings.TrimSpace(in.Name)
	duration := strings.TrimSpace(in.Duration)
	price := strings.TrimSpace(in.Price)

	if name == "" || duration == "" || price == "" {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}

	description := strings.TrimSpace(in.Description)
	if validators.TooLong(name, validators.MaxNameLength) ||
		validators.TooLong(description, validators.MaxDescriptionLength) {
		return httperr.ErrBusiness(httperr.CodeTooLong)
	}

	minutes, err := strconv.Atoi(duration)
	if err != nil || minutes <= 0 {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	amount, err := strconv.ParseFloat(strings.Replace(price, ",", ".", 1), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	s.Name = name
	s.Description = description
	s.DurationMinutes = minutes
	s.Price = amount
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type Services struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewServices(
	repo catalog.Repository,
	audit *audit.Dispatcher,
) *Services {
	return &Services{
		repo:  repo,
		audit: audit,
	}
}

// List returns every service, newest first.
func (uc *Services) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, false)
}

func (uc *Services) ListActive(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, true)
}

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (uc *Services) Create(
	ctx context.Context,
	adminID uint,
	in ServiceInput,
) (*models.Service, error) {

	s := &models.Service{IsActive: true}
	if err := in.apply(s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(adminID, "service_created", s)
	return s, nil
}

// Update overwrites every editable field.
func (uc *Services) Update(
	ctx context.Context,
	adminID uint,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(s); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(adminID, "service_updated", s)
	return s, nil
}

func (uc *Services) Toggle(
	ctx context.Context,
	adminID uint,
	id uint,
) (*models.Service, error) {

	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.IsActive = !s.IsActive
	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(adminID, "service_toggled", s)
	return s, nil
}

// Delete removes a service nobody booked; booked ones can only be deactivated.
func (uc *Services) Delete(
	ctx context.Context,
	adminID uint,
	id uint,
) error {

	s, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}

	n, err := uc.repo.CountServiceAppointments(ctx, s.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrBusiness(httperr.CodeHasAppointments)
	}

	if err := uc.repo.DeleteService(ctx, s.ID); err != nil {
		// a booking slipped in after the count
		if httperr.IsForeignKeyViolation(err) {
			return httperr.ErrBusiness(httperr.CodeHasAppointments)
		}
		return err
	}

	uc.record(adminID, "service_deleted", s)
	return nil
}

func (uc *Services) record(adminID uint, action string, s *models.Service) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"name":      s.Name,
			"is_active": s.IsActive,
		},
	})
}

func notFound(err error) error {
	if httperr.IsNotFound(err) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}
