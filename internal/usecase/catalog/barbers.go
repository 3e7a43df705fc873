package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

type BarberInput struct {
	Name      string
	Specialty string
}

func (in BarberInput) apply(b *models.Barber) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	specialty := strings.TrimSpace(in.Specialty)
	if validators.TooLong(name, validators.MaxNameLength) || validators.TooLong(specialty, validators.MaxNameLength) {
		return httperr.ErrBusiness(httperr.CodeTooLong)
	}
	b.Name = name
	b.Specialty = specialty
	return nil
}

type Barbers struct {
	repo  catalog.Repository
	audit *audit.Dispatcher
}

func NewBarbers(
	repo catalog.Repository,
	audit *audit.Dispatcher,
) *Barbers {
	return &Barbers{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Barbers) List(ctx context.Context) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx, false)
}

func (uc *Barbers) ListActive(ctx context.Context) ([]models.Barber, error) {
	return uc.repo.ListBarbers(ctx, true)
}

func (uc *Barbers) Get(ctx context.Context, id uint) (*models.Barber, error) {
	b, err := uc.repo.GetBarber(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (uc *Barbers) Create(ctx context.Context, adminID uint, in BarberInput) (*models.Barber, error) {
	b := &models.Barber{IsActive: true}
	if err := in.apply(b); err != nil {
		return nil, err
	}
	if err := uc.repo.CreateBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.record(adminID, "barber_created", b)
	return b, nil
}

func (uc *Barbers) Update(ctx context.Context, adminID uint, id uint, in BarberInput) (*models.Barber, error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(b); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.record(adminID, "barber_updated", b)
	return b, nil
}

func (uc *Barbers) Toggle(ctx context.Context, adminID uint, id uint) (*models.Barber, error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	b.IsActive = !b.IsActive
	if err := uc.repo.SaveBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.record(adminID, "barber_toggled", b)
	return b, nil
}

func (uc *Barbers) Delete(ctx context.Context, adminID uint, id uint) error {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}

	n, err := uc.repo.CountBarberAppointments(ctx, b.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrBusiness(httperr.CodeHasAppointments)
	}

	if err := uc.repo.DeleteBarber(ctx, b.ID); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			return httperr.ErrBusiness(httperr.CodeHasAppointments)
		}
		return err
	}

	uc.record(adminID, "barber_deleted", b)
	return nil
}

func (uc *Barbers) record(adminID uint, action string, b *models.Barber) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"name":      b.Name,
			"is_active": b.IsActive,
		},
	})
}
