package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
	MaxPage         = 10000
)

// Query filters the audit trail; zero values mean "any".
type Query struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time // exclusive

	Page  int
	Limit int
}

// Normalize applies the default page and page size and keeps the offset bounded.
func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit <= 0 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
}

// List returns one page of entries, newest first, and the total matching the filters.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	base := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		base = base.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		base = base.Where("created_at < ?", q.To)
	}

	// count and page from the same filters
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
