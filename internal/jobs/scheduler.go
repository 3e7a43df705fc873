package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
)

// Start schedules the maintenance jobs and starts the cron runner.
func Start(loc *time.Location, auditLogger *audit.Logger, retentionDays int) (*cron.Cron, error) {
	sched := cron.New(cron.WithLocation(loc))

	if _, err := sched.AddFunc("@daily", func() {
		PurgeAuditLogs(context.Background(), auditLogger, retentionDays, time.Now())
	}); err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

// PurgeAuditLogs drops audit rows older than the retention window measured from now.
func PurgeAuditLogs(ctx context.Context, l *audit.Logger, retentionDays int, now time.Time) {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	cutoff := now.AddDate(0, 0, -retentionDays)
	n, err := l.Purge(ctx, cutoff)
	if err != nil {
		zap.L().Error("audit purge failed", zap.Error(err))
		return
	}

	zap.L().Info("audit logs purged", zap.Int64("rows", n), zap.Time("before", cutoff))
}
