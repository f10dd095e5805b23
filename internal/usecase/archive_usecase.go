package usecase

import (
	"context"
	"strings"
	"time"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Orders delivered more than this many whole days ago are archived.
const archiveAfterDays = 10

// deliveryDateLayouts are tried in order until one parses. The sheet holds
// whatever the operator typed, so several notations coexist.
var deliveryDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

const lastArchivedLayout = "02/01/2006 15:04"

// SweepReport compares the archive statistics before and after one sweep.

type SweepReport struct {
	Archived    int `json:"archived"`
	TotalBefore int `json:"total_before"`
	TotalAfter  int `json:"total_after"`
}

// IArchiveUseCase owns the archival side of the order lifecycle: the sweep
// that demotes aged delivered orders and the statistics over archived rows.
//
// The sweep is idempotent. It only selects Entregue rows, so rows it already
// moved to Arquivado are never selected again and a re-run with no
// intervening writes is a no-op.

type IArchiveUseCase interface {
	Sweep(ctx context.Context) (entities.SweepResult, error)
	Stats(ctx context.Context) (entities.ArchiveStats, error)
	SweepReport(ctx context.Context) (SweepReport, error)
}

type ArchiveUseCase struct {
	orders interfaces.IOrderRepository
	loc    *time.Location
	log    *zap.Logger
}

var _ IArchiveUseCase = (*ArchiveUseCase)(nil)

func NewArchiveUseCase(orders interfaces.IOrderRepository, loc *time.Location, log *zap.Logger) *ArchiveUseCase {
	return &ArchiveUseCase{orders: orders, loc: loc, log: log}
}

func (u *ArchiveUseCase) Sweep(ctx context.Context) (entities.SweepResult, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return entities.SweepResult{}, err
	}

	now := time.Now().In(u.loc)
	var res entities.SweepResult

	for _, o := range orders {
		if o.Status != entities.StatusEntregue || strings.TrimSpace(o.DeliveryDate) == "" {
			continue
		}
		res.Checked++

		delivered, ok := u.parseDeliveryDate(o.DeliveryDate)
		if !ok {
			// Unparsable dates are counted, never fatal.
			res.Errors++
			u.log.Warn("skipping order with unparsable delivery date",
				zap.Int("order_id", o.ID),
				zap.String("delivery_date", o.DeliveryDate),
			)
			continue
		}

		if wholeDays(now.Sub(delivered)) <= archiveAfterDays {
			continue
		}

		found, err := u.orders.UpdateStatus(ctx, o.ID, entities.StatusArquivado)
		if err != nil {
			res.Errors++
			u.log.Error("failed archiving order", zap.Int("order_id", o.ID), zap.Error(err))
			continue
		}
		if found {
			res.Archived++
		}
	}

	if res.Checked > 0 {
		u.log.Info("archive sweep finished",
			zap.Int("checked", res.Checked),
			zap.Int("archived", res.Archived),
			zap.Int("errors", res.Errors),
		)
	}
	return res, nil
}

func (u *ArchiveUseCase) Stats(ctx context.Context) (entities.ArchiveStats, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return entities.ArchiveStats{}, err
	}

	now := time.Now().In(u.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, u.loc)

	var stats entities.ArchiveStats
	var latest time.Time

	for _, o := range orders {
		if o.Status != entities.StatusArquivado {
			continue
		}
		stats.TotalArchived++

		created, err := time.ParseInLocation(createdAtLayout, o.CreatedAt, u.loc)
		if err != nil {
			u.log.Warn("skipping archived order with bad creation timestamp",
				zap.Int("order_id", o.ID),
				zap.String("created_at", o.CreatedAt),
			)
			continue
		}
		if created.After(monthStart) {
			stats.ArchivedThisMonth++
		}
		if created.After(latest) {
			latest = created
		}
	}

	if !latest.IsZero() {
		stats.LastArchivedAt = latest.Format(lastArchivedLayout)
	}
	return stats, nil
}

func (u *ArchiveUseCase) SweepReport(ctx context.Context) (SweepReport, error) {
	before, err := u.Stats(ctx)
	if err != nil {
		return SweepReport{}, err
	}
	if _, err := u.Sweep(ctx); err != nil {
		return SweepReport{}, err
	}
	after, err := u.Stats(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	return SweepReport{
		Archived:    after.TotalArchived - before.TotalArchived,
		TotalBefore: before.TotalArchived,
		TotalAfter:  after.TotalArchived,
	}, nil
}

func (u *ArchiveUseCase) parseDeliveryDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range deliveryDateLayouts {
		if t, err := time.ParseInLocation(layout, s, u.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
