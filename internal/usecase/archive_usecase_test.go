package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"malharia_pdv/internal/domain/entities"
	mock_interfaces "malharia_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func daysAgo(loc *time.Location, days int) string {
	return time.Now().In(loc).AddDate(0, 0, -days).Format("2006-01-02")
}

func TestArchiveUseCase_Sweep(t *testing.T) {
	loc := testLocation()

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("store"))

		if _, err := uc.Sweep(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("archives delivered orders older than the cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusEntregue, DeliveryDate: daysAgo(loc, 30)},
			{ID: 2, Status: entities.StatusEntregue, DeliveryDate: daysAgo(loc, 9)},
			{ID: 3, Status: entities.StatusPedidos, DeliveryDate: daysAgo(loc, 30)},
			{ID: 4, Status: entities.StatusEntregue, DeliveryDate: ""},
			{ID: 5, Status: entities.StatusArquivado, DeliveryDate: daysAgo(loc, 30)},
		}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), 1, entities.StatusArquivado).Return(true, nil)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checked != 2 {
			t.Fatalf("expected 2 checked, got %d", res.Checked)
		}
		if res.Archived != 1 {
			t.Fatalf("expected 1 archived, got %d", res.Archived)
		}
		if res.Errors != 0 {
			t.Fatalf("expected no errors, got %d", res.Errors)
		}
	})

	t.Run("accepts the alternate date notations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		old := time.Now().In(loc).AddDate(0, 0, -30)
		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusEntregue, DeliveryDate: old.Format("02-01-2006")},
			{ID: 2, Status: entities.StatusEntregue, DeliveryDate: old.Format("02/01/2006")},
			{ID: 3, Status: entities.StatusEntregue, DeliveryDate: old.Format("2006/01/02")},
			{ID: 4, Status: entities.StatusEntregue, DeliveryDate: "  " + old.Format("2006-01-02") + "  "},
		}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.StatusArquivado).Return(true, nil).Times(4)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Archived != 4 {
			t.Fatalf("expected 4 archived, got %d", res.Archived)
		}
	})

	t.Run("unparsable date is counted, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusEntregue, DeliveryDate: "em breve"},
			{ID: 2, Status: entities.StatusEntregue, DeliveryDate: daysAgo(loc, 30)},
		}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), 2, entities.StatusArquivado).Return(true, nil)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Errors != 1 || res.Archived != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("archive failure skips the row and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusEntregue, DeliveryDate: daysAgo(loc, 30)},
			{ID: 2, Status: entities.StatusEntregue, DeliveryDate: daysAgo(loc, 30)},
		}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), 1, entities.StatusArquivado).Return(false, errors.New("store"))
		orders.EXPECT().UpdateStatus(gomock.Any(), 2, entities.StatusArquivado).Return(true, nil)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Errors != 1 || res.Archived != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("rerun with nothing eligible is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusArquivado, DeliveryDate: daysAgo(loc, 30)},
		}, nil)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checked != 0 || res.Archived != 0 {
			t.Fatalf("expected no-op, got %+v", res)
		}
	})
}

func TestArchiveUseCase_Stats(t *testing.T) {
	loc := testLocation()

	t.Run("counts archived rows and month slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		now := time.Now().In(loc)
		thisMonth := now.Format(createdAtLayout)
		lastYear := now.AddDate(-1, 0, 0).Format(createdAtLayout)

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusArquivado, CreatedAt: thisMonth},
			{ID: 2, Status: entities.StatusArquivado, CreatedAt: lastYear},
			{ID: 3, Status: entities.StatusPedidos, CreatedAt: thisMonth},
			{ID: 4, Status: entities.StatusArquivado, CreatedAt: "???"},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalArchived != 3 {
			t.Fatalf("expected 3 archived, got %d", stats.TotalArchived)
		}
		if stats.ArchivedThisMonth != 1 {
			t.Fatalf("expected 1 archived this month, got %d", stats.ArchivedThisMonth)
		}
		want := now.Format(lastArchivedLayout)
		if stats.LastArchivedAt != want {
			t.Fatalf("expected last archived %q, got %q", want, stats.LastArchivedAt)
		}
	})

	t.Run("no archived rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{ID: 1, Status: entities.StatusPedidos},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalArchived != 0 || stats.LastArchivedAt != "" {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})
}

func TestArchiveUseCase_SweepReport(t *testing.T) {
	loc := testLocation()

	t.Run("reports totals before and after", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewArchiveUseCase(orders, loc, zap.NewNop())

		oldDate := daysAgo(loc, 30)
		created := time.Now().In(loc).Format(createdAtLayout)

		before := []entities.Order{
			{ID: 1, Status: entities.StatusArquivado, CreatedAt: created},
			{ID: 2, Status: entities.StatusEntregue, CreatedAt: created, DeliveryDate: oldDate},
		}
		after := []entities.Order{
			{ID: 1, Status: entities.StatusArquivado, CreatedAt: created},
			{ID: 2, Status: entities.StatusArquivado, CreatedAt: created, DeliveryDate: oldDate},
		}

		gomock.InOrder(
			orders.EXPECT().ListAll(gomock.Any()).Return(before, nil),
			orders.EXPECT().ListAll(gomock.Any()).Return(before, nil),
			orders.EXPECT().ListAll(gomock.Any()).Return(after, nil),
		)
		orders.EXPECT().UpdateStatus(gomock.Any(), 2, entities.StatusArquivado).Return(true, nil)

		report, err := uc.SweepReport(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalBefore != 1 || report.TotalAfter != 2 || report.Archived != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}
