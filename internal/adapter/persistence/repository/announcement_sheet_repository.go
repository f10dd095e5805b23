package repository

import (
	"context"
	"errors"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/infrastructure/sheetstore"
	"malharia_pdv/internal/usecase/interfaces"
)

const sheetAnnouncements = "Avisos"

// Avisos column contract, 0-indexed from column A.
const (
	colAvisoCreatedAt = iota
	colAvisoRecipient
	colAvisoWhatsApp
	colAvisoText

	announcementColumns
)

// AnnouncementSheetRepository maps Avisos rows into Announcement entities.
// Deletion clears the row in place, leaving a blank slot List filters out;
// the remaining announcements keep their physical positions.

type AnnouncementSheetRepository struct {
	store sheetstore.RowStore
}

var _ interfaces.IAnnouncementRepository = (*AnnouncementSheetRepository)(nil)

func NewAnnouncementSheetRepository(store sheetstore.RowStore) *AnnouncementSheetRepository {
	return &AnnouncementSheetRepository{store: store}
}

func (r *AnnouncementSheetRepository) List(ctx context.Context) ([]entities.Announcement, error) {
	rows, err := r.store.GetRows(ctx, sheetAnnouncements)
	if err != nil {
		return nil, err
	}

	var out []entities.Announcement
	for _, row := range rows {
		a := entities.Announcement{
			Row:       row.Index,
			CreatedAt: cell(row.Cells, colAvisoCreatedAt),
			Recipient: cell(row.Cells, colAvisoRecipient),
			WhatsApp:  cell(row.Cells, colAvisoWhatsApp),
			Text:      cell(row.Cells, colAvisoText),
		}
		if a.CreatedAt == "" || a.Text == "" {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AnnouncementSheetRepository) Append(ctx context.Context, a entities.Announcement) error {
	row := make([]string, announcementColumns)
	row[colAvisoCreatedAt] = a.CreatedAt
	row[colAvisoRecipient] = a.Recipient
	row[colAvisoWhatsApp] = a.WhatsApp
	row[colAvisoText] = a.Text
	return r.store.AppendRows(ctx, sheetAnnouncements, [][]string{row})
}

func (r *AnnouncementSheetRepository) ClearAt(ctx context.Context, row int) error {
	err := r.store.ClearRange(ctx, sheetAnnouncements, row, announcementColumns)
	if errors.Is(err, sheetstore.ErrRowNotFound) {
		// Clearing a slot that was never written matches the sheet's
		// behavior of clearing an already-empty range.
		return nil
	}
	return err
}
