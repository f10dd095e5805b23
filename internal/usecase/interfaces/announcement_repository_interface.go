package interfaces

import (
	"context"

	"malharia_pdv/internal/domain/entities"
)

// IAnnouncementRepository abstracts the Avisos sheet.
//
// An announcement's identity is its physical row. ClearAt blanks the row's
// cells without removing it, so every other announcement keeps its position;
// List skips rows whose date or text is empty, which hides both cleared rows
// and half-filled ones.

type IAnnouncementRepository interface {
	List(ctx context.Context) ([]entities.Announcement, error)
	Append(ctx context.Context, a entities.Announcement) error
	ClearAt(ctx context.Context, row int) error
}
