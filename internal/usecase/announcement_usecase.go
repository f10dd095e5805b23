package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"malharia_pdv/internal/domain/entities"
	"malharia_pdv/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidAnnouncement    = errors.New("invalid announcement input")
	ErrInvalidAnnouncementRow = errors.New("invalid announcement row")
)

// IAnnouncementUseCase manages the Avisos board.

type IAnnouncementUseCase interface {
	List(ctx context.Context) ([]entities.Announcement, error)
	Create(ctx context.Context, recipient, whatsapp, text string) (entities.Announcement, error)
	Delete(ctx context.Context, row int) error
}

type AnnouncementUseCase struct {
	announcements interfaces.IAnnouncementRepository
	loc           *time.Location
	log           *zap.Logger
}

var _ IAnnouncementUseCase = (*AnnouncementUseCase)(nil)

func NewAnnouncementUseCase(announcements interfaces.IAnnouncementRepository, loc *time.Location, log *zap.Logger) *AnnouncementUseCase {
	return &AnnouncementUseCase{announcements: announcements, loc: loc, log: log}
}

func (u *AnnouncementUseCase) List(ctx context.Context) ([]entities.Announcement, error) {
	return u.announcements.List(ctx)
}

func (u *AnnouncementUseCase) Create(ctx context.Context, recipient, whatsapp, text string) (entities.Announcement, error) {
	if strings.TrimSpace(text) == "" {
		return entities.Announcement{}, ErrInvalidAnnouncement
	}

	a := entities.Announcement{
		CreatedAt: time.Now().In(u.loc).Format(createdAtLayout),
		Recipient: recipient,
		WhatsApp:  whatsapp,
		Text:      text,
	}
	if err := u.announcements.Append(ctx, a); err != nil {
		return entities.Announcement{}, err
	}

	u.log.Info("announcement created", zap.String("recipient", recipient))
	return a, nil
}

func (u *AnnouncementUseCase) Delete(ctx context.Context, row int) error {
	// Data rows start at 2; the only identity an announcement has is its
	// physical position.
	if row < 2 {
		return ErrInvalidAnnouncementRow
	}
	if err := u.announcements.ClearAt(ctx, row); err != nil {
		return err
	}

	u.log.Info("announcement cleared", zap.Int("row", row))
	return nil
}
