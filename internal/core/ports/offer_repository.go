package ports

import (
	"context"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// OfferRepository is the persistence port for job offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	FindByID(ctx context.Context, id uint) (*domain.Offer, error)
	List(ctx context.Context) ([]domain.Offer, error)
	ListByManagerEmail(ctx context.Context, email string) ([]domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	Delete(ctx context.Context, id uint) error
}

// ApplicationRepository is the persistence port for candidate applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id uint) (*domain.Application, error)
	ExistsForTalentAndOffer(ctx context.Context, talentID, offerID uint) (bool, error)
	ListByOffer(ctx context.Context, offerID uint) ([]domain.Application, error)
	ListByManagerEmail(ctx context.Context, email string) ([]domain.Application, error)
	ListByTalentEmail(ctx context.Context, email string) ([]domain.Application, error)
	Update(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

// NotificationRepository is the persistence port for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByRecipientEmail(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, email string) error
}
