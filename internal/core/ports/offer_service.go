package ports

import (
	"context"
	"time"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// CreateOfferInput carries all data needed to publish a new offer. The
// manager is resolved from the authenticated caller, never from the payload.
type CreateOfferInput struct {
	ManagerEmail   string
	Title          string
	Description    string
	Location       string
	BasicSalary    *float64
	SectorActivity string
	StudyLevel     string
	Experience     string
	Skills         string
	Modality       string
	FlexibleHours  bool
	OfferURL       string
	ExpiresAt      *time.Time
}

// UpdateOfferInput carries mutable offer fields.
type UpdateOfferInput struct {
	Title          string
	Description    string
	Location       string
	BasicSalary    *float64
	SectorActivity string
	StudyLevel     string
	Experience     string
	Skills         string
	Modality       string
	Status         string
	FlexibleHours  *bool
	OfferURL       string
	ExpiresAt      *time.Time
}

// OfferService defines use-case operations for job offers.
type OfferService interface {
	Create(ctx context.Context, in CreateOfferInput) (*domain.Offer, error)
	Get(ctx context.Context, id uint) (*domain.Offer, error)
	List(ctx context.Context) ([]domain.Offer, error)
	ListByManagerEmail(ctx context.Context, email string) ([]domain.Offer, error)
	Update(ctx context.Context, id uint, managerEmail string, in UpdateOfferInput) (*domain.Offer, error)
	Delete(ctx context.Context, id uint, managerEmail string) error
}

// SubmitApplicationInput carries a talent's candidacy for an offer.
type SubmitApplicationInput struct {
	TalentEmail     string
	OfferID         uint
	CoverLetterPath string
	Notes           string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*domain.Application, error)
	ListByOffer(ctx context.Context, offerID uint) ([]domain.Application, error)
	ListByManagerEmail(ctx context.Context, email string) ([]domain.Application, error)
	ListByTalentEmail(ctx context.Context, email string) ([]domain.Application, error)
	// UpdateStatus advances the application state machine on behalf of the
	// offer's manager and notifies the talent.
	UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus, notes string) (*domain.Application, error)
}
