package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// ApplicationService implements candidacy use cases.
type ApplicationService struct {
	applications ports.ApplicationRepository
	offers       ports.OfferRepository
	talents      ports.TalentRepository
	notifier     Notifier
	log          zerolog.Logger
}

var _ ports.ApplicationService = (*ApplicationService)(nil)

func NewApplicationService(
	applications ports.ApplicationRepository,
	offers ports.OfferRepository,
	talents ports.TalentRepository,
	notifier Notifier,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		offers:       offers,
		talents:      talents,
		notifier:     notifier,
		log:          log,
	}
}

// Submit records a talent's candidacy. A talent applies to an offer at most
// once, and only while the offer is open.
func (s *ApplicationService) Submit(ctx context.Context, in ports.SubmitApplicationInput) (*domain.Application, error) {
	talent, err := s.talents.FindByEmail(ctx, in.TalentEmail)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.FindByID(ctx, in.OfferID)
	if err != nil {
		return nil, err
	}
	if !offer.Acceptable(time.Now().UTC()) {
		return nil, domain.ErrOfferClosed
	}

	exists, err := s.applications.ExistsForTalentAndOffer(ctx, talent.ID, offer.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	now := time.Now().UTC()
	created, err := s.applications.Create(ctx, &domain.Application{
		TalentID:        talent.ID,
		OfferID:         offer.ID,
		Status:          domain.ApplicationPending,
		CoverLetterPath: in.CoverLetterPath,
		Notes:           in.Notes,
		AppliedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientEmail: offer.Manager.User.Email,
		Type:           domain.NotifNewCandidateApplication,
		Message:        fmt.Sprintf("New application for %q from %s", offer.Title, in.TalentEmail),
		Link:           fmt.Sprintf("/applications/%d", offer.ID),
	})
	s.notifier.Notify(ports.NotificationInput{
		RecipientEmail: in.TalentEmail,
		Type:           domain.NotifApplicationSubmitted,
		Message:        fmt.Sprintf("Your application for %q was submitted.", offer.Title),
		EmailSubject:   "Application submitted",
	})

	s.log.Info().Uint("offer_id", offer.ID).Str("talent", in.TalentEmail).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) ListByOffer(ctx context.Context, offerID uint) ([]domain.Application, error) {
	return s.applications.ListByOffer(ctx, offerID)
}

func (s *ApplicationService) ListByManagerEmail(ctx context.Context, email string) ([]domain.Application, error) {
	return s.applications.ListByManagerEmail(ctx, email)
}

func (s *ApplicationService) ListByTalentEmail(ctx context.Context, email string) ([]domain.Application, error) {
	return s.applications.ListByTalentEmail(ctx, email)
}

// UpdateStatus advances the application state machine and tells the talent.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus, notes string) (*domain.Application, error) {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, app.Status, status)
	}

	app.Status = status
	if notes != "" {
		app.Notes = notes
	}
	app.UpdatedAt = time.Now().UTC()

	updated, err := s.applications.Update(ctx, app)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		RecipientEmail: updated.Talent.User.Email,
		Type:           domain.NotifApplicationStatusUpdate,
		Message:        fmt.Sprintf("Your application for %q is now %s.", updated.Offer.Title, status),
		EmailSubject:   "Application update",
	})

	s.log.Info().Uint("application_id", id).Str("status", string(status)).Msg("application status updated")
	return updated, nil
}
