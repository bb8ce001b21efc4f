package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// OfferService implements job-offer use cases. Publishing an offer fans a
// notification out to every talent.
type OfferService struct {
	offers   ports.OfferRepository
	managers ports.ManagerRepository
	users    ports.UserRepository
	notifier Notifier
	log      zerolog.Logger
}

var _ ports.OfferService = (*OfferService)(nil)

func NewOfferService(
	offers ports.OfferRepository,
	managers ports.ManagerRepository,
	users ports.UserRepository,
	notifier Notifier,
	log zerolog.Logger,
) *OfferService {
	return &OfferService{
		offers:   offers,
		managers: managers,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

func (s *OfferService) Create(ctx context.Context, in ports.CreateOfferInput) (*domain.Offer, error) {
	manager, err := s.managers.FindByEmail(ctx, in.ManagerEmail)
	if err != nil {
		return nil, err
	}

	modality := domain.Modality(in.Modality)
	if modality == "" {
		modality = domain.ModalityOnSite
	}

	now := time.Now().UTC()
	offer := &domain.Offer{
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		BasicSalary:    in.BasicSalary,
		CompanyName:    manager.Company.Name,
		SectorActivity: in.SectorActivity,
		StudyLevel:     in.StudyLevel,
		Experience:     in.Experience,
		Skills:         in.Skills,
		Modality:       modality,
		Status:         domain.OfferOpen,
		FlexibleHours:  in.FlexibleHours,
		OfferURL:       in.OfferURL,
		PublishedAt:    now,
		ExpiresAt:      in.ExpiresAt,
		ManagerID:      manager.ID,
	}

	created, err := s.offers.Create(ctx, offer)
	if err != nil {
		return nil, err
	}

	s.notifyTalents(ctx, created)
	s.log.Info().Uint("offer_id", created.ID).Str("manager", in.ManagerEmail).Msg("offer published")
	return created, nil
}

func (s *OfferService) Get(ctx context.Context, id uint) (*domain.Offer, error) {
	return s.offers.FindByID(ctx, id)
}

func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx)
}

func (s *OfferService) ListByManagerEmail(ctx context.Context, email string) ([]domain.Offer, error) {
	return s.offers.ListByManagerEmail(ctx, email)
}

// Update patches an offer. A manager may only touch their own offers; an
// empty managerEmail means the caller is an administrator.
func (s *OfferService) Update(ctx context.Context, id uint, managerEmail string, in ports.UpdateOfferInput) (*domain.Offer, error) {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if managerEmail != "" && offer.Manager.User.Email != managerEmail {
		return nil, domain.ErrForbidden
	}

	if in.Title != "" {
		offer.Title = in.Title
	}
	if in.Description != "" {
		offer.Description = in.Description
	}
	if in.Location != "" {
		offer.Location = in.Location
	}
	if in.BasicSalary != nil {
		offer.BasicSalary = in.BasicSalary
	}
	if in.SectorActivity != "" {
		offer.SectorActivity = in.SectorActivity
	}
	if in.StudyLevel != "" {
		offer.StudyLevel = in.StudyLevel
	}
	if in.Experience != "" {
		offer.Experience = in.Experience
	}
	if in.Skills != "" {
		offer.Skills = in.Skills
	}
	if in.Modality != "" {
		offer.Modality = domain.Modality(in.Modality)
	}
	if in.Status != "" {
		offer.Status = domain.OfferStatus(in.Status)
	}
	if in.FlexibleHours != nil {
		offer.FlexibleHours = *in.FlexibleHours
	}
	if in.OfferURL != "" {
		offer.OfferURL = in.OfferURL
	}
	if in.ExpiresAt != nil {
		offer.ExpiresAt = in.ExpiresAt
	}

	updated, err := s.offers.Update(ctx, offer)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("offer_id", id).Msg("offer updated")
	return updated, nil
}

func (s *OfferService) Delete(ctx context.Context, id uint, managerEmail string) error {
	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if managerEmail != "" && offer.Manager.User.Email != managerEmail {
		return domain.ErrForbidden
	}
	if err := s.offers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("offer_id", id).Msg("offer deleted")
	return nil
}

func (s *OfferService) notifyTalents(ctx context.Context, offer *domain.Offer) {
	talents, err := s.users.ListByRoleName(ctx, domain.RoleTalent)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not list talents for offer notification")
		return
	}
	message := fmt.Sprintf("New offer: %s at %s", offer.Title, offer.CompanyName)
	link := fmt.Sprintf("/offers/%d", offer.ID)
	for _, t := range talents {
		s.notifier.Notify(ports.NotificationInput{
			RecipientEmail: t.Email,
			Type:           domain.NotifNewOfferCreated,
			Message:        message,
			Link:           link,
		})
	}
}
