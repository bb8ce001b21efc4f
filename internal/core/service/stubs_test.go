package service

import (
	"context"
	"time"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// Shared hand-rolled stubs for the service tests. Only the hooks a test sets
// are exercised; everything else returns a benign default.

type stubUserRepo struct {
	findByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn        func(ctx context.Context, id uint) (*domain.User, error)
	listByRoleFn      func(ctx context.Context, role string) ([]domain.User, error)
	createFn          func(ctx context.Context, user *domain.User) (*domain.User, error)
	updateFn          func(ctx context.Context, user *domain.User) (*domain.User, error)
	updateLastLoginFn func(ctx context.Context, id uint, at time.Time) error
	deleteFn          func(ctx context.Context, id uint) error
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubUserRepo) ListByStatus(ctx context.Context, status domain.AcceptanceStatus) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) ListByRoleName(ctx context.Context, role string) ([]domain.User, error) {
	if s.listByRoleFn == nil {
		return nil, nil
	}
	return s.listByRoleFn(ctx, role)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.createFn == nil {
		return user, nil
	}
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if s.updateFn == nil {
		return user, nil
	}
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if s.updateLastLoginFn == nil {
		return nil
	}
	return s.updateLastLoginFn(ctx, id, at)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubRoleRepo struct {
	findByNameFn func(ctx context.Context, name string) (*domain.Role, error)
}

func (s *stubRoleRepo) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if s.findByNameFn == nil {
		return nil, domain.ErrRoleNotFound
	}
	return s.findByNameFn(ctx, name)
}

func (s *stubRoleRepo) List(ctx context.Context) ([]domain.Role, error) { return nil, nil }

type stubTalentRepo struct {
	createFn      func(ctx context.Context, profile *domain.TalentProfile) (*domain.TalentProfile, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.TalentProfile, error)
}

func (s *stubTalentRepo) Create(ctx context.Context, profile *domain.TalentProfile) (*domain.TalentProfile, error) {
	if s.createFn == nil {
		return profile, nil
	}
	return s.createFn(ctx, profile)
}

func (s *stubTalentRepo) FindByUserID(ctx context.Context, userID uint) (*domain.TalentProfile, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubTalentRepo) FindByEmail(ctx context.Context, email string) (*domain.TalentProfile, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

type stubManagerRepo struct {
	createFn      func(ctx context.Context, profile *domain.ManagerProfile) (*domain.ManagerProfile, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.ManagerProfile, error)
}

func (s *stubManagerRepo) Create(ctx context.Context, profile *domain.ManagerProfile) (*domain.ManagerProfile, error) {
	if s.createFn == nil {
		return profile, nil
	}
	return s.createFn(ctx, profile)
}

func (s *stubManagerRepo) FindByEmail(ctx context.Context, email string) (*domain.ManagerProfile, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

type stubCompanyRepo struct {
	createFn func(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

func (s *stubCompanyRepo) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if s.createFn == nil {
		company.ID = 1
		return company, nil
	}
	return s.createFn(ctx, company)
}

func (s *stubCompanyRepo) FindByManagerEmail(ctx context.Context, email string) (*domain.Company, error) {
	return nil, domain.ErrCompanyNotFound
}

func (s *stubCompanyRepo) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	return company, nil
}

type stubOfferRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*domain.Offer, error)
	createFn   func(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	updateFn   func(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	deleteFn   func(ctx context.Context, id uint) error
}

func (s *stubOfferRepo) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if s.createFn == nil {
		offer.ID = 1
		return offer, nil
	}
	return s.createFn(ctx, offer)
}

func (s *stubOfferRepo) FindByID(ctx context.Context, id uint) (*domain.Offer, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrOfferNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubOfferRepo) List(ctx context.Context) ([]domain.Offer, error) { return nil, nil }

func (s *stubOfferRepo) ListByManagerEmail(ctx context.Context, email string) ([]domain.Offer, error) {
	return nil, nil
}

func (s *stubOfferRepo) Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if s.updateFn == nil {
		return offer, nil
	}
	return s.updateFn(ctx, offer)
}

func (s *stubOfferRepo) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubApplicationRepo struct {
	createFn   func(ctx context.Context, app *domain.Application) (*domain.Application, error)
	findByIDFn func(ctx context.Context, id uint) (*domain.Application, error)
	existsFn   func(ctx context.Context, talentID, offerID uint) (bool, error)
	updateFn   func(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

func (s *stubApplicationRepo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if s.createFn == nil {
		app.ID = 1
		return app, nil
	}
	return s.createFn(ctx, app)
}

func (s *stubApplicationRepo) FindByID(ctx context.Context, id uint) (*domain.Application, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubApplicationRepo) ListByOffer(ctx context.Context, offerID uint) ([]domain.Application, error) {
	return nil, nil
}

func (s *stubApplicationRepo) ListByManagerEmail(ctx context.Context, email string) ([]domain.Application, error) {
	return nil, nil
}

func (s *stubApplicationRepo) ListByTalentEmail(ctx context.Context, email string) ([]domain.Application, error) {
	return nil, nil
}

func (s *stubApplicationRepo) ExistsForTalentAndOffer(ctx context.Context, talentID, offerID uint) (bool, error) {
	if s.existsFn == nil {
		return false, nil
	}
	return s.existsFn(ctx, talentID, offerID)
}

func (s *stubApplicationRepo) Update(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if s.updateFn == nil {
		return app, nil
	}
	return s.updateFn(ctx, app)
}

type stubTokenService struct {
	issued int
}

func (s *stubTokenService) Issue(subject string) (string, error) {
	s.issued++
	return "token-for-" + subject, nil
}

func (s *stubTokenService) Validate(token string) bool { return token != "" }

func (s *stubTokenService) Subject(token string) (string, error) { return "", nil }

func (s *stubTokenService) ExtractFromHeader(header string) (string, bool) { return "", false }

type stubVerifier struct {
	verifyFn func(ctx context.Context, rawIDToken string) (*ports.GoogleIdentity, error)
}

func (s *stubVerifier) Verify(ctx context.Context, rawIDToken string) (*ports.GoogleIdentity, error) {
	return s.verifyFn(ctx, rawIDToken)
}

// recordingNotifier captures everything enqueued through the Notifier port.
type recordingNotifier struct {
	inputs []ports.NotificationInput
}

func (n *recordingNotifier) Notify(in ports.NotificationInput) {
	n.inputs = append(n.inputs, in)
}
