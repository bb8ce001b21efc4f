package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

func managerProfile(email string) *stubManagerRepo {
	return &stubManagerRepo{
		findByEmailFn: func(ctx context.Context, e string) (*domain.ManagerProfile, error) {
			if e != email {
				return nil, domain.ErrUserNotFound
			}
			return &domain.ManagerProfile{
				ID:      4,
				User:    domain.User{Email: email},
				Company: domain.Company{ID: 2, Name: "ACME"},
			}, nil
		},
	}
}

func TestOfferService_Create_FillsCompanyAndNotifiesTalents(t *testing.T) {
	users := &stubUserRepo{
		listByRoleFn: func(ctx context.Context, role string) ([]domain.User, error) {
			if role != domain.RoleTalent {
				t.Fatalf("expected talent fan-out, got %s", role)
			}
			return []domain.User{{Email: "t1@example.com"}, {Email: "t2@example.com"}}, nil
		},
	}
	notifier := &recordingNotifier{}
	svc := NewOfferService(&stubOfferRepo{}, managerProfile("manager@example.com"), users, notifier, zerolog.Nop())

	offer, err := svc.Create(context.Background(), ports.CreateOfferInput{
		ManagerEmail: "manager@example.com",
		Title:        "Data Engineer",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if offer.CompanyName != "ACME" {
		t.Fatalf("company name not resolved from the manager, got %q", offer.CompanyName)
	}
	if offer.Modality != domain.ModalityOnSite {
		t.Fatalf("empty modality must default to ON_SITE, got %s", offer.Modality)
	}
	if offer.Status != domain.OfferOpen {
		t.Fatalf("new offer must be OPEN, got %s", offer.Status)
	}
	if offer.ManagerID != 4 {
		t.Fatalf("offer not linked to the manager profile")
	}

	if len(notifier.inputs) != 2 {
		t.Fatalf("expected a notification per talent, got %d", len(notifier.inputs))
	}
	for _, in := range notifier.inputs {
		if in.Type != domain.NotifNewOfferCreated {
			t.Fatalf("unexpected notification type %s", in.Type)
		}
	}
}

func TestOfferService_Update_OwnershipEnforced(t *testing.T) {
	offers := &stubOfferRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domain.Offer, error) {
			return &domain.Offer{
				ID:      1,
				Title:   "Original",
				Manager: domain.ManagerProfile{User: domain.User{Email: "owner@example.com"}},
			}, nil
		},
	}
	svc := NewOfferService(offers, &stubManagerRepo{}, &stubUserRepo{}, &recordingNotifier{}, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 1, "intruder@example.com", ports.UpdateOfferInput{Title: "Hijacked"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign manager: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, "owner@example.com", ports.UpdateOfferInput{Title: "Renamed"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("title not updated, got %q", updated.Title)
	}

	// Empty manager email is the admin bypass.
	if _, err := svc.Update(context.Background(), 1, "", ports.UpdateOfferInput{Title: "Admin edit"}); err != nil {
		t.Fatalf("admin bypass: %v", err)
	}
}

func TestOfferService_Delete_OwnershipEnforced(t *testing.T) {
	deleted := false
	offers := &stubOfferRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domain.Offer, error) {
			return &domain.Offer{
				ID:      1,
				Manager: domain.ManagerProfile{User: domain.User{Email: "owner@example.com"}},
			}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewOfferService(offers, &stubManagerRepo{}, &stubUserRepo{}, &recordingNotifier{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1, "intruder@example.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if deleted {
		t.Fatalf("offer must not be deleted by a foreign manager")
	}

	if err := svc.Delete(context.Background(), 1, "owner@example.com"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if !deleted {
		t.Fatalf("offer was not deleted")
	}
}
