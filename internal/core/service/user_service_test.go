package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

func newUserService(users *stubUserRepo, roles *stubRoleRepo, notifier *recordingNotifier) *UserService {
	return NewUserService(users, roles, &stubTalentRepo{}, &stubManagerRepo{}, &stubCompanyRepo{}, notifier, zerolog.Nop())
}

func talentRole() *domain.Role {
	return &domain.Role{ID: 3, Name: domain.RoleTalent}
}

func TestUserService_RegisterTalent_StartsWaiting(t *testing.T) {
	var created *domain.User
	users := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 7
			created = user
			return user, nil
		},
	}
	roles := &stubRoleRepo{
		findByNameFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return talentRole(), nil
		},
	}
	notifier := &recordingNotifier{}

	var profile *domain.TalentProfile
	talents := &stubTalentRepo{
		createFn: func(ctx context.Context, p *domain.TalentProfile) (*domain.TalentProfile, error) {
			profile = p
			return p, nil
		},
	}
	adminEmail := "admin@example.com"
	users.listByRoleFn = func(ctx context.Context, role string) ([]domain.User, error) {
		if role != domain.RoleAdmin {
			t.Fatalf("expected admin lookup, got %s", role)
		}
		return []domain.User{{Email: adminEmail}}, nil
	}

	svc := NewUserService(users, roles, talents, &stubManagerRepo{}, &stubCompanyRepo{}, notifier, zerolog.Nop())

	user, err := svc.RegisterTalent(context.Background(), ports.RegisterTalentInput{
		Email:     "talent@example.com",
		Password:  "secret-password",
		FirstName: "Tal",
		LastName:  "Ent",
	})
	if err != nil {
		t.Fatalf("register talent: %v", err)
	}

	if user.AcceptanceStatus != domain.StatusWaiting {
		t.Fatalf("expected WAITING, got %s", user.AcceptanceStatus)
	}
	if created.PasswordHash == "secret-password" || created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")) != nil {
		t.Fatalf("hash does not verify against the original password")
	}
	if profile == nil || profile.UserID != 7 {
		t.Fatalf("talent profile not created for the new account")
	}
	if len(notifier.inputs) != 1 || notifier.inputs[0].RecipientEmail != adminEmail {
		t.Fatalf("admins were not notified: %+v", notifier.inputs)
	}
	if notifier.inputs[0].Type != domain.NotifNewUserRegistered {
		t.Fatalf("unexpected notification type %s", notifier.inputs[0].Type)
	}
}

func TestUserService_RegisterTalent_DuplicateEmail(t *testing.T) {
	users := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email}, nil
		},
	}
	svc := newUserService(users, &stubRoleRepo{}, &recordingNotifier{})

	_, err := svc.RegisterTalent(context.Background(), ports.RegisterTalentInput{
		Email:    "taken@example.com",
		Password: "whatever-pass",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_RegisterManager_NoCompanyWhenAccountCreateFails(t *testing.T) {
	users := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			// Unique violation from a concurrent signup with the same email.
			return nil, domain.ErrEmailTaken
		},
	}
	roles := &stubRoleRepo{
		findByNameFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return &domain.Role{ID: 2, Name: domain.RoleManager}, nil
		},
	}
	companies := &stubCompanyRepo{
		createFn: func(ctx context.Context, company *domain.Company) (*domain.Company, error) {
			t.Fatal("no company row may be created when the account insert fails")
			return nil, nil
		},
	}
	svc := NewUserService(users, roles, &stubTalentRepo{}, &stubManagerRepo{}, companies, &recordingNotifier{}, zerolog.Nop())

	_, err := svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Email:    "racing@example.com",
		Password: "some-password",
		Company:  ports.CompanyInput{Name: "Acme"},
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Create_AdminProvisionedIsAccepted(t *testing.T) {
	roles := &stubRoleRepo{
		findByNameFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return &domain.Role{ID: 2, Name: name}, nil
		},
	}
	svc := newUserService(&stubUserRepo{}, roles, &recordingNotifier{})

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:     "manager@example.com",
		Password:  "temporary-pw",
		FirstName: "Man",
		LastName:  "Ager",
		RoleName:  domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.AcceptanceStatus != domain.StatusAccepted {
		t.Fatalf("admin-provisioned account must be ACCEPTED, got %s", user.AcceptanceStatus)
	}
	if !user.Active {
		t.Fatalf("admin-provisioned account must be active")
	}
}

func TestUserService_UpdateStatus_OneWayTransition(t *testing.T) {
	stored := &domain.User{
		ID:               5,
		Email:            "pending@example.com",
		AcceptanceStatus: domain.StatusWaiting,
	}
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*domain.User, error) {
			u := *stored
			return &u, nil
		},
		updateFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			return user, nil
		},
	}
	notifier := &recordingNotifier{}
	svc := newUserService(users, &stubRoleRepo{}, notifier)

	user, err := svc.UpdateStatus(context.Background(), 5, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if user.AcceptanceStatus != domain.StatusAccepted || !user.Active {
		t.Fatalf("unexpected state after acceptance: %+v", user)
	}
	if len(notifier.inputs) != 1 || notifier.inputs[0].RecipientEmail != "pending@example.com" {
		t.Fatalf("user was not notified of the decision")
	}
	if notifier.inputs[0].EmailSubject == "" {
		t.Fatalf("decision notification must carry an email subject")
	}

	// A decided status never transitions again.
	if _, err := svc.UpdateStatus(context.Background(), 5, domain.StatusRefused); !errors.Is(err, domain.ErrStatusDecided) {
		t.Fatalf("expected ErrStatusDecided, got %v", err)
	}
}

func TestUserService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newUserService(&stubUserRepo{}, &stubRoleRepo{}, &recordingNotifier{})

	if _, err := svc.UpdateStatus(context.Background(), 1, "BANANA"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 1, domain.StatusWaiting); err == nil {
		t.Fatalf("transition back to WAITING must be rejected")
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	stored := &domain.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash)}

	var updated *domain.User
	users := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			u := *stored
			return &u, nil
		},
		updateFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			updated = user
			return user, nil
		},
	}
	svc := newUserService(users, &stubRoleRepo{}, &recordingNotifier{})

	if err := svc.ChangePassword(context.Background(), "alice@example.com", "wrong", "new-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong current password: expected ErrInvalidCredentials, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "alice@example.com", "old-password", "new-password"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if updated == nil {
		t.Fatalf("password was not persisted")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")) != nil {
		t.Fatalf("new hash does not verify")
	}
}
