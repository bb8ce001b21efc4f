package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// Notifier enqueues notifications for asynchronous delivery.
type Notifier interface {
	Notify(in ports.NotificationInput)
}

// UserService implements account administration and the two public
// registration flows.
type UserService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	talents   ports.TalentRepository
	managers  ports.ManagerRepository
	companies ports.CompanyRepository
	notifier  Notifier
	log       zerolog.Logger
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	talents ports.TalentRepository,
	managers ports.ManagerRepository,
	companies ports.CompanyRepository,
	notifier Notifier,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:     users,
		roles:     roles,
		talents:   talents,
		managers:  managers,
		companies: companies,
		notifier:  notifier,
		log:       log,
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) ListWaiting(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByStatus(ctx, domain.StatusWaiting)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// RegisterTalent handles the public self-service signup. The account starts
// WAITING and cannot sign in until an administrator accepts it.
func (s *UserService) RegisterTalent(ctx context.Context, in ports.RegisterTalentInput) (*domain.User, error) {
	user, err := s.newAccount(ctx, in.Email, in.Password, in.FirstName, in.LastName, domain.RoleTalent)
	if err != nil {
		return nil, err
	}
	user.Phone = in.Phone
	user.Address = in.Address

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if _, err := s.talents.Create(ctx, &domain.TalentProfile{UserID: created.ID}); err != nil {
		return nil, fmt.Errorf("register talent: create profile: %w", err)
	}

	s.notifyAdmins(ctx, fmt.Sprintf("New talent registered: %s", created.Email))
	s.log.Info().Str("email", created.Email).Msg("talent registered")
	return created, nil
}

// RegisterManager handles the public employer signup: a company row plus a
// WAITING manager account linked to it.
func (s *UserService) RegisterManager(ctx context.Context, in ports.RegisterManagerInput) (*domain.User, error) {
	user, err := s.newAccount(ctx, in.Email, in.Password, in.FirstName, in.LastName, domain.RoleManager)
	if err != nil {
		return nil, err
	}
	user.Phone = in.Phone

	// The account goes in first so a duplicate-email failure leaves no
	// orphaned company row behind.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	company, err := s.companies.Create(ctx, &domain.Company{
		Name:        in.Company.Name,
		Address:     in.Company.Address,
		Phone:       in.Company.Phone,
		Email:       in.Company.Email,
		Website:     in.Company.Website,
		Description: in.Company.Description,
		Sector:      in.Company.Sector,
		Size:        in.Company.Size,
		City:        in.Company.City,
		Country:     in.Company.Country,
	})
	if err != nil {
		return nil, fmt.Errorf("register manager: create company: %w", err)
	}
	if _, err := s.managers.Create(ctx, &domain.ManagerProfile{UserID: created.ID, CompanyID: company.ID}); err != nil {
		return nil, fmt.Errorf("register manager: create profile: %w", err)
	}

	s.notifyAdmins(ctx, fmt.Sprintf("New manager registered: %s (%s)", created.Email, in.Company.Name))
	s.log.Info().Str("email", created.Email).Str("company", in.Company.Name).Msg("manager registered")
	return created, nil
}

// Create provisions an account on behalf of an administrator. The temporary
// password arrives hashed-only in the store; admin-provisioned accounts are
// accepted immediately.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	user, err := s.newAccount(ctx, in.Email, in.Password, in.FirstName, in.LastName, in.RoleName)
	if err != nil {
		return nil, err
	}
	user.AcceptanceStatus = domain.StatusAccepted
	user.Active = true

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", created.Email).Str("role", in.RoleName).Msg("user provisioned")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Address != "" {
		user.Address = in.Address
	}
	if in.Nationality != "" {
		user.Nationality = in.Nationality
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.BirthPlace != "" {
		user.BirthPlace = in.BirthPlace
	}
	if in.CIN != "" {
		user.CIN = in.CIN
	}
	if in.ImagePath != "" {
		user.ImagePath = in.ImagePath
	}

	return s.users.Update(ctx, user)
}

// UpdateStatus applies the one-way acceptance transition and tells the user.
func (s *UserService) UpdateStatus(ctx context.Context, id uint, status domain.AcceptanceStatus) (*domain.User, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.AcceptanceStatus.CanTransitionTo(status) {
		return nil, domain.ErrStatusDecided
	}

	user.AcceptanceStatus = status
	user.Active = status == domain.StatusAccepted

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	message := "Your account has been refused."
	if status == domain.StatusAccepted {
		message = "Your account has been approved. You can now sign in."
	}
	s.notifier.Notify(ports.NotificationInput{
		RecipientEmail: updated.Email,
		Type:           domain.NotifUserInformationUpdated,
		Message:        message,
		EmailSubject:   "Account review",
	})

	s.log.Info().Str("email", updated.Email).Str("status", string(status)).Msg("acceptance status updated")
	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, email, current, next string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	user.PasswordHash = string(hash)

	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("password changed")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// newAccount builds a WAITING account with a hashed password, enforcing email
// uniqueness and role existence.
func (s *UserService) newAccount(ctx context.Context, email, password, firstName, lastName, roleName string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.User{
		Email:            email,
		PasswordHash:     string(hash),
		FirstName:        firstName,
		LastName:         lastName,
		RoleID:           role.ID,
		Role:             *role,
		AcceptanceStatus: domain.StatusWaiting,
		RegistrationDate: time.Now().UTC(),
	}, nil
}

// notifyAdmins fans a registration event out to every administrator.
func (s *UserService) notifyAdmins(ctx context.Context, message string) {
	admins, err := s.users.ListByRoleName(ctx, domain.RoleAdmin)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not list admins for notification")
		return
	}
	for _, admin := range admins {
		s.notifier.Notify(ports.NotificationInput{
			RecipientEmail: admin.Email,
			Type:           domain.NotifNewUserRegistered,
			Message:        message,
			Link:           "/users/usersWaitingStatus",
		})
	}
}
