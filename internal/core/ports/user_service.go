package ports

import (
	"context"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// RegisterTalentInput carries the self-service talent signup payload.
type RegisterTalentInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// RegisterManagerInput carries the public manager + company registration
// payload. The account is provisioned WAITING like any other signup.
type RegisterManagerInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Company   CompanyInput
}

// CompanyInput holds the employer profile submitted with a manager signup.
type CompanyInput struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Website     string
	Description string
	Sector      string
	Size        string
	City        string
	Country     string
}

// CreateUserInput is the admin-provisioning payload. The temporary password is
// hashed before storage and communicated to the user out of band.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	RoleName  string
}

// UpdateUserInput carries mutable profile fields. Zero values leave the stored
// field untouched.
type UpdateUserInput struct {
	FirstName   string
	LastName    string
	Address     string
	Nationality string
	Phone       string
	BirthPlace  string
	CIN         string
	ImagePath   string
}

// UserService covers account administration and the registration flows.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	ListWaiting(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	RegisterTalent(ctx context.Context, in RegisterTalentInput) (*domain.User, error)
	RegisterManager(ctx context.Context, in RegisterManagerInput) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)
	// UpdateStatus applies the one-way WAITING -> ACCEPTED|REFUSED transition.
	UpdateStatus(ctx context.Context, id uint, status domain.AcceptanceStatus) (*domain.User, error)
	ChangePassword(ctx context.Context, email, current, next string) error
	Delete(ctx context.Context, id uint) error
}
