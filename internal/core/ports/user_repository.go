package ports

import (
	"context"
	"time"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// UserRepository is the persistence port for accounts. Lookups preload the
// assigned role so callers can resolve the authority set in one round trip.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByStatus(ctx context.Context, status domain.AcceptanceStatus) ([]domain.User, error)
	ListByRoleName(ctx context.Context, role string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	// Delete removes the account and its dependent profile and notification
	// rows.
	Delete(ctx context.Context, id uint) error
}

// RoleRepository is the persistence port for roles.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}
