package ports

import (
	"context"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// TalentRepository is the persistence port for talent profiles.
type TalentRepository interface {
	Create(ctx context.Context, profile *domain.TalentProfile) (*domain.TalentProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*domain.TalentProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.TalentProfile, error)
}

// ManagerRepository is the persistence port for manager profiles.
type ManagerRepository interface {
	Create(ctx context.Context, profile *domain.ManagerProfile) (*domain.ManagerProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.ManagerProfile, error)
}

// CompanyRepository is the persistence port for employer profiles.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByManagerEmail(ctx context.Context, email string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
}
