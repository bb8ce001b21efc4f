package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// TalentRepository is the gorm-backed talent profile store.
type TalentRepository struct {
	db *gorm.DB
}

var _ ports.TalentRepository = (*TalentRepository)(nil)

func NewTalentRepository(db *gorm.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

func (r *TalentRepository) Create(ctx context.Context, profile *domain.TalentProfile) (*domain.TalentProfile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, fmt.Errorf("create talent profile: %w", err)
	}
	return profile, nil
}

func (r *TalentRepository) FindByUserID(ctx context.Context, userID uint) (*domain.TalentProfile, error) {
	var profile domain.TalentProfile
	err := r.db.WithContext(ctx).Preload("User.Role").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find talent profile: %w", err)
	}
	return &profile, nil
}

func (r *TalentRepository) FindByEmail(ctx context.Context, email string) (*domain.TalentProfile, error) {
	var profile domain.TalentProfile
	err := r.db.WithContext(ctx).Preload("User.Role").
		Joins("JOIN users ON users.user_id = talent_profiles.user_id").
		Where("users.email = ?", email).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find talent profile by email: %w", err)
	}
	return &profile, nil
}

// ManagerRepository is the gorm-backed manager profile store.
type ManagerRepository struct {
	db *gorm.DB
}

var _ ports.ManagerRepository = (*ManagerRepository)(nil)

func NewManagerRepository(db *gorm.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) Create(ctx context.Context, profile *domain.ManagerProfile) (*domain.ManagerProfile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, fmt.Errorf("create manager profile: %w", err)
	}
	return profile, nil
}

func (r *ManagerRepository) FindByEmail(ctx context.Context, email string) (*domain.ManagerProfile, error) {
	var profile domain.ManagerProfile
	err := r.db.WithContext(ctx).Preload("User.Role").Preload("Company").
		Joins("JOIN users ON users.user_id = manager_profiles.user_id").
		Where("users.email = ?", email).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find manager profile by email: %w", err)
	}
	return &profile, nil
}

// CompanyRepository is the gorm-backed employer store.
type CompanyRepository struct {
	db *gorm.DB
}

var _ ports.CompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepository) FindByManagerEmail(ctx context.Context, email string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).
		Joins("JOIN manager_profiles ON manager_profiles.company_id = companies.company_id").
		Joins("JOIN users ON users.user_id = manager_profiles.user_id").
		Where("users.email = ?", email).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company by manager: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}
