package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// ApplicationRepository is the gorm-backed application store.
type ApplicationRepository struct {
	db *gorm.DB
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Talent.User").
		Preload("Offer.Manager.User")
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return r.FindByID(ctx, app.ID)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*domain.Application, error) {
	var app domain.Application
	if err := r.preloaded(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ExistsForTalentAndOffer(ctx context.Context, talentID, offerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("talent_id = ? AND offer_id = ?", talentID, offerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("application exists: %w", err)
	}
	return count > 0, nil
}

func (r *ApplicationRepository) ListByOffer(ctx context.Context, offerID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.preloaded(ctx).
		Where("offer_id = ?", offerID).
		Order("application_id").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by offer: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListByManagerEmail(ctx context.Context, email string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.preloaded(ctx).
		Joins("JOIN offers ON offers.offer_id = applications.offer_id").
		Joins("JOIN manager_profiles ON manager_profiles.manager_id = offers.manager_id").
		Joins("JOIN users ON users.user_id = manager_profiles.user_id").
		Where("users.email = ?", email).
		Order("applications.application_id").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by manager: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListByTalentEmail(ctx context.Context, email string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.preloaded(ctx).
		Joins("JOIN talent_profiles ON talent_profiles.talent_id = applications.talent_id").
		Joins("JOIN users ON users.user_id = talent_profiles.user_id").
		Where("users.email = ?", email).
		Order("applications.application_id").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by talent: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return r.FindByID(ctx, app.ID)
}
