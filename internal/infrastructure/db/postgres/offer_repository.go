package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// OfferRepository is the gorm-backed offer store.
type OfferRepository struct {
	db *gorm.DB
}

var _ ports.OfferRepository = (*OfferRepository)(nil)

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}
	return r.FindByID(ctx, offer.ID)
}

func (r *OfferRepository) FindByID(ctx context.Context, id uint) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Manager.User").Preload("Manager.Company").
		First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return &offer, nil
}

func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Manager.User").Preload("Manager.Company").
		Order("date_publication DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

func (r *OfferRepository) ListByManagerEmail(ctx context.Context, email string) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.WithContext(ctx).
		Preload("Manager.User").Preload("Manager.Company").
		Joins("JOIN manager_profiles ON manager_profiles.manager_id = offers.manager_id").
		Joins("JOIN users ON users.user_id = manager_profiles.user_id").
		Where("users.email = ?", email).
		Order("date_publication DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("list offers by manager: %w", err)
	}
	return offers, nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if err := r.db.WithContext(ctx).Save(offer).Error; err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}
	return r.FindByID(ctx, offer.ID)
}

func (r *OfferRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Offer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete offer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}
