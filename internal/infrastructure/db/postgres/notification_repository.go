package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// NotificationRepository is the gorm-backed notification store.
type NotificationRepository struct {
	db *gorm.DB
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) ListByRecipientEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.user_id = notifications.recipient_id").
		Where("users.email = ?", email).
		Order("notifications.created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, email string) error {
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("recipient_id IN (?)",
			r.db.Model(&domain.User{}).Select("user_id").Where("email = ?", email)).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
