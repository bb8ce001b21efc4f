package ports

import (
	"context"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// NotificationInput is the DTO handed to the dispatcher for asynchronous
// delivery. RecipientEmail shards the dispatch so one user's notifications
// stay ordered.
type NotificationInput struct {
	RecipientEmail string
	Type           domain.NotificationType
	Message        string
	Link           string
	// EmailSubject, when non-empty, additionally sends the message by mail.
	EmailSubject string
}

// NotificationService processes and serves notifications.
type NotificationService interface {
	// Process persists one notification and sends the optional email. Called
	// by the dispatcher workers.
	Process(ctx context.Context, in NotificationInput) error
	ListByRecipientEmail(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, email string) error
}

// Mailer sends transactional mail. Delivery is best effort; failures must not
// fail the surrounding business operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
