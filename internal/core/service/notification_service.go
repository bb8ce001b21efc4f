package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// NotificationService persists notifications and delivers the optional email.
// Process is invoked by the dispatcher workers, off the request path.
type NotificationService struct {
	notifications ports.NotificationRepository
	users         ports.UserRepository
	mailer        ports.Mailer
	log           zerolog.Logger
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	mailer ports.Mailer,
	log zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		log:           log,
	}
}

// Process stores one notification for its recipient. Mail delivery is best
// effort: a failed send is logged, never propagated.
func (s *NotificationService) Process(ctx context.Context, in ports.NotificationInput) error {
	recipient, err := s.users.FindByEmail(ctx, in.RecipientEmail)
	if err != nil {
		return err
	}

	if _, err := s.notifications.Create(ctx, &domain.Notification{
		RecipientID: recipient.ID,
		Type:        in.Type,
		Message:     in.Message,
		Link:        in.Link,
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		return err
	}

	if in.EmailSubject != "" && s.mailer != nil {
		if err := s.mailer.Send(ctx, in.RecipientEmail, in.EmailSubject, in.Message); err != nil {
			s.log.Warn().Err(err).Str("to", in.RecipientEmail).Msg("failed to send notification email")
		}
	}

	s.log.Debug().Str("to", in.RecipientEmail).Str("type", string(in.Type)).Msg("notification stored")
	return nil
}

func (s *NotificationService) ListByRecipientEmail(ctx context.Context, email string) ([]domain.Notification, error) {
	return s.notifications.ListByRecipientEmail(ctx, email)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, email string) error {
	return s.notifications.MarkAllRead(ctx, email)
}
