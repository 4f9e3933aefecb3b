package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	// SendEmail records the attempt, delivers it and records the outcome.
	SendEmail(ctx context.Context, email *models.TemplateEmail) (*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendEmail implements NotificationService. Bookkeeping failures are logged
// and never stop the email from going out.
func (n *notificationService) SendEmail(ctx context.Context, email *models.TemplateEmail) (*models.Notification, error) {
	logger := middleware.LoggerFromContext(ctx).With(
		slog.String("kind", string(email.Kind)),
		slog.String("reference", email.Reference),
	)

	now := time.Now()
	notification := &models.Notification{
		ID:        uuid.New(),
		Kind:      email.Kind,
		Reference: email.Reference,
		Recipient: email.Recipient,
		Subject:   email.Subject,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		logger.Warn("Failed to record notification", slog.String("error", err.Error()))
	}

	if err := n.emailService.Send(ctx, email); err != nil {
		notification.Status = models.StatusFailed
		notification.Error = err.Error()

		if uerr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, notification.Error); uerr != nil {
			logger.Warn("Failed to update notification status", slog.String("error", uerr.Error()))
		}

		logger.Error("Email delivery failed", slog.String("error", err.Error()))

		if stdErrors.Is(err, sendgrid.ErrNotConfigured) {
			return notification, errors.InternalError("Email delivery is not configured").WithError(err)
		}

		return notification, errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	sentAt := time.Now()
	notification.Status = models.StatusSent
	notification.SentAt = &sentAt
	notification.UpdatedAt = sentAt

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		logger.Warn("Email sent but status update failed", slog.String("error", err.Error()))
	}

	logger.Info("Email sent", slog.String("notification_id", notification.ID.String()))

	return notification, nil
}
