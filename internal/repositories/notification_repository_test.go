package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (repository.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewNotificationRepo(db)
	require.NotNil(t, repo, "NewNotificationRepo should return a non-nil repository")

	return repo, mock
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateNotification", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			notification := &models.Notification{
				ID:        uuid.New(),
				Kind:      models.NotificationReceipt,
				Reference: "123456789012",
				Recipient: "test@example.com",
				Subject:   "Test Subject",
				Status:    models.StatusPending,
			}

			expectedSQL := regexp.QuoteMeta(`
		INSERT INTO notifications (id, kind, reference, recipient, subject, status, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`)

			mock.ExpectExec(expectedSQL).
				WithArgs(notification.ID, notification.Kind, notification.Reference, notification.Recipient, notification.Subject, notification.Status, "").
				WillReturnResult(sqlmock.NewResult(1, 1))

			// Act
			err := repo.CreateNotification(ctx, notification)

			// Assert
			require.NoError(t, err, "CreateNotification should succeed")
			assert.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			dbErr := errors.New("db write failed")

			mock.ExpectExec(`INSERT INTO notifications`).WillReturnError(dbErr)

			// Act
			err := repo.CreateNotification(ctx, &models.Notification{ID: uuid.New()})

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), "failed to create notification")
		})
	})

	t.Run("UpdateNotificationStatus", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(`UPDATE notifications`).
				WithArgs(models.StatusSent, "", id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdateNotificationStatus(ctx, id, models.StatusSent, ""))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			mock.ExpectExec(`UPDATE notifications`).WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateNotificationStatus(ctx, uuid.New(), models.StatusFailed, "smtp down")

			assert.ErrorIs(t, err, sql.ErrNoRows)
		})
	})
}
