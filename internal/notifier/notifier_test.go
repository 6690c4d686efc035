package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "gitlab.com/bloodcamp/coordinator/internal/db/mocks"
	"gitlab.com/bloodcamp/coordinator/internal/notifier"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	mock_storage "gitlab.com/bloodcamp/coordinator/internal/storage/mocks"
)

func TestOutboxNotifier_Notify(t *testing.T) {
	ctx := context.Background()
	msg := notifier.Notification{
		RecipientID: "hosp-1",
		Title:       "New registration",
		Body:        "A donor registered for Spring drive",
		ActionType:  notifier.ActionRegistrationCreated,
		Metadata:    map[string]string{"registration_id": "reg-1"},
	}

	t.Run("enqueues task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := mock_storage.NewMockOutboxTaskRepository(ctrl)
		n := notifier.NewOutboxNotifier(mockDB, repo, "donor_notifications")

		repo.EXPECT().Create(gomock.Any(), mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, task *repository.OutboxTask) error {
				assert.Equal(t, "donor_notifications", task.Topic)
				var payload repository.NotificationPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "hosp-1", payload.RecipientID)
				assert.Equal(t, notifier.ActionRegistrationCreated, payload.ActionType)
				assert.Equal(t, "reg-1", payload.Metadata["registration_id"])
				return nil
			})

		assert.NoError(t, n.Notify(ctx, msg))
	})

	t.Run("store error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := mock_storage.NewMockOutboxTaskRepository(ctrl)
		n := notifier.NewOutboxNotifier(mockDB, repo, "donor_notifications")

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("pool exhausted"))

		assert.Error(t, n.Notify(ctx, msg))
	})
}

func TestLogNotifier_Notify(t *testing.T) {
	n := notifier.NewLogNotifier(zap.NewNop())
	assert.NoError(t, n.Notify(context.Background(), notifier.Notification{RecipientID: "d1"}))
}
