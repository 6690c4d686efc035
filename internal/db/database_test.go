package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gitlab.com/bloodcamp/coordinator/internal/db"
	mock_database "gitlab.com/bloodcamp/coordinator/internal/db/mocks"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "registrations_one_active_per_donor"}

	assert.True(t, db.IsUniqueViolation(pgErr, ""))
	assert.True(t, db.IsUniqueViolation(fmt.Errorf("insert: %w", pgErr), "registrations_one_active_per_donor"))
	assert.False(t, db.IsUniqueViolation(pgErr, "registrations_campaign_queue_number"))
	assert.False(t, db.IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, db.IsUniqueViolation(errors.New("duplicate key"), ""))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, db.IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, db.IsNoRows(errors.New("boom")))
}

func TestInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		called := false
		err := db.InTx(ctx, mockDB, func(tx db.Tx) error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("rollback on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		fnErr := errors.New("fn failed")
		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.InTx(ctx, mockDB, func(tx db.Tx) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
	})

	t.Run("begin fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(nil, errors.New("pool closed"))

		err := db.InTx(ctx, mockDB, func(tx db.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.Error(t, err)
	})
}

func TestMigrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, script string, _ ...any) (pgconn.CommandTag, error) {
			assert.Contains(t, script, "registrations_one_active_per_donor")
			return nil, nil
		})

	assert.NoError(t, db.Migrate(context.Background(), mockDB))
}
