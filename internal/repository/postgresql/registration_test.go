package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/bloodcamp/coordinator/internal/db/mocks"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/repository/postgresql"
)

func strPtr(s string) *string { return &s }

func testRegistration() *repository.Registration {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &repository.Registration{
		ID:         "reg-1",
		DonorID:    "donor-1",
		CampaignID: strPtr("camp-1"),
		Status:     repository.StatusBooked,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestRegistrationRepo_CreateExclusive(t *testing.T) {
	ctx := context.Background()

	t.Run("inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)
		reg := testRegistration()

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(reg.ID),
			gomock.Eq(reg.DonorID),
			gomock.Eq(reg.CampaignID),
			gomock.Nil(),
			gomock.Eq(reg.Status),
			gomock.Nil(),
			gomock.Eq(reg.CreatedAt),
			gomock.Eq(reg.UpdatedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		created, err := repo.CreateExclusive(ctx, reg)
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("active registration exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("INSERT 0 0"), nil)

		created, err := repo.CreateExclusive(ctx, testRegistration())
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("concurrent insert caught by unique index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: repository.ActiveRegistrationIndex}
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, pgErr)

		created, err := repo.CreateExclusive(ctx, testRegistration())
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		created, err := repo.CreateExclusive(ctx, testRegistration())
		assert.ErrorIs(t, err, expectedErr)
		assert.False(t, created)
	})
}

func TestRegistrationRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)
		want := testRegistration()

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(want.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Registration, _ string, _ string) error {
				*dest = *want
				return nil
			})

		got, err := repo.GetByID(ctx, want.ID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestRegistrationRepo_GetByIDTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewRegistrationRepo(mockDB)

	mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("reg-1")).
		DoAndReturn(func(_ context.Context, dest *repository.Registration, query string, _ string) error {
			assert.Contains(t, query, "FOR UPDATE")
			*dest = *testRegistration()
			return nil
		})

	got, err := repo.GetByIDTx(context.Background(), mockTx, "reg-1")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusBooked, got.Status)
}

func TestRegistrationRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		reg := testRegistration()
		queue := 3
		reg.Status = repository.StatusCheckedIn
		reg.QueueNumber = &queue

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(reg.ID),
			gomock.Eq(repository.StatusCheckedIn),
			gomock.Eq(&queue),
			gomock.Nil(),
			gomock.Nil(),
			gomock.Nil(),
			gomock.Nil(),
			gomock.Eq(reg.UpdatedAt),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateTx(ctx, mockTx, reg))
	})

	t.Run("no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewRegistrationRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		assert.ErrorIs(t, repo.UpdateTx(ctx, mockTx, testRegistration()), repository.ErrObjectNotFound)
	})
}

func TestRegistrationRepo_NextQueueNumberTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewRegistrationRepo(mockDB)

	mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("camp-1")).
		DoAndReturn(func(_ context.Context, dest *int, _ string, _ string) error {
			*dest = 7
			return nil
		})

	n, err := repo.NextQueueNumberTx(context.Background(), mockTx, "camp-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestRegistrationRepo_ListByDonor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewRegistrationRepo(mockDB)

	expectedErr := errors.New("connection reset")
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("donor-1")).Return(expectedErr)

	regs, err := repo.ListByDonor(context.Background(), "donor-1")
	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, regs)
}
