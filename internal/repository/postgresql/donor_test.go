package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/bloodcamp/coordinator/internal/db/mocks"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/repository/postgresql"
)

func TestDonorRepo_UpdateVerdict(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDonorRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), "donor-1", repository.VerdictPassed, "eligible", at).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateVerdict(ctx, "donor-1", repository.VerdictPassed, "eligible", at))
	})

	t.Run("unknown donor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewDonorRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateVerdict(ctx, "missing", repository.VerdictFailed, "ineligible", at)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestDonorRepo_ListMatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewDonorRepo(mockDB)

	want := []*repository.Donor{{ID: "donor-1", City: "Bandung", BloodGroup: "O+"}}
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), "Bandung", []string{}).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Donor, _ string, _ string, _ []string) error {
			*dest = want
			return nil
		})

	got, err := repo.ListMatching(context.Background(), "Bandung", nil)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
