//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

type DonorRepository interface {
	Create(ctx context.Context, donor *repository.Donor) error
	GetByID(ctx context.Context, id string) (*repository.Donor, error)
	UpdateVerdict(ctx context.Context, id string, verdict repository.Verdict, note string, at time.Time) error
	ListMatching(ctx context.Context, city string, groups []string) ([]*repository.Donor, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *repository.Campaign) error
	GetByID(ctx context.Context, id string) (*repository.Campaign, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Campaign, error)
	UpdateStatus(ctx context.Context, id string, status repository.CampaignStatus, at time.Time) error
	UpdateMetricsTx(ctx context.Context, tx db.Tx, id string, m aggregate.Metrics, at time.Time) error
	MarkGoalReachedTx(ctx context.Context, tx db.Tx, id string, at time.Time) (bool, error)
}

type BloodRequestRepository interface {
	Create(ctx context.Context, req *repository.BloodRequest) error
	GetByID(ctx context.Context, id string) (*repository.BloodRequest, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.BloodRequest, error)
	CloseTx(ctx context.Context, tx db.Tx, id string, at time.Time) error
}

type RegistrationRepository interface {
	CreateExclusive(ctx context.Context, reg *repository.Registration) (bool, error)
	GetByID(ctx context.Context, id string) (*repository.Registration, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Registration, error)
	GetActiveByDonor(ctx context.Context, donorID string) (*repository.Registration, error)
	UpdateTx(ctx context.Context, tx db.Tx, reg *repository.Registration) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*repository.Registration, error)
	ListByCampaignTx(ctx context.Context, tx db.Tx, campaignID string) ([]*repository.Registration, error)
	ListByDonor(ctx context.Context, donorID string) ([]*repository.Registration, error)
	NextQueueNumberTx(ctx context.Context, tx db.Tx, campaignID string) (int, error)
	CountCompletedByRequestTx(ctx context.Context, tx db.Tx, requestID string) (int, error)
}

type OutboxTaskRepository interface {
	Create(ctx context.Context, db db.DB, task *repository.OutboxTask) error
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
