package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

type RegistrationRepo struct {
	db db.DB
}

func NewRegistrationRepo(db db.DB) storage.RegistrationRepository {
	return &RegistrationRepo{db: db}
}

// CreateExclusive inserts reg only if the donor has no active registration.
// It reports false when another active registration won, whether the
// NOT EXISTS check saw it or the unique index caught a concurrent insert.
func (r *RegistrationRepo) CreateExclusive(ctx context.Context, reg *repository.Registration) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO registrations (
            id, donor_id, campaign_id, blood_request_id, status, blood_group, created_at, updated_at
        )
        SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::timestamptz, $8::timestamptz
        WHERE NOT EXISTS (
            SELECT 1 FROM registrations
            WHERE donor_id = $2::text AND status IN ('booked', 'checked_in')
        )
    `, reg.ID, reg.DonorID, reg.CampaignID, reg.BloodRequestID, reg.Status, reg.BloodGroup, reg.CreatedAt, reg.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, repository.ActiveRegistrationIndex) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert registration: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RegistrationRepo) GetByID(ctx context.Context, id string) (*repository.Registration, error) {
	var reg repository.Registration
	err := r.db.Get(ctx, &reg, "SELECT * FROM registrations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Registration, error) {
	var reg repository.Registration
	err := tx.Get(ctx, &reg, "SELECT * FROM registrations WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) GetActiveByDonor(ctx context.Context, donorID string) (*repository.Registration, error) {
	var reg repository.Registration
	err := r.db.Get(ctx, &reg, `
        SELECT * FROM registrations
        WHERE donor_id = $1 AND status IN ('booked', 'checked_in')
    `, donorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) UpdateTx(ctx context.Context, tx db.Tx, reg *repository.Registration) error {
	tag, err := tx.Exec(ctx, `
        UPDATE registrations
        SET
            status = $2,
            queue_number = $3,
            donated_volume_ml = $4,
            blood_group = $5,
            checked_in_at = $6,
            completed_at = $7,
            updated_at = $8
        WHERE id = $1
    `, reg.ID, reg.Status, reg.QueueNumber, reg.DonatedVolumeMl, reg.BloodGroup, reg.CheckedInAt, reg.CompletedAt, reg.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *RegistrationRepo) ListByCampaign(ctx context.Context, campaignID string) ([]*repository.Registration, error) {
	var regs []*repository.Registration
	err := r.db.Select(ctx, &regs, "SELECT * FROM registrations WHERE campaign_id = $1 ORDER BY created_at ASC", campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations of campaign %s: %w", campaignID, err)
	}
	return regs, nil
}

func (r *RegistrationRepo) ListByCampaignTx(ctx context.Context, tx db.Tx, campaignID string) ([]*repository.Registration, error) {
	var regs []*repository.Registration
	err := tx.Select(ctx, &regs, "SELECT * FROM registrations WHERE campaign_id = $1 ORDER BY created_at ASC", campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations of campaign %s: %w", campaignID, err)
	}
	return regs, nil
}

func (r *RegistrationRepo) ListByDonor(ctx context.Context, donorID string) ([]*repository.Registration, error) {
	var regs []*repository.Registration
	err := r.db.Select(ctx, &regs, "SELECT * FROM registrations WHERE donor_id = $1 ORDER BY created_at DESC", donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations of donor %s: %w", donorID, err)
	}
	return regs, nil
}

// NextQueueNumberTx must run while the campaign row is locked by tx.
func (r *RegistrationRepo) NextQueueNumberTx(ctx context.Context, tx db.Tx, campaignID string) (int, error) {
	var next int
	err := tx.Get(ctx, &next, `
        SELECT COALESCE(MAX(queue_number), 0) + 1 FROM registrations WHERE campaign_id = $1
    `, campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute queue number for campaign %s: %w", campaignID, err)
	}
	return next, nil
}

func (r *RegistrationRepo) CountCompletedByRequestTx(ctx context.Context, tx db.Tx, requestID string) (int, error) {
	var n int
	err := tx.Get(ctx, &n, `
        SELECT COUNT(*) FROM registrations WHERE blood_request_id = $1 AND status = 'completed'
    `, requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed registrations of request %s: %w", requestID, err)
	}
	return n, nil
}
