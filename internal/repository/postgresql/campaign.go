package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

type CampaignRepo struct {
	db db.DB
}

func NewCampaignRepo(db db.DB) storage.CampaignRepository {
	return &CampaignRepo{db: db}
}

func (r *CampaignRepo) Create(ctx context.Context, c *repository.Campaign) error {
	groups := c.TargetBloodGroups
	if groups == nil {
		groups = []string{}
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO campaigns (
            id, hospital_id, name, city, district, target_volume_ml, target_blood_groups,
            start_at, end_at, status, cover_image_url, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, c.ID, c.HospitalID, c.Name, c.City, c.District, c.TargetVolumeMl, groups,
		c.StartAt, c.EndAt, c.Status, c.CoverImageURL, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*repository.Campaign, error) {
	var c repository.Campaign
	err := r.db.Get(ctx, &c, "SELECT * FROM campaigns WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByIDTx locks the campaign row until tx ends. Check-ins and aggregate
// recomputation of one campaign serialize on this lock.
func (r *CampaignRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Campaign, error) {
	var c repository.Campaign
	err := tx.Get(ctx, &c, "SELECT * FROM campaigns WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id string, status repository.CampaignStatus, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE campaigns SET status = $2, updated_at = $3 WHERE id = $1
    `, id, status, at)
	if err != nil {
		return fmt.Errorf("failed to update status of campaign %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *CampaignRepo) UpdateMetricsTx(ctx context.Context, tx db.Tx, id string, m aggregate.Metrics, at time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET
            collected_volume_ml = $2,
            completed_count = $3,
            deferred_count = $4,
            registered_count = $5,
            updated_at = $6
        WHERE id = $1
    `, id, m.CollectedVolumeMl, m.CompletedCount, m.DeferredCount, m.RegisteredCount, at)
	if err != nil {
		return fmt.Errorf("failed to update metrics of campaign %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// MarkGoalReachedTx stamps goal_reached_at the first time the stored
// collected volume reaches the target and reports whether this call did it.
func (r *CampaignRepo) MarkGoalReachedTx(ctx context.Context, tx db.Tx, id string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET goal_reached_at = $2
        WHERE id = $1
          AND goal_reached_at IS NULL
          AND target_volume_ml > 0
          AND collected_volume_ml >= target_volume_ml
    `, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark goal of campaign %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}
