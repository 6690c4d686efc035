package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.com/bloodcamp/coordinator/internal/db"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	"gitlab.com/bloodcamp/coordinator/internal/storage"
)

type BloodRequestRepo struct {
	db db.DB
}

func NewBloodRequestRepo(db db.DB) storage.BloodRequestRepository {
	return &BloodRequestRepo{db: db}
}

func (r *BloodRequestRepo) Create(ctx context.Context, req *repository.BloodRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO blood_requests (
            id, hospital_id, name, city, blood_group, required_units, urgency, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, req.ID, req.HospitalID, req.Name, req.City, req.BloodGroup, req.RequiredUnits, req.Urgency,
		req.Status, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *BloodRequestRepo) GetByID(ctx context.Context, id string) (*repository.BloodRequest, error) {
	var req repository.BloodRequest
	err := r.db.Get(ctx, &req, "SELECT * FROM blood_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *BloodRequestRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.BloodRequest, error) {
	var req repository.BloodRequest
	err := tx.Get(ctx, &req, "SELECT * FROM blood_requests WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *BloodRequestRepo) CloseTx(ctx context.Context, tx db.Tx, id string, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE blood_requests SET status = $2, updated_at = $3 WHERE id = $1 AND status <> $2
    `, id, repository.RequestClosed, at)
	if err != nil {
		return fmt.Errorf("failed to close blood request %s: %w", id, err)
	}
	return nil
}
