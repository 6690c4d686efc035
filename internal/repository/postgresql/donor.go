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

type DonorRepo struct {
	db db.DB
}

func NewDonorRepo(db db.DB) storage.DonorRepository {
	return &DonorRepo{db: db}
}

func (r *DonorRepo) Create(ctx context.Context, donor *repository.Donor) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO donors (
            id, name, blood_group, city, district, screening_verdict, screening_note, verdict_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, donor.ID, donor.Name, donor.BloodGroup, donor.City, donor.District, donor.ScreeningVerdict,
		donor.ScreeningNote, donor.VerdictAt, donor.CreatedAt, donor.UpdatedAt)
	return err
}

func (r *DonorRepo) GetByID(ctx context.Context, id string) (*repository.Donor, error) {
	var donor repository.Donor
	err := r.db.Get(ctx, &donor, "SELECT * FROM donors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (r *DonorRepo) UpdateVerdict(ctx context.Context, id string, verdict repository.Verdict, note string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE donors
        SET
            screening_verdict = $2,
            screening_note = $3,
            verdict_at = $4,
            updated_at = $4
        WHERE id = $1
    `, id, verdict, note, at)
	if err != nil {
		return fmt.Errorf("failed to update verdict of donor %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ListMatching returns donors living in city, narrowed to groups when the
// list is not empty.
func (r *DonorRepo) ListMatching(ctx context.Context, city string, groups []string) ([]*repository.Donor, error) {
	if groups == nil {
		groups = []string{}
	}
	query := `
        SELECT * FROM donors
        WHERE lower(city) = lower($1)
          AND (cardinality($2::text[]) = 0 OR blood_group = ANY($2::text[]))
        ORDER BY created_at ASC
    `
	var donors []*repository.Donor
	if err := r.db.Select(ctx, &donors, query, city, groups); err != nil {
		return nil, fmt.Errorf("failed to list donors in %s: %w", city, err)
	}
	return donors, nil
}
