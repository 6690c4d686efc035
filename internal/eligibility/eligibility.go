//go:generate mockgen -source ./eligibility.go -destination=./mocks/eligibility.go -package=mock_eligibility
package eligibility

import (
	"context"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// VerdictTTL is how long a passed screening allows registration.
const VerdictTTL = 24 * time.Hour

const (
	ReasonScreeningRequired = "screening required"
	ReasonScreeningFailed   = "previous health screening was not passed; retake the screening"
)

// DonorSource is the part of the store the gate and screening need.
type DonorSource interface {
	GetDonor(ctx context.Context, id string) (*repository.Donor, error)
	UpdateDonorVerdict(ctx context.Context, id string, verdict repository.Verdict, note string, at time.Time) error
}

// Snapshot is the stored verdict of a donor, as cached.
type Snapshot struct {
	Verdict   repository.Verdict `json:"verdict"`
	Note      string             `json:"note,omitempty"`
	VerdictAt *time.Time         `json:"verdict_at,omitempty"`
}

// VerdictCache is a read-through cache in front of the donor store. It never
// decides eligibility on its own: expiry is evaluated on every read.
// Verdict-changing writes go through Set, which overwrites. Read-through
// fills go through Fill, which never replaces an existing entry, so a fill
// racing a verdict change cannot put the older verdict back.
type VerdictCache interface {
	Get(ctx context.Context, donorID string) (*Snapshot, bool, error)
	Set(ctx context.Context, donorID string, snap Snapshot) error
	Fill(ctx context.Context, donorID string, snap Snapshot) error
	Invalidate(ctx context.Context, donorID string) error
}

type ScoreRequest struct {
	DonorID string         `json:"donor_id"`
	Answers map[string]any `json:"answers"`
}

type ScoreResult struct {
	Status          string   `json:"status"`
	Score           int      `json:"score"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// Scorer is the external screening engine.
type Scorer interface {
	Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error)
}

type Resolution struct {
	Eligible  bool               `json:"eligible"`
	Verdict   repository.Verdict `json:"verdict"`
	Reason    string             `json:"reason,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
}

// Evaluate applies the verdict rules to snap at the instant now. A passed
// verdict older than VerdictTTL resolves exactly like not_done. A failed
// verdict never expires.
func Evaluate(snap Snapshot, now time.Time) Resolution {
	switch snap.Verdict {
	case repository.VerdictPassed:
		if snap.VerdictAt != nil && now.Sub(*snap.VerdictAt) <= VerdictTTL {
			expires := snap.VerdictAt.Add(VerdictTTL)
			return Resolution{Eligible: true, Verdict: repository.VerdictPassed, ExpiresAt: &expires}
		}
	case repository.VerdictFailed:
		reason := ReasonScreeningFailed
		if snap.Note != "" {
			reason += " (" + snap.Note + ")"
		}
		return Resolution{Verdict: repository.VerdictFailed, Reason: reason}
	}
	return Resolution{Verdict: repository.VerdictNotDone, Reason: ReasonScreeningRequired}
}

// MapVerdict turns a scorer answer into the stored verdict: only a
// well-formed eligible answer passes.
func MapVerdict(res *ScoreResult) repository.Verdict {
	if res != nil && res.Status == "eligible" && res.Score >= 0 && res.Score <= 100 {
		return repository.VerdictPassed
	}
	return repository.VerdictFailed
}
