package eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/metrics"
)

var (
	// ErrScorerUnavailable means the external scorer could not produce a result.
	ErrScorerUnavailable = errors.New("screening scorer unavailable")
	// ErrStaleVerdictCache means the new verdict is stored but the cache may
	// still serve the previous one. Submitting again repairs it.
	ErrStaleVerdictCache = errors.New("verdict cache could not be updated")
)

type SubmitResult struct {
	Resolution      Resolution `json:"resolution"`
	ScorerStatus    string     `json:"scorer_status"`
	Score           int        `json:"score"`
	Analysis        string     `json:"analysis,omitempty"`
	Recommendations []string   `json:"recommendations,omitempty"`
}

// Screening records questionnaire outcomes as donor verdicts.
type Screening struct {
	donors  DonorSource
	scorer  Scorer
	cache   VerdictCache
	logger  *zap.Logger
	timeout time.Duration
	timeNow func() time.Time
}

func NewScreening(donors DonorSource, scorer Scorer, cache VerdictCache, timeout time.Duration, logger *zap.Logger) *Screening {
	if cache == nil {
		cache = NopCache{}
	}
	return &Screening{
		donors:  donors,
		scorer:  scorer,
		cache:   cache,
		logger:  logger.With(zap.String("component", "screening")),
		timeout: timeout,
		timeNow: time.Now,
	}
}

// Submit scores the answers and stores the mapped verdict. Only the verdict,
// its time and the scorer status are persisted; the analysis is returned for
// display and dropped.
func (s *Screening) Submit(ctx context.Context, donorID string, answers map[string]any) (*SubmitResult, error) {
	if _, err := s.donors.GetDonor(ctx, donorID); err != nil {
		return nil, err
	}

	scoreCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		scoreCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	result, err := s.scorer.Score(scoreCtx, ScoreRequest{DonorID: donorID, Answers: answers})
	if err != nil {
		s.logger.Error("scorer call failed", zap.String("donor_id", donorID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}

	verdict := MapVerdict(result)
	now := s.timeNow().UTC()
	if err := s.donors.UpdateDonorVerdict(ctx, donorID, verdict, result.Status, now); err != nil {
		return nil, fmt.Errorf("failed to store verdict of donor %s: %w", donorID, err)
	}
	snap := Snapshot{Verdict: verdict, Note: result.Status, VerdictAt: &now}
	if err := s.refreshCache(ctx, donorID, snap); err != nil {
		return nil, err
	}

	s.logger.Info("screening recorded",
		zap.String("donor_id", donorID),
		zap.String("verdict", string(verdict)),
		zap.Int("score", result.Score),
	)

	return &SubmitResult{
		Resolution:      Evaluate(snap, now),
		ScorerStatus:    result.Status,
		Score:           result.Score,
		Analysis:        result.Analysis,
		Recommendations: result.Recommendations,
	}, nil
}

// refreshCache replaces the cached snapshot with the stored one. When the
// write fails the entry is dropped instead; if that fails too the cache may
// still hold the old verdict and the caller has to know.
func (s *Screening) refreshCache(ctx context.Context, donorID string, snap Snapshot) error {
	setErr := s.cache.Set(ctx, donorID, snap)
	if setErr == nil {
		return nil
	}
	s.logger.Warn("verdict cache write failed, invalidating", zap.String("donor_id", donorID), zap.Error(setErr))
	if err := s.cache.Invalidate(ctx, donorID); err != nil {
		metrics.VerdictCacheRequestsTotal.WithLabelValues("stale").Inc()
		s.logger.Error("verdict cache invalidation failed",
			zap.String("donor_id", donorID),
			zap.NamedError("set_error", setErr),
			zap.Error(err),
		)
		return fmt.Errorf("%w: donor %s: %w", ErrStaleVerdictCache, donorID, errors.Join(setErr, err))
	}
	return nil
}
