package eligibility

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/metrics"
)

type Gate struct {
	donors        DonorSource
	cache         VerdictCache
	logger        *zap.Logger
	screeningBase string
	timeNow       func() time.Time
}

// NewGate builds a gate over donors. cache may be nil.
func NewGate(donors DonorSource, cache VerdictCache, screeningBase string, logger *zap.Logger) *Gate {
	if cache == nil {
		cache = NopCache{}
	}
	return &Gate{
		donors:        donors,
		cache:         cache,
		logger:        logger.With(zap.String("component", "eligibility_gate")),
		screeningBase: screeningBase,
		timeNow:       time.Now,
	}
}

// Resolve reports whether the donor may register right now. It has no side
// effects apart from filling the verdict cache.
func (g *Gate) Resolve(ctx context.Context, donorID string) (Resolution, error) {
	snap, err := g.snapshot(ctx, donorID)
	if err != nil {
		return Resolution{}, err
	}
	return Evaluate(*snap, g.timeNow()), nil
}

func (g *Gate) snapshot(ctx context.Context, donorID string) (*Snapshot, error) {
	snap, ok, err := g.cache.Get(ctx, donorID)
	switch {
	case err != nil:
		metrics.VerdictCacheRequestsTotal.WithLabelValues("error").Inc()
		g.logger.Warn("verdict cache read failed, using store", zap.String("donor_id", donorID), zap.Error(err))
	case ok:
		metrics.VerdictCacheRequestsTotal.WithLabelValues("hit").Inc()
		return snap, nil
	default:
		metrics.VerdictCacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	donor, err := g.donors.GetDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	fresh := Snapshot{Verdict: donor.ScreeningVerdict, Note: donor.ScreeningNote, VerdictAt: donor.VerdictAt}
	if err := g.cache.Fill(ctx, donorID, fresh); err != nil {
		g.logger.Warn("verdict cache write failed", zap.String("donor_id", donorID), zap.Error(err))
	}
	return &fresh, nil
}

// ScreeningURL is where a donor who is not eligible should go, pre-seeded
// with the campaign or request they tried to join.
func (g *Gate) ScreeningURL(donorID, targetID string) string {
	q := url.Values{}
	q.Set("donor_id", donorID)
	if targetID != "" {
		q.Set("target_id", targetID)
	}
	return g.screeningBase + "?" + q.Encode()
}

// NopCache disables caching.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Snapshot, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, string, Snapshot) error         { return nil }
func (NopCache) Fill(context.Context, string, Snapshot) error        { return nil }
func (NopCache) Invalidate(context.Context, string) error            { return nil }
