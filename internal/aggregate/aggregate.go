// Package aggregate derives campaign collection metrics from registrations.
package aggregate

import "gitlab.com/bloodcamp/coordinator/internal/repository"

type Metrics struct {
	CollectedVolumeMl int `json:"collected_volume_ml"`
	CompletedCount    int `json:"completed_count"`
	DeferredCount     int `json:"deferred_count"`
	RegisteredCount   int `json:"registered_count"`
}

// Compute recomputes the metrics of one campaign from the full set of its
// registrations. It never looks at previously stored values.
func Compute(regs []*repository.Registration) Metrics {
	var m Metrics
	for _, r := range regs {
		m.RegisteredCount++
		switch r.Status {
		case repository.StatusCompleted:
			m.CompletedCount++
			if r.DonatedVolumeMl != nil {
				m.CollectedVolumeMl += *r.DonatedVolumeMl
			}
		case repository.StatusDeferred, repository.StatusCancelled:
			m.DeferredCount++
		}
	}
	return m
}

// Progress is the collected share of target in percent, capped at 100.
// A non-positive target yields 0.
func (m Metrics) Progress(target int) float64 {
	if target <= 0 {
		return 0
	}
	p := float64(m.CollectedVolumeMl) / float64(target) * 100
	if p > 100 {
		return 100
	}
	return p
}

func (m Metrics) GoalReached(target int) bool {
	return target > 0 && m.CollectedVolumeMl >= target
}

// FromCampaign reads the stored derived columns back into Metrics.
func FromCampaign(c *repository.Campaign) Metrics {
	return Metrics{
		CollectedVolumeMl: c.CollectedVolumeMl,
		CompletedCount:    c.CompletedCount,
		DeferredCount:     c.DeferredCount,
		RegisteredCount:   c.RegisteredCount,
	}
}
