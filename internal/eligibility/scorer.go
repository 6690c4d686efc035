package eligibility

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTPScorer calls the screening engine over HTTP.
type HTTPScorer struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewHTTPScorer(baseURL string, timeout time.Duration, retries int, logger *zap.Logger) *HTTPScorer {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPScorer{
		httpClient: client,
		logger:     logger.With(zap.String("component", "http_scorer")),
	}
}

func (s *HTTPScorer) Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error) {
	var result ScoreResult
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/score")
	if err != nil {
		return nil, fmt.Errorf("failed to call scorer: %w", err)
	}
	if resp.IsError() {
		s.logger.Error("scorer returned error",
			zap.String("donor_id", req.DonorID),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("scorer returned status %d", resp.StatusCode())
	}
	return &result, nil
}

// UnavailableScorer stands in when no scoring engine is configured.
type UnavailableScorer struct{}

func (UnavailableScorer) Score(context.Context, ScoreRequest) (*ScoreResult, error) {
	return nil, fmt.Errorf("no scorer configured")
}
