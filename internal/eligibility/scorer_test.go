package eligibility_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
)

func TestHTTPScorer_Score(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/score", r.URL.Path)

		var req eligibility.ScoreRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "d1", req.DonorID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"eligible","score":91,"analysis":"ok","recommendations":["rest"]}`))
	}))
	defer srv.Close()

	scorer := eligibility.NewHTTPScorer(srv.URL, time.Second, 0, zap.NewNop())
	res, err := scorer.Score(context.Background(), eligibility.ScoreRequest{DonorID: "d1", Answers: map[string]any{"q1": "no"}})
	require.NoError(t, err)
	assert.Equal(t, "eligible", res.Status)
	assert.Equal(t, 91, res.Score)
	assert.Equal(t, []string{"rest"}, res.Recommendations)
}

func TestHTTPScorer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	scorer := eligibility.NewHTTPScorer(srv.URL, time.Second, 0, zap.NewNop())
	_, err := scorer.Score(context.Background(), eligibility.ScoreRequest{DonorID: "d1"})
	assert.Error(t, err)
}

func TestHTTPScorer_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	scorer := eligibility.NewHTTPScorer(srv.URL, time.Second, 0, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := scorer.Score(ctx, eligibility.ScoreRequest{DonorID: "d1"})
	assert.Error(t, err)
}

func TestUnavailableScorer(t *testing.T) {
	res, err := eligibility.UnavailableScorer{}.Score(context.Background(), eligibility.ScoreRequest{DonorID: "donor-1"})
	assert.Nil(t, res)
	assert.Error(t, err)
}
