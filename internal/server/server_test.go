package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/coordinator"
	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
	mock_server "gitlab.com/bloodcamp/coordinator/internal/server/mocks"
)

type serverFixture struct {
	coord     *mock_server.MockCoordinator
	gate      *mock_server.MockGate
	screening *mock_server.MockScreening
	handler   http.Handler
}

func setUp(t *testing.T) serverFixture {
	ctrl := gomock.NewController(t)
	f := serverFixture{
		coord:     mock_server.NewMockCoordinator(ctrl),
		gate:      mock_server.NewMockGate(ctrl),
		screening: mock_server.NewMockScreening(ctrl),
	}
	f.handler = New(f.coord, f.gate, f.screening, zap.NewNop()).Handler()
	return f
}

func (f serverFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }

func booked(id, campaignID string) *repository.Registration {
	return &repository.Registration{
		ID:         id,
		DonorID:    "donor-1",
		CampaignID: strPtr(campaignID),
		Status:     repository.StatusBooked,
	}
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMocks     func(f serverFixture)
		expectedStatus int
		check          func(t *testing.T, body map[string]any)
	}{
		{
			name:        "booked",
			requestBody: map[string]any{"donor_id": "donor-1", "target_id": "camp-1"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().
					Register(gomock.Any(), "donor-1", "camp-1", repository.TargetCampaign).
					Return(booked("reg-1", "camp-1"), nil)
			},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "reg-1", body["id"])
				assert.Equal(t, "booked", body["status"])
			},
		},
		{
			name:           "unknown field",
			requestBody:    `{"donor_id":"donor-1","target":"camp-1"}`,
			setupMocks:     func(serverFixture) {},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Invalid request body", body["error"])
			},
		},
		{
			name:        "screening required",
			requestBody: map[string]any{"donor_id": "donor-1", "target_id": "camp-1"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().
					Register(gomock.Any(), "donor-1", "camp-1", repository.TargetCampaign).
					Return(nil, &coordinator.NotEligibleError{
						Reason:       "screening required",
						ScreeningURL: "/screening?donor_id=donor-1&target_id=camp-1",
					})
			},
			expectedStatus: http.StatusForbidden,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "not_eligible", body["kind"])
				assert.Equal(t, "/screening?donor_id=donor-1&target_id=camp-1", body["screening_url"])
			},
		},
		{
			name:        "already registered elsewhere",
			requestBody: map[string]any{"donor_id": "donor-1", "target_id": "camp-2"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().
					Register(gomock.Any(), "donor-1", "camp-2", repository.TargetCampaign).
					Return(nil, &coordinator.AlreadyRegisteredError{RegistrationID: "reg-1", ConflictTargetName: "City Hall Drive"})
			},
			expectedStatus: http.StatusConflict,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "already_registered", body["kind"])
				assert.Equal(t, "City Hall Drive", body["conflict_with"])
			},
		},
		{
			name:        "blood request target",
			requestBody: map[string]any{"donor_id": "donor-1", "target_id": "req-1", "target_type": "blood_request"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().
					Register(gomock.Any(), "donor-1", "req-1", repository.TargetBloodRequest).
					Return(&repository.Registration{ID: "reg-2", BloodRequestID: strPtr("req-1"), Status: repository.StatusBooked}, nil)
			},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "req-1", body["blood_request_id"])
			},
		},
		{
			name:        "store failure is retryable",
			requestBody: map[string]any{"donor_id": "donor-1", "target_id": "camp-1"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().
					Register(gomock.Any(), "donor-1", "camp-1", repository.TargetCampaign).
					Return(nil, fmt.Errorf("%w: register: %w", coordinator.ErrStoreFailure, errors.New("connection reset")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "store_failure", body["kind"])
				assert.Equal(t, true, body["retryable"])
				assert.NotContains(t, body["error"], "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setUp(t)
			tt.setupMocks(f)

			rr := f.do(t, http.MethodPost, "/registrations", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			tt.check(t, decodeBody(t, rr))
		})
	}
}

func TestHandleCheckIn(t *testing.T) {
	scheduled := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setupMocks     func(f serverFixture)
		expectedStatus int
		check          func(t *testing.T, body map[string]any)
	}{
		{
			name: "queue number assigned",
			setupMocks: func(f serverFixture) {
				reg := booked("reg-1", "camp-1")
				f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(reg, nil)

				q := 3
				checked := *reg
				checked.Status = repository.StatusCheckedIn
				checked.QueueNumber = &q
				f.coord.EXPECT().CheckIn(gomock.Any(), "reg-1", "camp-1").Return(&checked, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "checked_in", body["status"])
				assert.EqualValues(t, 3, body["queue_number"])
			},
		},
		{
			name: "outside the schedule",
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(booked("reg-1", "camp-1"), nil)
				f.coord.EXPECT().CheckIn(gomock.Any(), "reg-1", "camp-1").
					Return(nil, &coordinator.OutOfWindowError{
						ScheduledDate: scheduled,
						EndDate:       scheduled,
						Today:         scheduled.AddDate(0, 0, -1),
					})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "out_of_window", body["kind"])
				assert.Equal(t, "2026-06-14", body["scheduled_date"])
				assert.Contains(t, body["error"], "2026-06-14")
			},
		},
		{
			name: "registration of another campaign",
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(nil, coordinator.ErrNotFound)
				f.coord.EXPECT().CheckIn(gomock.Any(), "reg-1", "camp-1").
					Return(nil, fmt.Errorf("%w: registration reg-1 in campaign camp-1", coordinator.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "not_found", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setUp(t)
			tt.setupMocks(f)

			rr := f.do(t, http.MethodPost, "/campaigns/camp-1/registrations/reg-1/check-in", nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			tt.check(t, decodeBody(t, rr))
		})
	}
}

func TestHandleComplete(t *testing.T) {
	t.Run("goal reached", func(t *testing.T) {
		f := setUp(t)
		reg := booked("reg-1", "camp-1")
		reg.Status = repository.StatusCheckedIn
		f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(reg, nil)

		volume := 450
		done := *reg
		done.Status = repository.StatusCompleted
		done.DonatedVolumeMl = &volume
		f.coord.EXPECT().
			CompleteDonation(gomock.Any(), coordinator.CompleteInput{
				RegistrationID: "reg-1",
				DonorID:        "donor-1",
				HospitalID:     "hosp-1",
				VolumeMl:       450,
			}).
			Return(&coordinator.CompleteResult{
				Registration: &done,
				Metrics: &coordinator.CampaignView{
					Campaign:        &repository.Campaign{ID: "camp-1", TargetVolumeMl: 450, CollectedVolumeMl: 450},
					ProgressPercent: 100,
				},
				GoalReached: true,
			}, nil)

		rr := f.do(t, http.MethodPost, "/registrations/reg-1/complete",
			map[string]any{"donor_id": "donor-1", "hospital_id": "hosp-1", "volume_ml": 450})

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["goal_reached"])
		assert.Equal(t, "completed", body["registration"].(map[string]any)["status"])
		assert.EqualValues(t, 100, body["campaign"].(map[string]any)["progress_percent"])
	})

	t.Run("cancelled registration", func(t *testing.T) {
		f := setUp(t)
		f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(nil, coordinator.ErrNotFound)
		f.coord.EXPECT().CompleteDonation(gomock.Any(), gomock.Any()).
			Return(nil, &coordinator.TransitionError{From: repository.StatusCancelled, To: repository.StatusCompleted})

		rr := f.do(t, http.MethodPost, "/registrations/reg-1/complete",
			map[string]any{"donor_id": "donor-1", "hospital_id": "hosp-1", "volume_ml": 350})

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "invalid_transition", decodeBody(t, rr)["kind"])
	})
}

func TestHandleEndRegistration(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMocks     func(f serverFixture)
		expectedStatus int
	}{
		{
			name:        "deferred",
			requestBody: map[string]any{"status": "deferred"},
			setupMocks: func(f serverFixture) {
				reg := booked("reg-1", "camp-1")
				f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(reg, nil)
				deferred := *reg
				deferred.Status = repository.StatusDeferred
				f.coord.EXPECT().DeferOrCancel(gomock.Any(), "reg-1", repository.StatusDeferred).Return(&deferred, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing status",
			requestBody:    map[string]any{},
			setupMocks:     func(serverFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unsupported target",
			requestBody: map[string]any{"status": "completed"},
			setupMocks: func(f serverFixture) {
				f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(booked("reg-1", "camp-1"), nil)
				f.coord.EXPECT().DeferOrCancel(gomock.Any(), "reg-1", repository.StatusCompleted).
					Return(nil, fmt.Errorf("%w: status completed", coordinator.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setUp(t)
			tt.setupMocks(f)

			rr := f.do(t, http.MethodPost, "/registrations/reg-1/status", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandleCreateDonor_DuplicateID(t *testing.T) {
	f := setUp(t)
	f.coord.EXPECT().
		CreateDonor(gomock.Any(), coordinator.NewDonor{ID: "donor-1", Name: "Ana", BloodGroup: "O+", City: "Bandung"}).
		Return(nil, fmt.Errorf("%w: donor donor-1: %w", coordinator.ErrDuplicate, repository.ErrAlreadyExists))

	rr := f.do(t, http.MethodPost, "/donors",
		map[string]any{"id": "donor-1", "name": "Ana", "blood_group": "O+", "city": "Bandung"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "duplicate", body["kind"])
	assert.Nil(t, body["retryable"])
}

func TestHandleEligibility(t *testing.T) {
	t.Run("eligible", func(t *testing.T) {
		f := setUp(t)
		f.gate.EXPECT().Resolve(gomock.Any(), "donor-1").
			Return(eligibility.Resolution{Eligible: true, Verdict: repository.VerdictPassed}, nil)

		rr := f.do(t, http.MethodGet, "/donors/donor-1/eligibility", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Nil(t, body["screening_url"])
		assert.Equal(t, true, body["resolution"].(map[string]any)["eligible"])
	})

	t.Run("screening required", func(t *testing.T) {
		f := setUp(t)
		f.gate.EXPECT().Resolve(gomock.Any(), "donor-1").
			Return(eligibility.Resolution{Verdict: repository.VerdictNotDone, Reason: "screening required"}, nil)
		f.gate.EXPECT().ScreeningURL("donor-1", "camp-1").Return("/screening?donor_id=donor-1&target_id=camp-1")

		rr := f.do(t, http.MethodGet, "/donors/donor-1/eligibility?target_id=camp-1", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/screening?donor_id=donor-1&target_id=camp-1", decodeBody(t, rr)["screening_url"])
	})
}

func TestHandleSubmitScreening(t *testing.T) {
	t.Run("scorer unavailable", func(t *testing.T) {
		f := setUp(t)
		f.screening.EXPECT().Submit(gomock.Any(), "donor-1", map[string]any{"recent_illness": false}).
			Return(nil, fmt.Errorf("%w: timeout", eligibility.ErrScorerUnavailable))

		rr := f.do(t, http.MethodPost, "/donors/donor-1/screenings",
			map[string]any{"answers": map[string]any{"recent_illness": false}})

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, true, decodeBody(t, rr)["retryable"])
	})

	t.Run("verdict stored but cache stale", func(t *testing.T) {
		f := setUp(t)
		f.screening.EXPECT().Submit(gomock.Any(), "donor-1", gomock.Any()).
			Return(nil, fmt.Errorf("%w: donor donor-1: redis down", eligibility.ErrStaleVerdictCache))

		rr := f.do(t, http.MethodPost, "/donors/donor-1/screenings",
			map[string]any{"answers": map[string]any{"recent_illness": true}})

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, true, decodeBody(t, rr)["retryable"])
	})

	t.Run("empty answers", func(t *testing.T) {
		f := setUp(t)

		rr := f.do(t, http.MethodPost, "/donors/donor-1/screenings", map[string]any{"answers": map[string]any{}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandlePass(t *testing.T) {
	t.Run("png for an active campaign registration", func(t *testing.T) {
		f := setUp(t)
		f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(booked("reg-1", "camp-1"), nil)

		rr := f.do(t, http.MethodGet, "/registrations/reg-1/pass.png", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("completed registration has no pass", func(t *testing.T) {
		f := setUp(t)
		reg := booked("reg-1", "camp-1")
		reg.Status = repository.StatusCompleted
		f.coord.EXPECT().Registration(gomock.Any(), "reg-1").Return(reg, nil)

		rr := f.do(t, http.MethodGet, "/registrations/reg-1/pass.png", nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleGetCampaign(t *testing.T) {
	f := setUp(t)
	f.coord.EXPECT().Campaign(gomock.Any(), "camp-1").Return(&coordinator.CampaignView{
		Campaign:        &repository.Campaign{ID: "camp-1", Name: "City Hall Drive", TargetVolumeMl: 1000, CollectedVolumeMl: 350},
		ProgressPercent: 35,
	}, nil)
	f.coord.EXPECT().Campaign(gomock.Any(), "missing").Return(nil, repository.ErrObjectNotFound)

	rr := f.do(t, http.MethodGet, "/campaigns/camp-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "City Hall Drive", body["campaign"].(map[string]any)["name"])
	assert.EqualValues(t, 35, body["progress_percent"])

	rr = f.do(t, http.MethodGet, "/campaigns/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	f := setUp(t)

	rr := f.do(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestAuditManager_FlushesOnShutdown(t *testing.T) {
	m := NewAuditManager(1, 2, time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	for i := 0; i < 3; i++ {
		m.LogEntry(ctx, AuditLogEntry{Route: "/registrations", Method: http.MethodPost, StatusCode: http.StatusCreated})
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	m.Shutdown(shutdownCtx)

	assert.Equal(t, int64(0), m.Pending())
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, "checked_in", responseStatus([]byte(`{"id":"reg-1","status":"checked_in"}`)))
	assert.Equal(t, "completed", responseStatus([]byte(`{"registration":{"status":"completed"},"goal_reached":false}`)))
	assert.Equal(t, "", responseStatus([]byte(`not json`)))
}
