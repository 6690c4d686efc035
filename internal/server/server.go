//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/coordinator"
	"gitlab.com/bloodcamp/coordinator/internal/eligibility"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

type Coordinator interface {
	CreateDonor(ctx context.Context, in coordinator.NewDonor) (*repository.Donor, error)
	DonorRegistrations(ctx context.Context, donorID string) ([]*repository.Registration, error)
	Register(ctx context.Context, donorID, targetID string, targetType repository.TargetType) (*repository.Registration, error)
	Registration(ctx context.Context, id string) (*repository.Registration, error)
	CheckIn(ctx context.Context, registrationID, campaignID string) (*repository.Registration, error)
	CompleteDonation(ctx context.Context, in coordinator.CompleteInput) (*coordinator.CompleteResult, error)
	DeferOrCancel(ctx context.Context, registrationID string, target repository.RegistrationStatus) (*repository.Registration, error)
	Reopen(ctx context.Context, registrationID string) (*repository.Registration, error)
	CorrectBloodGroup(ctx context.Context, registrationID, group string) (*repository.Registration, error)
	CreateCampaign(ctx context.Context, in coordinator.NewCampaign) (*repository.Campaign, error)
	Campaign(ctx context.Context, id string) (*coordinator.CampaignView, error)
	CampaignRegistrations(ctx context.Context, campaignID string) ([]*repository.Registration, error)
	SetCampaignStatus(ctx context.Context, campaignID string, status repository.CampaignStatus) (*repository.Campaign, error)
	CreateBloodRequest(ctx context.Context, in coordinator.NewBloodRequest) (*repository.BloodRequest, error)
	BloodRequest(ctx context.Context, id string) (*repository.BloodRequest, error)
}

type Gate interface {
	Resolve(ctx context.Context, donorID string) (eligibility.Resolution, error)
	ScreeningURL(donorID, targetID string) string
}

type Screening interface {
	Submit(ctx context.Context, donorID string, answers map[string]any) (*eligibility.SubmitResult, error)
}

type Server struct {
	coord        Coordinator
	gate         Gate
	screening    Screening
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(coord Coordinator, gate Gate, screening Screening, logger *zap.Logger) *Server {
	return &Server{
		coord:        coord,
		gate:         gate,
		screening:    screening,
		logger:       logger.With(zap.String("component", "http")),
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, logger),
	}
}

// Run serves until Shutdown is called. It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("http server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
		s.logger.Info("http server stopped")
	}
	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.auditLogMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/donors", s.handleCreateDonor).Methods(http.MethodPost)
	r.HandleFunc("/donors/{id}/eligibility", s.handleEligibility).Methods(http.MethodGet)
	r.HandleFunc("/donors/{id}/screenings", s.handleSubmitScreening).Methods(http.MethodPost)
	r.HandleFunc("/donors/{id}/registrations", s.handleDonorRegistrations).Methods(http.MethodGet)

	r.HandleFunc("/registrations", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/registrations/{id}", s.handleGetRegistration).Methods(http.MethodGet)
	r.HandleFunc("/registrations/{id}/complete", s.handleComplete).Methods(http.MethodPost)
	r.HandleFunc("/registrations/{id}/status", s.handleEndRegistration).Methods(http.MethodPost)
	r.HandleFunc("/registrations/{id}/reopen", s.handleReopen).Methods(http.MethodPost)
	r.HandleFunc("/registrations/{id}/blood-group", s.handleCorrectBloodGroup).Methods(http.MethodPut)
	r.HandleFunc("/registrations/{id}/pass.png", s.handlePass).Methods(http.MethodGet)

	r.HandleFunc("/campaigns", s.handleCreateCampaign).Methods(http.MethodPost)
	r.HandleFunc("/campaigns/{id}", s.handleGetCampaign).Methods(http.MethodGet)
	r.HandleFunc("/campaigns/{id}/status", s.handleSetCampaignStatus).Methods(http.MethodPut)
	r.HandleFunc("/campaigns/{id}/registrations", s.handleCampaignRegistrations).Methods(http.MethodGet)
	r.HandleFunc("/campaigns/{id}/registrations/{regID}/check-in", s.handleCheckIn).Methods(http.MethodPost)

	r.HandleFunc("/blood-requests", s.handleCreateBloodRequest).Methods(http.MethodPost)
	r.HandleFunc("/blood-requests/{id}", s.handleGetBloodRequest).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
