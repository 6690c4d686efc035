package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"gitlab.com/bloodcamp/coordinator/internal/coordinator"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

func (s *Server) handleCreateDonor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		BloodGroup string `json:"blood_group"`
		City       string `json:"city"`
		District   string `json:"district"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donor, err := s.coord.CreateDonor(r.Context(), coordinator.NewDonor{
		ID:         req.ID,
		Name:       req.Name,
		BloodGroup: req.BloodGroup,
		City:       req.City,
		District:   req.District,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, donor)
}

func (s *Server) handleEligibility(w http.ResponseWriter, r *http.Request) {
	donorID := mux.Vars(r)["id"]

	res, err := s.gate.Resolve(r.Context(), donorID)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	resp := struct {
		Donor        string `json:"donor_id"`
		ScreeningURL string `json:"screening_url,omitempty"`
		Resolution   any    `json:"resolution"`
	}{Donor: donorID, Resolution: res}
	if !res.Eligible {
		resp.ScreeningURL = s.gate.ScreeningURL(donorID, r.URL.Query().Get("target_id"))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitScreening(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers map[string]any `json:"answers"`
	}
	if err := decode(r, &req); err != nil || len(req.Answers) == 0 {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.screening.Submit(r.Context(), mux.Vars(r)["id"], req.Answers)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleDonorRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := s.coord.DonorRegistrations(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, regs)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DonorID    string `json:"donor_id"`
		TargetID   string `json:"target_id"`
		TargetType string `json:"target_type"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TargetType == "" {
		req.TargetType = string(repository.TargetCampaign)
	}

	reg, err := s.coord.Register(r.Context(), req.DonorID, req.TargetID, repository.TargetType(req.TargetType))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, reg)
}

func (s *Server) handleGetRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := s.coord.Registration(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reg, err := s.coord.CheckIn(r.Context(), vars["regID"], vars["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DonorID    string `json:"donor_id"`
		HospitalID string `json:"hospital_id"`
		VolumeMl   int    `json:"volume_ml"`
		BloodGroup string `json:"blood_group"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.coord.CompleteDonation(r.Context(), coordinator.CompleteInput{
		RegistrationID: mux.Vars(r)["id"],
		DonorID:        req.DonorID,
		HospitalID:     req.HospitalID,
		VolumeMl:       req.VolumeMl,
		BloodGroup:     req.BloodGroup,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Registration *repository.Registration  `json:"registration"`
		Campaign     *coordinator.CampaignView `json:"campaign,omitempty"`
		GoalReached  bool                      `json:"goal_reached"`
	}{res.Registration, res.Metrics, res.GoalReached})
}

func (s *Server) handleEndRegistration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reg, err := s.coord.DeferOrCancel(r.Context(), mux.Vars(r)["id"], repository.RegistrationStatus(req.Status))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

func (s *Server) handleReopen(w http.ResponseWriter, r *http.Request) {
	reg, err := s.coord.Reopen(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

func (s *Server) handleCorrectBloodGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BloodGroup string `json:"blood_group"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reg, err := s.coord.CorrectBloodGroup(r.Context(), mux.Vars(r)["id"], req.BloodGroup)
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reg)
}

// handlePass renders a QR code that opens the check-in of the registration.
func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	reg, err := s.coord.Registration(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	if reg.CampaignID == nil || !reg.Status.Active() {
		respondError(w, http.StatusConflict, "Registration has no check-in pass")
		return
	}

	url := "http://" + r.Host + "/campaigns/" + *reg.CampaignID + "/registrations/" + reg.ID + "/check-in"
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate pass")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HospitalID        string    `json:"hospital_id"`
		Name              string    `json:"name"`
		City              string    `json:"city"`
		District          string    `json:"district"`
		TargetVolumeMl    int       `json:"target_volume_ml"`
		TargetBloodGroups []string  `json:"target_blood_groups"`
		StartAt           time.Time `json:"start_at"`
		EndAt             time.Time `json:"end_at"`
		Status            string    `json:"status"`
		CoverImageURL     string    `json:"cover_image_url"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := s.coord.CreateCampaign(r.Context(), coordinator.NewCampaign{
		HospitalID:        req.HospitalID,
		Name:              req.Name,
		City:              req.City,
		District:          req.District,
		TargetVolumeMl:    req.TargetVolumeMl,
		TargetBloodGroups: req.TargetBloodGroups,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		Status:            repository.CampaignStatus(req.Status),
		CoverImageURL:     req.CoverImageURL,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, campaign)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := s.coord.Campaign(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := s.coord.SetCampaignStatus(r.Context(), mux.Vars(r)["id"], repository.CampaignStatus(req.Status))
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

func (s *Server) handleCampaignRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := s.coord.CampaignRegistrations(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, regs)
}

func (s *Server) handleCreateBloodRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HospitalID    string `json:"hospital_id"`
		Name          string `json:"name"`
		City          string `json:"city"`
		BloodGroup    string `json:"blood_group"`
		RequiredUnits int    `json:"required_units"`
		Urgency       string `json:"urgency"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.coord.CreateBloodRequest(r.Context(), coordinator.NewBloodRequest{
		HospitalID:    req.HospitalID,
		Name:          req.Name,
		City:          req.City,
		BloodGroup:    req.BloodGroup,
		RequiredUnits: req.RequiredUnits,
		Urgency:       req.Urgency,
	})
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetBloodRequest(w http.ResponseWriter, r *http.Request) {
	req, err := s.coord.BloodRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}
