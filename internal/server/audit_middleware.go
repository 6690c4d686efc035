package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// statusRoutes change a registration's status; their audit entries carry the
// status before and after the call.
var statusRoutes = map[string]bool{
	"/registrations/{id}/complete":                   true,
	"/registrations/{id}/status":                     true,
	"/registrations/{id}/reopen":                     true,
	"/campaigns/{id}/registrations/{regID}/check-in": true,
}

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		route := routeTemplate(r)
		vars := mux.Vars(r)
		entry := AuditLogEntry{
			Timestamp: start,
			Method:    r.Method,
			Path:      r.URL.Path,
			Route:     route,
			DonorID:   r.Header.Get("X-Donor-ID"),
		}

		switch {
		case strings.HasPrefix(route, "/registrations/{id}"):
			entry.RegistrationID = vars["id"]
		case strings.HasPrefix(route, "/campaigns/{id}"):
			entry.CampaignID = vars["id"]
			entry.RegistrationID = vars["regID"]
		case strings.HasPrefix(route, "/donors/{id}"):
			entry.DonorID = vars["id"]
		}

		// screening answers are health data and stay out of the log
		if r.Body != nil && !strings.HasSuffix(route, "/screenings") {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		if statusRoutes[route] && entry.RegistrationID != "" {
			if reg, err := s.coord.Registration(r.Context(), entry.RegistrationID); err == nil {
				entry.OldStatus = string(reg.Status)
				if entry.CampaignID == "" && reg.CampaignID != nil {
					entry.CampaignID = *reg.CampaignID
				}
			}
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Duration = time.Since(start)
		if statusRoutes[route] && entry.StatusCode < http.StatusBadRequest {
			entry.NewStatus = responseStatus(wrw.GetBody())
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unknown"
	}
	return tpl
}

// responseStatus pulls the registration status out of either a bare
// registration body or the completion envelope.
func responseStatus(body []byte) string {
	var resp struct {
		Status       string `json:"status"`
		Registration *struct {
			Status string `json:"status"`
		} `json:"registration"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if resp.Registration != nil {
		return resp.Registration.Status
	}
	return resp.Status
}
