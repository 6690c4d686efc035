package server

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type AuditLogEntry struct {
	Timestamp      time.Time     `json:"timestamp"`
	Route          string        `json:"route"`
	Method         string        `json:"method"`
	Path           string        `json:"path"`
	StatusCode     int           `json:"status_code"`
	Duration       time.Duration `json:"duration"`
	RegistrationID string        `json:"registration_id,omitempty"`
	CampaignID     string        `json:"campaign_id,omitempty"`
	DonorID        string        `json:"donor_id,omitempty"`
	OldStatus      string        `json:"old_status,omitempty"`
	NewStatus      string        `json:"new_status,omitempty"`
	Request        string        `json:"request,omitempty"`
}

func (e AuditLogEntry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddTime("timestamp", e.Timestamp)
	enc.AddString("route", e.Route)
	enc.AddString("method", e.Method)
	enc.AddString("path", e.Path)
	enc.AddInt("status_code", e.StatusCode)
	enc.AddDuration("duration", e.Duration)
	if e.RegistrationID != "" {
		enc.AddString("registration_id", e.RegistrationID)
	}
	if e.CampaignID != "" {
		enc.AddString("campaign_id", e.CampaignID)
	}
	if e.DonorID != "" {
		enc.AddString("donor_id", e.DonorID)
	}
	if e.OldStatus != "" || e.NewStatus != "" {
		enc.AddString("old_status", e.OldStatus)
		enc.AddString("new_status", e.NewStatus)
	}
	if e.Request != "" {
		enc.AddString("request", e.Request)
	}
	return nil
}

type auditBatch []AuditLogEntry

func (b auditBatch) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range b {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}
