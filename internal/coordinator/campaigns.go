package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/bloodcamp/coordinator/internal/aggregate"
	"gitlab.com/bloodcamp/coordinator/internal/notifier"
	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// CampaignView is a campaign with its derived metrics and progress.
type CampaignView struct {
	Campaign        *repository.Campaign `json:"campaign"`
	Metrics         aggregate.Metrics    `json:"metrics"`
	ProgressPercent float64              `json:"progress_percent"`
}

func viewOf(c *repository.Campaign) *CampaignView {
	m := aggregate.FromCampaign(c)
	return &CampaignView{Campaign: c, Metrics: m, ProgressPercent: m.Progress(c.TargetVolumeMl)}
}

type NewDonor struct {
	ID         string
	Name       string
	BloodGroup string
	City       string
	District   string
}

func (c *Coordinator) CreateDonor(ctx context.Context, in NewDonor) (*repository.Donor, error) {
	const op = "create_donor"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if strings.TrimSpace(in.Name) == "" {
		return nil, reject(op, invalidInput("donor name is required"))
	}
	if !repository.ValidBloodGroup(in.BloodGroup) {
		return nil, reject(op, invalidInput("unknown blood group %q", in.BloodGroup))
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	donor := &repository.Donor{
		ID:               in.ID,
		Name:             in.Name,
		BloodGroup:       in.BloodGroup,
		City:             in.City,
		District:         in.District,
		ScreeningVerdict: repository.VerdictNotDone,
	}
	if err := c.store.CreateDonor(ctx, donor); err != nil {
		return nil, reject(op, translate(op, err))
	}
	return donor, nil
}

type NewCampaign struct {
	HospitalID        string
	Name              string
	City              string
	District          string
	TargetVolumeMl    int
	TargetBloodGroups []string
	StartAt           time.Time
	EndAt             time.Time
	// Status defaults to active.
	Status        repository.CampaignStatus
	CoverImageURL string
}

func (in NewCampaign) validate() error {
	switch {
	case in.HospitalID == "":
		return invalidInput("hospital is required")
	case strings.TrimSpace(in.Name) == "":
		return invalidInput("campaign name is required")
	case strings.TrimSpace(in.City) == "":
		return invalidInput("campaign city is required")
	case in.TargetVolumeMl < 0:
		return invalidInput("target volume must not be negative")
	case in.StartAt.IsZero() || in.EndAt.IsZero():
		return invalidInput("campaign schedule is required")
	case in.EndAt.Before(in.StartAt):
		return invalidInput("campaign ends before it starts")
	case in.Status != "" && !in.Status.Valid():
		return invalidInput("unknown campaign status %q", in.Status)
	}
	for _, g := range in.TargetBloodGroups {
		if !repository.ValidBloodGroup(g) {
			return invalidInput("unknown blood group %q", g)
		}
	}
	return nil
}

// CreateCampaign stores the campaign and tells donors in its city about it.
// Notification failures never fail the call.
func (c *Coordinator) CreateCampaign(ctx context.Context, in NewCampaign) (*repository.Campaign, error) {
	const op = "create_campaign"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := in.validate(); err != nil {
		return nil, reject(op, err)
	}
	if in.Status == "" {
		in.Status = repository.CampaignActive
	}
	campaign := &repository.Campaign{
		ID:                uuid.NewString(),
		HospitalID:        in.HospitalID,
		Name:              in.Name,
		City:              in.City,
		District:          in.District,
		TargetVolumeMl:    in.TargetVolumeMl,
		TargetBloodGroups: in.TargetBloodGroups,
		StartAt:           in.StartAt.UTC(),
		EndAt:             in.EndAt.UTC(),
		Status:            in.Status,
		CoverImageURL:     in.CoverImageURL,
	}
	if err := c.store.CreateCampaign(ctx, campaign); err != nil {
		return nil, reject(op, translate(op, err))
	}
	c.logger.Info("campaign created",
		zap.String("campaign_id", campaign.ID),
		zap.String("hospital_id", campaign.HospitalID),
		zap.String("city", campaign.City),
	)

	if campaign.Status == repository.CampaignActive {
		c.fanOut(ctx, campaign.City, campaign.TargetBloodGroups, notifier.Notification{
			Title:      "Blood drive near you",
			Body:       fmt.Sprintf("%s on %s in %s.", campaign.Name, localDate(campaign.StartAt, c.loc).Format(time.DateOnly), campaign.City),
			ActionType: notifier.ActionCampaignNearby,
			ActionURL:  targetURL(repository.TargetCampaign, campaign.ID),
			Metadata:   map[string]string{"campaign_id": campaign.ID},
		})
	}
	return campaign, nil
}

type NewBloodRequest struct {
	HospitalID    string
	Name          string
	City          string
	BloodGroup    string
	RequiredUnits int
	Urgency       string
}

var urgencies = []string{"normal", "urgent", "critical"}

// CreateBloodRequest stores the request and notifies donors of the
// requested blood group in its city.
func (c *Coordinator) CreateBloodRequest(ctx context.Context, in NewBloodRequest) (*repository.BloodRequest, error) {
	const op = "create_blood_request"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if in.Urgency == "" {
		in.Urgency = "normal"
	}
	switch {
	case in.HospitalID == "":
		return nil, reject(op, invalidInput("hospital is required"))
	case strings.TrimSpace(in.Name) == "":
		return nil, reject(op, invalidInput("request name is required"))
	case !repository.ValidBloodGroup(in.BloodGroup):
		return nil, reject(op, invalidInput("unknown blood group %q", in.BloodGroup))
	case in.RequiredUnits <= 0:
		return nil, reject(op, invalidInput("required units must be positive"))
	case !contains(urgencies, in.Urgency):
		return nil, reject(op, invalidInput("unknown urgency %q", in.Urgency))
	}

	req := &repository.BloodRequest{
		ID:            uuid.NewString(),
		HospitalID:    in.HospitalID,
		Name:          in.Name,
		City:          in.City,
		BloodGroup:    in.BloodGroup,
		RequiredUnits: in.RequiredUnits,
		Urgency:       in.Urgency,
		Status:        repository.RequestOpen,
	}
	if err := c.store.CreateBloodRequest(ctx, req); err != nil {
		return nil, reject(op, translate(op, err))
	}
	c.logger.Info("blood request created",
		zap.String("blood_request_id", req.ID),
		zap.String("blood_group", req.BloodGroup),
		zap.String("urgency", req.Urgency),
	)

	c.fanOut(ctx, req.City, []string{req.BloodGroup}, notifier.Notification{
		Title:      fmt.Sprintf("%s blood needed", req.BloodGroup),
		Body:       fmt.Sprintf("%s needs %d units (%s).", req.Name, req.RequiredUnits, req.Urgency),
		ActionType: notifier.ActionBloodRequestNearby,
		ActionURL:  targetURL(repository.TargetBloodRequest, req.ID),
		Metadata:   map[string]string{"blood_request_id": req.ID, "urgency": req.Urgency},
	})
	return req, nil
}

func (c *Coordinator) SetCampaignStatus(ctx context.Context, campaignID string, status repository.CampaignStatus) (*repository.Campaign, error) {
	const op = "set_campaign_status"
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if !status.Valid() {
		return nil, reject(op, invalidInput("unknown campaign status %q", status))
	}
	campaign, err := c.store.SetCampaignStatus(ctx, campaignID, status)
	if err != nil {
		return nil, reject(op, translate(op, err))
	}
	c.logger.Info("campaign status changed", zap.String("campaign_id", campaignID), zap.String("status", string(status)))
	return campaign, nil
}

// Campaign returns the campaign with the metrics stored by the last
// recomputation.
func (c *Coordinator) Campaign(ctx context.Context, id string) (*CampaignView, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	campaign, err := c.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, translate("get_campaign", err)
	}
	return viewOf(campaign), nil
}

func (c *Coordinator) BloodRequest(ctx context.Context, id string) (*repository.BloodRequest, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := c.store.GetBloodRequest(ctx, id)
	if err != nil {
		return nil, translate("get_blood_request", err)
	}
	return req, nil
}

func (c *Coordinator) CampaignRegistrations(ctx context.Context, campaignID string) ([]*repository.Registration, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.store.GetCampaign(ctx, campaignID); err != nil {
		return nil, translate("campaign_registrations", err)
	}
	regs, err := c.store.ListCampaignRegistrations(ctx, campaignID)
	if err != nil {
		return nil, translate("campaign_registrations", err)
	}
	return regs, nil
}
