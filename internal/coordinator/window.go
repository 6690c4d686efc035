package coordinator

import (
	"fmt"
	"time"

	"gitlab.com/bloodcamp/coordinator/internal/repository"
)

// Permitted donation volumes in ml. Anything else is recorded as DefaultVolumeMl.
var PermittedVolumes = []int{250, 350, 450}

const DefaultVolumeMl = 350

func NormalizeVolume(ml int) int {
	for _, v := range PermittedVolumes {
		if v == ml {
			return ml
		}
	}
	return DefaultVolumeMl
}

// localDate truncates t to midnight of its calendar day in loc.
func localDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// checkWindow compares calendar days, not elapsed hours: a campaign that
// starts at 14:00 accepts a check-in at 08:00 on the same day.
func checkWindow(c *repository.Campaign, now time.Time, loc *time.Location) error {
	today := localDate(now, loc)
	start := localDate(c.StartAt, loc)
	end := localDate(c.EndAt, loc)
	if end.Before(start) {
		end = start
	}
	if today.Before(start) || today.After(end) {
		return &OutOfWindowError{ScheduledDate: start, EndDate: end, Today: today}
	}
	return nil
}

func (c *Coordinator) checkInGuard(campaign *repository.Campaign, now time.Time) error {
	if campaign.Status != repository.CampaignActive {
		return fmt.Errorf("%w: campaign %q is %s", ErrInvalidTransition, campaign.Name, campaign.Status)
	}
	return checkWindow(campaign, now, c.loc)
}
