package conversation

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Janitor periodically reaps idle conversations so abandoned widgets
// don't pile up engines and timers.
type Janitor struct {
	cron *cron.Cron
	svc  *Service
}

// NewJanitor schedules a sweep on the given cron spec (five-field,
// e.g. "*/5 * * * *").
func NewJanitor(svc *Service, spec string) (*Janitor, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	j := &Janitor{cron: c, svc: svc}
	if _, err := c.AddFunc(spec, j.sweep); err != nil {
		return nil, err
	}
	return j, nil
}

// Start begins the schedule.
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *Janitor) sweep() {
	if n := j.svc.ReapIdle(time.Now()); n > 0 {
		log.Info().Int("reaped", n).Int("live", j.svc.Len()).Msg("closed idle conversations")
	}
}
