package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// Campaign is a recurring broadcast. Spec uses the standard five-field cron
// syntax, e.g. "0 9 * * 1" for every Monday at 09:00.
type Campaign struct {
	ID        string
	Name      string
	Spec      string
	Broadcast Broadcast
}

// Scheduler runs broadcast campaigns on a cron timetable.
type Scheduler struct {
	mu        sync.Mutex
	cron      *cron.Cron
	entries   map[string]cron.EntryID
	service   *Service
	telemetry Telemetry
	started   bool
}

// NewScheduler builds a scheduler that sends campaigns through svc.
func NewScheduler(svc *Service, telemetry Telemetry) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		entries:   map[string]cron.EntryID{},
		service:   svc,
		telemetry: normalizeTelemetry(telemetry),
	}
}

// AddCampaign registers a campaign. Replacing an existing id removes the
// previous schedule first.
func (s *Scheduler) AddCampaign(c Campaign) error {
	if c.ID == "" {
		return fmt.Errorf("console: campaign requires an id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.entries[c.ID]; ok {
		s.cron.Remove(prev)
		delete(s.entries, c.ID)
	}
	campaign := c
	id, err := s.cron.AddFunc(c.Spec, func() { s.run(campaign) })
	if err != nil {
		return fmt.Errorf("console: schedule campaign %q: %w", c.ID, err)
	}
	s.entries[c.ID] = id
	return nil
}

// RemoveCampaign drops a campaign. Unknown ids are a no-op.
func (s *Scheduler) RemoveCampaign(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[id]; ok {
		s.cron.Remove(entry)
		delete(s.entries, id)
	}
}

// Campaigns reports how many campaigns are registered.
func (s *Scheduler) Campaigns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start begins running campaigns in the background.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.cron.Start()
	s.started = true
}

// Stop halts the timetable and waits for in-flight sends to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.started = false
}

func (s *Scheduler) run(c Campaign) {
	ctx := context.Background()
	if err := s.service.SendBroadcast(ctx, c.Broadcast); err != nil {
		s.telemetry.Record(ctx, "console.campaign.failed", map[string]any{
			"campaign": c.ID,
			"error":    err.Error(),
		})
		return
	}
	s.telemetry.Record(ctx, "console.campaign.sent", map[string]any{
		"campaign": c.ID,
	})
}
