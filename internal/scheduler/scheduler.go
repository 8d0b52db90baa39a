package scheduler

import (
	"context"
	"time"

	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// DefaultInterval is the sweep period. Transitions are conditional updates
// in the store, so redundant sweepers on other instances are harmless.
const DefaultInterval = 2 * time.Second

// Scheduler drives the time-based auction lifecycle: it activates pending
// auctions whose scheduled start has passed and ends active auctions past
// their end date, publishing the corresponding events.
type Scheduler struct {
	repo     repository.AuctionDB
	bus      events.Bus
	interval time.Duration
	now      func() time.Time
}

// NewScheduler creates a scheduler; a non-positive interval falls back to
// DefaultInterval.
func NewScheduler(repo repository.AuctionDB, bus events.Bus, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		repo:     repo,
		bus:      bus,
		interval: interval,
		now:      time.Now,
	}
}

// Run sweeps periodically until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one activation pass and one expiry pass.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.now().UTC()

	activated, err := s.repo.ActivateDue(ctx, now)
	if err != nil {
		utils.Error("scheduler: activation sweep failed", map[string]any{"error": err.Error()})
	}
	for _, a := range activated {
		s.bus.Publish(ctx, events.AuctionActivated{AuctionID: a.ID, EndDate: *a.EndDate})
		utils.Info("scheduler: auction activated", map[string]any{
			"auction_id": a.ID,
			"end_date":   a.EndDate.UTC().Format(time.RFC3339),
		})
	}

	ended, err := s.repo.EndExpired(ctx, now)
	if err != nil {
		utils.Error("scheduler: expiry sweep failed", map[string]any{"error": err.Error()})
	}
	for _, a := range ended {
		ev := events.AuctionEnded{AuctionID: a.ID}
		if a.HighestBid != nil {
			ev.WinnerID = a.HighestBidderID
			ev.Amount = a.HighestBid
		}
		s.bus.Publish(ctx, ev)
		utils.Info("scheduler: auction ended", map[string]any{
			"auction_id": a.ID,
			"winner_id":  ev.WinnerID,
		})
	}
}
