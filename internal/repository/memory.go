package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It is the default store for tests and single-node runs.
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]*models.Auction
	bids         map[string][]models.Bid              // key: auctionID, append-only in acceptance order
	idempotency  map[string]models.Bid                 // key: idempotency key
	instructions map[string]map[string]models.AutoBidInstruction // auctionID -> bidderID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]*models.Auction),
		bids:         make(map[string][]models.Bid),
		idempotency:  make(map[string]models.Bid),
		instructions: make(map[string]map[string]models.AutoBidInstruction),
	}
}

// CreateAuction stores a new auction record.
func (r *MemoryRepo) CreateAuction(_ context.Context, a *models.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.ID]; ok {
		return fmt.Errorf("create auction %s: %w", a.ID, auctionerrors.ErrInvalidInput)
	}
	cp := *a
	r.auctions[a.ID] = &cp
	return nil
}

// GetAuction returns a snapshot of the auction.
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return *a, nil
}

// ActivateAuction moves a pending auction to active.
func (r *MemoryRepo) ActivateAuction(_ context.Context, auctionID string, endDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("activate auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if a.Status != models.StatusPending {
		return fmt.Errorf("activate auction %s in status %s: %w", auctionID, a.Status, auctionerrors.ErrInvalidStateTransition)
	}
	a.Status = models.StatusActive
	a.EndDate = &endDate
	a.Version++
	return nil
}

// UpdateAuctionSettings applies the non-nil fields while the auction is
// pending and has no bids.
func (r *MemoryRepo) UpdateAuctionSettings(_ context.Context, auctionID string, minBidIncrement *decimal.Decimal, durationSeconds *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update settings for auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if a.Status != models.StatusPending {
		return fmt.Errorf("update settings for auction %s in status %s: %w", auctionID, a.Status, auctionerrors.ErrInvalidStateTransition)
	}
	if len(r.bids[auctionID]) > 0 {
		return fmt.Errorf("update settings for auction %s: %w", auctionID, auctionerrors.ErrHasBids)
	}
	if minBidIncrement != nil {
		a.MinBidIncrement = *minBidIncrement
	}
	if durationSeconds != nil {
		a.DurationSeconds = *durationSeconds
	}
	a.Version++
	return nil
}

// ListActiveAuctions returns active auctions ordered by end date.
func (r *MemoryRepo) ListActiveAuctions(_ context.Context, limit, offset int) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]models.Auction, 0)
	for _, a := range r.auctions {
		if a.Status == models.StatusActive {
			active = append(active, *a)
		}
	}
	sortAuctionsByEndDate(active)

	if offset >= len(active) {
		return []models.Auction{}, nil
	}
	active = active[offset:]
	if limit > 0 && limit < len(active) {
		active = active[:limit]
	}
	return active, nil
}

// ActivateDue activates pending auctions whose scheduled start has passed.
func (r *MemoryRepo) ActivateDue(_ context.Context, now time.Time) ([]models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var activated []models.Auction
	for _, a := range r.auctions {
		if a.Status != models.StatusPending || a.ScheduledStart == nil || a.ScheduledStart.After(now) {
			continue
		}
		end := now.Add(a.Duration())
		a.Status = models.StatusActive
		a.EndDate = &end
		a.Version++
		activated = append(activated, *a)
	}
	return activated, nil
}

// EndExpired transitions active auctions past their end date to ended.
func (r *MemoryRepo) EndExpired(_ context.Context, now time.Time) ([]models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ended []models.Auction
	for _, a := range r.auctions {
		if a.Status != models.StatusActive || a.EndDate == nil || a.EndDate.After(now) {
			continue
		}
		a.Status = models.StatusEnded
		a.Version++
		ended = append(ended, *a)
	}
	return ended, nil
}

// RecordBid appends the bid and updates the auction's highest-bid fields in
// one step, guarded by the auction version the caller validated against.
func (r *MemoryRepo) RecordBid(_ context.Context, bid models.Bid, auctionVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[bid.AuctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrNotFound)
	}
	if a.Version != auctionVersion {
		return fmt.Errorf("record bid for auction %s at version %d (now %d): %w",
			bid.AuctionID, auctionVersion, a.Version, auctionerrors.ErrBusy)
	}

	amount := bid.Amount
	a.HighestBid = &amount
	a.HighestBidderID = bid.BidderID
	a.Version++
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	if bid.IdempotencyKey != "" {
		r.idempotency[bid.IdempotencyKey] = bid
	}
	return nil
}

// GetBidByIdempotencyKey returns the bid previously recorded under key.
func (r *MemoryRepo) GetBidByIdempotencyKey(_ context.Context, key string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.idempotency[key]
	if !ok {
		return models.Bid{}, fmt.Errorf("bid with idempotency key %s: %w", key, auctionerrors.ErrNotFound)
	}
	return bid, nil
}

// ListBids returns all bids for an auction, oldest first.
func (r *MemoryRepo) ListBids(_ context.Context, auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return append([]models.Bid(nil), r.bids[auctionID]...), nil
}

// CountBids returns the number of bids recorded for an auction.
func (r *MemoryRepo) CountBids(_ context.Context, auctionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bids[auctionID]), nil
}

// UpsertInstruction creates or replaces the instruction for the
// (auction, bidder) pair and reactivates it.
func (r *MemoryRepo) UpsertInstruction(_ context.Context, ins models.AutoBidInstruction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byBidder, ok := r.instructions[ins.AuctionID]
	if !ok {
		byBidder = make(map[string]models.AutoBidInstruction)
		r.instructions[ins.AuctionID] = byBidder
	}
	byBidder[ins.BidderID] = ins
	return nil
}

// GetInstruction returns the instruction for the (auction, bidder) pair.
func (r *MemoryRepo) GetInstruction(_ context.Context, auctionID, bidderID string) (models.AutoBidInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ins, ok := r.instructions[auctionID][bidderID]
	if !ok {
		return models.AutoBidInstruction{}, fmt.Errorf("instruction for auction %s bidder %s: %w",
			auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	return ins, nil
}

// ListInstructionsForAuction returns the auction's instructions ordered by
// bidder id.
func (r *MemoryRepo) ListInstructionsForAuction(_ context.Context, auctionID string) ([]models.AutoBidInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.AutoBidInstruction, 0, len(r.instructions[auctionID]))
	for _, ins := range r.instructions[auctionID] {
		out = append(out, ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BidderID < out[j].BidderID })
	return out, nil
}

// DeactivateInstruction marks the instruction inactive.
func (r *MemoryRepo) DeactivateInstruction(_ context.Context, auctionID, bidderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ins, ok := r.instructions[auctionID][bidderID]
	if !ok {
		return fmt.Errorf("instruction for auction %s bidder %s: %w",
			auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	ins.IsActive = false
	r.instructions[auctionID][bidderID] = ins
	return nil
}

// DeactivateInstructionsForAuction marks all instructions for an auction
// inactive, used when the auction ends.
func (r *MemoryRepo) DeactivateInstructionsForAuction(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for bidderID, ins := range r.instructions[auctionID] {
		ins.IsActive = false
		r.instructions[auctionID][bidderID] = ins
	}
	return nil
}

// SetInstructionCurrentBid refreshes the instruction's last-bid cache.
func (r *MemoryRepo) SetInstructionCurrentBid(_ context.Context, auctionID, bidderID string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ins, ok := r.instructions[auctionID][bidderID]
	if !ok {
		return fmt.Errorf("instruction for auction %s bidder %s: %w",
			auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	ins.CurrentBidAmount = amount
	r.instructions[auctionID][bidderID] = ins
	return nil
}

func sortAuctionsByEndDate(auctions []models.Auction) {
	sort.Slice(auctions, func(i, j int) bool {
		return earlierEnd(auctions[i], auctions[j])
	})
}

func earlierEnd(a, b models.Auction) bool {
	switch {
	case a.EndDate == nil:
		return false
	case b.EndDate == nil:
		return true
	case a.EndDate.Equal(*b.EndDate):
		return a.ID < b.ID
	default:
		return a.EndDate.Before(*b.EndDate)
	}
}
