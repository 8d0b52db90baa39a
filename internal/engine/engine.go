package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/wallet"
	"auction-engine/utils"
)

// DefaultLockTimeout bounds how long PlaceBid waits on the per-auction
// serialization point before reporting Busy.
const DefaultLockTimeout = 3 * time.Second

// Engine is the transactional bidding core. It owns auction lifecycle
// operations, bid acceptance, and the auto-bid instruction registry; events
// are published on the bus only after the corresponding write committed.
type Engine struct {
	repo        repository.AuctionDB
	wallet      wallet.Service
	bus         events.Bus
	locks       *lockTable
	lockTimeout time.Duration
	now         func() time.Time
}

// NewEngine creates an Engine with the default lock timeout and wall clock.
func NewEngine(repo repository.AuctionDB, walletSvc wallet.Service, bus events.Bus) *Engine {
	return &Engine{
		repo:        repo,
		wallet:      walletSvc,
		bus:         bus,
		locks:       newLockTable(),
		lockTimeout: DefaultLockTimeout,
		now:         time.Now,
	}
}

// WithLockTimeout overrides the serialization-point wait bound and returns
// the engine for chaining.
func (e *Engine) WithLockTimeout(d time.Duration) *Engine {
	if d > 0 {
		e.lockTimeout = d
	}
	return e
}

// CreateAuctionCommand is the upstream moderation approval payload.
type CreateAuctionCommand struct {
	ProductRef      string
	SellerID        string
	StartingPrice   decimal.Decimal
	MinBidIncrement decimal.Decimal
	DurationSeconds int
	// ScheduledStart, when set, lets the lifecycle sweep activate the
	// auction automatically; otherwise activation is an explicit admin call.
	ScheduledStart *time.Time
}

// CreateAuction stores a new auction in pending state.
func (e *Engine) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (models.Auction, error) {
	if cmd.ProductRef == "" || cmd.SellerID == "" {
		return models.Auction{}, fmt.Errorf("engine: %w - missing product or seller reference", auctionerrors.ErrInvalidInput)
	}
	if !cmd.StartingPrice.IsPositive() || !cmd.MinBidIncrement.IsPositive() {
		return models.Auction{}, fmt.Errorf("engine: %w - starting price and increment must be positive", auctionerrors.ErrInvalidInput)
	}
	if cmd.DurationSeconds <= 0 {
		return models.Auction{}, fmt.Errorf("engine: %w - non-positive duration", auctionerrors.ErrInvalidInput)
	}

	auction := models.Auction{
		ID:              utils.GenerateID(),
		ProductRef:      cmd.ProductRef,
		SellerID:        cmd.SellerID,
		Status:          models.StatusPending,
		StartingPrice:   cmd.StartingPrice,
		MinBidIncrement: cmd.MinBidIncrement,
		DurationSeconds: cmd.DurationSeconds,
		ScheduledStart:  cmd.ScheduledStart,
		Version:         1,
		CreatedAt:       e.now().UTC(),
	}
	if err := e.repo.CreateAuction(ctx, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to create auction for product %s: %w", cmd.ProductRef, err)
	}
	return auction, nil
}

// ActivateAuction is the explicit administrative pending→active transition.
// The end date is derived from the activation moment. Activating an auction
// that is already active or ended reports ErrInvalidStateTransition.
func (e *Engine) ActivateAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	release, err := e.locks.acquire(ctx, auctionID, e.lockTimeout)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: %w", err)
	}

	auction, err := e.activateLocked(ctx, auctionID)
	release()
	if err != nil {
		return models.Auction{}, err
	}

	e.bus.Publish(ctx, events.AuctionActivated{AuctionID: auction.ID, EndDate: *auction.EndDate})
	return auction, nil
}

func (e *Engine) activateLocked(ctx context.Context, auctionID string) (models.Auction, error) {
	snapshot, err := e.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to load auction %s: %w", auctionID, err)
	}
	if snapshot.Status != models.StatusPending {
		return models.Auction{}, fmt.Errorf("engine: activate auction %s in status %s: %w",
			auctionID, snapshot.Status, auctionerrors.ErrInvalidStateTransition)
	}

	endDate := e.now().UTC().Add(snapshot.Duration())
	if err := e.repo.ActivateAuction(ctx, auctionID, endDate); err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to activate auction %s: %w", auctionID, err)
	}

	auction, err := e.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to reload auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// UpdateSettingsCommand carries the mutable pre-activation settings; nil
// fields are left unchanged.
type UpdateSettingsCommand struct {
	MinBidIncrement *decimal.Decimal
	DurationSeconds *int
}

// UpdateAuctionSettings changes increment/duration while the auction is
// still pending and has no bids; otherwise ErrHasBids or
// ErrInvalidStateTransition.
func (e *Engine) UpdateAuctionSettings(ctx context.Context, auctionID string, cmd UpdateSettingsCommand) (models.Auction, error) {
	if cmd.MinBidIncrement == nil && cmd.DurationSeconds == nil {
		return models.Auction{}, fmt.Errorf("engine: %w - no settings provided", auctionerrors.ErrInvalidInput)
	}
	if cmd.MinBidIncrement != nil && !cmd.MinBidIncrement.IsPositive() {
		return models.Auction{}, fmt.Errorf("engine: %w - non-positive increment", auctionerrors.ErrInvalidInput)
	}
	if cmd.DurationSeconds != nil && *cmd.DurationSeconds <= 0 {
		return models.Auction{}, fmt.Errorf("engine: %w - non-positive duration", auctionerrors.ErrInvalidInput)
	}

	release, err := e.locks.acquire(ctx, auctionID, e.lockTimeout)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: %w", err)
	}
	defer release()

	if err := e.repo.UpdateAuctionSettings(ctx, auctionID, cmd.MinBidIncrement, cmd.DurationSeconds); err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to update settings for auction %s: %w", auctionID, err)
	}
	auction, err := e.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to reload auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// PlaceBidCommand is one bid submission. IdempotencyKey, when supplied by
// the caller, makes network retries safe: a duplicate submission returns the
// originally accepted bid.
type PlaceBidCommand struct {
	AuctionID      string
	BidderID       string
	Amount         decimal.Decimal
	IdempotencyKey string
}

// PlaceBid validates and records a bid. Concurrent bids on one auction are
// totally ordered by the per-auction lock; the BidAccepted event is
// published after the transaction committed and the lock was released, so
// subscribers may place follow-up bids on the same auction.
func (e *Engine) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (models.Bid, error) {
	if cmd.AuctionID == "" || cmd.BidderID == "" {
		return models.Bid{}, fmt.Errorf("engine: %w - missing auction or bidder id", auctionerrors.ErrInvalidInput)
	}
	if !cmd.Amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("engine: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	if cmd.IdempotencyKey != "" {
		prev, err := e.repo.GetBidByIdempotencyKey(ctx, cmd.IdempotencyKey)
		if err == nil {
			return prev, nil
		}
		if !errors.Is(err, auctionerrors.ErrNotFound) {
			return models.Bid{}, fmt.Errorf("engine: failed to check idempotency key: %w", err)
		}
	}

	release, err := e.locks.acquire(ctx, cmd.AuctionID, e.lockTimeout)
	if err != nil {
		return models.Bid{}, fmt.Errorf("engine: %w", err)
	}

	bid, previousBidderID, err := e.placeBidLocked(ctx, cmd)
	release()
	if err != nil {
		return models.Bid{}, err
	}

	e.bus.Publish(ctx, events.BidAccepted{
		BidID:            bid.BidID,
		AuctionID:        bid.AuctionID,
		BidderID:         bid.BidderID,
		Amount:           bid.Amount,
		PreviousBidderID: previousBidderID,
	})
	utils.Info("engine: bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
	return bid, nil
}

func (e *Engine) placeBidLocked(ctx context.Context, cmd PlaceBidCommand) (models.Bid, string, error) {
	snapshot, err := e.repo.GetAuction(ctx, cmd.AuctionID)
	if err != nil {
		return models.Bid{}, "", fmt.Errorf("engine: failed to load auction %s: %w", cmd.AuctionID, err)
	}

	if err := ValidateBid(snapshot, cmd.BidderID, cmd.Amount, e.now().UTC()); err != nil {
		return models.Bid{}, "", fmt.Errorf("engine: %w", err)
	}

	// The wallet is an external system; only otherwise-admissible bids pay
	// the round trip, and a wallet outage cannot mask a plain rejection.
	available, err := e.wallet.AvailableBalance(ctx, cmd.BidderID)
	if err != nil {
		return models.Bid{}, "", fmt.Errorf("engine: failed to query wallet for bidder %s: %w", cmd.BidderID, err)
	}
	if err := ValidateFunds(snapshot, cmd.Amount, available); err != nil {
		return models.Bid{}, "", fmt.Errorf("engine: %w", err)
	}

	bid := models.Bid{
		BidID:          utils.GenerateID(),
		AuctionID:      cmd.AuctionID,
		BidderID:       cmd.BidderID,
		Amount:         cmd.Amount,
		IdempotencyKey: cmd.IdempotencyKey,
		CreatedAt:      e.now().UTC(),
	}
	if err := e.repo.RecordBid(ctx, bid, snapshot.Version); err != nil {
		return models.Bid{}, "", fmt.Errorf("engine: failed to record bid on auction %s: %w", cmd.AuctionID, err)
	}
	return bid, snapshot.HighestBidderID, nil
}

// UpsertAutoBidCommand creates or replaces a standing auto-bid instruction.
type UpsertAutoBidCommand struct {
	AuctionID       string
	BidderID        string
	MaxBidAmount    decimal.Decimal
	IncrementAmount decimal.Decimal
}

// UpsertAutoBid registers the instruction for the (auction, bidder) pair,
// reactivating a previously cancelled one.
func (e *Engine) UpsertAutoBid(ctx context.Context, cmd UpsertAutoBidCommand) (models.AutoBidInstruction, error) {
	if cmd.AuctionID == "" || cmd.BidderID == "" {
		return models.AutoBidInstruction{}, fmt.Errorf("engine: %w - missing auction or bidder id", auctionerrors.ErrInvalidInput)
	}
	if !cmd.MaxBidAmount.IsPositive() || !cmd.IncrementAmount.IsPositive() {
		return models.AutoBidInstruction{}, fmt.Errorf("engine: %w - ceiling and increment must be positive", auctionerrors.ErrInvalidInput)
	}

	auction, err := e.repo.GetAuction(ctx, cmd.AuctionID)
	if err != nil {
		return models.AutoBidInstruction{}, fmt.Errorf("engine: failed to load auction %s: %w", cmd.AuctionID, err)
	}
	if auction.Status == models.StatusEnded {
		return models.AutoBidInstruction{}, fmt.Errorf("engine: auto-bid on ended auction %s: %w",
			cmd.AuctionID, auctionerrors.ErrInvalidStateTransition)
	}

	ins := models.AutoBidInstruction{
		AuctionID:       cmd.AuctionID,
		BidderID:        cmd.BidderID,
		MaxBidAmount:    cmd.MaxBidAmount,
		IncrementAmount: cmd.IncrementAmount,
		IsActive:        true,
	}
	if err := e.repo.UpsertInstruction(ctx, ins); err != nil {
		return models.AutoBidInstruction{}, fmt.Errorf("engine: failed to upsert auto-bid for auction %s: %w", cmd.AuctionID, err)
	}
	return ins, nil
}

// CancelAutoBid deactivates the instruction. Cancellation takes effect
// before the next event reaction because the agent re-reads IsActive inside
// its handler.
func (e *Engine) CancelAutoBid(ctx context.Context, auctionID, bidderID string) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("engine: %w - missing auction or bidder id", auctionerrors.ErrInvalidInput)
	}
	if err := e.repo.DeactivateInstruction(ctx, auctionID, bidderID); err != nil {
		return fmt.Errorf("engine: failed to cancel auto-bid for auction %s: %w", auctionID, err)
	}
	return nil
}

// GetAuction returns the current auction snapshot.
func (e *Engine) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("engine: %w - empty auction id", auctionerrors.ErrInvalidInput)
	}
	auction, err := e.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("engine: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListBids returns the auction's bids, oldest first.
func (e *Engine) ListBids(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("engine: %w - empty auction id", auctionerrors.ErrInvalidInput)
	}
	bids, err := e.repo.ListBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// ListActiveAuctions returns a page of active auctions ordered by end date.
func (e *Engine) ListActiveAuctions(ctx context.Context, limit, offset int) ([]models.Auction, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	auctions, err := e.repo.ListActiveAuctions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to list active auctions: %w", err)
	}
	return auctions, nil
}
