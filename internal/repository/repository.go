package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"auction-engine/internal/models"
)

// AuctionDB is the auction storage interface. Lifecycle transitions are
// conditional updates so they stay safe under concurrent sweepers, and
// RecordBid is a version-guarded write of the bid row plus the auction's
// highest-bid fields in one atomic step.
type AuctionDB interface {
	CreateAuction(ctx context.Context, a *models.Auction) error
	GetAuction(ctx context.Context, auctionID string) (models.Auction, error)
	// ActivateAuction moves a pending auction to active with the given end
	// date. It only matches rows still in pending, so a second activation
	// reports ErrInvalidStateTransition.
	ActivateAuction(ctx context.Context, auctionID string, endDate time.Time) error
	// UpdateAuctionSettings applies the non-nil fields while the auction is
	// still pending and has no bids.
	UpdateAuctionSettings(ctx context.Context, auctionID string, minBidIncrement *decimal.Decimal, durationSeconds *int) error
	ListActiveAuctions(ctx context.Context, limit, offset int) ([]models.Auction, error)
	// ActivateDue activates pending auctions whose scheduled start has
	// passed and returns them with end dates assigned.
	ActivateDue(ctx context.Context, now time.Time) ([]models.Auction, error)
	// EndExpired transitions active auctions with endDate <= now to ended
	// and returns them. At most one concurrent sweeper observes each
	// transition.
	EndExpired(ctx context.Context, now time.Time) ([]models.Auction, error)

	// RecordBid appends the bid and updates the auction's highest bid,
	// bidder and version, conditional on the auction still being at
	// auctionVersion. A version mismatch reports ErrBusy.
	RecordBid(ctx context.Context, bid models.Bid, auctionVersion int) error
	GetBidByIdempotencyKey(ctx context.Context, key string) (models.Bid, error)
	ListBids(ctx context.Context, auctionID string) ([]models.Bid, error)
	CountBids(ctx context.Context, auctionID string) (int, error)

	UpsertInstruction(ctx context.Context, ins models.AutoBidInstruction) error
	GetInstruction(ctx context.Context, auctionID, bidderID string) (models.AutoBidInstruction, error)
	// ListInstructionsForAuction returns all instructions for the auction,
	// active or not, ordered by bidder id.
	ListInstructionsForAuction(ctx context.Context, auctionID string) ([]models.AutoBidInstruction, error)
	DeactivateInstruction(ctx context.Context, auctionID, bidderID string) error
	DeactivateInstructionsForAuction(ctx context.Context, auctionID string) error
	SetInstructionCurrentBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) error
}
