package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusPending AuctionStatus = "pending"
	StatusActive  AuctionStatus = "active"
	StatusEnded   AuctionStatus = "ended"
)

// Auction is the persisted auction record. HighestBid is nil until the first
// bid is accepted; EndDate is nil until activation. Version guards
// compare-and-swap updates on the highest-bid fields.
type Auction struct {
	ID              string           `db:"id" json:"auction_id"`
	ProductRef      string           `db:"product_ref" json:"product_ref"`
	SellerID        string           `db:"seller_id" json:"seller_id"`
	Status          AuctionStatus    `db:"status" json:"status"`
	StartingPrice   decimal.Decimal  `db:"starting_price" json:"starting_price"`
	MinBidIncrement decimal.Decimal  `db:"min_bid_increment" json:"min_bid_increment"`
	HighestBid      *decimal.Decimal `db:"highest_bid" json:"highest_bid,omitempty"`
	HighestBidderID string           `db:"highest_bidder_id" json:"highest_bidder_id,omitempty"`
	DurationSeconds int              `db:"duration_seconds" json:"duration_seconds"`
	ScheduledStart  *time.Time       `db:"scheduled_start" json:"scheduled_start,omitempty"`
	EndDate         *time.Time       `db:"end_date" json:"end_date,omitempty"`
	Version         int              `db:"version" json:"version"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
}

// CurrentFloor returns the minimum amount the next bid must reach:
// (highest bid, or the starting price when no bid exists) + min increment.
func (a *Auction) CurrentFloor() decimal.Decimal {
	if a.HighestBid != nil {
		return a.HighestBid.Add(a.MinBidIncrement)
	}
	return a.StartingPrice.Add(a.MinBidIncrement)
}

// Duration returns the configured auction duration.
func (a *Auction) Duration() time.Duration {
	return time.Duration(a.DurationSeconds) * time.Second
}

// Bid is an accepted bid. Bids are append-only and never mutated; per
// auction their amounts are strictly increasing in creation order.
type Bid struct {
	BidID          string          `db:"id" json:"bid_id"`
	AuctionID      string          `db:"auction_id" json:"auction_id"`
	BidderID       string          `db:"bidder_id" json:"bidder_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	IdempotencyKey string          `db:"idempotency_key" json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// AutoBidInstruction is a standing instruction to rebid on a user's behalf
// whenever they are outbid, up to MaxBidAmount. At most one active
// instruction exists per (auction, bidder) pair. CurrentBidAmount is a cache
// of the last bid the agent placed; the bid history stays authoritative.
type AutoBidInstruction struct {
	AuctionID        string          `db:"auction_id" json:"auction_id"`
	BidderID         string          `db:"bidder_id" json:"bidder_id"`
	MaxBidAmount     decimal.Decimal `db:"max_bid_amount" json:"max_bid_amount"`
	IncrementAmount  decimal.Decimal `db:"increment_amount" json:"increment_amount"`
	CurrentBidAmount decimal.Decimal `db:"current_bid_amount" json:"current_bid_amount"`
	IsActive         bool            `db:"is_active" json:"is_active"`
}
