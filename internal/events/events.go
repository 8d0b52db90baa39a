package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is anything published on the auction event bus. The routing key is
// used as the AMQP topic when events are mirrored to a broker.
type Event interface {
	RoutingKey() string
}

// BidAccepted is published after a bid transaction commits. Consumers must
// be idempotent per BidID; delivery is at-least-once.
type BidAccepted struct {
	BidID            string          `json:"bid_id"`
	AuctionID        string          `json:"auction_id"`
	BidderID         string          `json:"bidder_id"`
	Amount           decimal.Decimal `json:"amount"`
	PreviousBidderID string          `json:"previous_bidder_id,omitempty"`
}

func (BidAccepted) RoutingKey() string { return "auction.bid.accepted" }

// AuctionActivated is published on the pending→active transition.
type AuctionActivated struct {
	AuctionID string    `json:"auction_id"`
	EndDate   time.Time `json:"end_date"`
}

func (AuctionActivated) RoutingKey() string { return "auction.activated" }

// AuctionEnded is published on the active→ended transition. WinnerID is
// empty when the auction closed without bids.
type AuctionEnded struct {
	AuctionID string           `json:"auction_id"`
	WinnerID  string           `json:"winner_id,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
}

func (AuctionEnded) RoutingKey() string { return "auction.ended" }

// AuctionWon drives the wallet debit and winner notification.
type AuctionWon struct {
	AuctionID string          `json:"auction_id"`
	WinnerID  string          `json:"winner_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (AuctionWon) RoutingKey() string { return "auction.won" }

// AuctionLost is fanned out to every bidder of an ended auction except the
// winner.
type AuctionLost struct {
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	WinnerID  string `json:"winner_id"`
}

func (AuctionLost) RoutingKey() string { return "auction.lost" }

// AuctionUnsold is published when an auction ends without any bid.
type AuctionUnsold struct {
	AuctionID string `json:"auction_id"`
}

func (AuctionUnsold) RoutingKey() string { return "auction.unsold" }

// AutoBidExhausted is published when an auto-bid instruction deactivates
// because its next qualifying bid would exceed its ceiling.
type AutoBidExhausted struct {
	AuctionID    string          `json:"auction_id"`
	BidderID     string          `json:"bidder_id"`
	MaxBidAmount decimal.Decimal `json:"max_bid_amount"`
}

func (AutoBidExhausted) RoutingKey() string { return "auction.autobid.exhausted" }
