package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	ProductRef      string          `json:"product_ref" binding:"required"`
	SellerID        string          `json:"seller_id" binding:"required"`
	StartingPrice   decimal.Decimal `json:"starting_price" binding:"required"`
	MinBidIncrement decimal.Decimal `json:"min_bid_increment" binding:"required"`
	DurationSeconds int             `json:"duration_seconds" binding:"required,gt=0"`
	ScheduledStart  *time.Time      `json:"scheduled_start,omitempty"`
}

type UpdateSettingsRequest struct {
	MinBidIncrement *decimal.Decimal `json:"min_bid_increment,omitempty"`
	DurationSeconds *int             `json:"duration_seconds,omitempty"`
}

type PlaceBidRequest struct {
	AuctionID      string          `json:"auction_id" binding:"required"`
	BidderID       string          `json:"bidder_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

type UpsertAutoBidRequest struct {
	BidderID        string          `json:"bidder_id" binding:"required"`
	MaxBidAmount    decimal.Decimal `json:"max_bid_amount" binding:"required"`
	IncrementAmount decimal.Decimal `json:"increment_amount" binding:"required"`
}

type AuctionResponse struct {
	AuctionID       string  `json:"auction_id"`
	ProductRef      string  `json:"product_ref"`
	SellerID        string  `json:"seller_id"`
	Status          string  `json:"status"`
	StartingPrice   string  `json:"starting_price"`
	MinBidIncrement string  `json:"min_bid_increment"`
	HighestBid      *string `json:"highest_bid,omitempty"`
	HighestBidderID string  `json:"highest_bidder_id,omitempty"`
	DurationSeconds int     `json:"duration_seconds"`
	EndDate         *string `json:"end_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type AutoBidResponse struct {
	AuctionID       string `json:"auction_id"`
	BidderID        string `json:"bidder_id"`
	MaxBidAmount    string `json:"max_bid_amount"`
	IncrementAmount string `json:"increment_amount"`
	IsActive        bool   `json:"is_active"`
}
