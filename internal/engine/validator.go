package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
)

// ValidateBid is the pure admissibility check for a candidate bid against an
// auction snapshot. It performs no I/O; the caller supplies the
// authoritative server time. The first failing rule wins:
//
//	auction not active        -> ErrAuctionNotActive
//	now past end date         -> ErrAuctionExpired
//	bidder is highest bidder  -> ErrAlreadyHighestBidder
//	amount below floor        -> ErrBidTooLow
//
// The funds check lives in ValidateFunds so callers can reject
// inadmissible bids without ever touching the wallet.
func ValidateBid(snapshot models.Auction, bidderID string, amount decimal.Decimal, now time.Time) error {
	if snapshot.Status != models.StatusActive {
		return fmt.Errorf("validate bid on auction %s in status %s: %w",
			snapshot.ID, snapshot.Status, auctionerrors.ErrAuctionNotActive)
	}
	if snapshot.EndDate == nil || !now.Before(*snapshot.EndDate) {
		return fmt.Errorf("validate bid on auction %s: %w", snapshot.ID, auctionerrors.ErrAuctionExpired)
	}
	if bidderID == snapshot.HighestBidderID {
		return fmt.Errorf("validate bid on auction %s: %w", snapshot.ID, auctionerrors.ErrAlreadyHighestBidder)
	}
	if floor := snapshot.CurrentFloor(); amount.LessThan(floor) {
		return fmt.Errorf("validate bid on auction %s: amount %s below floor %s: %w",
			snapshot.ID, amount, floor, auctionerrors.ErrBidTooLow)
	}
	return nil
}

// ValidateFunds checks the bidder's available balance covers the bid amount.
func ValidateFunds(snapshot models.Auction, amount, available decimal.Decimal) error {
	if available.LessThan(amount) {
		return fmt.Errorf("validate bid on auction %s: balance %s below amount %s: %w",
			snapshot.ID, available, amount, auctionerrors.ErrInsufficientFunds)
	}
	return nil
}
