package auctionerrors

import "errors"

// Bid rejection reasons. These are terminal for the call that produced them
// and are never retried by the engine itself.
var (
	ErrAuctionNotActive     = errors.New("auction is not active")
	ErrAuctionExpired       = errors.New("auction has expired")
	ErrBidTooLow            = errors.New("bid amount below current floor")
	ErrAlreadyHighestBidder = errors.New("bidder already holds the highest bid")
	ErrInsufficientFunds    = errors.New("insufficient wallet balance")
)

// Lifecycle and precondition errors
var (
	ErrInvalidStateTransition = errors.New("invalid auction state transition")
	ErrHasBids                = errors.New("auction already has bids")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
)

// ErrBusy signals the per-auction serialization point could not be acquired
// in time. It is the only error callers should retry.
var ErrBusy = errors.New("auction busy, retry")
