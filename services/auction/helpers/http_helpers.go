package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/engine errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount below current floor"
	case errors.Is(err, auctionerrors.ErrAlreadyHighestBidder):
		return http.StatusConflict, "bidder already holds the highest bid"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusConflict, "auction has expired"
	case errors.Is(err, auctionerrors.ErrInvalidStateTransition):
		return http.StatusConflict, "invalid auction state transition"
	case errors.Is(err, auctionerrors.ErrHasBids):
		return http.StatusConflict, "auction already has bids"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient wallet balance"
	case errors.Is(err, auctionerrors.ErrBusy):
		return http.StatusTooManyRequests, "auction busy, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToAuctionResponse converts an auction record to its response DTO.
func ToAuctionResponse(a models.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:       a.ID,
		ProductRef:      a.ProductRef,
		SellerID:        a.SellerID,
		Status:          string(a.Status),
		StartingPrice:   a.StartingPrice.String(),
		MinBidIncrement: a.MinBidIncrement.String(),
		HighestBidderID: a.HighestBidderID,
		DurationSeconds: a.DurationSeconds,
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.HighestBid != nil {
		highest := a.HighestBid.String()
		resp.HighestBid = &highest
	}
	if a.EndDate != nil {
		end := a.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}

// ToBidResponse converts a bid record to its response DTO.
func ToBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount.String(),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAutoBidResponse converts an instruction to its response DTO.
func ToAutoBidResponse(ins models.AutoBidInstruction) AutoBidResponse {
	return AutoBidResponse{
		AuctionID:       ins.AuctionID,
		BidderID:        ins.BidderID,
		MaxBidAmount:    ins.MaxBidAmount.String(),
		IncrementAmount: ins.IncrementAmount.String(),
		IsActive:        ins.IsActive,
	}
}
