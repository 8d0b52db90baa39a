package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-engine/internal/engine"
	"auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"
)

type AuctionEngineInterface interface {
	CreateAuction(ctx context.Context, cmd engine.CreateAuctionCommand) (models.Auction, error)
	ActivateAuction(ctx context.Context, auctionID string) (models.Auction, error)
	UpdateAuctionSettings(ctx context.Context, auctionID string, cmd engine.UpdateSettingsCommand) (models.Auction, error)
	PlaceBid(ctx context.Context, cmd engine.PlaceBidCommand) (models.Bid, error)
	UpsertAutoBid(ctx context.Context, cmd engine.UpsertAutoBidCommand) (models.AutoBidInstruction, error)
	CancelAutoBid(ctx context.Context, auctionID, bidderID string) error
	GetAuction(ctx context.Context, auctionID string) (models.Auction, error)
	ListBids(ctx context.Context, auctionID string) ([]models.Bid, error)
	ListActiveAuctions(ctx context.Context, limit, offset int) ([]models.Auction, error)
}

type AuctionHandler struct {
	engine AuctionEngineInterface
}

func NewAuctionHandler(eng AuctionEngineInterface) *AuctionHandler {
	return &AuctionHandler{engine: eng}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.engine.CreateAuction(c.Request.Context(), engine.CreateAuctionCommand{
		ProductRef:      req.ProductRef,
		SellerID:        req.SellerID,
		StartingPrice:   req.StartingPrice,
		MinBidIncrement: req.MinBidIncrement,
		DurationSeconds: req.DurationSeconds,
		ScheduledStart:  req.ScheduledStart,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"product_ref": req.ProductRef,
			"seller_id":   req.SellerID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":  auction.ID,
		"product_ref": auction.ProductRef,
	})
}

// ActivateAuctionHandler handles POST /auctions/:auction_id/activate
func (h *AuctionHandler) ActivateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.engine.ActivateAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ActivateAuctionHandler: activation failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction activated successfully")
	helpers.LogSuccess("ActivateAuctionHandler", "auction activated successfully", map[string]any{
		"auction_id": auction.ID,
	})
}

// UpdateAuctionSettingsHandler handles PATCH /auctions/:auction_id/settings
func (h *AuctionHandler) UpdateAuctionSettingsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionSettingsHandler", err)
		return
	}

	auction, err := h.engine.UpdateAuctionSettings(c.Request.Context(), auctionID, engine.UpdateSettingsCommand{
		MinBidIncrement: req.MinBidIncrement,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionSettingsHandler: update rejected", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction settings updated successfully")
	helpers.LogSuccess("UpdateAuctionSettingsHandler", "auction settings updated successfully", map[string]any{
		"auction_id": auction.ID,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.engine.PlaceBid(c.Request.Context(), engine.PlaceBidCommand{
		AuctionID:      req.AuctionID,
		BidderID:       req.BidderID,
		Amount:         req.Amount,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid accepted successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}

// UpsertAutoBidHandler handles PUT /auctions/:auction_id/autobids
func (h *AuctionHandler) UpsertAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.UpsertAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpsertAutoBidHandler", err)
		return
	}

	ins, err := h.engine.UpsertAutoBid(c.Request.Context(), engine.UpsertAutoBidCommand{
		AuctionID:       auctionID,
		BidderID:        req.BidderID,
		MaxBidAmount:    req.MaxBidAmount,
		IncrementAmount: req.IncrementAmount,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpsertAutoBidHandler: upsert rejected", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAutoBidResponse(ins), "auto-bid instruction saved successfully")
	helpers.LogSuccess("UpsertAutoBidHandler", "auto-bid instruction saved successfully", map[string]any{
		"auction_id": ins.AuctionID,
		"bidder_id":  ins.BidderID,
	})
}

// CancelAutoBidHandler handles DELETE /auctions/:auction_id/autobids/:bidder_id
func (h *AuctionHandler) CancelAutoBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bidderID := c.Param("bidder_id")

	if err := h.engine.CancelAutoBid(c.Request.Context(), auctionID, bidderID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAutoBidHandler: cancel rejected", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auto-bid instruction cancelled successfully")
	helpers.LogSuccess("CancelAutoBidHandler", "auto-bid instruction cancelled successfully", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.engine.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// ListBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.engine.ListBids(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsHandler: error retrieving bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	auctions, err := h.engine.ListActiveAuctions(c.Request.Context(), limit, offset)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActiveAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "active auctions retrieved successfully")
}
