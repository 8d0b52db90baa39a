package server

import (
	"github.com/gin-gonic/gin"

	handler "auction-engine/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(eng handler.AuctionEngineInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(eng)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListActiveAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/activate", auctionHandler.ActivateAuctionHandler)
		auctions.PATCH("/:auction_id/settings", auctionHandler.UpdateAuctionSettingsHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.ListBidsHandler)
		auctions.PUT("/:auction_id/autobids", auctionHandler.UpsertAutoBidHandler)
		auctions.DELETE("/:auction_id/autobids/:bidder_id", auctionHandler.CancelAutoBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	return router
}
