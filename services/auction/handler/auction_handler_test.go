package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/engine"
	"auction-engine/internal/models"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(110),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), engine.PlaceBidCommand{
						AuctionID: "auction1",
						BidderID:  "user1",
						Amount:    dec(110),
					}).
					Return(models.Bid{
						BidID:     uuid.NewString(),
						AuctionID: "auction1",
						BidderID:  "user1",
						Amount:    dec(110),
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid accepted successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "user1", data["bidder_id"])
				require.Equal(t, "110", data["amount"])
			},
		},
		{
			name: "success_with_idempotency_key",
			requestBody: helpers.PlaceBidRequest{
				AuctionID:      "auction1",
				BidderID:       "user1",
				Amount:         dec(110),
				IdempotencyKey: "retry-1",
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), engine.PlaceBidCommand{
						AuctionID:      "auction1",
						BidderID:       "user1",
						Amount:         dec(110),
						IdempotencyKey: "retry-1",
					}).
					Return(models.Bid{
						BidID:          uuid.NewString(),
						AuctionID:      "auction1",
						BidderID:       "user1",
						Amount:         dec(110),
						IdempotencyKey: "retry-1",
						CreatedAt:      now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid accepted successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_auction_id",
			requestBody: helpers.PlaceBidRequest{
				BidderID: "user1",
				Amount:   dec(110),
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_bidder_id",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				Amount:    dec(110),
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "engine_bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(105),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount below current floor",
		},
		{
			name: "engine_already_highest",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(150),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, auctionerrors.ErrAlreadyHighestBidder)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidder already holds the highest bid",
		},
		{
			name: "engine_auction_expired",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(150),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, auctionerrors.ErrAuctionExpired)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction has expired",
		},
		{
			name: "engine_insufficient_funds",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(150),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, auctionerrors.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "insufficient wallet balance",
		},
		{
			name: "engine_busy",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(150),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, auctionerrors.ErrBusy)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedMsg:    "auction busy, retry",
		},
		{
			name: "engine_generic_error",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    dec(150),
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					PlaceBid(gomock.Any(), gomock.Any()).
					Return(models.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", handler.CreateAuctionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success",
			requestBody: helpers.CreateAuctionRequest{
				ProductRef:      "product1",
				SellerID:        "seller1",
				StartingPrice:   dec(100),
				MinBidIncrement: dec(10),
				DurationSeconds: 3600,
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					CreateAuction(gomock.Any(), engine.CreateAuctionCommand{
						ProductRef:      "product1",
						SellerID:        "seller1",
						StartingPrice:   dec(100),
						MinBidIncrement: dec(10),
						DurationSeconds: 3600,
					}).
					Return(models.Auction{
						ID:              uuid.NewString(),
						ProductRef:      "product1",
						SellerID:        "seller1",
						Status:          models.StatusPending,
						StartingPrice:   dec(100),
						MinBidIncrement: dec(10),
						DurationSeconds: 3600,
						Version:         1,
						CreatedAt:       now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.NotEmpty(t, data["auction_id"])
				require.Equal(t, "pending", data["status"])
				require.Equal(t, "100", data["starting_price"])
				require.Equal(t, "10", data["min_bid_increment"])
				require.Nil(t, data["highest_bid"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_product_ref",
			requestBody: helpers.CreateAuctionRequest{
				SellerID:        "seller1",
				StartingPrice:   dec(100),
				MinBidIncrement: dec(10),
				DurationSeconds: 3600,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_duration",
			requestBody: helpers.CreateAuctionRequest{
				ProductRef:      "product1",
				SellerID:        "seller1",
				StartingPrice:   dec(100),
				MinBidIncrement: dec(10),
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "engine_invalid_input",
			requestBody: helpers.CreateAuctionRequest{
				ProductRef:      "product1",
				SellerID:        "seller1",
				StartingPrice:   dec(-100),
				MinBidIncrement: dec(10),
				DurationSeconds: 3600,
			},
			mockSetup: func() {
				mockEngine.EXPECT().
					CreateAuction(gomock.Any(), gomock.Any()).
					Return(models.Auction{}, auctionerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ActivateAuctionHandler
func TestActivateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/activate", handler.ActivateAuctionHandler)

	now := time.Now().UTC()
	end := now.Add(time.Hour)

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "success",
			auctionID: "auction1",
			mockSetup: func() {
				mockEngine.EXPECT().
					ActivateAuction(gomock.Any(), "auction1").
					Return(models.Auction{
						ID:              "auction1",
						Status:          models.StatusActive,
						StartingPrice:   dec(100),
						MinBidIncrement: dec(10),
						EndDate:         &end,
						Version:         2,
						CreatedAt:       now,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction activated successfully",
		},
		{
			name:      "already_active",
			auctionID: "auction2",
			mockSetup: func() {
				mockEngine.EXPECT().
					ActivateAuction(gomock.Any(), "auction2").
					Return(models.Auction{}, auctionerrors.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "invalid auction state transition",
		},
		{
			name:      "not_found",
			auctionID: "missing",
			mockSetup: func() {
				mockEngine.EXPECT().
					ActivateAuction(gomock.Any(), "missing").
					Return(models.Auction{}, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/"+tc.auctionID+"/activate", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test UpsertAutoBidHandler and CancelAutoBidHandler
func TestAutoBidHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/auctions/:auction_id/autobids", handler.UpsertAutoBidHandler)
	router.DELETE("/auctions/:auction_id/autobids/:bidder_id", handler.CancelAutoBidHandler)

	t.Run("upsert_success", func(t *testing.T) {
		mockEngine.EXPECT().
			UpsertAutoBid(gomock.Any(), engine.UpsertAutoBidCommand{
				AuctionID:       "auction1",
				BidderID:        "user1",
				MaxBidAmount:    dec(200),
				IncrementAmount: dec(15),
			}).
			Return(models.AutoBidInstruction{
				AuctionID:       "auction1",
				BidderID:        "user1",
				MaxBidAmount:    dec(200),
				IncrementAmount: dec(15),
				IsActive:        true,
			}, nil)

		body, err := json.Marshal(helpers.UpsertAutoBidRequest{
			BidderID:        "user1",
			MaxBidAmount:    dec(200),
			IncrementAmount: dec(15),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/auctions/auction1/autobids", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "auto-bid instruction saved successfully")

		data := resp["data"].(map[string]any)
		require.Equal(t, "auction1", data["auction_id"])
		require.Equal(t, "user1", data["bidder_id"])
		require.Equal(t, "200", data["max_bid_amount"])
		require.Equal(t, true, data["is_active"])
	})

	t.Run("upsert_on_ended_auction", func(t *testing.T) {
		mockEngine.EXPECT().
			UpsertAutoBid(gomock.Any(), gomock.Any()).
			Return(models.AutoBidInstruction{}, auctionerrors.ErrInvalidStateTransition)

		body, err := json.Marshal(helpers.UpsertAutoBidRequest{
			BidderID:        "user1",
			MaxBidAmount:    dec(200),
			IncrementAmount: dec(15),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/auctions/auction1/autobids", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("cancel_success", func(t *testing.T) {
		mockEngine.EXPECT().
			CancelAutoBid(gomock.Any(), "auction1", "user1").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/auctions/auction1/autobids/user1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "auto-bid instruction cancelled successfully")
	})

	t.Run("cancel_unknown_instruction", func(t *testing.T) {
		mockEngine.EXPECT().
			CancelAutoBid(gomock.Any(), "auction1", "ghost").
			Return(auctionerrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/auctions/auction1/autobids/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test GetAuctionHandler and ListActiveAuctionsHandler
func TestAuctionQueryHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListActiveAuctionsHandler)
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)
	router.GET("/auctions/:auction_id/bids", handler.ListBidsHandler)

	now := time.Now().UTC()
	end := now.Add(time.Hour)
	highest := dec(150)

	t.Run("get_auction_success", func(t *testing.T) {
		mockEngine.EXPECT().
			GetAuction(gomock.Any(), "auction1").
			Return(models.Auction{
				ID:              "auction1",
				Status:          models.StatusActive,
				StartingPrice:   dec(100),
				MinBidIncrement: dec(10),
				HighestBid:      &highest,
				HighestBidderID: "user1",
				EndDate:         &end,
				Version:         3,
				CreatedAt:       now,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/auction1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "active", data["status"])
		require.Equal(t, "150", data["highest_bid"])
		require.Equal(t, "user1", data["highest_bidder_id"])
		require.NotEmpty(t, data["end_date"])
	})

	t.Run("get_auction_not_found", func(t *testing.T) {
		mockEngine.EXPECT().
			GetAuction(gomock.Any(), "missing").
			Return(models.Auction{}, auctionerrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list_active_with_pagination", func(t *testing.T) {
		mockEngine.EXPECT().
			ListActiveAuctions(gomock.Any(), 5, 10).
			Return([]models.Auction{
				{ID: "auction1", Status: models.StatusActive, StartingPrice: dec(100), MinBidIncrement: dec(10), EndDate: &end, CreatedAt: now},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions?limit=5&offset=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 1)
	})

	t.Run("list_active_default_pagination", func(t *testing.T) {
		mockEngine.EXPECT().
			ListActiveAuctions(gomock.Any(), 20, 0).
			Return([]models.Auction{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 0)
	})

	t.Run("list_bids_success", func(t *testing.T) {
		mockEngine.EXPECT().
			ListBids(gomock.Any(), "auction1").
			Return([]models.Bid{
				{BidID: uuid.NewString(), AuctionID: "auction1", BidderID: "user1", Amount: dec(110), CreatedAt: now},
				{BidID: uuid.NewString(), AuctionID: "auction1", BidderID: "user2", Amount: dec(120), CreatedAt: now},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/auction1/bids", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		require.Equal(t, "110", first["amount"])
	})
}

// Test UpdateAuctionSettingsHandler
func TestUpdateAuctionSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	handler := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/auctions/:auction_id/settings", handler.UpdateAuctionSettingsHandler)

	now := time.Now().UTC()
	inc := dec(25)

	t.Run("success", func(t *testing.T) {
		mockEngine.EXPECT().
			UpdateAuctionSettings(gomock.Any(), "auction1", engine.UpdateSettingsCommand{MinBidIncrement: &inc}).
			Return(models.Auction{
				ID:              "auction1",
				Status:          models.StatusPending,
				StartingPrice:   dec(100),
				MinBidIncrement: dec(25),
				DurationSeconds: 3600,
				Version:         2,
				CreatedAt:       now,
			}, nil)

		body, err := json.Marshal(helpers.UpdateSettingsRequest{MinBidIncrement: &inc})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/auctions/auction1/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "25", data["min_bid_increment"])
	})

	t.Run("rejected_after_bids", func(t *testing.T) {
		mockEngine.EXPECT().
			UpdateAuctionSettings(gomock.Any(), "auction1", gomock.Any()).
			Return(models.Auction{}, auctionerrors.ErrHasBids)

		body, err := json.Marshal(helpers.UpdateSettingsRequest{MinBidIncrement: &inc})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/auctions/auction1/settings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "auction already has bids")
	})
}
