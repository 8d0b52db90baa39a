package settlement

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	"auction-engine/internal/wallet"
	"auction-engine/utils"
)

// DefaultBackoff is the initial retry backoff for the wallet debit request.
const DefaultBackoff = 500 * time.Millisecond

// Notifier turns an AuctionEnded event into the settlement outcome: an
// AuctionWon event plus a wallet debit request for the winner, AuctionLost
// for every other bidder, or AuctionUnsold when no bid exists. The debit is
// retried with capped exponential backoff until the wallet acknowledges it;
// the auction outcome itself is final regardless of payment success.
type Notifier struct {
	repo    repository.AuctionDB
	wallet  wallet.Service
	bus     events.Bus
	backoff time.Duration
}

// NewNotifier creates a notifier; a non-positive backoff falls back to
// DefaultBackoff.
func NewNotifier(repo repository.AuctionDB, walletSvc wallet.Service, bus events.Bus, backoff time.Duration) *Notifier {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Notifier{repo: repo, wallet: walletSvc, bus: bus, backoff: backoff}
}

// Handle is the bus subscriber entry point. Settlement runs on its own
// goroutine so debit retries never stall the lifecycle sweep.
func (n *Notifier) Handle(ctx context.Context, ev events.Event) {
	ended, ok := ev.(events.AuctionEnded)
	if !ok {
		return
	}
	go n.Settle(context.WithoutCancel(ctx), ended)
}

// Settle emits the outcome events for one ended auction and requests the
// winner's debit.
func (n *Notifier) Settle(ctx context.Context, ev events.AuctionEnded) {
	if ev.WinnerID == "" {
		n.bus.Publish(ctx, events.AuctionUnsold{AuctionID: ev.AuctionID})
		utils.Info("settlement: auction unsold", map[string]any{"auction_id": ev.AuctionID})
		return
	}

	// The event stream is at-least-once from arbitrary producers; a winner
	// without an amount is a malformed event, not a crash.
	if ev.Amount == nil {
		utils.Error("settlement: ended event names a winner without an amount", map[string]any{
			"auction_id": ev.AuctionID,
			"winner_id":  ev.WinnerID,
		})
		return
	}

	amount := *ev.Amount
	n.bus.Publish(ctx, events.AuctionWon{
		AuctionID: ev.AuctionID,
		WinnerID:  ev.WinnerID,
		Amount:    amount,
	})

	n.fanOutLosses(ctx, ev.AuctionID, ev.WinnerID)

	backoff := retry.WithCappedDuration(30*time.Second, retry.NewExponential(n.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := n.wallet.RequestDebit(ctx, ev.WinnerID, ev.AuctionID, amount); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		// Left to wallet-side reconciliation; the won/ended outcome stands.
		utils.Error("settlement: wallet debit not acknowledged", map[string]any{
			"auction_id": ev.AuctionID,
			"winner_id":  ev.WinnerID,
			"amount":     amount.String(),
			"error":      err.Error(),
		})
		return
	}
	utils.Info("settlement: auction settled", map[string]any{
		"auction_id": ev.AuctionID,
		"winner_id":  ev.WinnerID,
		"amount":     amount.String(),
	})
}

// fanOutLosses derives the loser set from the bid history and emits one
// AuctionLost per distinct non-winning bidder.
func (n *Notifier) fanOutLosses(ctx context.Context, auctionID, winnerID string) {
	bids, err := n.repo.ListBids(ctx, auctionID)
	if err != nil {
		utils.Error("settlement: failed to list bids for loss fan-out", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	seen := make(map[string]struct{})
	for _, bid := range bids {
		if bid.BidderID == winnerID {
			continue
		}
		if _, dup := seen[bid.BidderID]; dup {
			continue
		}
		seen[bid.BidderID] = struct{}{}
		n.bus.Publish(ctx, events.AuctionLost{
			AuctionID: auctionID,
			BidderID:  bid.BidderID,
			WinnerID:  winnerID,
		})
	}
}
