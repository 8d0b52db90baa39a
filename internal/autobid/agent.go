package autobid

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/engine"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Agent reacts to BidAccepted events on behalf of standing auto-bid
// instructions. It resubmits bids through the same engine path real users
// use; there is no privileged shortcut. Each reaction is traceable to
// exactly one triggering event and the agent is idempotent per bid id.
type Agent struct {
	repo   repository.AuctionDB
	engine *engine.Engine
	bus    events.Bus

	mu      sync.Mutex
	handled map[string]struct{} // bid ids already reacted to
}

// NewAgent creates an agent; wire it with bus.Subscribe(agent.Handle).
func NewAgent(repo repository.AuctionDB, eng *engine.Engine, bus events.Bus) *Agent {
	return &Agent{
		repo:    repo,
		engine:  eng,
		bus:     bus,
		handled: make(map[string]struct{}),
	}
}

// Handle is the bus subscriber entry point.
func (a *Agent) Handle(ctx context.Context, ev events.Event) {
	switch e := ev.(type) {
	case events.BidAccepted:
		a.reactToBid(ctx, e)
	case events.AuctionEnded:
		if err := a.repo.DeactivateInstructionsForAuction(ctx, e.AuctionID); err != nil {
			utils.Error("autobid: failed to deactivate instructions on auction end", map[string]any{
				"auction_id": e.AuctionID,
				"error":      err.Error(),
			})
		}
	}
}

func (a *Agent) reactToBid(ctx context.Context, ev events.BidAccepted) {
	if !a.markHandled(ev.BidID) {
		return
	}

	ins, ok := a.selectInstruction(ctx, ev)
	if !ok {
		return
	}

	snapshot, err := a.repo.GetAuction(ctx, ev.AuctionID)
	if err != nil {
		utils.Error("autobid: failed to load auction", map[string]any{
			"auction_id": ev.AuctionID,
			"error":      err.Error(),
		})
		return
	}
	if snapshot.HighestBidderID == ins.BidderID {
		return
	}

	candidate := a.chooseCandidate(ctx, ins, snapshot, ev)
	if candidate.GreaterThan(ins.MaxBidAmount) {
		a.exhaust(ctx, ins)
		return
	}
	a.placeWithOneRetry(ctx, ins, snapshot, candidate, ev)
}

// selectInstruction picks the single instruction that reacts to this event.
// An accepted bid fires at most one reaction: the outbid bidder's own
// instruction when it is active, otherwise the active instruction with the
// highest ceiling among holders other than the event's bidder. Cancellation
// must win over in-flight reactions, so IsActive is read here, not cached
// from an earlier event.
func (a *Agent) selectInstruction(ctx context.Context, ev events.BidAccepted) (models.AutoBidInstruction, bool) {
	instructions, err := a.repo.ListInstructionsForAuction(ctx, ev.AuctionID)
	if err != nil {
		utils.Error("autobid: failed to list instructions", map[string]any{
			"auction_id": ev.AuctionID,
			"error":      err.Error(),
		})
		return models.AutoBidInstruction{}, false
	}

	var best models.AutoBidInstruction
	var found bool
	for _, ins := range instructions {
		if !ins.IsActive || ins.BidderID == ev.BidderID {
			continue
		}
		if ins.BidderID == ev.PreviousBidderID {
			return ins, true
		}
		if !found || ins.MaxBidAmount.GreaterThan(best.MaxBidAmount) {
			best = ins
			found = true
		}
	}
	return best, found
}

// chooseCandidate computes the next bid amount. Against a manual bidder
// this is max(event amount + instruction increment, current floor). When
// the bidder who triggered the event also holds an active instruction, the
// war between the two instructions is settled deterministically instead of
// escalating one increment at a time: the lower ceiling jumps straight to
// its own ceiling (its last bid), the higher one tops that with a single
// bid at min(ceilingA, ceilingB) + increment, and the loser exhausts on
// the following event. A ceiling tie keeps the current highest bidder in
// front.
func (a *Agent) chooseCandidate(ctx context.Context, ins models.AutoBidInstruction, snapshot models.Auction, ev events.BidAccepted) decimal.Decimal {
	step := ins.IncrementAmount
	if snapshot.MinBidIncrement.GreaterThan(step) {
		step = snapshot.MinBidIncrement
	}

	rival, err := a.repo.GetInstruction(ctx, ev.AuctionID, ev.BidderID)
	if err == nil && rival.IsActive {
		if ins.MaxBidAmount.Equal(rival.MaxBidAmount) {
			// Ceiling tie goes to the current highest bidder: arrival
			// order decided this round, so this instruction is exhausted.
			return ins.MaxBidAmount.Add(step)
		}
		if ins.MaxBidAmount.LessThan(rival.MaxBidAmount) {
			// Out-ceilinged. The rival is the current highest bidder and
			// cannot raise its own bid, so jumping straight to our ceiling
			// lets it settle the war with a single topping bid; our next
			// reaction then exhausts against the settled price.
			if floor := snapshot.CurrentFloor(); floor.GreaterThan(ins.MaxBidAmount) {
				return floor
			}
			return ins.MaxBidAmount
		}
		settle := rival.MaxBidAmount.Add(step)
		if floor := snapshot.CurrentFloor(); settle.LessThan(floor) {
			settle = floor
		}
		if settle.GreaterThan(ins.MaxBidAmount) && ins.MaxBidAmount.GreaterThanOrEqual(snapshot.CurrentFloor()) {
			// Out-ceilinged settle price clipped to our own ceiling; the
			// rival's next reaction exhausts itself against it.
			settle = ins.MaxBidAmount
		}
		return settle
	}

	candidate := ev.Amount.Add(ins.IncrementAmount)
	if floor := snapshot.CurrentFloor(); candidate.LessThan(floor) {
		candidate = floor
	}
	return candidate
}

// placeWithOneRetry submits the candidate bid and, if another bid raised
// the floor first, recomputes once against the fresh floor. At most one
// retry per incoming event keeps a two-agent chase bounded.
func (a *Agent) placeWithOneRetry(ctx context.Context, ins models.AutoBidInstruction, snapshot models.Auction, candidate decimal.Decimal, ev events.BidAccepted) {
	cmd := engine.PlaceBidCommand{
		AuctionID:      ins.AuctionID,
		BidderID:       ins.BidderID,
		Amount:         candidate,
		IdempotencyKey: fmt.Sprintf("autobid-%s-%s", ev.BidID, ins.BidderID),
	}
	bid, err := a.engine.PlaceBid(ctx, cmd)
	if errors.Is(err, auctionerrors.ErrBidTooLow) || errors.Is(err, auctionerrors.ErrBusy) {
		fresh, loadErr := a.repo.GetAuction(ctx, ins.AuctionID)
		if loadErr != nil {
			utils.Error("autobid: failed to reload auction for retry", map[string]any{
				"auction_id": ins.AuctionID,
				"error":      loadErr.Error(),
			})
			return
		}
		if fresh.HighestBidderID == ins.BidderID {
			return
		}
		retryAmount := fresh.CurrentFloor()
		if next := ev.Amount.Add(ins.IncrementAmount); next.GreaterThan(retryAmount) {
			retryAmount = next
		}
		if retryAmount.GreaterThan(ins.MaxBidAmount) {
			a.exhaust(ctx, ins)
			return
		}
		cmd.Amount = retryAmount
		bid, err = a.engine.PlaceBid(ctx, cmd)
	}
	if errors.Is(err, auctionerrors.ErrAlreadyHighestBidder) {
		return
	}
	if err != nil {
		utils.Warn("autobid: reaction bid rejected", map[string]any{
			"auction_id": ins.AuctionID,
			"bidder_id":  ins.BidderID,
			"error":      err.Error(),
		})
		return
	}

	if err := a.repo.SetInstructionCurrentBid(ctx, ins.AuctionID, ins.BidderID, bid.Amount); err != nil {
		utils.Error("autobid: failed to update current bid cache", map[string]any{
			"auction_id": ins.AuctionID,
			"bidder_id":  ins.BidderID,
			"error":      err.Error(),
		})
	}
}

// exhaust deactivates an instruction whose next qualifying bid would exceed
// its ceiling and announces it.
func (a *Agent) exhaust(ctx context.Context, ins models.AutoBidInstruction) {
	if err := a.repo.DeactivateInstruction(ctx, ins.AuctionID, ins.BidderID); err != nil {
		utils.Error("autobid: failed to deactivate exhausted instruction", map[string]any{
			"auction_id": ins.AuctionID,
			"bidder_id":  ins.BidderID,
			"error":      err.Error(),
		})
		return
	}
	a.bus.Publish(ctx, events.AutoBidExhausted{
		AuctionID:    ins.AuctionID,
		BidderID:     ins.BidderID,
		MaxBidAmount: ins.MaxBidAmount,
	})
	utils.Info("autobid: instruction exhausted", map[string]any{
		"auction_id": ins.AuctionID,
		"bidder_id":  ins.BidderID,
		"max_bid":    ins.MaxBidAmount.String(),
	})
}

// markHandled records the bid id and reports whether it was new.
func (a *Agent) markHandled(bidID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, seen := a.handled[bidID]; seen {
		return false
	}
	a.handled[bidID] = struct{}{}
	return true
}
