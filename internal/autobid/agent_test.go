package autobid

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/engine"
	"auction-engine/internal/events"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/wallet"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) record(_ context.Context, ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) exhausted() []events.AutoBidExhausted {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.AutoBidExhausted
	for _, ev := range r.events {
		if ex, ok := ev.(events.AutoBidExhausted); ok {
			out = append(out, ex)
		}
	}
	return out
}

type agentEnv struct {
	repo     *repository.MemoryRepo
	wallet   *wallet.MemoryWallet
	bus      *events.InProcBus
	engine   *engine.Engine
	agent    *Agent
	recorder *eventRecorder
}

// newAgentEnv wires an engine, an agent subscribed to the bus, and an active
// auction with starting price 100 and minimum increment 10.
func newAgentEnv(t *testing.T) (*agentEnv, models.Auction) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	walletSvc := wallet.NewMemoryWallet()
	bus := events.NewInProcBus()
	eng := engine.NewEngine(repo, walletSvc, bus)
	agent := NewAgent(repo, eng, bus)
	recorder := &eventRecorder{}
	bus.Subscribe(agent.Handle)
	bus.Subscribe(recorder.record)

	ctx := context.Background()
	created, err := eng.CreateAuction(ctx, engine.CreateAuctionCommand{
		ProductRef:      "product1",
		SellerID:        "seller1",
		StartingPrice:   dec(100),
		MinBidIncrement: dec(10),
		DurationSeconds: 3600,
	})
	require.NoError(t, err)
	auction, err := eng.ActivateAuction(ctx, created.ID)
	require.NoError(t, err)

	return &agentEnv{
		repo:     repo,
		wallet:   walletSvc,
		bus:      bus,
		engine:   eng,
		agent:    agent,
		recorder: recorder,
	}, auction
}

func (env *agentEnv) upsertAutoBid(t *testing.T, auctionID, bidderID string, max, inc int64) {
	t.Helper()
	_, err := env.engine.UpsertAutoBid(context.Background(), engine.UpsertAutoBidCommand{
		AuctionID:       auctionID,
		BidderID:        bidderID,
		MaxBidAmount:    dec(max),
		IncrementAmount: dec(inc),
	})
	require.NoError(t, err)
}

func bidAmounts(t *testing.T, env *agentEnv, auctionID string) []string {
	t.Helper()
	bids, err := env.repo.ListBids(context.Background(), auctionID)
	require.NoError(t, err)
	out := make([]string, 0, len(bids))
	for _, b := range bids {
		out = append(out, b.BidderID+":"+b.Amount.String())
	}
	return out
}

// Walks the full manual-versus-auto-bid duel: bidder B holds a ceiling of
// 200 with step 15 against manual bidder A on an auction starting at 100
// with increment 10.
func TestAgentOutbidsManualBidderUntilExhausted(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	// A opens at the floor; B reacts with max(110+15, 120) = 125.
	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(110)})
	require.NoError(t, err)
	require.Equal(t, []string{"bidderA:110", "bidderB:125"}, bidAmounts(t, env, auction.ID))

	// The floor is now 135.
	_, err = env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(130)})
	require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow))

	// A raises to 140; B reacts with max(140+15, 150) = 155.
	_, err = env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(140)})
	require.NoError(t, err)
	require.Equal(t, []string{"bidderA:110", "bidderB:125", "bidderA:140", "bidderB:155"},
		bidAmounts(t, env, auction.ID))

	// A raises to 190; B's next bid would be 205 > 200, so B exhausts and
	// A stays highest.
	_, err = env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(190)})
	require.NoError(t, err)
	require.Equal(t, []string{"bidderA:110", "bidderB:125", "bidderA:140", "bidderB:155", "bidderA:190"},
		bidAmounts(t, env, auction.ID))

	final, err := env.engine.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, "bidderA", final.HighestBidderID)
	require.True(t, final.HighestBid.Equal(dec(190)))

	exhausted := env.recorder.exhausted()
	require.Len(t, exhausted, 1)
	require.Equal(t, "bidderB", exhausted[0].BidderID)
	require.True(t, exhausted[0].MaxBidAmount.Equal(dec(200)))

	ins, err := env.repo.GetInstruction(ctx, auction.ID, "bidderB")
	require.NoError(t, err)
	require.False(t, ins.IsActive)
}

func TestAgentReactsForOutbidInstructionHolder(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderB", 500, 5)

	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(110)})
	require.NoError(t, err)

	// B is highest at max(110+5, 120) = 120. The instruction step is below
	// the auction increment, so the floor wins.
	final, err := env.engine.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, "bidderB", final.HighestBidderID)
	require.True(t, final.HighestBid.Equal(dec(120)))

	ins, err := env.repo.GetInstruction(ctx, auction.ID, "bidderB")
	require.NoError(t, err)
	require.True(t, ins.CurrentBidAmount.Equal(dec(120)))
}

func TestAgentWarSettlesAboveLowerCeiling(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))
	env.wallet.SetBalance("bidderC", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderA", 150, 10)
	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	// C's manual bid wakes the higher-ceiling instruction first. The
	// lower-ceiling rival jumps straight to its ceiling instead of
	// escalating one increment at a time, the higher one tops it once,
	// and the loser exhausts. The hammer price must end above the losing
	// ceiling, never at the pre-war floor.
	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderC", Amount: dec(110)})
	require.NoError(t, err)

	require.Equal(t, []string{"bidderC:110", "bidderB:125", "bidderA:150", "bidderB:165"},
		bidAmounts(t, env, auction.ID))

	final, err := env.engine.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, "bidderB", final.HighestBidderID)
	require.True(t, final.HighestBid.GreaterThan(dec(150)))

	exhausted := env.recorder.exhausted()
	require.Len(t, exhausted, 1)
	require.Equal(t, "bidderA", exhausted[0].BidderID)

	insA, err := env.repo.GetInstruction(ctx, auction.ID, "bidderA")
	require.NoError(t, err)
	require.False(t, insA.IsActive)
	insB, err := env.repo.GetInstruction(ctx, auction.ID, "bidderB")
	require.NoError(t, err)
	require.True(t, insB.IsActive)
	require.True(t, insB.CurrentBidAmount.Equal(dec(165)))
}

func TestAgentWarCeilingTieKeepsCurrentLeader(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))
	env.wallet.SetBalance("bidderC", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderA", 200, 10)
	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	// Equal ceilings: whichever instruction reached the front first keeps
	// the win and the other exhausts without a bid.
	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderC", Amount: dec(110)})
	require.NoError(t, err)

	require.Equal(t, []string{"bidderC:110", "bidderA:120"}, bidAmounts(t, env, auction.ID))

	exhausted := env.recorder.exhausted()
	require.Len(t, exhausted, 1)
	require.Equal(t, "bidderB", exhausted[0].BidderID)

	final, err := env.engine.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, "bidderA", final.HighestBidderID)

	insA, err := env.repo.GetInstruction(ctx, auction.ID, "bidderA")
	require.NoError(t, err)
	require.True(t, insA.IsActive)
}

func TestAgentIgnoresCancelledInstruction(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)
	require.NoError(t, env.engine.CancelAutoBid(ctx, auction.ID, "bidderB"))

	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(110)})
	require.NoError(t, err)

	require.Equal(t, []string{"bidderA:110"}, bidAmounts(t, env, auction.ID))
	require.Empty(t, env.recorder.exhausted())
}

func TestAgentIdempotentPerBidEvent(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	bid, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderA", Amount: dec(110)})
	require.NoError(t, err)
	require.Equal(t, []string{"bidderA:110", "bidderB:125"}, bidAmounts(t, env, auction.ID))

	// A redelivered event must not produce a second reaction.
	env.agent.Handle(ctx, events.BidAccepted{
		BidID:     bid.BidID,
		AuctionID: auction.ID,
		BidderID:  "bidderA",
		Amount:    dec(110),
	})
	require.Equal(t, []string{"bidderA:110", "bidderB:125"}, bidAmounts(t, env, auction.ID))
}

func TestAgentDeactivatesInstructionsOnAuctionEnd(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()

	env.upsertAutoBid(t, auction.ID, "bidderA", 150, 10)
	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	env.agent.Handle(ctx, events.AuctionEnded{AuctionID: auction.ID})

	for _, bidder := range []string{"bidderA", "bidderB"} {
		ins, err := env.repo.GetInstruction(ctx, auction.ID, bidder)
		require.NoError(t, err)
		require.False(t, ins.IsActive)
	}
}

func TestAgentSkipsWhenHolderAlreadyHighest(t *testing.T) {
	env, auction := newAgentEnv(t)
	ctx := context.Background()
	env.wallet.SetBalance("bidderA", dec(10000))
	env.wallet.SetBalance("bidderB", dec(10000))

	env.upsertAutoBid(t, auction.ID, "bidderB", 200, 15)

	// B bids manually; the instruction holder already leads, so the agent
	// stays quiet.
	_, err := env.engine.PlaceBid(ctx, engine.PlaceBidCommand{AuctionID: auction.ID, BidderID: "bidderB", Amount: dec(110)})
	require.NoError(t, err)
	require.Equal(t, []string{"bidderB:110"}, bidAmounts(t, env, auction.ID))
}
