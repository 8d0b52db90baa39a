package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"auction-engine/internal/auctionerrors"
)

// lockTable holds one single-slot semaphore per auction id. A per-auction
// semaphore serializes bid-accept transactions for that auction without a
// global lock across auctions.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*semaphore.Weighted)}
}

// acquire takes the auction's lock, waiting at most timeout. The returned
// function releases it. ErrBusy is reported when the wait times out or the
// caller's context is cancelled first.
func (t *lockTable) acquire(ctx context.Context, auctionID string, timeout time.Duration) (func(), error) {
	t.mu.Lock()
	sem, ok := t.locks[auctionID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		t.locks[auctionID] = sem
	}
	t.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sem.Acquire(waitCtx, 1); err != nil {
		return nil, fmt.Errorf("acquire lock for auction %s: %w", auctionID, auctionerrors.ErrBusy)
	}
	return func() { sem.Release(1) }, nil
}
