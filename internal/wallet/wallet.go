package wallet

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Service is the external wallet collaborator. The bidding core only ever
// asks for a bidder's available balance and, on settlement, requests a debit
// of the winning amount. Ledger consistency is the wallet's own concern.
type Service interface {
	AvailableBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	RequestDebit(ctx context.Context, userID, auctionID string, amount decimal.Decimal) error
}

// Debit records one settlement debit request.
type Debit struct {
	UserID    string
	AuctionID string
	Amount    decimal.Decimal
}

// MemoryWallet is an in-process Service for tests and local runs. Unknown
// users have a zero balance.
type MemoryWallet struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
	debits   []Debit
}

// NewMemoryWallet creates an empty wallet.
func NewMemoryWallet() *MemoryWallet {
	return &MemoryWallet{balances: make(map[string]decimal.Decimal)}
}

// SetBalance sets a user's available balance.
func (w *MemoryWallet) SetBalance(userID string, amount decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[userID] = amount
}

// AvailableBalance returns the user's current balance.
func (w *MemoryWallet) AvailableBalance(_ context.Context, userID string) (decimal.Decimal, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balances[userID], nil
}

// RequestDebit subtracts the amount and records the request.
func (w *MemoryWallet) RequestDebit(_ context.Context, userID, auctionID string, amount decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[userID] = w.balances[userID].Sub(amount)
	w.debits = append(w.debits, Debit{UserID: userID, AuctionID: auctionID, Amount: amount})
	return nil
}

// Debits returns a copy of all recorded debit requests.
func (w *MemoryWallet) Debits() []Debit {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Debit(nil), w.debits...)
}
