// Package store provides ledger persistence implementations behind the
// session.LedgerSource boundary. MemoryStore is the in-process variant used
// for demo-grade production mode and in tests.
package store

import (
	"context"
	"sync"

	"wealthai/internal/ledger"
	"wealthai/internal/models"
	"wealthai/internal/trackererror"
)

// MemoryStore keeps one ledger per identity in memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	ledgers map[string]ledger.Seed
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledgers: make(map[string]ledger.Seed),
	}
}

// SeedIdentity installs an initial ledger for an identity. Used to arrange
// test fixtures and demo-grade persistent data.
func (s *MemoryStore) SeedIdentity(identity models.Identity, seed ledger.Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[identity.ID] = cloneSeed(seed)
}

// LoadLedger returns the identity's stored ledger, or an empty one when the
// identity has no data yet.
func (s *MemoryStore) LoadLedger(_ context.Context, identity models.Identity) (ledger.Seed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seed, ok := s.ledgers[identity.ID]
	if !ok {
		return ledger.Seed{}, nil
	}
	return cloneSeed(seed), nil
}

// SaveTransaction prepends the transaction to the identity's stored log and
// applies it to the stored account balance.
func (s *MemoryStore) SaveTransaction(_ context.Context, identity models.Identity, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.ledgers[identity.ID]
	seed.Transactions = append([]models.Transaction{tx}, seed.Transactions...)
	for i := range seed.Accounts {
		if seed.Accounts[i].ID == tx.AccountID {
			seed.Accounts[i].Balance = seed.Accounts[i].Balance.Add(tx.Signed())
			s.ledgers[identity.ID] = seed
			return nil
		}
	}
	return &trackererror.ReferenceError{Kind: "account", ID: tx.AccountID}
}

// SaveAccount inserts or replaces an account in the identity's stored
// ledger.
func (s *MemoryStore) SaveAccount(_ context.Context, identity models.Identity, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.ledgers[identity.ID]
	for i := range seed.Accounts {
		if seed.Accounts[i].ID == account.ID {
			seed.Accounts[i] = account
			s.ledgers[identity.ID] = seed
			return nil
		}
	}
	seed.Accounts = append(seed.Accounts, account)
	s.ledgers[identity.ID] = seed
	return nil
}

// DeleteAccount removes an account and its transactions from the identity's
// stored ledger.
func (s *MemoryStore) DeleteAccount(_ context.Context, identity models.Identity, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.ledgers[identity.ID]
	accounts := seed.Accounts[:0]
	found := false
	for _, acc := range seed.Accounts {
		if acc.ID == accountID {
			found = true
			continue
		}
		accounts = append(accounts, acc)
	}
	if !found {
		return &trackererror.ReferenceError{Kind: "account", ID: accountID}
	}
	seed.Accounts = accounts

	transactions := seed.Transactions[:0]
	for _, tx := range seed.Transactions {
		if tx.AccountID != accountID {
			transactions = append(transactions, tx)
		}
	}
	seed.Transactions = transactions

	s.ledgers[identity.ID] = seed
	return nil
}

func cloneSeed(seed ledger.Seed) ledger.Seed {
	return ledger.Seed{
		Accounts:     append([]models.Account{}, seed.Accounts...),
		Transactions: append([]models.Transaction{}, seed.Transactions...),
	}
}
