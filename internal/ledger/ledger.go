// Package ledger implements the in-memory ledger: the accounts and the
// ordered transaction log for the active session, together with the
// invariants that balance updates must preserve. The ledger is the only
// component allowed to mutate account balances.
package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wealthai/internal/logging"
	"wealthai/internal/models"
	"wealthai/internal/registry"
	"wealthai/internal/trackererror"
)

// Seed is a complete data set used to (re)initialize the ledger: the demo
// sample data, or a remotely loaded production ledger.
type Seed struct {
	Accounts     []models.Account
	Transactions []models.Transaction // most-recent-first
}

// Ledger owns the live account and transaction collections for one session.
// The transaction log is kept most-recent-first. All mutations happen under
// one lock so the log append and the balance update are observably atomic.
type Ledger struct {
	mu           sync.RWMutex
	accounts     []models.Account
	transactions []models.Transaction
	registry     *registry.Registry
	logger       logging.Logger
}

// RecordRequest carries the input of a record-transaction operation. A zero
// Date means "now"; an empty ID means "generate one".
type RecordRequest struct {
	ID         string
	AccountID  string
	Amount     decimal.Decimal
	Type       models.TransactionType
	CategoryID string
	Date       time.Time
	Note       string
}

// New creates a ledger over the given registry, initialized from seed.
func New(reg *registry.Registry, seed Seed, logger logging.Logger) *Ledger {
	l := &Ledger{
		registry: reg,
		logger:   logger,
	}
	l.ResetToSeed(seed)
	return l
}

// RecordTransaction validates req, then appends the transaction to the front
// of the log and applies the signed amount to the referenced account's
// balance in one atomic step. Invalid input is rejected before any mutation.
func (l *Ledger) RecordTransaction(req RecordRequest) (models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return models.Transaction{}, &trackererror.ValidationError{
			Field:  "amount",
			Value:  req.Amount.String(),
			Reason: "must be a positive number",
		}
	}
	if !req.Type.Valid() {
		return models.Transaction{}, &trackererror.ValidationError{
			Field:  "type",
			Value:  string(req.Type),
			Reason: "must be INCOME or EXPENSE",
		}
	}
	if _, ok := l.registry.ByID(req.CategoryID); !ok {
		return models.Transaction{}, &trackererror.ReferenceError{Kind: "category", ID: req.CategoryID}
	}

	tx := models.Transaction{
		ID:         req.ID,
		AccountID:  req.AccountID,
		Amount:     req.Amount,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Note:       req.Note,
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.accountIndex(req.AccountID)
	if idx < 0 {
		return models.Transaction{}, &trackererror.ReferenceError{Kind: "account", ID: req.AccountID}
	}

	l.transactions = append([]models.Transaction{tx}, l.transactions...)
	l.accounts[idx].Balance = l.accounts[idx].Balance.Add(tx.Signed())

	l.logger.Debug("Transaction recorded",
		logging.Field{Key: logging.FieldTransaction, Value: tx.ID},
		logging.Field{Key: logging.FieldAccount, Value: tx.AccountID},
		logging.Field{Key: logging.FieldType, Value: string(tx.Type)},
		logging.Field{Key: logging.FieldAmount, Value: tx.Amount.String()})

	return tx, nil
}

// Transactions returns a copy of the log, most-recent-first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Transaction{}, l.transactions...)
}

// TransactionsByDate returns a copy of the log ordered by date descending.
// The insertion order of the underlying log is left untouched.
func (l *Ledger) TransactionsByDate() []models.Transaction {
	txs := l.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs
}

// Accounts returns a copy of the current accounts.
func (l *Ledger) Accounts() []models.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Account{}, l.accounts...)
}

// Account looks up a single account by id.
func (l *Ledger) Account(id string) (models.Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.accountIndex(id)
	if idx < 0 {
		return models.Account{}, false
	}
	return l.accounts[idx], true
}

// AddAccount inserts a new account. The caller is responsible for mode
// gating; the ledger only enforces id uniqueness.
func (l *Ledger) AddAccount(account models.Account) error {
	if account.ID == "" {
		return &trackererror.ValidationError{Field: "account id", Value: "", Reason: "must not be empty"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.accountIndex(account.ID) >= 0 {
		return &trackererror.ValidationError{
			Field:  "account id",
			Value:  account.ID,
			Reason: "already exists",
		}
	}
	l.accounts = append(l.accounts, account)
	return nil
}

// RemoveAccount deletes an account and every transaction referencing it.
func (l *Ledger) RemoveAccount(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.accountIndex(id)
	if idx < 0 {
		return &trackererror.ReferenceError{Kind: "account", ID: id}
	}

	l.accounts = append(l.accounts[:idx], l.accounts[idx+1:]...)

	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.AccountID != id {
			kept = append(kept, tx)
		}
	}
	l.transactions = kept
	return nil
}

// ResetToSeed replaces the entire data set, discarding prior state
// irreversibly. Used on every mode transition.
func (l *Ledger) ResetToSeed(seed Seed) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts = append([]models.Account{}, seed.Accounts...)
	l.transactions = append([]models.Transaction{}, seed.Transactions...)

	if l.logger != nil {
		l.logger.Debug("Ledger reset",
			logging.Field{Key: "accounts", Value: len(l.accounts)},
			logging.Field{Key: "transactions", Value: len(l.transactions)})
	}
}

// Snapshot returns the current data set as a Seed. Handy for persisting the
// whole ledger or for asserting state in tests.
func (l *Ledger) Snapshot() Seed {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Seed{
		Accounts:     append([]models.Account{}, l.accounts...),
		Transactions: append([]models.Transaction{}, l.transactions...),
	}
}

// accountIndex must be called with l.mu held.
func (l *Ledger) accountIndex(id string) int {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return i
		}
	}
	return -1
}
