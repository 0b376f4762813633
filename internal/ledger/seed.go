package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"wealthai/internal/models"
)

// DefaultSeed returns the built-in sample data used in demo mode: two
// accounts and a few recent transactions. The seed balances are starting
// balances; the seeded transactions are display data, not applied mutations.
func DefaultSeed() Seed {
	now := time.Now()
	return Seed{
		Accounts: []models.Account{
			{ID: "acc1", Name: "Main Account", Balance: decimal.NewFromInt(50000), Currency: "TWD", Color: "#3B82F6"},
			{ID: "acc2", Name: "Digital Wallet", Balance: decimal.NewFromInt(12500), Currency: "TWD", Color: "#10B981"},
		},
		Transactions: []models.Transaction{
			{ID: "t1", AccountID: "acc1", Amount: decimal.NewFromInt(150), Type: models.Expense, CategoryID: "cat1", Date: now, Note: "Lunch"},
			{ID: "t2", AccountID: "acc1", Amount: decimal.NewFromInt(2000), Type: models.Expense, CategoryID: "cat5", Date: now, Note: "New clothes"},
			{ID: "t3", AccountID: "acc2", Amount: decimal.NewFromInt(35000), Type: models.Income, CategoryID: "cat3", Date: now, Note: "Monthly salary"},
		},
	}
}
