// Package models defines the core data types of the tracker: bank accounts,
// spending categories, the transaction log entries that tie them together,
// and the authenticated identity.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction. The sign of a
// transaction is carried exclusively by its type; Amount is always positive.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Account is a bank account. Balance always equals the seed balance plus the
// signed sum of every transaction referencing the account.
type Account struct {
	ID       string          `json:"id" csv:"-"`
	Name     string          `json:"name" csv:"-"`
	Balance  decimal.Decimal `json:"balance" csv:"-"`
	Currency string          `json:"currency" csv:"-"`
	Color    string          `json:"color" csv:"-"`
}

// Category is a spending or income category from the read-only catalog.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// Transaction is one entry in the ledger log. Transactions are never mutated
// after creation.
type Transaction struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"category_id"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note"`
}

// Signed returns the amount with the direction applied: positive for income,
// negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Identity is the authenticated user. The core never inspects it beyond
// passing it to the persistence boundary; absence is expressed as a nil
// *Identity, never a zero value.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
