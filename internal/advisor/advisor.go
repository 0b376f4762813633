// Package advisor turns an aggregation snapshot into a compact financial
// summary, sends it to an external text-generation service, and returns the
// advice text. Failures are always returned as values; a broken or absent AI
// backend must never interrupt the rest of the application.
package advisor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"wealthai/internal/analytics"
	"wealthai/internal/logging"
	"wealthai/internal/models"
)

// FailureReason classifies why an advice request could not be served.
type FailureReason string

const (
	// NotConfigured means no credential is available; no external call was
	// attempted.
	NotConfigured FailureReason = "not_configured"
	// GenerationFailed means the external service was called and failed.
	GenerationFailed FailureReason = "generation_failed"
)

// AdvisoryError is the only error type RequestAdvice returns.
type AdvisoryError struct {
	Reason FailureReason
	Err    error
}

func (e *AdvisoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("advisory %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("advisory %s", e.Reason)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}

// CategorySpend is one line of the summary's top-category ranking.
type CategorySpend struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the compact aggregation payload sent to the advisory generator.
type Summary struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	TopCategories []CategorySpend `json:"topCategories"`
}

// AIClient is the external advisory generator boundary.
type AIClient interface {
	GenerateAdvice(ctx context.Context, summary Summary) (string, error)
}

// Advisor builds summaries and forwards them to an AIClient. A nil client
// means the advisor is not configured.
type Advisor struct {
	client AIClient
	logger logging.Logger
}

// New creates an Advisor. client may be nil when no credential is available.
func New(client AIClient, logger logging.Logger) *Advisor {
	return &Advisor{
		client: client,
		logger: logger,
	}
}

// BuildSummary derives the advisory payload from a ledger snapshot: total
// balance, total income, total expense, and the top 3 categories by combined
// volume.
func BuildSummary(transactions []models.Transaction, accounts []models.Account, categories []models.Category) Summary {
	summary := Summary{
		TotalBalance: analytics.TotalBalance(accounts),
		Income:       analytics.TotalIncome(transactions),
		Expense:      analytics.PeriodExpenseTotal(transactions),
	}
	for _, top := range analytics.TopCategories(transactions, categories, 3) {
		summary.TopCategories = append(summary.TopCategories, CategorySpend{
			Name:   top.Category.Name,
			Amount: top.Total,
		})
	}
	return summary
}

// RequestAdvice builds the summary and asks the external generator for
// advice. A non-nil error is always an *AdvisoryError: NotConfigured when no
// client is wired (no network call attempted), GenerationFailed when the
// service call failed. The ledger snapshot is never mutated.
func (a *Advisor) RequestAdvice(ctx context.Context, transactions []models.Transaction, accounts []models.Account, categories []models.Category) (string, error) {
	if a.client == nil {
		a.logger.Debug("Advice requested without a configured AI client")
		return "", &AdvisoryError{Reason: NotConfigured}
	}

	summary := BuildSummary(transactions, accounts, categories)

	advice, err := a.client.GenerateAdvice(ctx, summary)
	if err != nil {
		a.logger.WithError(err).Warn("Advice generation failed")
		return "", &AdvisoryError{Reason: GenerationFailed, Err: err}
	}

	a.logger.Info("Advice generated",
		logging.Field{Key: "summary_expense", Value: summary.Expense.String()},
		logging.Field{Key: "summary_income", Value: summary.Income.String()})
	return advice, nil
}
