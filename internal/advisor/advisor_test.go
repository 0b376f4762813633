package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthai/internal/logging"
	"wealthai/internal/models"
	"wealthai/internal/registry"
)

// stubClient records calls and returns a canned response.
type stubClient struct {
	calls   int
	summary Summary
	advice  string
	err     error
}

func (s *stubClient) GenerateAdvice(_ context.Context, summary Summary) (string, error) {
	s.calls++
	s.summary = summary
	return s.advice, s.err
}

func fixtureLedger() ([]models.Transaction, []models.Account, []models.Category) {
	transactions := []models.Transaction{
		{ID: "t1", AccountID: "acc1", Amount: decimal.NewFromInt(150), Type: models.Expense, CategoryID: "cat1", Date: time.Now()},
		{ID: "t2", AccountID: "acc1", Amount: decimal.NewFromInt(2000), Type: models.Expense, CategoryID: "cat5", Date: time.Now()},
		{ID: "t3", AccountID: "acc1", Amount: decimal.NewFromInt(35000), Type: models.Income, CategoryID: "cat3", Date: time.Now()},
	}
	accounts := []models.Account{
		{ID: "acc1", Name: "Main Account", Balance: decimal.NewFromInt(50000), Currency: "TWD"},
		{ID: "acc2", Name: "Digital Wallet", Balance: decimal.NewFromInt(12500), Currency: "TWD"},
	}
	return transactions, accounts, registry.Default().Categories()
}

func TestBuildSummary(t *testing.T) {
	transactions, accounts, categories := fixtureLedger()

	summary := BuildSummary(transactions, accounts, categories)

	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(62500)))
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(35000)))
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(2150)))

	// Top 3 by combined volume across both transaction types.
	require.Len(t, summary.TopCategories, 3)
	assert.Equal(t, "Salary", summary.TopCategories[0].Name)
	assert.True(t, summary.TopCategories[0].Amount.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, "Shopping", summary.TopCategories[1].Name)
	assert.Equal(t, "Food", summary.TopCategories[2].Name)
}

func TestBuildSummary_EmptyLedger(t *testing.T) {
	summary := BuildSummary(nil, nil, registry.Default().Categories())

	assert.True(t, summary.TotalBalance.IsZero())
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	require.Len(t, summary.TopCategories, 3)
	for _, top := range summary.TopCategories {
		assert.True(t, top.Amount.IsZero())
	}
}

func TestRequestAdvice_Success(t *testing.T) {
	transactions, accounts, categories := fixtureLedger()
	client := &stubClient{advice: "Spend less on shopping."}
	advisor := New(client, &logging.MockLogger{})

	advice, err := advisor.RequestAdvice(context.Background(), transactions, accounts, categories)
	require.NoError(t, err)
	assert.Equal(t, "Spend less on shopping.", advice)

	assert.Equal(t, 1, client.calls)
	assert.True(t, client.summary.Expense.Equal(decimal.NewFromInt(2150)))
}

func TestRequestAdvice_NotConfigured(t *testing.T) {
	transactions, accounts, categories := fixtureLedger()
	advisor := New(nil, &logging.MockLogger{})

	advice, err := advisor.RequestAdvice(context.Background(), transactions, accounts, categories)
	assert.Empty(t, advice)

	var advErr *AdvisoryError
	require.ErrorAs(t, err, &advErr)
	assert.Equal(t, NotConfigured, advErr.Reason)
	assert.NoError(t, advErr.Unwrap())
}

func TestRequestAdvice_GenerationFailed(t *testing.T) {
	transactions, accounts, categories := fixtureLedger()
	backendErr := errors.New("quota exceeded")
	client := &stubClient{err: backendErr}
	advisor := New(client, &logging.MockLogger{})

	advice, err := advisor.RequestAdvice(context.Background(), transactions, accounts, categories)
	assert.Empty(t, advice)

	var advErr *AdvisoryError
	require.ErrorAs(t, err, &advErr)
	assert.Equal(t, GenerationFailed, advErr.Reason)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, 1, client.calls)
}

func TestRequestAdvice_InputsNotMutated(t *testing.T) {
	transactions, accounts, categories := fixtureLedger()
	client := &stubClient{advice: "ok"}
	advisor := New(client, &logging.MockLogger{})

	_, err := advisor.RequestAdvice(context.Background(), transactions, accounts, categories)
	require.NoError(t, err)

	assert.Len(t, transactions, 3)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(50000)))
}

func TestAdvisoryError_Messages(t *testing.T) {
	assert.Equal(t, "advisory not_configured", (&AdvisoryError{Reason: NotConfigured}).Error())
	assert.Equal(t, "advisory generation_failed: boom",
		(&AdvisoryError{Reason: GenerationFailed, Err: errors.New("boom")}).Error())
}
