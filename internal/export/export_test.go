package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthai/internal/logging"
	"wealthai/internal/models"
	"wealthai/internal/registry"
)

func exportFixture() ([]models.Transaction, []models.Account) {
	transactions := []models.Transaction{
		{
			ID: "t1", AccountID: "acc1",
			Amount: decimal.NewFromInt(150), Type: models.Expense,
			CategoryID: "cat1",
			Date:       time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			Note:       "Lunch",
		},
		{
			ID: "t2", AccountID: "acc1",
			Amount: decimal.NewFromInt(35000), Type: models.Income,
			CategoryID: "cat3",
			Date:       time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			Note:       "Monthly salary",
		},
	}
	accounts := []models.Account{
		{ID: "acc1", Name: "Main Account", Balance: decimal.NewFromInt(50000), Currency: "TWD"},
	}
	return transactions, accounts
}

func TestRows(t *testing.T) {
	transactions, accounts := exportFixture()
	exporter := New(registry.Default(), ',', &logging.MockLogger{})

	rows := exporter.Rows(transactions, accounts)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-08-20", rows[0].Date)
	assert.Equal(t, "Main Account", rows[0].Account)
	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "EXPENSE", rows[0].Type)
	assert.Equal(t, "-150.00", rows[0].Amount)
	assert.Equal(t, "TWD", rows[0].Currency)
	assert.Equal(t, "Lunch", rows[0].Note)

	assert.Equal(t, "35000.00", rows[1].Amount)
	assert.Equal(t, "Salary", rows[1].Category)
}

func TestRows_UnknownReferencesFallBackToIDs(t *testing.T) {
	exporter := New(registry.Default(), ',', &logging.MockLogger{})

	rows := exporter.Rows([]models.Transaction{
		{ID: "t1", AccountID: "ghost", Amount: decimal.NewFromInt(1), Type: models.Expense, CategoryID: "catX"},
	}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "ghost", rows[0].Account)
	assert.Equal(t, "catX", rows[0].Category)
	assert.Empty(t, rows[0].Currency)
}

func TestWriteFile(t *testing.T) {
	transactions, accounts := exportFixture()
	exporter := New(registry.Default(), ',', &logging.MockLogger{})

	path := filepath.Join(t.TempDir(), "out", "transactions.csv")
	require.NoError(t, exporter.WriteFile(transactions, accounts, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Account,Category,Type,Amount,Currency,Note", lines[0])
	assert.Contains(t, lines[1], "-150.00")
	assert.Contains(t, lines[2], "Monthly salary")
}

func TestWriteFile_CustomDelimiter(t *testing.T) {
	transactions, accounts := exportFixture()
	exporter := New(registry.Default(), ';', &logging.MockLogger{})

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, exporter.WriteFile(transactions, accounts, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Date;Account;Category;Type;Amount;Currency;Note", lines[0])
}

func TestWriteFile_EmptyLog(t *testing.T) {
	exporter := New(registry.Default(), ',', &logging.MockLogger{})

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, exporter.WriteFile(nil, nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Account,Category,Type,Amount,Currency,Note",
		strings.TrimSpace(string(data)))
}
