// Package export writes the transaction log to CSV for use in spreadsheets
// or other tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"wealthai/internal/logging"
	"wealthai/internal/models"
	"wealthai/internal/registry"
)

// Row is one exported CSV line. Amounts are signed: income positive,
// expense negative.
type Row struct {
	Date     string `csv:"Date"`
	Account  string `csv:"Account"`
	Category string `csv:"Category"`
	Type     string `csv:"Type"`
	Amount   string `csv:"Amount"`
	Currency string `csv:"Currency"`
	Note     string `csv:"Note"`
}

// Exporter writes ledger snapshots to CSV files.
type Exporter struct {
	registry  *registry.Registry
	delimiter rune
	logger    logging.Logger
}

// New creates an Exporter using the given catalog for category names.
func New(reg *registry.Registry, delimiter rune, logger logging.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Exporter{
		registry:  reg,
		delimiter: delimiter,
		logger:    logger,
	}
}

// Rows converts transactions to export rows, joining account and category
// display names.
func (e *Exporter) Rows(transactions []models.Transaction, accounts []models.Account) []Row {
	accountNames := make(map[string]models.Account, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID] = acc
	}

	rows := make([]Row, 0, len(transactions))
	for _, tx := range transactions {
		row := Row{
			Date:   tx.Date.Format("2006-01-02"),
			Type:   string(tx.Type),
			Amount: tx.Signed().StringFixed(2),
			Note:   tx.Note,
		}
		if acc, ok := accountNames[tx.AccountID]; ok {
			row.Account = acc.Name
			row.Currency = acc.Currency
		} else {
			row.Account = tx.AccountID
		}
		if cat, ok := e.registry.ByID(tx.CategoryID); ok {
			row.Category = cat.Name
		} else {
			row.Category = tx.CategoryID
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteFile writes the transactions to a CSV file, creating parent
// directories as needed.
func (e *Exporter) WriteFile(transactions []models.Transaction, accounts []models.Account, csvFile string) error {
	e.logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = e.delimiter

	rows := e.Rows(transactions, accounts)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
