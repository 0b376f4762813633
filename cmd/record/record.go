// Package record records a new transaction from command-line flags.
package record

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wealthai/cmd/root"
	"wealthai/internal/ledger"
	"wealthai/internal/models"
)

var (
	accountID  string
	amount     string
	txType     string
	categoryID string
	note       string
)

// Cmd represents the record command.
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Record an income or expense transaction",
	RunE:  recordFunc,
}

func init() {
	Cmd.Flags().StringVarP(&accountID, "account", "a", "acc1", "Account id")
	Cmd.Flags().StringVarP(&amount, "amount", "m", "", "Amount (positive number)")
	Cmd.Flags().StringVarP(&txType, "type", "t", "EXPENSE", "Transaction type: INCOME or EXPENSE")
	Cmd.Flags().StringVarP(&categoryID, "category", "c", "cat1", "Category id")
	Cmd.Flags().StringVarP(&note, "note", "n", "", "Note")
	_ = Cmd.MarkFlagRequired("amount")
}

func recordFunc(cmd *cobra.Command, args []string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	tx, err := root.App.Controller().Record(cmd.Context(), ledger.RecordRequest{
		AccountID:  accountID,
		Amount:     value,
		Type:       models.TransactionType(strings.ToUpper(txType)),
		CategoryID: categoryID,
		Note:       note,
	})
	if err != nil {
		return err
	}

	account, _ := root.App.Ledger().Account(tx.AccountID)
	cmd.Printf("Recorded %s %s on %s (new balance %s)\n",
		tx.Type, tx.Amount.StringFixed(2), account.Name, account.Balance.StringFixed(2))
	return nil
}
