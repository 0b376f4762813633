// Package dashboard prints the derived summary statistics.
package dashboard

import (
	"github.com/spf13/cobra"

	"wealthai/cmd/root"
	"wealthai/internal/analytics"
)

// Cmd represents the dashboard command.
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show total balance, expense total, and category breakdown",
	Run:   dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	led := root.App.Ledger()
	accounts := led.Accounts()
	transactions := led.Transactions()
	categories := root.App.Registry().Categories()

	cmd.Printf("Mode:          %s\n", root.App.Controller().Mode())
	cmd.Printf("Total balance: %s\n", analytics.TotalBalance(accounts).StringFixed(2))
	cmd.Printf("Total income:  %s\n", analytics.TotalIncome(transactions).StringFixed(2))
	cmd.Printf("Total expense: %s\n", analytics.PeriodExpenseTotal(transactions).StringFixed(2))

	breakdown := analytics.CategoryBreakdown(transactions, categories)
	if len(breakdown) > 0 {
		cmd.Println("\nExpenses by category:")
		for _, entry := range breakdown {
			cmd.Printf("  %s %-14s %s\n", entry.Category.Icon, entry.Category.Name, entry.Total.StringFixed(2))
		}
	}

	cmd.Println("\nRecent transactions:")
	for i, tx := range transactions {
		if i == 5 {
			break
		}
		sign := "+"
		if tx.Signed().IsNegative() {
			sign = "-"
		}
		cmd.Printf("  %s  %s%s  %s\n", tx.Date.Format("2006-01-02"), sign, tx.Amount.StringFixed(2), tx.Note)
	}
}
