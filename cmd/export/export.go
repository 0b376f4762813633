// Package export writes the transaction log to a CSV file.
package export

import (
	"github.com/spf13/cobra"

	"wealthai/cmd/root"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	led := root.App.Ledger()
	if err := root.App.Exporter().WriteFile(led.TransactionsByDate(), led.Accounts(), output); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", output)
	return nil
}
