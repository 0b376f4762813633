// Package advise requests AI-generated financial advice.
package advise

import (
	"errors"

	"github.com/spf13/cobra"

	"wealthai/cmd/root"
	"wealthai/internal/advisor"
)

// Cmd represents the advise command.
var Cmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the AI advisor for financial suggestions",
	Run:   adviseFunc,
}

func adviseFunc(cmd *cobra.Command, args []string) {
	led := root.App.Ledger()

	advice, err := root.App.Advisor().RequestAdvice(
		cmd.Context(),
		led.Transactions(),
		led.Accounts(),
		root.App.Registry().Categories(),
	)
	if err != nil {
		var advErr *advisor.AdvisoryError
		if errors.As(err, &advErr) && advErr.Reason == advisor.NotConfigured {
			cmd.Println("No API key configured; set GEMINI_API_KEY to enable AI advice.")
			return
		}
		cmd.Printf("Could not generate advice: %v\n", err)
		return
	}

	cmd.Println(advice)
}
