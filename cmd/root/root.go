// Package root contains the root command for the application.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"wealthai/internal/config"
	"wealthai/internal/container"
)

// App is the dependency container shared by all subcommands. It is built
// once in the root command's PersistentPreRunE.
var App *container.Container

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "wealthai",
	Short: "A personal-finance tracker with AI-generated advice.",
	Long: `wealthai records bank accounts and categorized transactions, derives
dashboard statistics from them, and can ask Gemini for financial advice.
Without credentials it runs in demo mode on seeded sample data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		cfg, err := config.InitializeConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		App, err = container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to wire dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if App != nil {
			App.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Welcome to wealthai!")
		cmd.Println("Use --help to see available commands")
	},
}
