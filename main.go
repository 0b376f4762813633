package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"wealthai/cmd/advise"
	"wealthai/cmd/dashboard"
	exportcmd "wealthai/cmd/export"
	"wealthai/cmd/record"
	"wealthai/cmd/root"
)

func init() {
	// The global logrus level must be set before any component creates a
	// logger; the container refines it later from the full configuration.
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(record.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
