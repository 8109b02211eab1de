package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cardroom/internal/config"
)

// Version is the dealer version
var Version = "v0.0.0-dev"

var seed int64

var rootCmd = &cobra.Command{
	Use:     "dealer",
	Short:   "Shuffle and deal from a standard 52-card deck",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()

		// no color when piped
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "use a deterministic shuffle seed (0 uses a crypto source)")
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(dealCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
