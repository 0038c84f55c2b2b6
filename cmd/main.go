package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; -c is shared by every subcommand.
func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "parking-sms",
		Short:         "Compose Cluj parking SMS messages and track the last session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (default configs/config.yml)")

	root.AddCommand(
		newServeCmd(&cfgPath),
		newComposeCmd(&cfgPath),
		newTariffsCmd(&cfgPath),
	)
	return root
}
