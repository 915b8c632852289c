package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "steamctl",
		Short:         "Maintenance commands for the steamcache store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCommand())
	root.AddCommand(newNeedsRefreshCommand())
	root.AddCommand(newRefreshCommand())
	root.AddCommand(newPreloadCommand())
	root.AddCommand(newOverviewCommand())

	return root
}
