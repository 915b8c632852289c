package main

import (
	"context"
	"fmt"
	"time"

	"steamcache/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the store schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d *deps) error {
				if err := postgres.Migrate(ctx, d.db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema migrated")

				return nil
			})
		},
	}
}

func newNeedsRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "needs-refresh APP_ID...",
		Short: "Report which parts of each game are missing or stale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d *deps) error {
				out := cmd.OutOrStdout()
				for _, appID := range args {
					decision, err := d.catalog.RefreshStatus(ctx, appID)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\trefresh=%t\tgame_missing=%t\taggregate_stale=%t\tfeed_stale=%t\n",
						appID, decision.NeedsRefresh(), decision.GameMissing, decision.AggregateStale, decision.FeedStale)
				}

				return nil
			})
		},
	}
}

func newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh APP_ID...",
		Short: "Fetch metadata, aggregate and the newest reviews regardless of freshness",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d *deps) error {
				out := cmd.OutOrStdout()
				for _, appID := range args {
					start := time.Now()
					result, err := d.catalog.RefreshApp(ctx, appID)
					if err != nil {
						return err
					}
					name := result.AppID
					if result.Game != nil {
						name = result.Game.Name
					}
					fmt.Fprintf(out, "%s\t%q\tinserted=%d\tplaceholder=%t\t%s\n",
						result.AppID, name, result.InsertedReviews, result.MetadataFetch.Placeholder,
						time.Since(start).Round(time.Millisecond))
				}

				return nil
			})
		},
	}
}

func newPreloadCommand() *cobra.Command {
	var (
		limit   int
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "preload",
		Short: "Refresh the configured popular games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d *deps) error {
				out := cmd.OutOrStdout()
				if publish {
					result, err := d.preload.Schedule(ctx, limit)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s %d refresh jobs: %v\n", result.Mode, len(result.AppIDs), result.AppIDs)

					return nil
				}

				report, err := d.preload.Run(ctx, limit)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "refreshed %d games\n", len(report.Refreshed))
				for _, failure := range report.Failed {
					fmt.Fprintf(out, "failed %s: %v\n", failure.AppID, failure.Err)
				}
				if len(report.Failed) > 0 {
					return fmt.Errorf("%d of %d games failed", len(report.Failed), len(report.Failed)+len(report.Refreshed))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "refresh only the first N configured games")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish refresh events instead of refreshing in this process")

	return cmd
}

func newOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print store counters and the refresh queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d *deps) error {
				overview, err := d.metrics.Overview(ctx)
				if err != nil {
					return err
				}
				m := overview.Metrics
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "games=%d placeholders=%d aggregates=%d reviews=%d\n",
					m.Games, m.PlaceholderGames, m.Aggregates, m.Reviews)
				fmt.Fprintf(out, "stale_aggregates=%d missing_aggregates=%d stale_feeds=%d fresh=%.2f%% window=%.0fh\n",
					m.StaleAggregates, m.MissingAggregates, m.StaleFeeds, overview.FreshnessPercent, overview.ExpirationHours)

				queue, err := d.metrics.RefreshQueue(ctx, 0)
				if err != nil {
					return err
				}
				for _, item := range queue {
					fmt.Fprintf(out, "queued %s\t%s\n", item.AppID, item.Name)
				}

				return nil
			})
		},
	}
}
