package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"weft/internal/assetcache"
	"weft/internal/config"
)

func newCacheCommand(configFlag *string) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Local asset cache utilities",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(configFlag))
	cacheCmd.AddCommand(newCachePruneCommand(configFlag))

	return cacheCmd
}

func openCacheStore(configFlag *string) (*assetcache.Store, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := assetcache.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open asset cache: %w", err)
	}
	return store, nil
}

func newCacheStatsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show asset cache occupancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCacheStore(configFlag)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("cache stats: %w", err)
			}

			rows := make([][]string, 0, len(stats.ByKind)+1)
			for kind, count := range stats.ByKind {
				rows = append(rows, []string{kind, strconv.Itoa(count)})
			}
			rows = append(rows, []string{"total", strconv.Itoa(stats.Entries)})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Kind", "Entries"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%s\n%.1f MiB stored\n", store.Path(), float64(stats.TotalBytes)/(1024*1024))
			return nil
		},
	}
}

func newCachePruneCommand(configFlag *string) *cobra.Command {
	var maxMiB int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Evict least-recently-used cache entries past the size limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			limit := maxMiB
			if limit <= 0 {
				limit = cfg.MaxMiB
			}

			store, err := assetcache.Open(cfg)
			if err != nil {
				return fmt.Errorf("open asset cache: %w", err)
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), int64(limit)*1024*1024)
			if err != nil {
				return fmt.Errorf("prune cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d entries (limit %d MiB)\n", removed, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxMiB, "max-mib", 0, "Size limit in MiB (defaults to the configured limit)")
	return cmd
}
