// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvegen/pvegen/internal/config"
	"github.com/pvegen/pvegen/internal/fetch"
)

var (
	fetchURL     string
	fetchCache   string
	fetchRefresh bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache the API schema document",
	Long: `Download the Proxmox API schema document and cache the extracted
JSON payload.

The fetcher retries transient failures, pulls the apiSchema array out
of the JavaScript wrapper, and stores plain JSON so later runs work
offline.

Example:
  pvegen fetch                        # Download to the configured cache
  pvegen fetch --refresh              # Ignore the cache and re-download
  pvegen fetch --url URL --cache p.json`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "schema document URL (default: pinned pve-docs revision)")
	fetchCmd.Flags().StringVar(&fetchCache, "cache", "", "cache file path (default from config)")
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "re-download even when the cache exists")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	url := fetchURL
	if url == "" {
		url = cfg.Schema.URL
	}
	cache := fetchCache
	if cache == "" {
		cache = cfg.Schema.Cache
	}

	fetcher := fetch.NewFetcher(url)
	printVerbose("Fetching %s", fetcher.URL)

	data, err := fetcher.FetchCached(cmd.Context(), cache, fetchRefresh)
	if err != nil {
		return err
	}

	printInfo("Schema cached at %s (%d bytes)", cache, len(data))
	return nil
}
