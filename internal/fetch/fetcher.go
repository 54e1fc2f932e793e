// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// schemaCommit pins the pve-docs revision the generator is developed
// against, so fetches are reproducible until deliberately bumped.
const schemaCommit = "f42edd7afd805a27fd7a0b027d67ca7adeedc2c6"

// DefaultURL is the canonical apidata.js location.
const DefaultURL = "https://raw.githubusercontent.com/proxmox/pve-docs/" +
	schemaCommit + "/api-viewer/apidata.js"

// Fetcher downloads the schema document with retries and extracts the
// JSON payload.
type Fetcher struct {
	// URL is the document location; DefaultURL when empty
	URL string

	client    *retryablehttp.Client
	extractor *Extractor
}

// NewFetcher returns a Fetcher for the given URL.
func NewFetcher(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 4
	client.Logger = nil
	return &Fetcher{
		URL:       url,
		client:    client,
		extractor: NewExtractor(),
	}
}

// Fetch downloads the document and returns the schema JSON. JavaScript
// payloads go through extraction; raw JSON passes through after a
// validity check.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", f.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return f.normalize(ctx, f.URL, body)
}

// FetchCached returns the cached schema when present, otherwise
// downloads and writes the cache. refresh forces a download.
func (f *Fetcher) FetchCached(ctx context.Context, cachePath string, refresh bool) ([]byte, error) {
	if cachePath == "" {
		return f.Fetch(ctx)
	}

	if !refresh {
		if cached, err := os.ReadFile(cachePath); err == nil && json.Valid(cached) {
			return cached, nil
		}
	}

	data, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing cache: %w", err)
	}
	return data, nil
}

func (f *Fetcher) normalize(ctx context.Context, source string, data []byte) ([]byte, error) {
	if strings.HasSuffix(source, ".js") {
		extracted, err := f.extractor.Extract(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("extracting schema from %s: %w", source, err)
		}
		return extracted, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: not valid JSON", source)
	}
	return data, nil
}

// Load reads a schema document from disk: .js files go through
// extraction, everything else must be raw JSON.
func Load(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	if strings.HasSuffix(path, ".js") {
		payload, err := NewExtractor().Extract(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("extracting schema from %s: %w", path, err)
		}
		return payload, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}
	return data, nil
}
