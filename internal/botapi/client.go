// Package botapi is the typed HTTP client for the trading bot's dashboard
// API. Every call returns the decoded payload or an error; business-level
// failures (success:false) are carried inside the payload, not as errors,
// so callers can distinguish transport faults from backend refusals.
package botapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the bot backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client against baseURL. timeout bounds every request; zero
// means no client-side timeout beyond the platform default.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Status fetches the full bot snapshot.
func (c *Client) Status(ctx context.Context) (*BotSnapshot, error) {
	var snap BotSnapshot
	if err := c.get(ctx, "/status", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Statistics fetches aggregate performance counters.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := c.get(ctx, "/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Logs fetches the latest full log batch.
func (c *Client) Logs(ctx context.Context) (*LogBatch, error) {
	var batch LogBatch
	if err := c.get(ctx, "/logs", &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// SwarmStats fetches the voting-ensemble summary.
func (c *Client) SwarmStats(ctx context.Context) (*SwarmStats, error) {
	var stats SwarmStats
	if err := c.get(ctx, "/swarm-stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CausalGraph fetches the causal-analysis graph summary.
func (c *Client) CausalGraph(ctx context.Context) (*CausalGraph, error) {
	var graph CausalGraph
	if err := c.get(ctx, "/causal-graph", &graph); err != nil {
		return nil, err
	}
	return &graph, nil
}

// ToggleTrading flips trading on or off.
func (c *Client) ToggleTrading(ctx context.Context) (*ToggleResult, error) {
	var res ToggleResult
	if err := c.post(ctx, "/toggle-trading", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SellAll liquidates every open position.
func (c *Client) SellAll(ctx context.Context) (*SellAllResult, error) {
	var res SellAllResult
	if err := c.post(ctx, "/sell-all", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, out)
}

func (c *Client) post(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("botapi: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("botapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("botapi: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("botapi: %s %s: decode: %w", method, path, err)
	}
	return nil
}
