// Package steam implements the upstream sources against Steam's public store
// and community endpoints.
package steam

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"steamcache/config"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBytes = 8 << 20

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// client implements service.SteamSource over HTTP.
type client struct {
	storeBaseURL     string
	communityBaseURL string
	userAgent        string
	httpClient       *http.Client
	logger           *slog.Logger
}

// New creates the Steam client from configuration.
func New(params Params) service.SteamSource {
	return NewClient(params.Config.Steam, &http.Client{Timeout: params.Config.Steam.RequestTimeout}, params.Logger)
}

// NewClient creates a Steam client with an explicit HTTP client.
func NewClient(cfg *config.SteamConfig, httpClient *http.Client, logger *slog.Logger) service.SteamSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &client{
		storeBaseURL:     strings.TrimRight(cfg.StoreBaseURL, "/"),
		communityBaseURL: strings.TrimRight(cfg.CommunityBaseURL, "/"),
		userAgent:        cfg.UserAgent,
		httpClient:       httpClient,
		logger:           logger,
	}
}

// getJSON performs a GET request and decodes a 2xx body into out.
func (c *client) getJSON(ctx context.Context, operation, rawURL string, query url.Values, out any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domainerrors.NewUpstreamError(operation, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewUpstreamError(operation, 0, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Steam request completed",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return domainerrors.NewUpstreamError(operation, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domainerrors.NewUpstreamError(operation, resp.StatusCode, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: %v", operation, err)
	}

	return nil
}
