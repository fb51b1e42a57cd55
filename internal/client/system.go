package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// HealthCheck reads the server health. It is never cached.
func (c *Client) HealthCheck(ctx context.Context) (*domain.HealthStatus, error) {
	var out domain.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health_check", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh reloads the session state, including the current company when
// currentCompany is set.
func (c *Client) Refresh(ctx context.Context, currentCompany bool) (*dto.RefreshResponse, error) {
	var q url.Values
	if currentCompany {
		q = url.Values{"current_company": {"true"}}
	}
	var out dto.DataResponse[dto.RefreshResponse]
	if err := c.do(ctx, http.MethodPost, "/refresh", q, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ClearCache asks the server to drop its caches, reloads the session and
// health, then drops every locally cached query. Steps run in order and
// the first failure stops the sequence.
func (c *Client) ClearCache(ctx context.Context) (*domain.HealthStatus, error) {
	c.notifier.Processing()
	q := url.Values{}
	q.Set("clear_cache", "true")
	if err := c.do(ctx, http.MethodGet, "/ping", q, nil, nil); err != nil {
		return nil, c.clearCacheFailed(fmt.Errorf("ping: %w", err))
	}
	if _, err := c.Refresh(ctx, true); err != nil {
		return nil, c.clearCacheFailed(fmt.Errorf("refresh: %w", err))
	}
	health, err := c.HealthCheck(ctx)
	if err != nil {
		return nil, c.clearCacheFailed(fmt.Errorf("health check: %w", err))
	}

	c.cache.clear()
	c.notifier.Success("cache_cleared")
	return health, nil
}

func (c *Client) clearCacheFailed(err error) error {
	c.logger.Error().Err(err).Msg("Failed to clear cache")
	c.notifier.Error()
	return err
}
