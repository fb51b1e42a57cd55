// Package client is a typed API client for the resources, employees and
// system endpoints. Fetches are cached per route until a mutation
// invalidates them; concurrent identical fetches share one request.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "invoicing-client/1.0"
)

// Config holds the connection settings. BaseURL includes the API prefix,
// e.g. "https://api.example.com/api/v1".
type Config struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the invoicing API. Safe for concurrent use.
type Client struct {
	http     *resty.Client
	cache    *queryCache
	group    singleflight.Group
	notifier Notifier
	logger   zerolog.Logger
}

// Option is a functional option for configuring the client
type Option func(*Client)

// WithNotifier sets where success and failure notifications go.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithLogger sets the logger used for failed requests.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a client.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", ua)
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}

	c := &Client{
		http:     rc,
		cache:    newQueryCache(),
		notifier: NopNotifier{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody covers both error shapes the API returns.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

// do executes one request and classifies the outcome.
func (c *Client) do(ctx context.Context, method, route string, query url.Values, body, result any) error {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, route)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, route, err)
	}
	if !resp.IsError() {
		return nil
	}

	eb, _ := resp.Error().(*errorBody)
	if eb == nil {
		eb = &errorBody{}
	}
	switch resp.StatusCode() {
	case http.StatusUnprocessableEntity:
		return &ValidationError{Message: eb.Message, Errors: eb.Errors}
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, route, ErrNotFound)
	default:
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		return &APIError{StatusCode: resp.StatusCode(), Method: method, Route: route, Message: msg}
	}
}

// fetch returns the cached payload for route+query or loads it once,
// coalescing concurrent callers. Cached values are shared; do not mutate them.
//
// The shared request is detached from any one caller's context and bounded
// by the client timeout; each caller stops waiting when its own ctx ends.
// Callers arriving after an invalidation start a new request.
func fetch[T any](ctx context.Context, c *Client, route string, query url.Values) (T, error) {
	var zero T
	key := cacheKey(route, query)
	if v, ok := c.cache.get(key); ok {
		return v.(T), nil
	}

	gen := c.cache.generation()
	ch := c.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		var out T
		if err := c.do(context.WithoutCancel(ctx), http.MethodGet, route, query, nil, &out); err != nil {
			return nil, err
		}
		c.cache.set(key, out, gen)
		return out, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if !errors.Is(res.Err, ErrNotFound) {
				c.logger.Error().Err(res.Err).Str("route", key).Msg("Fetch failed")
			}
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// mutation describes a write and what it invalidates on success.
type mutation struct {
	method     string
	route      string
	body       any
	successKey string
	invalidate []string // cache key prefixes
}

// mutate runs a write. A processing notification is shown first. Success
// invalidates and notifies; 422 dismisses the pending notification and
// returns the field errors; anything else is logged and reported with a
// generic notification. Nothing is retried.
func (c *Client) mutate(ctx context.Context, m mutation, result any) error {
	c.notifier.Processing()
	err := c.do(ctx, m.method, m.route, nil, m.body, result)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.notifier.Dismiss()
			return verr
		}
		c.logger.Error().Err(err).Str("method", m.method).Str("route", m.route).Msg("Request failed")
		c.notifier.Error()
		return err
	}

	for _, prefix := range m.invalidate {
		c.cache.invalidatePrefix(prefix)
	}
	if m.successKey != "" {
		c.notifier.Success(m.successKey)
	}
	return nil
}

// InvalidateAll drops every cached query.
func (c *Client) InvalidateAll() {
	c.cache.clear()
}

// ListOptions are the list query parameters. Zero values use the API
// defaults of page 1 and 100 rows.
type ListOptions struct {
	Page    int
	PerPage int
	Status  string
	Filter  string
	Sort    string
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	page, perPage := o.Page, o.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 100
	}
	v.Set("page", fmt.Sprint(page))
	v.Set("per_page", fmt.Sprint(perPage))
	if o.Status != "" {
		v.Set("status", o.Status)
	}
	if o.Filter != "" {
		v.Set("filter", o.Filter)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	return v
}

// ResourceSelectorOptions is the query the line item resource picker uses.
func ResourceSelectorOptions() ListOptions {
	return ListOptions{Page: 1, PerPage: 800, Status: "active", Sort: "name|asc"}
}

func bulkRequest(action string, ids []string) dto.BulkActionRequest {
	return dto.BulkActionRequest{Action: action, IDs: ids}
}
