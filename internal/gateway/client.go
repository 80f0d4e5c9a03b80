// Package gateway is the typed client for the remote gym API. One shared
// transport, a bearer token attached from the session store on every
// request, and a single normalized error shape at the boundary. The domain
// groups map one intent to one HTTP call; nothing here retries, caches, or
// deduplicates.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/metrics"
)

// TokenSource yields the bearer credential for the current request, reading
// the session store directly rather than any handler state. ok is false when
// the caller has no token (e.g. the login exchange itself).
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool)
}

// Client is the shared gym API transport plus its domain groups.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     zerolog.Logger

	Auth         *AuthGroup
	Member       *MemberGroup
	Class        *ClassGroup
	Booking      *BookingGroup
	Employee     *EmployeeGroup
	Equipment    *EquipmentGroup
	Inventory    *InventoryGroup
	Subscription *SubscriptionGroup
	Manager      *ManagerGroup
	Chat         *ChatGroup
}

// New builds a Client against baseURL. timeout bounds every call so a hung
// upstream cannot leave a screen loading forever.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
	c.Auth = &AuthGroup{c: c}
	c.Member = &MemberGroup{c: c}
	c.Class = &ClassGroup{c: c}
	c.Booking = &BookingGroup{c: c}
	c.Employee = &EmployeeGroup{c: c}
	c.Equipment = &EquipmentGroup{c: c}
	c.Inventory = &InventoryGroup{c: c}
	c.Subscription = &SubscriptionGroup{c: c}
	c.Manager = &ManagerGroup{c: c}
	c.Chat = &ChatGroup{c: c}
	return c
}

// do issues one HTTP call and decodes the response into out (when non-nil).
// All failures come back as *APIError.
func (c *Client) do(ctx context.Context, group, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, query, body, out)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.GatewayRequestsTotal.WithLabelValues(group, outcome).Inc()
	metrics.GatewayRequestDuration.WithLabelValues(group).Observe(time.Since(start).Seconds())

	if err != nil {
		c.log.Warn().Err(err).
			Str("group", group).
			Str("method", method).
			Str("path", path).
			Msg("gym api call failed")
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Detail: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &APIError{Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return normalizeTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalizeTransport(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeStatus(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// NoToken is a TokenSource for callers that never authenticate (tests, the
// login exchange before any session exists).
type NoToken struct{}

func (NoToken) Token(context.Context) (string, bool) { return "", false }

// StaticToken always yields the same credential. Test helper.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, bool) { return string(s), s != "" }
