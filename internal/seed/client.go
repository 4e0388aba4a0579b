// Package seed loads demo users, groups and memberships into a running
// server through its HTTP API.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by lookups that the server answered with 404.
var ErrNotFound = errors.New("not found")

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Membership struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// Client talks to the /api surface. Transient failures (connection errors,
// 429, 5xx including 503 from a poisoned store) are retried with backoff.
type Client struct {
	baseURL *url.URL
	http    *retryablehttp.Client
	logger  *logrus.Logger
}

func NewClient(baseURL string, retryMax int, logger *logrus.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url: %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if retryMax < 0 {
		retryMax = 0
	}

	c := &Client{baseURL: u, logger: logger}
	c.http = &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
		Backoff:      retryablehttp.DefaultBackoff,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		RetryMax:     retryMax,
	}
	if logger != nil {
		c.http.RequestLogHook = func(_ retryablehttp.Logger, r *http.Request, n int) {
			if n > 0 {
				logger.WithFields(logrus.Fields{"method": r.Method, "url": r.URL.String(), "attempt": n}).Warn("retrying request")
			}
		}
	}
	return c, nil
}

// do sends body as JSON to path (relative to the base URL) and decodes the
// envelope's data into v. It returns the response status.
func (c *Client) do(ctx context.Context, method, path string, body, v any) (int, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return 0, err
	}
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		payload = bytes.NewReader(b)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), payload)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			return 0, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode >= 300:
		return resp.StatusCode, fmt.Errorf("%s %s: %d %s: %s", method, path, resp.StatusCode, env.Message, env.Error)
	}
	if v == nil || len(env.Data) == 0 {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.Unmarshal(env.Data, v)
}

func (c *Client) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if _, err := c.do(ctx, http.MethodGet, "users/lookup?email="+url.QueryEscape(email), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, name, email string) (*User, error) {
	var u User
	if _, err := c.do(ctx, http.MethodPost, "users", map[string]string{"name": name, "email": email}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) FindGroupByName(ctx context.Context, name string) (*Group, error) {
	var g Group
	if _, err := c.do(ctx, http.MethodGet, "groups/lookup?name="+url.QueryEscape(name), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) CreateGroup(ctx context.Context, name, description string) (*Group, error) {
	var g Group
	if _, err := c.do(ctx, http.MethodPost, "groups", map[string]string{"name": name, "description": description}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UserMemberships(ctx context.Context, userID string) ([]Membership, error) {
	var ms []Membership
	if _, err := c.do(ctx, http.MethodGet, "users/"+url.PathEscape(userID)+"/groups", nil, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (c *Client) AddMembership(ctx context.Context, userID, groupID string) (*Membership, error) {
	var m Membership
	if _, err := c.do(ctx, http.MethodPost, "user-groups", map[string]string{"user_id": userID, "group_id": groupID}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
