// Package api is the single gateway to the JejaKarbon REST API. Every
// screen routes through one shared Client, which attaches the bearer
// token on the way out and handles expired sessions on the way back.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/session"
	"github.com/jejakarbon/cli/internal/models"
)

// ErrUnauthorized is returned after a 401. The session has already been
// cleared and the unauthorized hook fired by the time callers see it.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a server-rejected request: the envelope message is meant
// to be shown to the user as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// envelope is the response wrapper used by every endpoint.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *models.Meta    `json:"meta,omitempty"`
}

// Client dispatches requests with the cross-cutting auth concerns
// applied. Exactly one instance exists per process.
type Client struct {
	baseURL     string
	http        *http.Client
	sess        *session.Store
	sessionFile string
	log         *zap.Logger

	// onUnauthorized forces navigation to the login screen after a 401.
	onUnauthorized func()
}

// New returns a Client for the API rooted at baseURL. sessionFile is the
// persisted slot read directly when the store has not hydrated yet.
func New(baseURL string, sess *session.Store, sessionFile string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 15 * time.Second},
		sess:        sess,
		sessionFile: sessionFile,
		log:         log,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// OnUnauthorized registers the navigation hook fired after any 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// bearerToken resolves the current token. Absence is not an error, the
// request simply goes out unauthenticated.
func (c *Client) bearerToken() string {
	if tok := c.sess.Token(); tok != "" {
		return tok
	}
	if !c.sess.Hydrated() {
		return session.ReadToken(c.sessionFile)
	}
	return ""
}

// do dispatches method path with an optional JSON body, decodes the
// response envelope and unmarshals its data into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) (*models.Meta, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.bearerToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: propagate without touching the session.
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Every endpoint wraps its payload in the same envelope. An empty
	// 2xx body (e.g. a delete) still counts as success.
	env := envelope{Status: len(data) == 0}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil && resp.StatusCode < 400 {
			return nil, fmt.Errorf("decode response envelope: %w", err)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Expired or rejected token: clear the session unconditionally
		// and force navigation to login, then surface the rejection.
		c.log.Info("unauthorized response, clearing session",
			zap.String("path", path))
		if err := c.sess.Logout(); err != nil {
			c.log.Error("failed to clear session", zap.Error(err))
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Meta, nil
}
