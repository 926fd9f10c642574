// Package remote talks to the cloud key-value table that backs sync: one
// Supabase-style PostgREST table holding one JSON document per sync
// identity. The document is opaque to this package; there is no partial
// fetch, no version token, and every write replaces the record whole.
package remote

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

	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/models"
)

// ErrNotConfigured is returned when sync is attempted without both remote
// credentials. It is raised before any network I/O.
var ErrNotConfigured = errors.New("cloud sync is not configured")

// RemoteError is a rejection from the remote store: auth failure, table
// misconfiguration, or a transport fault. Status is zero when the remote
// was never reached.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote store unreachable: %s", e.Message)
	}
	return fmt.Sprintf("remote store rejected request (HTTP %d): %s", e.Status, e.Message)
}

// Store is the sync coordinator's view of the remote table.
type Store interface {
	// Push replaces the document stored under settings.SyncID whole.
	Push(ctx context.Context, settings models.Settings, doc models.Document) error
	// Pull fetches the document for settings.SyncID. A nil document with a
	// nil error means no record exists yet: the expected first-sync state,
	// not a failure.
	Pull(ctx context.Context, settings models.Settings) (*models.Document, error)
}

// Client implements Store against a Supabase PostgREST endpoint.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	// The transport timeout is the only cancellation story for an
	// in-flight sync: every call resolves within this window.
	return &Client{http: &http.Client{Timeout: 30 * time.Second}}
}

// row is the wire shape of one record in the user_data table.
type row struct {
	ID        string          `json:"id"`
	Content   models.Document `json:"content"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

func (c *Client) Push(ctx context.Context, settings models.Settings, doc models.Document) error {
	if !settings.SyncConfigured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal([]row{{
		ID:        settings.SyncID,
		Content:   doc,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}})
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	endpoint := tableURL(settings.RemoteURL) + "?on_conflict=id"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	setAuthHeaders(req, settings.RemoteKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	logger.Debug("Pushed document to remote", "sync_id", settings.SyncID)
	return nil
}

func (c *Client) Pull(ctx context.Context, settings models.Settings) (*models.Document, error) {
	if !settings.SyncConfigured() {
		return nil, ErrNotConfigured
	}

	endpoint := tableURL(settings.RemoteURL) + "?id=eq." + url.QueryEscape(settings.SyncID) + "&select=content"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	setAuthHeaders(req, settings.RemoteKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &RemoteError{Status: resp.StatusCode, Message: fmt.Sprintf("unreadable response: %v", err)}
	}

	// No record under this identity yet: the first-sync state.
	if len(rows) == 0 {
		logger.Debug("No remote document for identity", "sync_id", settings.SyncID)
		return nil, nil
	}

	doc := rows[0].Content
	return &doc, nil
}

func tableURL(remoteURL string) string {
	return strings.TrimSuffix(remoteURL, "/") + "/rest/v1/" + constants.RemoteTable
}

func setAuthHeaders(req *http.Request, key string) {
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
}

func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	// PostgREST errors carry a message field; fall back to the raw body.
	var detail struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &detail) == nil && detail.Message != "" {
		return detail.Message
	}
	return strings.TrimSpace(string(data))
}
