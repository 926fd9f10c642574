package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julianstephens/smartsched/internal/models"
)

func testSettings(url string) models.Settings {
	return models.Settings{
		RemoteURL: url,
		RemoteKey: "test-key",
		SyncID:    "sync-1234",
	}
}

func TestPush(t *testing.T) {
	var gotReq *http.Request
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient()
	doc := models.Document{
		Courses: []models.Course{{ID: "c1", Name: "Algorithms", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}},
		Tasks:   []models.Task{},
	}
	if err := client.Push(context.Background(), testSettings(server.URL), doc); err != nil {
		t.Fatalf("Push returned error: %v", err)
	}

	if gotReq.URL.Path != "/rest/v1/user_data" {
		t.Errorf("path = %s, want /rest/v1/user_data", gotReq.URL.Path)
	}
	if got := gotReq.URL.Query().Get("on_conflict"); got != "id" {
		t.Errorf("on_conflict = %q, want id", got)
	}
	if got := gotReq.Header.Get("apikey"); got != "test-key" {
		t.Errorf("apikey header = %q", got)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("Authorization header = %q", got)
	}
	if got := gotReq.Header.Get("Prefer"); got != "resolution=merge-duplicates" {
		t.Errorf("Prefer header = %q", got)
	}

	var rows []row
	if err := json.Unmarshal(gotBody, &rows); err != nil {
		t.Fatalf("request body is not a row array: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "sync-1234" {
		t.Errorf("body rows = %+v", rows)
	}
	if len(rows[0].Content.Courses) != 1 {
		t.Errorf("pushed document lost courses: %+v", rows[0].Content)
	}
	if rows[0].UpdatedAt == "" {
		t.Error("pushed row has no updated_at timestamp")
	}
}

func TestPullFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.sync-1234" {
			t.Errorf("id filter = %q, want eq.sync-1234", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"sync-1234","content":{"courses":[{"id":"c1","name":"Remote","day":"Monday","startTime":"09:00","endTime":"10:00"}],"tasks":[]}}]`)
	}))
	defer server.Close()

	client := NewClient()
	doc, err := client.Pull(context.Background(), testSettings(server.URL))
	if err != nil {
		t.Fatalf("Pull returned error: %v", err)
	}
	if doc == nil {
		t.Fatal("Pull returned nil document for an existing record")
	}
	if len(doc.Courses) != 1 || doc.Courses[0].Name != "Remote" {
		t.Errorf("Pull document = %+v", doc)
	}
}

// An empty result set means no record exists yet, which is not an error.
func TestPullAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	client := NewClient()
	doc, err := client.Pull(context.Background(), testSettings(server.URL))
	if err != nil {
		t.Fatalf("Pull returned error: %v", err)
	}
	if doc != nil {
		t.Errorf("Pull = %+v, want nil for absent record", doc)
	}
}

func TestPullRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"JWT expired"}`)
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Pull(context.Background(), testSettings(server.URL))

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("Pull error = %v, want *RemoteError", err)
	}
	if remoteErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", remoteErr.Status)
	}
	if remoteErr.Message != "JWT expired" {
		t.Errorf("Message = %q, want the PostgREST message verbatim", remoteErr.Message)
	}
}

func TestUnreachableRemote(t *testing.T) {
	client := NewClient()
	settings := testSettings("http://127.0.0.1:1")

	var remoteErr *RemoteError
	if err := client.Push(context.Background(), settings, models.Document{}); !errors.As(err, &remoteErr) {
		t.Fatalf("Push error = %v, want *RemoteError", err)
	}
	if remoteErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for a remote that was never reached", remoteErr.Status)
	}
}

// Missing credentials short-circuit before any network I/O.
func TestNotConfigured(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient()
	settings := models.Settings{RemoteURL: server.URL, SyncID: "sync-1234"}

	if err := client.Push(context.Background(), settings, models.Document{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Push without key = %v, want ErrNotConfigured", err)
	}
	if _, err := client.Pull(context.Background(), settings); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Pull without key = %v, want ErrNotConfigured", err)
	}
	if hits != 0 {
		t.Errorf("server was hit %d times, want 0", hits)
	}
}
