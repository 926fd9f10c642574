package syncer

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/remote"
	"github.com/julianstephens/smartsched/internal/storage"
)

// fakeRemote records calls and serves canned responses.
type fakeRemote struct {
	pushed    []models.Document
	pullDoc   *models.Document
	pushErr   error
	pullErr   error
	pushEnter chan struct{}
	pushBlock chan struct{}
}

func (f *fakeRemote) Push(ctx context.Context, settings models.Settings, doc models.Document) error {
	if f.pushEnter != nil {
		f.pushEnter <- struct{}{}
		<-f.pushBlock
	}
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushed = append(f.pushed, doc)
	return nil
}

func (f *fakeRemote) Pull(ctx context.Context, settings models.Settings) (*models.Document, error) {
	if f.pullErr != nil {
		return nil, f.pullErr
	}
	return f.pullDoc, nil
}

// fakePrompter answers both prompts with fixed choices.
type fakePrompter struct {
	overwrite bool
	seed      bool

	overwriteAsked bool
	seedAsked      bool
}

func (f *fakePrompter) ConfirmOverwriteLocal(doc models.Document) (bool, error) {
	f.overwriteAsked = true
	return f.overwrite, nil
}

func (f *fakePrompter) ConfirmSeedRemote() (bool, error) {
	f.seedAsked = true
	return f.seed, nil
}

func setupStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "smartsched.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	settings := store.GetSettings()
	settings.RemoteURL = "https://example.supabase.co"
	settings.RemoteKey = "test-key"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}
	return store
}

func TestUploadPushesWholeDocument(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveCourses([]models.Course{{ID: "c1", Name: "Algorithms", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}}); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}

	rs := &fakeRemote{}
	coord := New(store, rs)
	if err := coord.Upload(context.Background()); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if len(rs.pushed) != 1 {
		t.Fatalf("pushed %d documents, want 1", len(rs.pushed))
	}
	if len(rs.pushed[0].Courses) != 1 {
		t.Errorf("pushed document = %+v, want the full local course set", rs.pushed[0])
	}
	if coord.State() != StateIdle {
		t.Errorf("State() after upload = %v, want Idle", coord.State())
	}
}

func TestUploadNotConfigured(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "smartsched.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	rs := &fakeRemote{}
	coord := New(store, rs)
	if err := coord.Upload(context.Background()); !errors.Is(err, remote.ErrNotConfigured) {
		t.Errorf("Upload without config = %v, want ErrNotConfigured", err)
	}
	if len(rs.pushed) != 0 {
		t.Error("unconfigured upload still contacted the remote")
	}
}

func TestDownloadAppliesRemoteDocument(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveCourses([]models.Course{{ID: "local", Name: "Local", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}}); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}
	if err := store.SaveAnalysis(&models.AnalysisResult{Summary: "local analysis"}); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}

	remoteDoc := models.Document{
		Courses:  []models.Course{{ID: "r1", Name: "Remote", Day: models.DayTuesday, StartTime: "11:00", EndTime: "12:00"}},
		Tasks:    []models.Task{{ID: "t1", Title: "Remote task", Deadline: time.Now().Add(24 * time.Hour)}},
		Analysis: &models.AnalysisResult{Summary: "remote analysis"},
	}
	rs := &fakeRemote{pullDoc: &remoteDoc}
	prompter := &fakePrompter{overwrite: true}

	coord := New(store, rs)
	outcome, err := coord.Download(context.Background(), prompter)
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if outcome != OutcomeApplied {
		t.Errorf("outcome = %v, want OutcomeApplied", outcome)
	}
	if !prompter.overwriteAsked {
		t.Error("remote document applied without asking")
	}

	// Whole-document replace: the prior local course is gone and the
	// cached analysis is the remote one.
	courses := store.GetCourses()
	if len(courses) != 1 || courses[0].Name != "Remote" {
		t.Errorf("courses after apply = %+v", courses)
	}
	if got := store.GetAnalysis(); got == nil || got.Summary != "remote analysis" {
		t.Errorf("analysis after apply = %+v", got)
	}
}

func TestDownloadDeclinedKeepsLocal(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveCourses([]models.Course{{ID: "local", Name: "Local", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}}); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}

	remoteDoc := models.Document{Courses: []models.Course{}, Tasks: []models.Task{}}
	rs := &fakeRemote{pullDoc: &remoteDoc}

	coord := New(store, rs)
	outcome, err := coord.Download(context.Background(), &fakePrompter{overwrite: false})
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if outcome != OutcomeDeclined {
		t.Errorf("outcome = %v, want OutcomeDeclined", outcome)
	}
	if got := store.GetCourses(); len(got) != 1 || got[0].Name != "Local" {
		t.Errorf("declined download mutated local data: %+v", got)
	}
}

func TestDownloadSeedsEmptyRemote(t *testing.T) {
	store := setupStore(t)
	if err := store.SaveTasks([]models.Task{{ID: "t1", Title: "Essay", Deadline: time.Now().Add(24 * time.Hour)}}); err != nil {
		t.Fatalf("SaveTasks returned error: %v", err)
	}

	rs := &fakeRemote{pullDoc: nil}
	prompter := &fakePrompter{seed: true}

	coord := New(store, rs)
	outcome, err := coord.Download(context.Background(), prompter)
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if outcome != OutcomeSeeded {
		t.Errorf("outcome = %v, want OutcomeSeeded", outcome)
	}
	if !prompter.seedAsked {
		t.Error("remote seeded without asking")
	}
	if len(rs.pushed) != 1 || len(rs.pushed[0].Tasks) != 1 {
		t.Errorf("seed push = %+v, want the local document", rs.pushed)
	}
}

func TestDownloadSeedDeclined(t *testing.T) {
	store := setupStore(t)
	rs := &fakeRemote{pullDoc: nil}

	coord := New(store, rs)
	outcome, err := coord.Download(context.Background(), &fakePrompter{seed: false})
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if outcome != OutcomeSeedDeclined {
		t.Errorf("outcome = %v, want OutcomeSeedDeclined", outcome)
	}
	if len(rs.pushed) != 0 {
		t.Error("declined seed still pushed to the remote")
	}
}

func TestDownloadNotConfigured(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "smartsched.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	rs := &fakeRemote{}

	coord := New(store, rs)
	if _, err := coord.Download(context.Background(), &fakePrompter{}); !errors.Is(err, remote.ErrNotConfigured) {
		t.Errorf("Download without config = %v, want ErrNotConfigured", err)
	}
}

// A second sync attempt while one is in flight is rejected, never queued.
func TestConcurrentSyncRejected(t *testing.T) {
	store := setupStore(t)
	rs := &fakeRemote{
		pushEnter: make(chan struct{}),
		pushBlock: make(chan struct{}),
	}
	coord := New(store, rs)

	done := make(chan error, 1)
	go func() {
		done <- coord.Upload(context.Background())
	}()

	// Wait until the first upload is inside Push.
	<-rs.pushEnter
	if coord.State() != StateSyncing {
		t.Errorf("State() during upload = %v, want Syncing", coord.State())
	}

	if err := coord.Upload(context.Background()); !errors.Is(err, ErrSyncBusy) {
		t.Errorf("second Upload = %v, want ErrSyncBusy", err)
	}
	if _, err := coord.Download(context.Background(), &fakePrompter{}); !errors.Is(err, ErrSyncBusy) {
		t.Errorf("Download during upload = %v, want ErrSyncBusy", err)
	}

	close(rs.pushBlock)
	if err := <-done; err != nil {
		t.Fatalf("first Upload returned error: %v", err)
	}
	if coord.State() != StateIdle {
		t.Errorf("State() after upload = %v, want Idle", coord.State())
	}
}

// A remote failure surfaces verbatim and returns the coordinator to Idle.
func TestFailedSyncReturnsToIdle(t *testing.T) {
	store := setupStore(t)
	rejection := &remote.RemoteError{Status: http.StatusUnauthorized, Message: "JWT expired"}
	rs := &fakeRemote{pushErr: rejection, pullErr: rejection}
	coord := New(store, rs)

	if err := coord.Upload(context.Background()); !errors.Is(err, rejection) {
		t.Errorf("Upload error = %v, want the remote rejection verbatim", err)
	}
	if _, err := coord.Download(context.Background(), &fakePrompter{}); !errors.Is(err, rejection) {
		t.Errorf("Download error = %v, want the remote rejection verbatim", err)
	}
	if coord.State() != StateIdle {
		t.Errorf("State() after failed sync = %v, want Idle", coord.State())
	}
}

func TestSettingsResolverFillsKey(t *testing.T) {
	store := setupStore(t)
	settings := store.GetSettings()
	settings.RemoteKey = ""
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	rs := &fakeRemote{}
	coord := New(store, rs, WithSettingsResolver(func(s models.Settings) models.Settings {
		s.RemoteKey = "resolved-key"
		return s
	}))

	if err := coord.Upload(context.Background()); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if len(rs.pushed) != 1 {
		t.Errorf("pushed %d documents, want 1", len(rs.pushed))
	}
	// The resolved key stays in memory; the stored settings keep a blank key.
	if store.GetSettings().RemoteKey != "" {
		t.Error("resolver result was persisted to the store")
	}
}
