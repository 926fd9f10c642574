package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartsched/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "smartsched.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreInit(t *testing.T) {
	store := setupSQLiteStore(t)

	if store.GetSettings().SyncID == "" {
		t.Error("Init() did not generate a default sync ID")
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() = nil, want already-initialized error")
	}
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing database = nil, want error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartsched.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	courses := []models.Course{{
		ID: "c1", Name: "Algorithms", Day: models.DayMonday,
		StartTime: "09:00", EndTime: "10:30", Color: "blue",
	}}
	tasks := []models.Task{{
		ID: "t1", Title: "Essay",
		Deadline: time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
	}}

	if err := store.SaveCourses(courses); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}
	if err := store.SaveTasks(tasks); err != nil {
		t.Fatalf("SaveTasks returned error: %v", err)
	}
	if err := store.SaveAnalysis(&models.AnalysisResult{Summary: "fine"}); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}
	syncID := store.GetSettings().SyncID
	if err := store.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	defer reopened.Close()

	if got := reopened.GetCourses(); len(got) != 1 || got[0].Name != "Algorithms" {
		t.Errorf("GetCourses() after reload = %+v", got)
	}
	if got := reopened.GetTasks(); len(got) != 1 || got[0].Title != "Essay" {
		t.Errorf("GetTasks() after reload = %+v", got)
	}
	if got := reopened.GetAnalysis(); got == nil || got.Summary != "fine" {
		t.Errorf("GetAnalysis() after reload = %+v", got)
	}
	if got := reopened.GetSettings().SyncID; got != syncID {
		t.Errorf("SyncID after reload = %s, want %s", got, syncID)
	}
	if len(reopened.RecoveredSlots()) != 0 {
		t.Errorf("RecoveredSlots() = %v, want none", reopened.RecoveredSlots())
	}
}

func TestSQLiteStoreClearAnalysis(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveAnalysis(&models.AnalysisResult{Summary: "ok"}); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}
	if err := store.SaveAnalysis(nil); err != nil {
		t.Fatalf("SaveAnalysis(nil) returned error: %v", err)
	}
	if store.GetAnalysis() != nil {
		t.Error("GetAnalysis() after clear != nil")
	}
}

func TestSQLiteStoreCorruptSlot(t *testing.T) {
	store := setupSQLiteStore(t)

	if _, err := store.db.Exec("INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", SlotCourses, "not json"); err != nil {
		t.Fatalf("failed to plant corrupt slot: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if got := store.GetCourses(); len(got) != 0 {
		t.Errorf("GetCourses() = %+v, want empty after recovery", got)
	}
	recovered := store.RecoveredSlots()
	if len(recovered) != 1 || recovered[0] != SlotCourses {
		t.Errorf("RecoveredSlots() = %v, want [courses]", recovered)
	}
}

func TestSQLiteStoreApplyDocument(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveAnalysis(&models.AnalysisResult{Summary: "stale"}); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}

	doc := models.Document{
		Courses: []models.Course{{ID: "r1", Name: "Remote", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}},
		Tasks:   []models.Task{},
	}
	if err := store.ApplyDocument(doc); err != nil {
		t.Fatalf("ApplyDocument returned error: %v", err)
	}

	if got := store.GetCourses(); len(got) != 1 || got[0].Name != "Remote" {
		t.Errorf("GetCourses() after apply = %+v", got)
	}
	if store.GetAnalysis() != nil {
		t.Error("GetAnalysis() after applying analysis-free document != nil")
	}
}
