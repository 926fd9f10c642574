package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartsched/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "smartsched.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	store := setupJSONStore(t)

	if store.GetSettings().SyncID == "" {
		t.Error("Init() did not generate a default sync ID")
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() = nil, want already-initialized error")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file = nil, want error")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartsched.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	courses := []models.Course{{
		ID: "c1", Name: "Algorithms", Day: models.DayMonday,
		StartTime: "09:00", EndTime: "10:30", Color: "blue",
	}}
	tasks := []models.Task{{
		ID: "t1", Title: "Essay",
		Deadline:  time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
		IsUrgent:  true,
		IsImportant: true,
	}}
	result := &models.AnalysisResult{
		Summary:     "busy week",
		HeavyDays:   []string{"Monday is packed"},
		Suggestions: []string{"start early"},
	}

	if err := store.SaveCourses(courses); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}
	if err := store.SaveTasks(tasks); err != nil {
		t.Fatalf("SaveTasks returned error: %v", err)
	}
	if err := store.SaveAnalysis(result); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}

	// Fresh store over the same file sees the same data.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	gotCourses := reopened.GetCourses()
	if len(gotCourses) != 1 || gotCourses[0].Name != "Algorithms" {
		t.Errorf("GetCourses() after reload = %+v", gotCourses)
	}
	gotTasks := reopened.GetTasks()
	if len(gotTasks) != 1 || gotTasks[0].Title != "Essay" {
		t.Errorf("GetTasks() after reload = %+v", gotTasks)
	}
	gotAnalysis := reopened.GetAnalysis()
	if gotAnalysis == nil || gotAnalysis.Summary != "busy week" {
		t.Errorf("GetAnalysis() after reload = %+v", gotAnalysis)
	}
	if len(reopened.RecoveredSlots()) != 0 {
		t.Errorf("RecoveredSlots() = %v, want none", reopened.RecoveredSlots())
	}
}

func TestJSONStoreClearAnalysis(t *testing.T) {
	store := setupJSONStore(t)

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

// A corrupt file never fails startup; every slot is recovered as empty.
func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartsched.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() on corrupt file returned error: %v", err)
	}
	if got := store.GetCourses(); len(got) != 0 {
		t.Errorf("GetCourses() after corrupt load = %+v, want empty", got)
	}
	if got := len(store.RecoveredSlots()); got != 4 {
		t.Errorf("len(RecoveredSlots()) = %d, want 4", got)
	}
}

// One corrupt slot falls back to empty without touching the others, and
// the recovery is distinguishable from "slot absent".
func TestJSONStoreCorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartsched.json")
	doc := `{"version":1,"courses":"not an array","tasks":[{"id":"t1","title":"Essay","deadline":"2026-09-15T17:00:00Z"}]}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if got := store.GetCourses(); len(got) != 0 {
		t.Errorf("GetCourses() = %+v, want empty after recovery", got)
	}
	if got := store.GetTasks(); len(got) != 1 {
		t.Errorf("GetTasks() = %+v, want the intact slot preserved", got)
	}

	recovered := store.RecoveredSlots()
	if len(recovered) != 1 || recovered[0] != SlotCourses {
		t.Errorf("RecoveredSlots() = %v, want [courses]", recovered)
	}
}

func TestJSONStoreApplyDocument(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.SaveCourses([]models.Course{{ID: "local", Name: "Local course", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:00"}}); err != nil {
		t.Fatalf("SaveCourses returned error: %v", err)
	}
	if err := store.SaveAnalysis(&models.AnalysisResult{Summary: "stale"}); err != nil {
		t.Fatalf("SaveAnalysis returned error: %v", err)
	}

	remote := models.Document{
		Courses: []models.Course{
			{ID: "r1", Name: "Remote 1", Day: models.DayTuesday, StartTime: "09:00", EndTime: "10:00"},
			{ID: "r2", Name: "Remote 2", Day: models.DayWednesday, StartTime: "11:00", EndTime: "12:00"},
		},
		Tasks:    []models.Task{},
		Analysis: nil,
	}
	if err := store.ApplyDocument(remote); err != nil {
		t.Fatalf("ApplyDocument returned error: %v", err)
	}

	// Whole-document replace: no merge with the prior local course, and
	// the absent remote analysis clears the local one.
	if got := store.GetCourses(); len(got) != 2 {
		t.Errorf("GetCourses() after apply = %+v, want the 2 remote courses", got)
	}
	if store.GetAnalysis() != nil {
		t.Error("GetAnalysis() after applying analysis-free document != nil")
	}
}

func TestJSONStoreDocument(t *testing.T) {
	store := setupJSONStore(t)

	doc := store.Document()
	if doc.Courses == nil || doc.Tasks == nil {
		t.Error("Document() returned nil collections; want empty slices for a clean wire shape")
	}
	if doc.Analysis != nil {
		t.Errorf("Document().Analysis = %+v, want nil", doc.Analysis)
	}
}
