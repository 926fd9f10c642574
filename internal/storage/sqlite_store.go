package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/models"
)

// SQLiteStore persists the four slots as rows of a single key-value
// table. Every slot is still read and written as one JSON value; SQLite
// buys durability and atomic writes, not per-field access.
type SQLiteStore struct {
	path      string
	db        *sql.DB
	state     *state
	recovered []string
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create slots table: %w", err)
	}

	s.state = &state{
		settings: models.Settings{SyncID: uuid.NewString()},
	}

	return s.saveSlot(SlotSettings, s.state.settings)
}

func (s *SQLiteStore) Load() error {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'smartsched init' first")
		}
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	ok, err := s.tableExists("slots")
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !ok {
		return fmt.Errorf("storage not initialized, run 'smartsched init' first")
	}

	s.state = &state{}
	s.recovered = nil

	s.loadSlot(SlotSettings, &s.state.settings)
	s.loadSlot(SlotCourses, &s.state.courses)
	s.loadSlot(SlotTasks, &s.state.tasks)
	s.loadSlot(SlotAnalysis, &s.state.analysis)

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// tableExists checks if a table exists. Case-insensitive to match
// SQLite's behavior.
func (s *SQLiteStore) tableExists(name string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", name)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// loadSlot reads one slot row into dst. A missing row leaves dst at its
// zero value; a corrupt row is logged, recorded, and recovered as empty.
func (s *SQLiteStore) loadSlot(key string, dst interface{}) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		logger.Warn("Failed to read slot, recovered as empty", "slot", key, "error", err)
		s.recovered = append(s.recovered, key)
		return
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		logger.Warn("Corrupt slot recovered as empty", "slot", key, "error", err)
		s.recovered = append(s.recovered, key)
	}
}

func (s *SQLiteStore) saveSlot(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if _, err := s.db.Exec("INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) deleteSlot(key string) error {
	if _, err := s.db.Exec("DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetCourses() []models.Course {
	return append([]models.Course(nil), s.state.courses...)
}

func (s *SQLiteStore) SaveCourses(courses []models.Course) error {
	s.state.courses = append([]models.Course(nil), courses...)
	return s.saveSlot(SlotCourses, s.state.courses)
}

func (s *SQLiteStore) GetTasks() []models.Task {
	return append([]models.Task(nil), s.state.tasks...)
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	s.state.tasks = append([]models.Task(nil), tasks...)
	return s.saveSlot(SlotTasks, s.state.tasks)
}

func (s *SQLiteStore) GetAnalysis() *models.AnalysisResult {
	if s.state.analysis == nil {
		return nil
	}
	cp := *s.state.analysis
	return &cp
}

func (s *SQLiteStore) SaveAnalysis(result *models.AnalysisResult) error {
	if result == nil {
		s.state.analysis = nil
		return s.deleteSlot(SlotAnalysis)
	}
	cp := *result
	s.state.analysis = &cp
	return s.saveSlot(SlotAnalysis, s.state.analysis)
}

func (s *SQLiteStore) GetSettings() models.Settings {
	return s.state.settings
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	s.state.settings = settings
	return s.saveSlot(SlotSettings, settings)
}

func (s *SQLiteStore) Document() models.Document {
	courses := s.state.courses
	if courses == nil {
		courses = []models.Course{}
	}
	tasks := s.state.tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	return models.Document{
		Courses:  courses,
		Tasks:    tasks,
		Analysis: s.GetAnalysis(),
	}
}

func (s *SQLiteStore) ApplyDocument(doc models.Document) error {
	if err := s.SaveCourses(doc.Courses); err != nil {
		return err
	}
	if err := s.SaveTasks(doc.Tasks); err != nil {
		return err
	}
	return s.SaveAnalysis(doc.Analysis)
}

func (s *SQLiteStore) RecoveredSlots() []string {
	return append([]string(nil), s.recovered...)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
