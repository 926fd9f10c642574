package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/models"
)

// fileDoc is the on-disk shape of the JSON backend: one file, one raw
// value per slot. Raw messages keep one corrupt slot from poisoning the
// other three at load time.
type fileDoc struct {
	Version  int             `json:"version"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Courses  json.RawMessage `json:"courses,omitempty"`
	Tasks    json.RawMessage `json:"tasks,omitempty"`
	Analysis json.RawMessage `json:"analysis,omitempty"`
}

type state struct {
	settings models.Settings
	courses  []models.Course
	tasks    []models.Task
	analysis *models.AnalysisResult
}

type JSONStore struct {
	path      string
	state     *state
	recovered []string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = &state{
		settings: models.Settings{SyncID: uuid.NewString()},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'smartsched init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &state{}
	s.recovered = nil

	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		// Whole file is unreadable. Recover every slot as empty rather
		// than failing startup.
		logger.Warn("Storage file is corrupt, starting from empty slots", "path", s.path, "error", err)
		s.recovered = []string{SlotCourses, SlotTasks, SlotAnalysis, SlotSettings}
		return nil
	}

	s.decodeSlot(SlotSettings, doc.Settings, &s.state.settings)
	s.decodeSlot(SlotCourses, doc.Courses, &s.state.courses)
	s.decodeSlot(SlotTasks, doc.Tasks, &s.state.tasks)
	s.decodeSlot(SlotAnalysis, doc.Analysis, &s.state.analysis)

	return nil
}

// decodeSlot unmarshals one slot, falling back to the zero value on
// corrupt data. The fallback is logged so tests and diagnostics can
// distinguish "corrupt, recovered" from "slot absent".
func (s *JSONStore) decodeSlot(name string, raw json.RawMessage, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("Corrupt slot recovered as empty", "slot", name, "error", err)
		s.recovered = append(s.recovered, name)
	}
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	doc := fileDoc{Version: 1}

	var err error
	if doc.Settings, err = json.Marshal(s.state.settings); err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if doc.Courses, err = json.Marshal(s.courseSlice()); err != nil {
		return fmt.Errorf("failed to serialize courses: %w", err)
	}
	if doc.Tasks, err = json.Marshal(s.taskSlice()); err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	if s.state.analysis != nil {
		if doc.Analysis, err = json.Marshal(s.state.analysis); err != nil {
			return fmt.Errorf("failed to serialize analysis: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) courseSlice() []models.Course {
	if s.state.courses == nil {
		return []models.Course{}
	}
	return s.state.courses
}

func (s *JSONStore) taskSlice() []models.Task {
	if s.state.tasks == nil {
		return []models.Task{}
	}
	return s.state.tasks
}

func (s *JSONStore) GetCourses() []models.Course {
	return append([]models.Course(nil), s.state.courses...)
}

func (s *JSONStore) SaveCourses(courses []models.Course) error {
	s.state.courses = append([]models.Course(nil), courses...)
	return s.save()
}

func (s *JSONStore) GetTasks() []models.Task {
	return append([]models.Task(nil), s.state.tasks...)
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	s.state.tasks = append([]models.Task(nil), tasks...)
	return s.save()
}

func (s *JSONStore) GetAnalysis() *models.AnalysisResult {
	if s.state.analysis == nil {
		return nil
	}
	cp := *s.state.analysis
	return &cp
}

func (s *JSONStore) SaveAnalysis(result *models.AnalysisResult) error {
	if result == nil {
		s.state.analysis = nil
	} else {
		cp := *result
		s.state.analysis = &cp
	}
	return s.save()
}

func (s *JSONStore) GetSettings() models.Settings {
	return s.state.settings
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.state.settings = settings
	return s.save()
}

func (s *JSONStore) Document() models.Document {
	return models.Document{
		Courses:  s.courseSlice(),
		Tasks:    s.taskSlice(),
		Analysis: s.GetAnalysis(),
	}
}

func (s *JSONStore) ApplyDocument(doc models.Document) error {
	s.state.courses = append([]models.Course(nil), doc.Courses...)
	s.state.tasks = append([]models.Task(nil), doc.Tasks...)
	if doc.Analysis == nil {
		s.state.analysis = nil
	} else {
		cp := *doc.Analysis
		s.state.analysis = &cp
	}
	return s.save()
}

func (s *JSONStore) RecoveredSlots() []string {
	return append([]string(nil), s.recovered...)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
