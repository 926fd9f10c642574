package storage

import "github.com/julianstephens/smartsched/internal/models"

// Provider is the durable local store behind the app: four whole-value
// slots (courses, tasks, analysis, settings), each read and written as a
// unit. After a successful Load, reads are infallible; a slot whose
// persisted value cannot be deserialized is logged, reported via
// RecoveredSlots, and falls back to empty rather than failing Load.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Courses slot
	GetCourses() []models.Course
	SaveCourses([]models.Course) error

	// Tasks slot
	GetTasks() []models.Task
	SaveTasks([]models.Task) error

	// Analysis slot; nil clears
	GetAnalysis() *models.AnalysisResult
	SaveAnalysis(*models.AnalysisResult) error

	// Settings slot
	GetSettings() models.Settings
	SaveSettings(models.Settings) error

	// Document assembles the sync unit from the three data slots.
	Document() models.Document
	// ApplyDocument replaces all three data slots with the given document.
	ApplyDocument(models.Document) error

	// RecoveredSlots names the slots whose persisted value was corrupt at
	// Load time and was replaced with the empty value.
	RecoveredSlots() []string

	// Utils
	GetConfigPath() string
}

// Slot keys, shared by both backends.
const (
	SlotCourses  = "courses"
	SlotTasks    = "tasks"
	SlotAnalysis = "analysis"
	SlotSettings = "settings"
)
