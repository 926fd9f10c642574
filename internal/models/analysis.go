package models

// AnalysisResult is the cached output of the AI schedule advisor. It is
// only ever set whole by a successful analysis call and cleared whole when
// the course collection changes; it is never partially updated.
type AnalysisResult struct {
	Summary     string   `json:"summary"`
	HeavyDays   []string `json:"heavyDays"`
	Suggestions []string `json:"suggestions"`
}
