package models

// Document is the indivisible unit of cloud sync: the full local dataset,
// transferred and replaced whole. The remote store treats it as an opaque
// JSON value keyed by the sync identity.
type Document struct {
	Courses  []Course        `json:"courses"`
	Tasks    []Task          `json:"tasks"`
	Analysis *AnalysisResult `json:"analysis"`
}
