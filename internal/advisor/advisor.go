// Package advisor is the external AI collaborator: analyze a course
// schedule, get back a summary with findings and suggestions. Calls are
// asynchronous from the user's perspective and may fail; a failure never
// leaves a partial result anywhere.
package advisor

import (
	"context"
	"errors"

	"github.com/julianstephens/smartsched/internal/models"
)

// ErrNoAPIKey is returned when no advisory-service credential is set.
var ErrNoAPIKey = errors.New("no Anthropic API key configured (set SMARTSCHED_ANTHROPIC_API_KEY or ANTHROPIC_API_KEY)")

// Advisor produces a schedule analysis for a course collection.
type Advisor interface {
	Analyze(ctx context.Context, courses []models.Course) (*models.AnalysisResult, error)
}
