package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/models"
)

// Claude implements Advisor against the Anthropic Messages API.
type Claude struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaude builds an advisor from the environment credential.
// SMARTSCHED_ANTHROPIC_API_KEY takes precedence over ANTHROPIC_API_KEY.
func NewClaude() (*Claude, error) {
	key := os.Getenv("SMARTSCHED_ANTHROPIC_API_KEY")
	if key == "" {
		key = os.Getenv("ANTHROPIC_API_KEY")
	}
	if key == "" {
		return nil, ErrNoAPIKey
	}
	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(key)),
		model:  anthropic.ModelClaudeSonnet4_5,
	}, nil
}

// response is the JSON shape requested from the model. The advice field
// maps onto AnalysisResult.Suggestions; gap findings are folded into the
// heavy-day findings, order preserved.
type response struct {
	Summary   string   `json:"summary"`
	HeavyDays []string `json:"heavyDays"`
	Gaps      []string `json:"gaps"`
	Advice    []string `json:"advice"`
}

func (c *Claude) Analyze(ctx context.Context, courses []models.Course) (*models.AnalysisResult, error) {
	prompt := buildPrompt(courses)

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("schedule analysis failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	result, err := parseResponse(text.String())
	if err != nil {
		logger.Warn("Advisor returned unusable output", "error", err)
		return nil, err
	}
	return result, nil
}

func buildPrompt(courses []models.Course) string {
	var lines []string
	for _, c := range courses {
		location := c.Location
		if location == "" {
			location = "no location"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s %s to %s",
			c.Name, location, c.Day, c.StartTime, c.EndTime))
	}

	return fmt.Sprintf(`You are an academic advisor and time-management expert. Analyze this weekly course schedule:

%s

Respond with a single JSON object, no surrounding prose, with these fields:
1. "summary" (string): a short overall assessment of the schedule's load and structure.
2. "heavyDays" (array of strings): which days carry the heaviest load and why.
3. "gaps" (array of strings): awkward gaps between sessions worth planning around.
4. "advice" (array of strings): 3-5 concrete study or time-management suggestions.`,
		strings.Join(lines, "\n"))
}

// parseResponse decodes the model's JSON reply, tolerating a markdown
// code fence around it.
func parseResponse(text string) (*models.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var resp response
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("advisor response is not valid JSON: %w", err)
	}
	if resp.Summary == "" {
		return nil, fmt.Errorf("advisor response is missing a summary")
	}

	findings := append([]string(nil), resp.HeavyDays...)
	findings = append(findings, resp.Gaps...)

	return &models.AnalysisResult{
		Summary:     resp.Summary,
		HeavyDays:   findings,
		Suggestions: resp.Advice,
	}, nil
}
