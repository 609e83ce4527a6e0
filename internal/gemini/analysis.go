package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// Analysis is the structured repository report.
type Analysis struct {
	Modules                  map[string]string `json:"modules"`
	Architecture             string            `json:"architecture"`
	TechnicalDebt            string            `json:"technical_debt"`
	TechnicalDebtSuggestions string            `json:"technical_debt_suggestions"`
	OnboardingGuide          string            `json:"onboarding_guide"`
}

// Indicator is one AI-authorship signal found in the code.
type Indicator struct {
	Indicator   string   `json:"indicator"`
	Severity    string   `json:"severity"`
	Examples    []string `json:"examples"`
	FilePattern string   `json:"file_pattern"`
}

// DetectionDetails breaks the estimate down by signal category.
type DetectionDetails struct {
	CommentStyleScore         float64 `json:"comment_style_score"`
	NamingConventionScore     float64 `json:"naming_convention_score"`
	CodeStructureScore        float64 `json:"code_structure_score"`
	DocumentationPatternScore float64 `json:"documentation_pattern_score"`
}

// Detection is the AI-authorship estimate for a repository.
type Detection struct {
	AIPercentage    float64          `json:"ai_percentage"`
	HumanPercentage float64          `json:"human_percentage"`
	Confidence      string           `json:"confidence"`
	IndicatorsFound []Indicator      `json:"indicators_found"`
	Summary         string           `json:"summary"`
	Details         DetectionDetails `json:"details"`
	Recommendation  string           `json:"recommendation"`
}

// Analyze runs the structured analysis over the concatenated repository
// text. A response that is not valid JSON is not an error: the raw text is
// kept as the architecture narrative and the structured fields stay empty.
func (c *Client) Analyze(ctx context.Context, codeText, repoName string) (*Analysis, error) {
	raw, err := c.generate(ctx, BuildAnalysisPrompt(codeText, repoName))
	if err != nil {
		return nil, err
	}

	var a Analysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &a); err != nil {
		slog.Warn("analysis response was not valid JSON, keeping raw text", "error", err)
		return &Analysis{Architecture: raw, Modules: map[string]string{}}, nil
	}
	if a.Modules == nil {
		a.Modules = map[string]string{}
	}
	return &a, nil
}

// Chat answers a follow-up question about an analyzed repository.
func (c *Client) Chat(ctx context.Context, repoContent, repoURL, question string, history []ChatMessage) (string, error) {
	return c.generate(ctx, BuildChatPrompt(repoContent, repoURL, question, history))
}

// DetectAIAuthorship estimates how much of the code was machine-written.
// Detection is advisory and never fails the pipeline: any error degrades to
// a zeroed low-confidence result.
func (c *Client) DetectAIAuthorship(ctx context.Context, repoContent string) *Detection {
	raw, err := c.generate(ctx, BuildDetectionPrompt(repoContent))
	if err != nil {
		slog.Warn("AI authorship detection failed", "error", err)
		return unavailableDetection("Detection unavailable")
	}

	var d Detection
	if err := json.Unmarshal([]byte(stripFences(raw)), &d); err != nil {
		slog.Warn("AI authorship response was not valid JSON", "error", err)
		return unavailableDetection("Detection unavailable")
	}

	d.HumanPercentage = 100 - d.AIPercentage
	if d.IndicatorsFound == nil {
		d.IndicatorsFound = []Indicator{}
	}
	return &d
}

func unavailableDetection(summary string) *Detection {
	return &Detection{
		HumanPercentage: 100,
		Confidence:      "low",
		IndicatorsFound: []Indicator{},
		Summary:         summary,
		Recommendation:  "Analysis could not be completed.",
	}
}

// stripFences removes a wrapping markdown code fence, which models add
// despite instructions to return bare JSON.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	for _, prefix := range []string{"```json", "```markdown", "```"} {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimPrefix(text, prefix)
			text = strings.TrimSuffix(strings.TrimSpace(text), "```")
			break
		}
	}
	return strings.TrimSpace(text)
}
