package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Proged2021/SkillMiner/internal/llm"
	"github.com/Proged2021/SkillMiner/internal/prompts"
	"github.com/Proged2021/SkillMiner/internal/types"
)

// Outcome reports how a Report was produced. It is the observable side
// channel for degraded operation: callers always receive a well-formed
// Report, operators watch the outcome to detect fallback-rate anomalies.
type Outcome string

const (
	// OutcomeDelegated means the external service returned a valid report.
	OutcomeDelegated Outcome = "delegated"
	// OutcomeFallback means delegation was attempted but failed, and the
	// report was synthesized locally.
	OutcomeFallback Outcome = "fallback"
	// OutcomeSkipped means no generation credential was configured and
	// delegation was never attempted.
	OutcomeSkipped Outcome = "skipped"
)

// Generator produces analysis reports. It holds no per-request state; each
// Generate call is independent and side-effect-free.
type Generator struct {
	client llm.Client
	policy Policy
	logger *log.Logger
}

// NewGenerator creates a Generator. A nil client means no generation
// credential is configured; every call then uses local synthesis.
func NewGenerator(client llm.Client, policy Policy) *Generator {
	return &Generator{
		client: client,
		policy: policy,
		logger: log.Default(),
	}
}

// SetLogger overrides the diagnostic logger. Useful for tests.
func (g *Generator) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Generate produces a Report for the given attributes and profiles. It never
// fails outward: any delegation fault is logged and masked by deterministic
// local synthesis.
func (g *Generator) Generate(ctx context.Context, attrs types.UserAttributes, profiles []types.SNSProfile) (*types.Report, Outcome) {
	if g.client == nil {
		return FallbackReport(attrs), OutcomeSkipped
	}

	report, err := g.delegate(ctx, attrs, profiles)
	if err != nil {
		g.logger.Printf("analysis: delegation failed, using local synthesis: %v", err)
		return FallbackReport(attrs), OutcomeFallback
	}

	return report, OutcomeDelegated
}

// delegate calls the external service and validates its output. Any transport,
// parse or schema fault comes back as an error for Generate to mask.
func (g *Generator) delegate(ctx context.Context, attrs types.UserAttributes, profiles []types.SNSProfile) (*types.Report, error) {
	raw, err := g.client.GenerateJSON(ctx, g.systemPrompt(), g.userPrompt(attrs, profiles))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &report); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	if err := ValidateReport(&report, g.policy); err != nil {
		return nil, err
	}

	return &report, nil
}

// systemPrompt renders the fixed system instruction carrying the output
// schema and production rules.
func (g *Generator) systemPrompt() string {
	template := prompts.MustGet("analysis.json", "analyze-system")
	return prompts.Format(template, map[string]string{
		"MinHiddenSkills": strconv.Itoa(g.policy.MinHiddenSkills),
		"MaxHiddenSkills": strconv.Itoa(g.policy.MaxHiddenSkills),
		"MinMatchedJobs":  strconv.Itoa(g.policy.MinMatchedJobs),
		"MaxMatchedJobs":  strconv.Itoa(g.policy.MaxMatchedJobs),
		"RoadmapWeeks":    strconv.Itoa(g.policy.RoadmapWeeks),
		"Companies":       strings.Join(g.policy.Companies, "、"),
		"Language":        g.policy.languageName(),
	})
}

// userPrompt interpolates the user attributes and serialized profiles into
// the user instruction.
func (g *Generator) userPrompt(attrs types.UserAttributes, profiles []types.SNSProfile) string {
	snsData := ""
	if len(profiles) > 0 {
		if b, err := json.Marshal(profiles); err == nil {
			snsData = "SNSデータ: " + string(b)
		}
	}

	template := prompts.MustGet("analysis.json", "analyze-user")
	return prompts.Format(template, map[string]string{
		"Occupation": attrs.Occupation,
		"Skills":     strings.Join(attrs.Skills, ", "),
		"Hobbies":    strings.Join(attrs.Hobbies, ", "),
		"SNSData":    snsData,
	})
}
