package analysis

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Proged2021/SkillMiner/internal/types"
)

//go:embed report_schema.json
var reportSchema string

// ValidateReport checks a decoded Report against the schema contract: field
// types and value ranges via JSON Schema, then count bounds and roadmap
// contiguity against the policy. The model response is an untrusted payload;
// nothing is persisted or returned to callers before it passes here.
func ValidateReport(report *types.Report, policy Policy) error {
	if report == nil {
		return &ValidationError{Field: "report", Message: "report is nil"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(reportSchema),
		gojsonschema.NewGoLoader(report),
	)
	if err != nil {
		return &ParseError{Message: "schema validation failed to run", Cause: err}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return &ValidationError{
			Field:   first.Field(),
			Message: first.Description(),
		}
	}

	if n := len(report.HiddenSkills); n < policy.FloorHiddenSkills || n > policy.MaxHiddenSkills {
		return &ValidationError{
			Field:   "hiddenSkills",
			Message: fmt.Sprintf("count %d outside [%d,%d]", n, policy.FloorHiddenSkills, policy.MaxHiddenSkills),
		}
	}

	if n := len(report.MatchedJobs); n < policy.FloorMatchedJobs || n > policy.MaxMatchedJobs {
		return &ValidationError{
			Field:   "matchedJobs",
			Message: fmt.Sprintf("count %d outside [%d,%d]", n, policy.FloorMatchedJobs, policy.MaxMatchedJobs),
		}
	}

	if n := len(report.Roadmap); n != policy.RoadmapWeeks {
		return &ValidationError{
			Field:   "roadmap",
			Message: fmt.Sprintf("expected %d steps, got %d", policy.RoadmapWeeks, n),
		}
	}
	for i, step := range report.Roadmap {
		if step.Week != i+1 {
			return &ValidationError{
				Field:   fmt.Sprintf("roadmap[%d].week", i),
				Message: fmt.Sprintf("expected week %d, got %d", i+1, step.Week),
			}
		}
	}

	return nil
}
