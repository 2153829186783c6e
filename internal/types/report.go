// Package types provides type definitions for structured data used throughout the SkillMiner system.
package types

// Demand levels for a hidden skill finding.
const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"
)

// Difficulty levels for a matched job.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Hidden skill categories.
const (
	CategoryTech          = "Tech"
	CategoryCreative      = "Creative"
	CategoryBusiness      = "Business"
	CategoryCommunication = "Communication"
)

// UserAttributes is the immutable input to a single analysis call.
type UserAttributes struct {
	Skills     []string `json:"skills"`
	Hobbies    []string `json:"hobbies"`
	Occupation string   `json:"occupation"`
}

// SNSProfile describes interests, topics and activity level derived from a
// social-media handle. One record per requested platform, never mutated.
type SNSProfile struct {
	Platform      string   `json:"platform"`
	Username      string   `json:"username"`
	Bio           string   `json:"bio"`
	Followers     int      `json:"followers"`
	Interests     []string `json:"interests"`
	TopTopics     []string `json:"topTopics"`
	ActivityLevel string   `json:"activityLevel"`
}

// HiddenSkill is a monetizable skill the analysis discovered.
// Confidence is a fraction in [0,1]; the presentation layer multiplies by 100.
type HiddenSkill struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Confidence      float64 `json:"confidence"`
	Description     string  `json:"description"`
	RevenueEstimate string  `json:"revenueEstimate"`
	DemandLevel     string  `json:"demandLevel"`
}

// MatchedJob is a gig posting matched against the discovered skills.
// MatchRate is an integer percentage in [0,100], a distinct scale from
// HiddenSkill.Confidence.
type MatchedJob struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	MatchRate      int      `json:"matchRate"`
	Salary         string   `json:"salary"`
	Difficulty     string   `json:"difficulty"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	URL            string   `json:"url"`
}

// RoadmapStep is one week of the development roadmap. Steps form a
// contiguous sequence week = 1..N with no gaps or repeats.
type RoadmapStep struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources,omitempty"`
	Milestone   string   `json:"milestone"`
}

// Report is the analysis result aggregate. It is created once per analysis
// call and treated as an immutable value after creation; the caller owns it.
type Report struct {
	HiddenSkills []HiddenSkill `json:"hiddenSkills"`
	MatchedJobs  []MatchedJob  `json:"matchedJobs"`
	Roadmap      []RoadmapStep `json:"roadmap"`
}
