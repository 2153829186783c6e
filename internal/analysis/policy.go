// Package analysis implements report generation for hidden-skill discovery:
// delegation to a text-generation service, validation of its output, and a
// deterministic local fallback that can never fail.
package analysis

// Policy holds the tunable parameters of the analysis contract. The reference
// system's revisions disagree on the count bounds (hidden skills 3-5 vs 4-6,
// matched jobs 4-6 vs 8-12), so the prompt targets the richer contract while
// validation still accepts the legacy minima.
type Policy struct {
	// Bounds the prompt instructs the model to hit.
	MinHiddenSkills int
	MaxHiddenSkills int
	MinMatchedJobs  int
	MaxMatchedJobs  int

	// Validation floors. Responses from the older prompt contract are
	// still structurally valid, so these may sit below the prompt minima.
	FloorHiddenSkills int
	FloorMatchedJobs  int

	// RoadmapWeeks is the exact roadmap length; weeks must run 1..N.
	RoadmapWeeks int

	// Locale of all free text in the response, e.g. "ja".
	Locale string

	// Companies is the allow-list of gig-marketplace names the model may
	// attribute matched jobs to.
	Companies []string
}

// DefaultPolicy returns the canonical analysis policy.
func DefaultPolicy() Policy {
	return Policy{
		MinHiddenSkills:   4,
		MaxHiddenSkills:   6,
		MinMatchedJobs:    8,
		MaxMatchedJobs:    12,
		FloorHiddenSkills: 3,
		FloorMatchedJobs:  4,
		RoadmapWeeks:      8,
		Locale:            "ja",
		Companies: []string{
			"クラウドワークス",
			"ランサーズ",
			"ココナラ",
			"Udemy",
			"note",
			"ストアカ",
		},
	}
}

// languageName maps a locale code to the language name used in prompt text.
func (p Policy) languageName() string {
	switch p.Locale {
	case "ja", "":
		return "日本語"
	case "en":
		return "英語"
	default:
		return p.Locale
	}
}
