// Package config provides environment configuration for the SkillMiner service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration loaded from environment variables.
// GeminiAPIKey is deliberately optional: its absence routes every analysis
// to local synthesis instead of failing startup.
type Config struct {
	Port        int
	DatabaseURL string

	// Generation credential and model. Empty key = local synthesis only.
	GeminiAPIKey string
	Model        string
	Locale       string

	// Platform credentials for real profile fetches. Empty = mock path.
	TwitterAPIKey    string
	LinkedInClientID string

	// Analysis policy overrides. Zero values fall back to the canonical
	// policy; the reference system's revisions disagree on these counts,
	// so they stay tunable.
	HiddenSkillsMin int
	HiddenSkillsMax int
	MatchedJobsMin  int
	MatchedJobsMax  int
	Companies       []string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnvInt("PORT", 8080),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:            os.Getenv("ANALYSIS_MODEL"),
		Locale:           getEnvString("ANALYSIS_LOCALE", "ja"),
		TwitterAPIKey:    os.Getenv("TWITTER_API_KEY"),
		LinkedInClientID: os.Getenv("LINKEDIN_CLIENT_ID"),
		HiddenSkillsMin:  getEnvInt("ANALYSIS_HIDDEN_SKILLS_MIN", 0),
		HiddenSkillsMax:  getEnvInt("ANALYSIS_HIDDEN_SKILLS_MAX", 0),
		MatchedJobsMin:   getEnvInt("ANALYSIS_MATCHED_JOBS_MIN", 0),
		MatchedJobsMax:   getEnvInt("ANALYSIS_MATCHED_JOBS_MAX", 0),
		Companies:        parseList(os.Getenv("ANALYSIS_COMPANIES")),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.HiddenSkillsMin < 0 || c.HiddenSkillsMax < 0 || c.MatchedJobsMin < 0 || c.MatchedJobsMax < 0 {
		return fmt.Errorf("analysis count bounds must be non-negative")
	}
	if c.HiddenSkillsMax > 0 && c.HiddenSkillsMin > c.HiddenSkillsMax {
		return fmt.Errorf("ANALYSIS_HIDDEN_SKILLS_MIN %d exceeds MAX %d", c.HiddenSkillsMin, c.HiddenSkillsMax)
	}
	if c.MatchedJobsMax > 0 && c.MatchedJobsMin > c.MatchedJobsMax {
		return fmt.Errorf("ANALYSIS_MATCHED_JOBS_MIN %d exceeds MAX %d", c.MatchedJobsMin, c.MatchedJobsMax)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseList parses a comma-separated environment value into a slice.
func parseList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
