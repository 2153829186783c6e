package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "ja", cfg.Locale)
	assert.Zero(t, cfg.HiddenSkillsMin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANALYSIS_LOCALE", "en")
	t.Setenv("ANALYSIS_HIDDEN_SKILLS_MIN", "3")
	t.Setenv("ANALYSIS_HIDDEN_SKILLS_MAX", "5")
	t.Setenv("ANALYSIS_COMPANIES", "CrowdWorks, Lancers ,Coconala")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 3, cfg.HiddenSkillsMin)
	assert.Equal(t, 5, cfg.HiddenSkillsMax)
	assert.Equal(t, []string{"CrowdWorks", "Lancers", "Coconala"}, cfg.Companies)
}

func TestLoad_InvalidBounds(t *testing.T) {
	t.Setenv("ANALYSIS_MATCHED_JOBS_MIN", "10")
	t.Setenv("ANALYSIS_MATCHED_JOBS_MAX", "6")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewPasswordConfig(t *testing.T) {
	t.Run("default cost", func(t *testing.T) {
		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})

	t.Run("invalid cost", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "abc")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
