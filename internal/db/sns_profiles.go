package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Proged2021/SkillMiner/internal/types"
)

// SaveSNSProfile stores a fetched profile record for a user as JSON.
func (db *DB) SaveSNSProfile(ctx context.Context, userID uuid.UUID, profile types.SNSProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal sns profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO sns_profiles (user_id, platform, profile_data)
		 VALUES ($1, $2, $3)`,
		userID, profile.Platform, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save sns profile for %s: %w", profile.Platform, err)
	}
	return nil
}
