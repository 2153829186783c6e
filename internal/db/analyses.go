package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Proged2021/SkillMiner/internal/types"
)

// analysisBlobs serializes a report into its three stored JSON documents.
func analysisBlobs(report *types.Report) (hiddenSkills, matchedJobs, roadmap []byte, err error) {
	if hiddenSkills, err = json.Marshal(report.HiddenSkills); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal hidden skills: %w", err)
	}
	if matchedJobs, err = json.Marshal(report.MatchedJobs); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal matched jobs: %w", err)
	}
	if roadmap, err = json.Marshal(report.Roadmap); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}
	return hiddenSkills, matchedJobs, roadmap, nil
}

// SaveAnalysis stores a report for a user as three JSON blobs and returns
// the analysis row ID.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, report *types.Report) (uuid.UUID, error) {
	hiddenSkills, matchedJobs, roadmap, err := analysisBlobs(report)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, hidden_skills, matched_jobs, roadmap)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, hiddenSkills, matchedJobs, roadmap,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// LatestAnalysis retrieves a user's most recent report. Returns (nil, nil)
// when the user has no stored analyses.
func (db *DB) LatestAnalysis(ctx context.Context, userID uuid.UUID) (*types.Report, error) {
	var hiddenSkills, matchedJobs, roadmap []byte
	err := db.pool.QueryRow(ctx,
		`SELECT hidden_skills, matched_jobs, roadmap
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&hiddenSkills, &matchedJobs, &roadmap)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal(hiddenSkills, &report.HiddenSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hidden skills: %w", err)
	}
	if err := json.Unmarshal(matchedJobs, &report.MatchedJobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matched jobs: %w", err)
	}
	if err := json.Unmarshal(roadmap, &report.Roadmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
	}
	return &report, nil
}
