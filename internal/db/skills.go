package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateSkill stores a skill row for a user.
func (db *DB) CreateSkill(ctx context.Context, userID uuid.UUID, name, category string, level int, hidden bool) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skills (user_id, name, category, level, hidden)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, name, category, level, hidden,
	)
	if err != nil {
		return fmt.Errorf("failed to create skill %s: %w", name, err)
	}
	return nil
}

// ListSkills retrieves a user's skills, newest first.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, category, level, hidden, created_at
		 FROM skills WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Level, &s.Hidden, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}
