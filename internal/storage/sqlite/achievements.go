package sqlite

import (
	"fmt"
	"time"

	"github.com/emberhq/ember/internal/models"
)

// AddAchievement records an unlock. Unlocking is idempotent: a duplicate type
// is silently ignored and reported as not-inserted.
func (s *Store) AddAchievement(a models.Achievement) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO achievements (type, unlocked_at)
		VALUES (?, ?)
		ON CONFLICT(type) DO NOTHING`,
		string(a.Type), a.UnlockedAt.Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *Store) GetAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(`
		SELECT type, unlocked_at FROM achievements ORDER BY unlocked_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var unlockedAt string
		if err := rows.Scan(&a.Type, &unlockedAt); err != nil {
			return nil, err
		}
		a.UnlockedAt, err = time.Parse(time.RFC3339, unlockedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse unlocked_at for achievement %s: %w", a.Type, err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
