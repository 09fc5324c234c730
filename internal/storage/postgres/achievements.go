package postgres

import "github.com/emberhq/ember/internal/models"

func (s *Store) AddAchievement(a models.Achievement) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO achievements (type, unlocked_at)
		VALUES ($1, $2)
		ON CONFLICT (type) DO NOTHING`,
		string(a.Type), a.UnlockedAt)
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
		if err := rows.Scan(&a.Type, &a.UnlockedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
