package postgres

import "github.com/emberhq/ember/internal/models"

const completionColumns = `id, habit_id, day, hour, base_xp, streak_bonus, time_bonus, total_xp, created_at`

func scanCompletion(scan func(dest ...any) error) (models.Completion, error) {
	var c models.Completion
	err := scan(&c.ID, &c.HabitID, &c.Day, &c.Hour,
		&c.BaseXP, &c.StreakBonus, &c.TimeBonus, &c.TotalXP, &c.CreatedAt)
	if err != nil {
		return models.Completion{}, err
	}
	return c, nil
}

func (s *Store) AddCompletion(c models.Completion) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, hour, base_xp, streak_bonus, time_bonus, total_xp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (habit_id, day) DO NOTHING`,
		c.ID, c.HabitID, c.Day, c.Hour,
		c.BaseXP, c.StreakBonus, c.TimeBonus, c.TotalXP, c.CreatedAt)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *Store) GetCompletion(habitID, day string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT `+completionColumns+`
		FROM completions WHERE habit_id = $1 AND day = $2`, habitID, day)
	return scanCompletion(row.Scan)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT `+completionColumns+`
		FROM completions WHERE day = $1
		ORDER BY created_at`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows.Scan)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT `+completionColumns+`
		FROM completions
		WHERE habit_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day DESC`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows.Scan)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) CountCompletions() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT count(*) FROM completions").Scan(&count)
	return count, err
}

func (s *Store) GetCompletionDays(limit int) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT day FROM completions ORDER BY day DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
