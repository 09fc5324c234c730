package sqlite

import (
	"fmt"
	"time"

	"github.com/emberhq/ember/internal/models"
)

const completionColumns = `id, habit_id, day, hour, base_xp, streak_bonus, time_bonus, total_xp, created_at`

func scanCompletion(scan func(dest ...any) error) (models.Completion, error) {
	var c models.Completion
	var createdAt string

	err := scan(&c.ID, &c.HabitID, &c.Day, &c.Hour,
		&c.BaseXP, &c.StreakBonus, &c.TimeBonus, &c.TotalXP, &createdAt)
	if err != nil {
		return models.Completion{}, err
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
	}
	return c, nil
}

// AddCompletion inserts a completion unless one already exists for the same
// (habit, day). The unique constraint makes the check-and-insert atomic.
func (s *Store) AddCompletion(c models.Completion) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, hour, base_xp, streak_bonus, time_bonus, total_xp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO NOTHING`,
		c.ID, c.HabitID, c.Day, c.Hour,
		c.BaseXP, c.StreakBonus, c.TimeBonus, c.TotalXP,
		c.CreatedAt.Format(time.RFC3339))
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
		FROM completions WHERE habit_id = ? AND day = ?`, habitID, day)
	return scanCompletion(row.Scan)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT `+completionColumns+`
		FROM completions WHERE day = ?
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
		WHERE habit_id = ? AND day >= ? AND day <= ?
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
		SELECT DISTINCT day FROM completions ORDER BY day DESC LIMIT ?`, limit)
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
