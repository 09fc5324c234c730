package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/emberhq/ember/internal/models"
)

const habitColumns = `id, name, category, difficulty, frequency,
	current_streak, best_streak, last_completed, created_at, archived_at, deleted_at`

func scanHabit(scan func(dest ...any) error) (models.Habit, error) {
	var h models.Habit
	var frequency []byte
	var lastCompleted sql.NullString
	var archivedAt, deletedAt sql.NullTime

	err := scan(&h.ID, &h.Name, &h.Category, &h.Difficulty, &frequency,
		&h.CurrentStreak, &h.BestStreak, &lastCompleted, &h.CreatedAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal(frequency, &h.Frequency); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse frequency for habit %s: %w", h.ID, err)
	}
	if lastCompleted.Valid {
		h.LastCompleted = lastCompleted.String
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		h.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		h.DeletedAt = &t
	}
	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanHabit(row.Scan)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE name = $1 AND deleted_at IS NULL`, name)
	return scanHabit(row.Scan)
}

func (s *Store) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits WHERE TRUE"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	frequency, err := json.Marshal(habit.Frequency)
	if err != nil {
		return fmt.Errorf("failed to encode frequency: %w", err)
	}

	var lastCompleted sql.NullString
	if habit.LastCompleted != "" {
		lastCompleted = sql.NullString{String: habit.LastCompleted, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (id, name, category, difficulty, frequency,
			current_streak, best_streak, last_completed, created_at, archived_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			difficulty = excluded.difficulty,
			frequency = excluded.frequency,
			current_streak = excluded.current_streak,
			best_streak = excluded.best_streak,
			last_completed = excluded.last_completed,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`,
		habit.ID, habit.Name, string(habit.Category), string(habit.Difficulty), frequency,
		habit.CurrentStreak, habit.BestStreak, lastCompleted,
		habit.CreatedAt, habit.ArchivedAt, habit.DeletedAt)

	return err
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = now() WHERE id = $1 AND deleted_at IS NULL AND archived_at IS NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or already archived/deleted")
}

func (s *Store) UnarchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = $1 AND deleted_at IS NULL AND archived_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or not archived")
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or already deleted")
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or not deleted")
}

func requireRow(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
