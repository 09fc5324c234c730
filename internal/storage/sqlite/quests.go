package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/emberhq/ember/internal/models"
)

const questColumns = `id, template_id, tier, period_key, progress, status,
	activated_at, expires_at, completed_at, claimed_at`

func scanQuest(scan func(dest ...any) error) (models.ActiveQuest, error) {
	var q models.ActiveQuest
	var activatedAt, expiresAt string
	var completedAt, claimedAt sql.NullString

	err := scan(&q.ID, &q.TemplateID, &q.Tier, &q.PeriodKey, &q.Progress, &q.Status,
		&activatedAt, &expiresAt, &completedAt, &claimedAt)
	if err != nil {
		return models.ActiveQuest{}, err
	}

	q.ActivatedAt, err = time.Parse(time.RFC3339, activatedAt)
	if err != nil {
		return models.ActiveQuest{}, fmt.Errorf("failed to parse activated_at for quest %s: %w", q.ID, err)
	}
	q.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return models.ActiveQuest{}, fmt.Errorf("failed to parse expires_at for quest %s: %w", q.ID, err)
	}
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.ActiveQuest{}, fmt.Errorf("failed to parse completed_at for quest %s: %w", q.ID, err)
		}
		q.CompletedAt = &t
	}
	if claimedAt.Valid {
		t, err := time.Parse(time.RFC3339, claimedAt.String)
		if err != nil {
			return models.ActiveQuest{}, fmt.Errorf("failed to parse claimed_at for quest %s: %w", q.ID, err)
		}
		q.ClaimedAt = &t
	}

	return q, nil
}

// UpsertActiveQuest inserts a quest instance unless one already exists for
// the same (template, period). Concurrent refreshes collapse onto one row.
func (s *Store) UpsertActiveQuest(q models.ActiveQuest) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO active_quests (id, template_id, tier, period_key, progress, status,
			activated_at, expires_at, completed_at, claimed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL)
		ON CONFLICT(template_id, period_key) DO NOTHING`,
		q.ID, q.TemplateID, string(q.Tier), q.PeriodKey, q.Progress, string(q.Status),
		q.ActivatedAt.Format(time.RFC3339), q.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *Store) GetActiveQuest(id string) (models.ActiveQuest, error) {
	row := s.db.QueryRow(`
		SELECT `+questColumns+`
		FROM active_quests WHERE id = ?`, id)
	return scanQuest(row.Scan)
}

func (s *Store) GetActiveQuests(statuses ...models.QuestStatus) ([]models.ActiveQuest, error) {
	query := "SELECT " + questColumns + " FROM active_quests"
	var args []any
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY activated_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []models.ActiveQuest
	for rows.Next() {
		q, err := scanQuest(rows.Scan)
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

func (s *Store) UpdateActiveQuest(q models.ActiveQuest) error {
	var completedAt, claimedAt sql.NullString
	if q.CompletedAt != nil {
		completedAt = sql.NullString{String: q.CompletedAt.Format(time.RFC3339), Valid: true}
	}
	if q.ClaimedAt != nil {
		claimedAt = sql.NullString{String: q.ClaimedAt.Format(time.RFC3339), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE active_quests
		SET progress = ?, status = ?, completed_at = ?, claimed_at = ?
		WHERE id = ?`,
		q.Progress, string(q.Status), completedAt, claimedAt, q.ID)
	if err != nil {
		return err
	}
	return requireRow(result, "quest not found")
}

func (s *Store) AddQuestCompletion(qc models.QuestCompletion) error {
	var badge sql.NullString
	if qc.Badge != "" {
		badge = sql.NullString{String: qc.Badge, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO quest_completions (id, template_id, tier, period_key, xp_awarded, freezes_awarded, badge, claimed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		qc.ID, qc.TemplateID, string(qc.Tier), qc.PeriodKey,
		qc.XPAwarded, qc.FreezesAwarded, badge, qc.ClaimedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetQuestCompletions() ([]models.QuestCompletion, error) {
	rows, err := s.db.Query(`
		SELECT id, template_id, tier, period_key, xp_awarded, freezes_awarded, badge, claimed_at
		FROM quest_completions ORDER BY claimed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.QuestCompletion
	for rows.Next() {
		var qc models.QuestCompletion
		var badge sql.NullString
		var claimedAt string

		err := rows.Scan(&qc.ID, &qc.TemplateID, &qc.Tier, &qc.PeriodKey,
			&qc.XPAwarded, &qc.FreezesAwarded, &badge, &claimedAt)
		if err != nil {
			return nil, err
		}
		if badge.Valid {
			qc.Badge = badge.String
		}
		qc.ClaimedAt, err = time.Parse(time.RFC3339, claimedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse claimed_at for quest completion %s: %w", qc.ID, err)
		}
		completions = append(completions, qc)
	}
	return completions, rows.Err()
}
