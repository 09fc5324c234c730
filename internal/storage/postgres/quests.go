package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/emberhq/ember/internal/models"
)

const questColumns = `id, template_id, tier, period_key, progress, status,
	activated_at, expires_at, completed_at, claimed_at`

func scanQuest(scan func(dest ...any) error) (models.ActiveQuest, error) {
	var q models.ActiveQuest
	var completedAt, claimedAt sql.NullTime

	err := scan(&q.ID, &q.TemplateID, &q.Tier, &q.PeriodKey, &q.Progress, &q.Status,
		&q.ActivatedAt, &q.ExpiresAt, &completedAt, &claimedAt)
	if err != nil {
		return models.ActiveQuest{}, err
	}

	if completedAt.Valid {
		t := completedAt.Time
		q.CompletedAt = &t
	}
	if claimedAt.Valid {
		t := claimedAt.Time
		q.ClaimedAt = &t
	}
	return q, nil
}

func (s *Store) UpsertActiveQuest(q models.ActiveQuest) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO active_quests (id, template_id, tier, period_key, progress, status,
			activated_at, expires_at, completed_at, claimed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL, NULL)
		ON CONFLICT (template_id, period_key) DO NOTHING`,
		q.ID, q.TemplateID, string(q.Tier), q.PeriodKey, q.Progress, string(q.Status),
		q.ActivatedAt, q.ExpiresAt)
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
		FROM active_quests WHERE id = $1`, id)
	return scanQuest(row.Scan)
}

func (s *Store) GetActiveQuests(statuses ...models.QuestStatus) ([]models.ActiveQuest, error) {
	query := "SELECT " + questColumns + " FROM active_quests"
	var args []any
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
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
	result, err := s.db.Exec(`
		UPDATE active_quests
		SET progress = $1, status = $2, completed_at = $3, claimed_at = $4
		WHERE id = $5`,
		q.Progress, string(q.Status), q.CompletedAt, q.ClaimedAt, q.ID)
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		qc.ID, qc.TemplateID, string(qc.Tier), qc.PeriodKey,
		qc.XPAwarded, qc.FreezesAwarded, badge, qc.ClaimedAt)
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

		err := rows.Scan(&qc.ID, &qc.TemplateID, &qc.Tier, &qc.PeriodKey,
			&qc.XPAwarded, &qc.FreezesAwarded, &badge, &qc.ClaimedAt)
		if err != nil {
			return nil, err
		}
		if badge.Valid {
			qc.Badge = badge.String
		}
		completions = append(completions, qc)
	}
	return completions, rows.Err()
}
