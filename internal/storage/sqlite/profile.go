package sqlite

import (
	"fmt"
	"time"

	"github.com/emberhq/ember/internal/models"
)

func (s *Store) GetProfile() (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, total_xp, streak_freezes, premium, created_at FROM profile LIMIT 1`)

	var p models.Profile
	var premium int
	var createdAt string

	err := row.Scan(&p.ID, &p.TotalXP, &p.StreakFreezes, &premium, &createdAt)
	if err != nil {
		return models.Profile{}, err
	}

	p.Premium = premium != 0
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to parse created_at for profile: %w", err)
	}
	return p, nil
}

func (s *Store) SaveProfile(p models.Profile) error {
	premium := 0
	if p.Premium {
		premium = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO profile (id, total_xp, streak_freezes, premium, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_xp = excluded.total_xp,
			streak_freezes = excluded.streak_freezes,
			premium = excluded.premium`,
		p.ID, p.TotalXP, p.StreakFreezes, premium, p.CreatedAt.Format(time.RFC3339))
	return err
}
