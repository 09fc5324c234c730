package postgres

import "github.com/emberhq/ember/internal/models"

func (s *Store) GetProfile() (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, total_xp, streak_freezes, premium, created_at FROM profile LIMIT 1`)

	var p models.Profile
	err := row.Scan(&p.ID, &p.TotalXP, &p.StreakFreezes, &p.Premium, &p.CreatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *Store) SaveProfile(p models.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profile (id, total_xp, streak_freezes, premium, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			total_xp = excluded.total_xp,
			streak_freezes = excluded.streak_freezes,
			premium = excluded.premium`,
		p.ID, p.TotalXP, p.StreakFreezes, p.Premium, p.CreatedAt)
	return err
}
