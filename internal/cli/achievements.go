package cli

import (
	"fmt"

	"github.com/emberhq/ember/internal/achievements"
	"github.com/emberhq/ember/internal/models"
)

type AchievementsCmd struct {
	All bool `help:"Include locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetAchievements()
	if err != nil {
		return err
	}

	unlockedAt := make(map[models.AchievementType]string, len(records))
	for _, a := range records {
		unlockedAt[a.Type] = a.UnlockedAt.Format("2006-01-02")
	}

	unlocked := 0
	for _, def := range achievements.Registry {
		when, ok := unlockedAt[def.Type]
		if ok {
			unlocked++
			fmt.Printf("🏆 %-16s %s  (unlocked %s, +%d XP)\n", def.Title, def.Description, when, def.XPReward)
		} else if c.All {
			fmt.Printf("🔒 %-16s %s  (+%d XP)\n", def.Title, def.Description, def.XPReward)
		}
	}

	fmt.Printf("\n%d/%d unlocked\n", unlocked, len(achievements.Registry))
	return nil
}
