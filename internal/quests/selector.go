package quests

import (
	"fmt"

	"github.com/emberhq/ember/internal/constants"
	"github.com/emberhq/ember/internal/models"
)

// The selector must hand every user a stable quest subset per period:
// re-running selection with the same (user, period) inputs reproduces the
// identical ordered result, so quest generation stays idempotent across
// restarts and retries, while different users land on different subsets.

// hash32 is a 31-multiplier rolling string hash.
func hash32(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}

// lcg is a small linear congruential generator (Numerical Recipes constants).
type lcg struct {
	state uint32
}

func (r *lcg) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// selectFromPool seeds an LCG from (user, period, tier) and Fisher–Yates
// shuffles a copy of the pool, returning the first count entries.
func selectFromPool(pool []models.QuestTemplate, userID, periodKey string, tier models.QuestTier, count int) []models.QuestTemplate {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}

	shuffled := make([]models.QuestTemplate, len(pool))
	copy(shuffled, pool)

	rng := lcg{state: hash32(fmt.Sprintf("%s|%s|%s", userID, periodKey, tier))}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rng.next() % uint32(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count]
}

// SelectDaily returns the user's daily quests for the given day key.
func SelectDaily(userID, dateKey string, count int) []models.QuestTemplate {
	return selectFromPool(Pool(models.TierDaily), userID, dateKey, models.TierDaily, count)
}

// SelectWeekly returns the user's weekly quest for the given week key.
func SelectWeekly(userID, weekKey string) []models.QuestTemplate {
	return selectFromPool(Pool(models.TierWeekly), userID, weekKey, models.TierWeekly, constants.WeeklyQuestCount)
}

// SelectLegendary returns the user's legendary quest for the given week key.
// Eligibility gating is the caller's concern.
func SelectLegendary(userID, weekKey string) []models.QuestTemplate {
	return selectFromPool(Pool(models.TierLegendary), userID, weekKey, models.TierLegendary, constants.LegendaryQuestCount)
}
