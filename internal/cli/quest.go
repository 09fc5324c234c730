package cli

import (
	"fmt"
	"time"

	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/quests"
)

type QuestCmd struct {
	List  QuestListCmd  `cmd:"" help:"Show current quests." default:"1"`
	Claim QuestClaimCmd `cmd:"" help:"Claim a completed quest's reward."`
}

type QuestListCmd struct {
	History bool `help:"Show claimed quest history instead."`
}

func (c *QuestListCmd) Run(ctx *Context) error {
	if c.History {
		return c.printHistory(ctx)
	}

	current, err := ctx.Engine.RefreshQuests(time.Now())
	if err != nil {
		return err
	}

	if len(current) == 0 {
		fmt.Println("No quests available.")
		return nil
	}

	for _, tier := range []models.QuestTier{models.TierDaily, models.TierWeekly, models.TierLegendary} {
		printed := false
		for _, quest := range current {
			if quest.Tier != tier {
				continue
			}
			tmpl, ok := quests.TemplateByID(quest.TemplateID)
			if !ok {
				continue
			}
			if !printed {
				fmt.Printf("\n%s quests:\n", tier)
				printed = true
			}

			marker := " "
			if quest.Status == models.QuestCompleted {
				marker = "✔"
			}
			reward := fmt.Sprintf("%d XP", tmpl.Reward.XP)
			if tmpl.Reward.StreakFreezes > 0 {
				reward += fmt.Sprintf(" +%d freeze", tmpl.Reward.StreakFreezes)
			}
			fmt.Printf("  [%s] %-20s %d/%d  (%s)  %s\n",
				marker, tmpl.Title, quest.Progress, tmpl.Requirement.Target, reward, tmpl.Description)
		}
	}

	fmt.Println("\nClaim completed quests with: ember quest claim <title>")
	return nil
}

func (c *QuestListCmd) printHistory(ctx *Context) error {
	history, err := ctx.Store.GetQuestCompletions()
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Println("No quests claimed yet.")
		return nil
	}

	for _, record := range history {
		title := record.TemplateID
		if tmpl, ok := quests.TemplateByID(record.TemplateID); ok {
			title = tmpl.Title
		}
		badge := ""
		if record.Badge != "" {
			badge = fmt.Sprintf("  [badge: %s]", record.Badge)
		}
		fmt.Printf("%s  %-20s +%d XP%s\n",
			record.ClaimedAt.Format("2006-01-02"), title, record.XPAwarded, badge)
	}
	return nil
}

type QuestClaimCmd struct {
	Title string `arg:"" help:"Title of the completed quest to claim."`
}

func (c *QuestClaimCmd) Run(ctx *Context) error {
	quest, err := findQuestByTitle(ctx, c.Title)
	if err != nil {
		return err
	}

	result, err := ctx.Engine.ClaimQuest(quest.ID, time.Now())
	if err != nil {
		if errors.Is(err, errors.ErrQuestNotReadyToClaim) {
			return fmt.Errorf("quest %q is not completed yet", c.Title)
		}
		return err
	}

	fmt.Printf("🎁 Claimed %s: +%d XP", result.Template.Title, result.XPAwarded)
	if result.Freezes > 0 {
		fmt.Printf(", +%d streak freeze", result.Freezes)
	}
	if result.Badge != "" {
		fmt.Printf(", badge %q", result.Badge)
	}
	fmt.Println()
	if result.LeveledUp {
		fmt.Printf("⬆ Level up! You are now level %d\n", result.Level.Level)
	}
	return nil
}

func findQuestByTitle(ctx *Context, title string) (models.ActiveQuest, error) {
	current, err := ctx.Store.GetActiveQuests(models.QuestActive, models.QuestCompleted)
	if err != nil {
		return models.ActiveQuest{}, err
	}
	for _, quest := range current {
		tmpl, ok := quests.TemplateByID(quest.TemplateID)
		if ok && tmpl.Title == title {
			return quest, nil
		}
	}
	return models.ActiveQuest{}, fmt.Errorf("no current quest titled %q", title)
}
