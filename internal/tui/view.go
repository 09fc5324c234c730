package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/emberhq/ember/internal/achievements"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/quests"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return docStyle.Render(dangerStyle.Render("Error: " + m.loadErr.Error()))
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case tabToday:
		b.WriteString(m.todayView())
	case tabQuests:
		b.WriteString(m.questsView())
	case tabTrophies:
		b.WriteString(m.trophiesView())
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(messageStyle.Render(m.message))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) headerView() string {
	bar := m.levelBar.ViewAs(m.level.Progress)
	line := fmt.Sprintf("%s  Level %d  %s  %d/%d XP",
		titleStyle.Render("ember"), m.level.Level, bar, m.level.CurrentLevelXP, m.level.NextLevelXP)
	if m.profile.StreakFreezes > 0 {
		line += mutedStyle.Render(fmt.Sprintf("  ❄ %d", m.profile.StreakFreezes))
	}
	return line
}

func (m Model) tabsView() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = inactiveTabStyle.Render(name)
		}
	}
	return strings.Join(rendered, " ")
}

func (m Model) todayView() string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("No habits due today. Add one with 'ember habit add'.")
	}

	var b strings.Builder
	for i, row := range m.habits {
		mark := "[ ]"
		line := fmt.Sprintf("%s %s (%s, streak %d)",
			mark, row.habit.Name, row.habit.Difficulty, row.habit.CurrentStreak)
		if row.done {
			line = doneStyle.Render(fmt.Sprintf("[✓] %s (%s, streak %d)",
				row.habit.Name, row.habit.Difficulty, row.habit.CurrentStreak))
		}
		b.WriteString(m.cursorPrefix(i))
		if i == m.cursor && !row.done {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) questsView() string {
	if len(m.quests) == 0 {
		return mutedStyle.Render("No active quests.")
	}

	var b strings.Builder
	for i, q := range m.quests {
		b.WriteString(m.cursorPrefix(i))
		line := questLine(q)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("press c to claim a finished quest"))
	return b.String()
}

func questLine(q models.ActiveQuest) string {
	target := q.Progress
	if tmpl, ok := quests.TemplateByID(q.TemplateID); ok {
		target = tmpl.Requirement.Target
	}
	status := fmt.Sprintf("%d/%d", q.Progress, target)
	if q.Status == models.QuestCompleted {
		status = doneStyle.Render("ready to claim")
	}
	remaining := time.Until(q.ExpiresAt).Round(time.Minute)
	return fmt.Sprintf("[%s] %s  %s  %s",
		q.Tier, questTitle(q), status, mutedStyle.Render(remaining.String()+" left"))
}

func (m Model) trophiesView() string {
	if len(m.trophies) == 0 {
		return mutedStyle.Render("No achievements unlocked yet. Keep going.")
	}

	var b strings.Builder
	for i, a := range m.trophies {
		b.WriteString(m.cursorPrefix(i))
		line := string(a.Type)
		if def, ok := achievements.Lookup(a.Type); ok {
			line = fmt.Sprintf("%s  %s", def.Title, mutedStyle.Render(def.Description))
		}
		line += mutedStyle.Render("  " + a.UnlockedAt.Format("2006-01-02"))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) cursorPrefix(i int) string {
	if i == m.cursor {
		return "> "
	}
	return "  "
}
