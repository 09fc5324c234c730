package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhq/ember/internal/engine"
	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/quests"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tab(len(tabNames))
			m.cursor = 0
			m.message = ""
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
			m.cursor = 0
			m.message = ""
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.reload(time.Now())
			m.message = ""
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			if m.tab == tabToday {
				m.completeSelected()
			}
			return m, nil

		case key.Matches(msg, m.keys.Claim):
			if m.tab == tabQuests {
				m.claimSelected()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) completeSelected() {
	if m.cursor >= len(m.habits) {
		return
	}
	row := m.habits[m.cursor]
	if row.done {
		m.message = fmt.Sprintf("%q is already done today", row.habit.Name)
		return
	}

	now := time.Now()
	result, err := m.engine.CompleteHabit(row.habit.ID, now)
	if err != nil {
		if errors.Is(err, errors.ErrAlreadyCompletedToday) {
			m.message = fmt.Sprintf("%q is already done today", row.habit.Name)
		} else {
			m.message = dangerStyle.Render(err.Error())
		}
		return
	}

	m.message = completionSummary(result)
	m.reload(now)
}

func (m *Model) claimSelected() {
	if m.cursor >= len(m.quests) {
		return
	}
	q := m.quests[m.cursor]

	now := time.Now()
	result, err := m.engine.ClaimQuest(q.ID, now)
	if err != nil {
		if errors.Is(err, errors.ErrQuestNotReadyToClaim) {
			m.message = "that quest is not finished yet"
		} else {
			m.message = dangerStyle.Render(err.Error())
		}
		return
	}

	parts := []string{fmt.Sprintf("claimed %q: +%d XP", result.Template.Title, result.XPAwarded)}
	if result.Freezes > 0 {
		parts = append(parts, fmt.Sprintf("+%d streak freeze(s)", result.Freezes))
	}
	if result.Badge != "" {
		parts = append(parts, fmt.Sprintf("badge %q", result.Badge))
	}
	if result.LeveledUp {
		parts = append(parts, fmt.Sprintf("level up! now level %d", result.Level.Level))
	}
	m.message = strings.Join(parts, ", ")
	m.reload(now)
}

// completionSummary condenses a completion result to one status line.
func completionSummary(result engine.CompletionResult) string {
	parts := []string{fmt.Sprintf("+%d XP", result.XP.Total)}
	if result.Streak.FreezeConsumed {
		parts = append(parts, fmt.Sprintf("streak saved by a freeze (%d)", result.Streak.Current))
	} else {
		parts = append(parts, fmt.Sprintf("streak %d", result.Streak.Current))
	}
	if result.LeveledUp {
		parts = append(parts, fmt.Sprintf("level up! now level %d", result.Level.Level))
	}
	for _, qu := range result.Quests {
		if qu.Completed {
			parts = append(parts, fmt.Sprintf("quest done: %s", qu.Template.Title))
		}
	}
	for _, a := range result.Unlocked {
		parts = append(parts, fmt.Sprintf("achievement: %s", a.Title))
	}
	return strings.Join(parts, " · ")
}

func questTitle(q models.ActiveQuest) string {
	if tmpl, ok := quests.TemplateByID(q.TemplateID); ok {
		return tmpl.Title
	}
	return q.TemplateID
}
