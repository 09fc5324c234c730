// Package tui implements the interactive dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhq/ember/internal/engine"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/progression"
	"github.com/emberhq/ember/internal/storage"
	"github.com/emberhq/ember/internal/utils"
)

type tab int

const (
	tabToday tab = iota
	tabQuests
	tabTrophies
)

var tabNames = []string{"Today", "Quests", "Trophies"}

// habitRow pairs a habit with its completion state for the current day.
type habitRow struct {
	habit models.Habit
	done  bool
}

type Model struct {
	store  storage.Provider
	engine *engine.Engine

	keys     KeyMap
	help     help.Model
	levelBar progress.Model

	tab      tab
	cursor   int
	habits   []habitRow
	quests   []models.ActiveQuest
	trophies []models.Achievement

	profile models.Profile
	level   progression.LevelProgress

	message  string
	loadErr  error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	m := Model{
		store:    store,
		engine:   eng,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		levelBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.reload(time.Now())
	return m
}

// reload re-reads everything the dashboard shows. Called on startup and
// after any mutation.
func (m *Model) reload(now time.Time) {
	m.loadErr = nil

	profile, err := m.store.GetProfile()
	if err != nil {
		m.loadErr = err
		return
	}
	m.profile = profile
	m.level = progression.Progress(profile.TotalXP)

	habits, err := m.store.GetAllHabits(false, false)
	if err != nil {
		m.loadErr = err
		return
	}
	today := utils.DateKey(now)
	completions, err := m.store.GetCompletionsForDay(today)
	if err != nil {
		m.loadErr = err
		return
	}
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.HabitID] = true
	}
	m.habits = m.habits[:0]
	for _, h := range habits {
		if !h.Frequency.DueOn(now) {
			continue
		}
		m.habits = append(m.habits, habitRow{habit: h, done: done[h.ID]})
	}

	quests, err := m.engine.RefreshQuests(now)
	if err != nil {
		m.loadErr = err
		return
	}
	m.quests = quests

	trophies, err := m.store.GetAchievements()
	if err != nil {
		m.loadErr = err
		return
	}
	m.trophies = trophies

	m.clampCursor()
}

func (m *Model) rowCount() int {
	switch m.tab {
	case tabToday:
		return len(m.habits)
	case tabQuests:
		return len(m.quests)
	default:
		return len(m.trophies)
	}
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.tab {
	case tabToday:
		keys = append(keys, m.keys.Enter)
	case tabQuests:
		keys = append(keys, m.keys.Claim)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Enter, m.keys.Claim}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
