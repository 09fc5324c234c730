package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/emberhq/ember/internal/errors"
	"github.com/emberhq/ember/internal/models"
	"github.com/emberhq/ember/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Done    HabitDoneCmd    `cmd:"" help:"Complete a habit for today."`
	Log     HabitLogCmd     `cmd:"" help:"Show habit log (ASCII history)."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Category    string `help:"Habit category." default:"other"`
	Difficulty  string `help:"Difficulty: easy, medium, or hard." default:"easy"`
	Every       string `help:"Frequency: daily, weekdays, weekends, or weekday list (e.g. mon,wed,fri)." default:"daily"`
	Interactive bool   `short:"i" help:"Fill in the habit via an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if c.Interactive {
		if err := c.prompt(); err != nil {
			return err
		}
	}
	if c.Name == "" {
		return fmt.Errorf("habit name is required (or use --interactive)")
	}

	category := models.Category(c.Category)
	if !category.Valid() {
		return fmt.Errorf("invalid category %q", c.Category)
	}
	difficulty := models.Difficulty(c.Difficulty)
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q (expected easy, medium, or hard)", c.Difficulty)
	}
	frequency, err := ParseFrequency(c.Every)
	if err != nil {
		return err
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:         uuid.New().String(),
		Name:       c.Name,
		Category:   category,
		Difficulty: difficulty,
		Frequency:  frequency,
		CreatedAt:  time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s, %s)\n", habit.Name, habit.Category, habit.Difficulty, FormatFrequency(habit.Frequency))
	return nil
}

func (c *HabitAddCmd) prompt() error {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), string(cat)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("easy (10 XP)", "easy"),
					huh.NewOption("medium (25 XP)", "medium"),
					huh.NewOption("hard (50 XP)", "hard"),
				).
				Value(&c.Difficulty),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("every day", "daily"),
					huh.NewOption("weekdays", "weekdays"),
					huh.NewOption("weekends", "weekends"),
				).
				Value(&c.Every),
		),
	)
	return form.Run()
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		streak := ""
		if habit.CurrentStreak > 0 {
			streak = fmt.Sprintf("  🔥%d", habit.CurrentStreak)
		}
		fmt.Printf("%-24s %-12s %-7s %s%s%s\n",
			habit.Name, habit.Category, habit.Difficulty, FormatFrequency(habit.Frequency), streak, status)
	}

	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	result, err := ctx.Engine.CompleteHabit(habit.ID, time.Now())
	if err != nil {
		if errors.Is(err, errors.ErrAlreadyCompletedToday) {
			return fmt.Errorf("%q is already done for today", c.Name)
		}
		return err
	}

	PrintCompletionResult(result)
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Name == c.Habit {
				selected = []models.Habit{h}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	maxNameLen := 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		day := startDay.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		completions, err := ctx.Store.GetCompletionsForHabit(
			habit.ID,
			utils.DateKey(startDay),
			utils.DateKey(endDay),
		)
		if err != nil {
			return err
		}

		done := make(map[string]bool, len(completions))
		for _, comp := range completions {
			done[comp.Day] = true
		}

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i)
			if done[utils.DateKey(day)] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Name)
	} else {
		if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
			return err
		}
		fmt.Printf("Archived habit: %s\n", c.Name)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'ember habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i, h := range habits {
		if h.Name == c.Name && h.DeletedAt != nil {
			habit = &habits[i]
			break
		}
	}

	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}
