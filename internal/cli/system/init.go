package system

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberhq/ember/internal/cli"
	"github.com/emberhq/ember/internal/models"
)

type InitCmd struct {
	Force   bool `help:"Reinitialize even if storage already exists."`
	Premium bool `help:"Enable premium features (legendary quests)."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed the profile on first init; keep the existing one otherwise.
	existing, err := ctx.Store.GetProfile()
	if err == nil && !c.Force {
		fmt.Println("Storage already initialized.")
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	profile := models.Profile{
		ID:        uuid.New().String(),
		Premium:   c.Premium,
		CreatedAt: time.Now(),
	}
	if err == nil {
		// --force resets progress but keeps the profile identity so
		// quest selection stays stable.
		profile.ID = existing.ID
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Initialized ember storage at %s\n", ctx.Store.GetConfigPath())
	if c.Premium {
		fmt.Println("Premium enabled: legendary quests will be offered.")
	}
	fmt.Println("Add your first habit with: ember habit add")
	return nil
}
