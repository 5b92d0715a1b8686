package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/config"
)

type SettingsCmd struct {
	List  bool `help:"List current settings."`
	Init  bool `help:"Write the current settings to the config file."`
	Force bool `help:"Overwrite an existing config file with --init."`

	HungerDecay    *float64 `help:"Hunger lost per hour."`
	HappinessDecay *float64 `help:"Happiness lost per hour."`
	EnergyDecay    *float64 `help:"Energy lost per hour."`
	HealthDecay    *float64 `help:"Health lost per hour while hunger or happiness is low."`
	LowThreshold   *float64 `help:"Stat level below which health starts to drop."`
	Storage        *string  `help:"Default save backend (json or sqlite)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if c.List {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render settings: %w", err)
		}
		fmt.Printf("Current Settings (%s):\n\n", ctx.ConfigPath)
		fmt.Print(string(out))
		return nil
	}

	updated := false
	if c.HungerDecay != nil {
		cfg.Rules.HungerDecayPerHour = *c.HungerDecay
		updated = true
	}
	if c.HappinessDecay != nil {
		cfg.Rules.HappinessDecayPerHour = *c.HappinessDecay
		updated = true
	}
	if c.EnergyDecay != nil {
		cfg.Rules.EnergyDecayPerHour = *c.EnergyDecay
		updated = true
	}
	if c.HealthDecay != nil {
		cfg.Rules.HealthDecayPerHour = *c.HealthDecay
		updated = true
	}
	if c.LowThreshold != nil {
		cfg.Rules.LowStatThreshold = *c.LowThreshold
		updated = true
	}
	if c.Storage != nil {
		cfg.Store = *c.Storage
		updated = true
	}

	if !updated && !c.Init {
		fmt.Println("No settings changed. Use --list to view current settings.")
		return nil
	}

	if c.Init && !updated && !c.Force {
		if _, err := os.Stat(ctx.ConfigPath); err == nil {
			return fmt.Errorf("config file already exists at %s - use --force to overwrite it", ctx.ConfigPath)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := config.Save(cfg, ctx.ConfigPath); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Settings saved to %s\n", ctx.ConfigPath)
	return nil
}
