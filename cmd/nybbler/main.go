package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/cli/backups"
	"github.com/julianstephens/nybbler/internal/cli/pet"
	"github.com/julianstephens/nybbler/internal/cli/settings"
	"github.com/julianstephens/nybbler/internal/cli/system"
	"github.com/julianstephens/nybbler/internal/config"
	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/errors"
	"github.com/julianstephens/nybbler/internal/logger"
	"github.com/julianstephens/nybbler/internal/storage"
	"github.com/julianstephens/nybbler/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag `help:"Print version and exit."`
	Config  string           `help:"Path to the YAML config file." type:"path" default:"${config_path}"`
	DataDir string           `help:"Directory holding the save file, backups and logs." type:"path"`
	Store   string           `help:"Save backend (json or sqlite). Overrides the config file."`
	Debug   bool             `help:"Enable debug logging to stderr."`

	Tui      system.TuiCmd        `cmd:"" help:"Take care of your pet interactively." default:"1"`
	Adopt    system.AdoptCmd      `cmd:"" help:"Adopt a new pet without the interactive prompts."`
	Status   pet.StatusCmd        `cmd:"" help:"Show how your pet is doing."`
	Act      pet.ActCmd           `cmd:"" help:"Perform a single care action."`
	Forecast pet.ForecastCmd      `cmd:"" help:"Plot how the stats will fall without care."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Settings settings.SettingsCmd `cmd:"" name:"config" help:"View or change settings."`
	Inspect  cli.DebugCmd         `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage save backups."`
	About system.VersionCmd `cmd:"" name:"version" help:"Show version information."`
}

func main() {
	configPath, err := utils.ConfigPath()
	if err != nil {
		configPath = constants.ConfigFileName
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A virtual pet that lives in your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": configPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	dataDir, err := resolveDataDir(CLI.DataDir, cfg.DataDir)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug || cfg.Debug,
		DataDir: dataDir,
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	backend := cfg.Store
	if CLI.Store != "" {
		backend = CLI.Store
	}
	store, err := storage.New(backend, dataDir)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	logger.Debug("Starting", "command", ctx.Command(), "data_dir", dataDir, "store", backend)

	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: CLI.Config,
		DataDir:    dataDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// resolveDataDir picks the data directory: the flag, then the config file,
// then the platform default.
func resolveDataDir(flag, configured string) (string, error) {
	for _, dir := range []string{flag, configured} {
		if dir != "" {
			return utils.ExpandHome(dir)
		}
	}
	return utils.DataDir()
}
