package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/storage"
)

type DebugCmd struct {
	Paths   *DebugPathsCmd   `cmd:"" help:"Show data, save, config and log paths."`
	DumpPet *DebugDumpPetCmd `cmd:"" help:"Dump the saved pet record as JSON, without applying decay."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"data_dir":   ctx.DataDir,
		"save":       ctx.Store.GetConfigPath(),
		"config":     ctx.ConfigPath,
		"backup_dir": ctx.Backups().GetBackupDir(),
		"log":        filepath.Join(ctx.DataDir, constants.LogDirName, constants.LogFileName),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpPetCmd struct{}

func (cmd *DebugDumpPetCmd) Run(ctx *Context) error {
	pet, err := ctx.Store.Load()
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return ErrNoPet
		}
		return err
	}

	jsonBytes, err := json.MarshalIndent(pet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pet: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
