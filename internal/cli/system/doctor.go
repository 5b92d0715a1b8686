package system

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/nybbler/internal/cli"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/storage"
)

// clockSkew is how far in the future last_updated may be before doctor complains.
const clockSkew = time.Minute

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Config valid
	if err := checkConfig(ctx); err != nil {
		fmt.Printf("❌ Config valid: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config valid: OK\n")
	}

	// Check 2: Data directory writable
	if err := checkDataDirWritable(ctx); err != nil {
		fmt.Printf("❌ Data directory writable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data directory writable: OK\n")
	}

	// Check 3: Save readable
	pet, err := ctx.Store.Load()
	saveReadable := err == nil
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		fmt.Printf("⚠ Save readable: WARNING\n")
		fmt.Printf("   no pet yet - adopt one with 'nybbler adopt' or 'nybbler tui'\n")
	case err != nil:
		fmt.Printf("❌ Save readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	default:
		fmt.Printf("✓ Save readable: OK\n")
	}

	// Check 4: Timestamps sane (only if the save is readable)
	if saveReadable {
		if err := checkTimestamps(pet, ctx.Now()); err != nil {
			fmt.Printf("❌ Timestamps: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timestamps: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timestamps: SKIPPED (save not readable)\n")
	}

	// Check 5: Pet alive (warning only)
	if saveReadable {
		if err := checkAlive(ctx, pet); err != nil {
			fmt.Printf("⚠ Pet alive: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Pet alive: OK\n")
		}
	} else {
		fmt.Printf("⊘ Pet alive: SKIPPED (save not readable)\n")
	}

	// Check 6: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *cli.Context) error {
	if ctx.Config == nil {
		return nil
	}
	return ctx.Config.Validate()
}

func checkDataDirWritable(ctx *cli.Context) error {
	if err := os.MkdirAll(ctx.DataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	f, err := os.CreateTemp(ctx.DataDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", ctx.DataDir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkTimestamps(p models.Pet, now time.Time) error {
	if p.LastUpdated.After(now.Add(clockSkew)) {
		return fmt.Errorf("last_updated %s is in the future (now %s); decay is paused until the clock catches up",
			p.LastUpdated.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	if !p.BornAt.IsZero() && p.BornAt.After(p.LastUpdated) {
		return fmt.Errorf("born_at %s is after last_updated %s",
			p.BornAt.Format(time.RFC3339), p.LastUpdated.Format(time.RFC3339))
	}
	return nil
}

func checkAlive(ctx *cli.Context, p models.Pet) error {
	// Project decay to now without touching the save
	ctx.Rules().ApplyDecay(&p, ctx.Now().Sub(p.LastUpdated))
	if !p.Alive() {
		return fmt.Errorf("%s has passed away - start over with 'nybbler adopt --force' or 'nybbler tui'", p.Name)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := ctx.Backups().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'nybbler backup create'")
	}

	return nil
}
