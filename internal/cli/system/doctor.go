package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: local storage loaded cleanly
	if recovered := ctx.Store.RecoveredSlots(); len(recovered) > 0 {
		fmt.Printf("⚠ Local storage: WARNING\n")
		fmt.Printf("   Corrupt slots recovered as empty: %v\n", recovered)
	} else {
		fmt.Printf("✓ Local storage: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: sync configuration
	settings := cli.ResolveRemoteKey(ctx.Store.GetSettings())
	if !settings.SyncConfigured() {
		fmt.Printf("⊘ Cloud sync: NOT CONFIGURED (local-only mode)\n")
	} else {
		fmt.Printf("✓ Cloud sync: configured (sync ID %s)\n", settings.SyncID)

		// Check 3: remote reachable (only when configured)
		doc, err := ctx.Remote.Pull(context.Background(), settings)
		switch {
		case err != nil:
			fmt.Printf("❌ Remote store: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		case doc == nil:
			fmt.Printf("✓ Remote store: reachable (no document for this sync ID yet)\n")
		default:
			fmt.Printf("✓ Remote store: reachable (%d courses, %d tasks stored)\n",
				len(doc.Courses), len(doc.Tasks))
		}
	}

	// Check 4: OS keyring
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: available\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Not available; the remote key can only live in the settings file\n")
	}

	// Check 5: advisor credential
	if _, err := ctx.NewAdvisor(); err != nil {
		fmt.Printf("⊘ AI advisor: NOT CONFIGURED\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ AI advisor: credential present\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
