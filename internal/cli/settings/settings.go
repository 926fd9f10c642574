package settings

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/constants"
	"github.com/julianstephens/smartsched/internal/keyring"
)

type SettingsCmd struct {
	List    bool `help:"List current settings."`
	ShowSQL bool `help:"Print the SQL for provisioning the remote table." name:"show-sql"`

	RemoteURL *string `help:"Remote store project URL."`
	RemoteKey *string `help:"Remote store API key."`
	SyncID    *string `help:"Sync identity shared across devices." name:"sync-id"`

	Keyring      bool `help:"Store the remote key in the OS keyring instead of the settings file."`
	ClearKeyring bool `help:"Remove the remote key from the OS keyring." name:"clear-keyring"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.ShowSQL {
		fmt.Println("Run this once in your Supabase SQL editor:")
		fmt.Println()
		fmt.Println(constants.RemoteTableSQL)
		return nil
	}

	settings := ctx.Store.GetSettings()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Sync ID:     %s\n", valueOrUnset(settings.SyncID))
		fmt.Printf("  Remote URL:  %s\n", valueOrUnset(settings.RemoteURL))
		fmt.Printf("  Remote Key:  %s\n", maskKey(cli.ResolveRemoteKey(settings).RemoteKey))
		if settings.RemoteKey == "" && keyring.IsAvailable() {
			if _, err := keyring.GetRemoteKey(); err == nil {
				fmt.Println("  (remote key is held in the OS keyring)")
			}
		}
		return nil
	}

	if c.ClearKeyring {
		if err := keyring.DeleteRemoteKey(); err != nil {
			return err
		}
		fmt.Println("Removed remote key from the OS keyring.")
		return nil
	}

	updated := false
	if c.RemoteURL != nil {
		settings.RemoteURL = strings.TrimSpace(*c.RemoteURL)
		updated = true
	}
	if c.RemoteKey != nil {
		key := strings.TrimSpace(*c.RemoteKey)
		if c.Keyring {
			if err := keyring.SetRemoteKey(key); err != nil {
				return err
			}
			// The file copy stays blank; sync resolves it at call time.
			settings.RemoteKey = ""
			fmt.Println("Stored remote key in the OS keyring.")
		} else {
			settings.RemoteKey = key
		}
		updated = true
	}
	if c.SyncID != nil {
		settings.SyncID = strings.TrimSpace(*c.SyncID)
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if settings.SyncID == "" {
		settings.SyncID = uuid.NewString()
		fmt.Printf("Generated new sync ID: %s\n", settings.SyncID)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
