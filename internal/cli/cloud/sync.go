// Package cloud holds the explicit sync commands. Sync only ever runs on
// direct user request; there is no background timer or push channel.
package cloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartsched/internal/cli"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/remote"
	"github.com/julianstephens/smartsched/internal/syncer"
)

type UploadCmd struct{}

func (c *UploadCmd) Run(ctx *cli.Context) error {
	err := ctx.Sync.Upload(context.Background())
	if err != nil {
		return describeSyncError(err)
	}

	doc := ctx.Store.Document()
	fmt.Printf("Uploaded %d courses and %d tasks to the cloud.\n", len(doc.Courses), len(doc.Tasks))
	return nil
}

type DownloadCmd struct{}

func (c *DownloadCmd) Run(ctx *cli.Context) error {
	outcome, err := ctx.Sync.Download(context.Background(), confirmPrompter{})
	if err != nil {
		return describeSyncError(err)
	}

	switch outcome {
	case syncer.OutcomeApplied:
		doc := ctx.Store.Document()
		fmt.Printf("Applied remote data: %d courses, %d tasks.\n", len(doc.Courses), len(doc.Tasks))
	case syncer.OutcomeDeclined:
		fmt.Println("Kept local data; the remote copy was discarded.")
	case syncer.OutcomeSeeded:
		fmt.Println("No remote copy existed yet; uploaded local data as the first copy.")
	case syncer.OutcomeSeedDeclined:
		fmt.Println("No remote copy exists and nothing was uploaded.")
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	settings := cli.ResolveRemoteKey(ctx.Store.GetSettings())

	fmt.Printf("Sync state:  %s\n", ctx.Sync.State())
	if !settings.SyncConfigured() {
		fmt.Println("Cloud sync:  not configured")
		fmt.Println("\nRun 'smartsched settings --remote-url <url> --remote-key <key>' to enable it.")
		return nil
	}
	fmt.Println("Cloud sync:  configured")
	fmt.Printf("Sync ID:     %s\n", settings.SyncID)
	fmt.Printf("Remote URL:  %s\n", settings.RemoteURL)
	return nil
}

// confirmPrompter answers the coordinator's destructive-decision prompts
// with interactive confirmations.
type confirmPrompter struct{}

func (confirmPrompter) ConfirmOverwriteLocal(doc models.Document) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("A cloud copy was found (%d courses, %d tasks).", len(doc.Courses), len(doc.Tasks))).
		Description("Applying it replaces ALL local data. Continue?").
		Affirmative("Overwrite local").
		Negative("Keep local").
		Value(&ok).
		Run()
	return ok, err
}

func (confirmPrompter) ConfirmSeedRemote() (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title("No cloud copy exists for this sync ID yet.").
		Description("Upload local data as the first cloud copy?").
		Affirmative("Upload").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

// describeSyncError turns coordinator failures into actionable messages.
// Missing credentials route the user to configuration instead of a
// technical error; remote rejections are surfaced verbatim.
func describeSyncError(err error) error {
	switch {
	case errors.Is(err, remote.ErrNotConfigured):
		return fmt.Errorf("cloud sync is not configured; run 'smartsched settings --remote-url <url> --remote-key <key>' first")
	case errors.Is(err, syncer.ErrSyncBusy):
		return fmt.Errorf("another sync is already running; wait for it to finish")
	default:
		return err
	}
}
