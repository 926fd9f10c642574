// Package syncer orchestrates explicit, user-triggered transfers between
// the local store and the remote key-value table. The conflict policy is
// deliberately named and narrow: last full-document write wins. There is
// no field-level merge and no causal ordering beyond "whichever document
// was written or fetched last"; extending that would be a separate,
// separately tested policy change.
package syncer

import (
	"context"
	"errors"
	"sync"

	"github.com/julianstephens/smartsched/internal/logger"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/remote"
	"github.com/julianstephens/smartsched/internal/storage"
)

// State is the coordinator's externally visible condition.
type State int

const (
	StateIdle State = iota
	StateSyncing
)

func (s State) String() string {
	if s == StateSyncing {
		return "Syncing"
	}
	return "Idle"
}

// ErrSyncBusy is returned when a sync is requested while another is in
// flight. Concurrent transfers are rejected, never queued: whole-document
// replace cannot reconcile two simultaneous operations.
var ErrSyncBusy = errors.New("a sync operation is already in progress")

// Prompter answers the two destructive-decision prompts the download path
// can raise. The presentation layer owns the wording.
type Prompter interface {
	// ConfirmOverwriteLocal asks whether the fetched remote document may
	// replace all local data.
	ConfirmOverwriteLocal(doc models.Document) (bool, error)
	// ConfirmSeedRemote asks whether local data may be uploaded as the
	// first remote copy for this identity.
	ConfirmSeedRemote() (bool, error)
}

// DownloadOutcome reports how a download request resolved.
type DownloadOutcome int

const (
	// OutcomeApplied: a remote document was found and replaced local data.
	OutcomeApplied DownloadOutcome = iota
	// OutcomeDeclined: a remote document was found and the user kept local data.
	OutcomeDeclined
	// OutcomeSeeded: no remote document existed; local data was uploaded as the seed.
	OutcomeSeeded
	// OutcomeSeedDeclined: no remote document existed and the user declined to seed.
	OutcomeSeedDeclined
)

// Coordinator owns sync control flow. It is handed its collaborators at
// construction and never reaches for ambient globals.
type Coordinator struct {
	store   storage.Provider
	remote  remote.Store
	resolve func(models.Settings) models.Settings

	mu    sync.Mutex
	state State
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSettingsResolver installs a hook that finalizes settings before
// each transfer, e.g. filling the remote key from the OS keyring when the
// stored copy is blank. The resolved value is never written back.
func WithSettingsResolver(fn func(models.Settings) models.Settings) Option {
	return func(c *Coordinator) { c.resolve = fn }
}

func New(store storage.Provider, rs remote.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:   store,
		remote:  rs,
		resolve: func(s models.Settings) models.Settings { return s },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current coordinator state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// begin moves Idle -> Syncing, or rejects when a transfer is in flight.
func (c *Coordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSyncing {
		return ErrSyncBusy
	}
	c.state = StateSyncing
	return nil
}

func (c *Coordinator) end() {
	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
}

// Upload pushes the local document, replacing the remote copy
// unconditionally. Local always wins on explicit upload.
func (c *Coordinator) Upload(ctx context.Context) error {
	settings := c.resolve(c.store.GetSettings())
	if !settings.SyncConfigured() {
		// Short-circuit before entering Syncing; no network contact.
		return remote.ErrNotConfigured
	}

	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	doc := c.store.Document()
	if err := c.remote.Push(ctx, settings, doc); err != nil {
		logger.Warn("Upload failed", "error", err)
		return err
	}

	logger.Info("Uploaded local data", "sync_id", settings.SyncID,
		"courses", len(doc.Courses), "tasks", len(doc.Tasks))
	return nil
}

// Download pulls the remote document and branches on what it finds. A
// found document is applied only after the prompter confirms the
// overwrite; an absent document triggers the inverse seed-upload offer.
// Declining either way returns with no mutation on either side.
func (c *Coordinator) Download(ctx context.Context, p Prompter) (DownloadOutcome, error) {
	settings := c.resolve(c.store.GetSettings())
	if !settings.SyncConfigured() {
		return 0, remote.ErrNotConfigured
	}

	if err := c.begin(); err != nil {
		return 0, err
	}
	defer c.end()

	doc, err := c.remote.Pull(ctx, settings)
	if err != nil {
		logger.Warn("Download failed", "error", err)
		return 0, err
	}

	if doc == nil {
		ok, err := p.ConfirmSeedRemote()
		if err != nil {
			return 0, err
		}
		if !ok {
			return OutcomeSeedDeclined, nil
		}
		if err := c.remote.Push(ctx, settings, c.store.Document()); err != nil {
			logger.Warn("Seed upload failed", "error", err)
			return 0, err
		}
		logger.Info("Seeded remote with local data", "sync_id", settings.SyncID)
		return OutcomeSeeded, nil
	}

	ok, err := p.ConfirmOverwriteLocal(*doc)
	if err != nil {
		return 0, err
	}
	if !ok {
		// Discard the fetched copy; local data is untouched.
		return OutcomeDeclined, nil
	}

	if err := c.store.ApplyDocument(*doc); err != nil {
		return 0, err
	}
	logger.Info("Applied remote document", "sync_id", settings.SyncID,
		"courses", len(doc.Courses), "tasks", len(doc.Tasks))
	return OutcomeApplied, nil
}
