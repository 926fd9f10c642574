package cli

import (
	"github.com/julianstephens/smartsched/internal/advisor"
	"github.com/julianstephens/smartsched/internal/analysis"
	"github.com/julianstephens/smartsched/internal/keyring"
	"github.com/julianstephens/smartsched/internal/models"
	"github.com/julianstephens/smartsched/internal/remote"
	"github.com/julianstephens/smartsched/internal/storage"
	"github.com/julianstephens/smartsched/internal/syncer"
)

// Context carries the wired collaborators into every command. All of them
// are constructed once in main and threaded through; nothing is reached
// via package globals.
type Context struct {
	Store  storage.Provider
	Remote remote.Store
	Sync   *syncer.Coordinator
	Cache  *analysis.Cache

	// NewAdvisor builds the AI advisor on demand so that commands that
	// never analyze do not require a credential.
	NewAdvisor func() (advisor.Advisor, error)

	Debug bool
}

// ResolveRemoteKey fills a blank remote key from the OS keyring. The
// resolved value is used in memory only and never persisted.
func ResolveRemoteKey(settings models.Settings) models.Settings {
	if settings.RemoteKey == "" && settings.RemoteURL != "" {
		if key, err := keyring.GetRemoteKey(); err == nil {
			settings.RemoteKey = key
		}
	}
	return settings
}
