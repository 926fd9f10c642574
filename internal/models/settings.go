package models

// Settings holds the cloud sync configuration. It is persisted locally
// only; it configures access to the remote store and is never itself
// part of the synced document.
type Settings struct {
	RemoteURL string `json:"remote_url,omitempty"`
	RemoteKey string `json:"remote_key,omitempty"`
	SyncID    string `json:"sync_id,omitempty"`
}

// SyncConfigured reports whether both remote credentials are present.
// Absent-together is the valid "sync disabled" state.
func (s Settings) SyncConfigured() bool {
	return s.RemoteURL != "" && s.RemoteKey != ""
}
