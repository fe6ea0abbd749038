package handlers

import (
	"time"

	"focusos/storage"
)

// DefaultGeminiBase is the production text-generation endpoint.
// Overridable so tests can point at a local server.
const DefaultGeminiBase = "https://generativelanguage.googleapis.com"

// Deps holds all handler dependencies.
type Deps struct {
	Entries    storage.EntryStore
	Users      storage.UserStore
	Tokens     *storage.TokenStore
	Zone       *time.Location
	GeminiKey  string
	GeminiBase string
}

// Today returns the current moment shifted into the canonical zone.
// Every calendar-date boundary in the system goes through here, never
// through the host's local clock.
func (d *Deps) Today() time.Time {
	return time.Now().In(d.Zone)
}
