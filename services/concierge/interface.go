package concierge

import (
	"miohost/models"
)

// Service is the concierge surface the HTTP layer talks to: it owns the
// session registry and hands out live sessions.
type Service interface {
	// CreateSession opens a new dialogue session under the given locale.
	CreateSession(locale models.Locale) *Session

	// Session returns the live session with the given id.
	Session(id string) (*Session, error)

	// DropSession removes a session from the registry.
	DropSession(id string)
}
