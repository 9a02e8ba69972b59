package models

import "fmt"

// SessionState is the lifecycle state of an EditSession.
type SessionState string

const (
	SessionOpen      SessionState = "open"
	SessionCommitted SessionState = "committed"
	SessionAborted   SessionState = "aborted"
)

// EditSession is the ephemeral transaction handle of one Google Play edit.
// Mutations issued inside the session are invisible until the session is
// committed; an uncommitted session is silently discarded by the platform.
//
// A session must never stay Open past the call that created it: every exit
// path transitions it to Committed or Aborted exactly once. Committed and
// Aborted are terminal; a second transition is a programming error and panics.
type EditSession struct {
	// SessionID is the platform-assigned edit id.
	SessionID string `json:"session_id"`

	// App is the application the session was opened against.
	App AppIdentity `json:"app"`

	State SessionState `json:"state"`
}

// MarkCommitted transitions the session Open -> Committed.
func (s *EditSession) MarkCommitted() {
	s.transition(SessionCommitted)
}

// MarkAborted transitions the session Open -> Aborted.
func (s *EditSession) MarkAborted() {
	s.transition(SessionAborted)
}

func (s *EditSession) transition(to SessionState) {
	if s.State != SessionOpen {
		panic(fmt.Sprintf("edit session %s: invalid transition %s -> %s", s.SessionID, s.State, to))
	}
	s.State = to
}
