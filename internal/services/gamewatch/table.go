package gamewatch

import (
	"github.com/robuso/conclave/internal/models"
)

// update folds one observation into the table. A member belongs to at
// most one game: joining a game removes them from every other session
// in the same call, and an empty game removes them outright.
//
// Sessions emptied here are deleted only when they carry no external
// event or message; teardown of linked events belongs to the policy
// pass.
func (s *service) update(memberID, displayName, game string) {
	now := s.clock.Now()

	if game != "" {
		session, ok := s.table[game]
		if !ok {
			session = models.NewGameSession(game)
			s.table[game] = session
		}

		if !session.HasPlayer(memberID) {
			s.markDirtyIfLinked(session)
		}
		session.AddPlayer(memberID, displayName)
		session.LastUpdate = now
	}

	for name, session := range s.table {
		if name == game || !session.HasPlayer(memberID) {
			continue
		}

		session.RemovePlayer(memberID)
		session.LastUpdate = now
		s.markDirtyIfLinked(session)

		if session.PlayerCount() == 0 && session.EventID == "" && session.MessageID == "" {
			delete(s.table, name)
		}
	}
}

// prune removes members absent from this cycle's observation set, so
// the table rebuilds the who-is-playing view even when a member left
// the guild or lost the monitored role mid-session and no idle
// observation was ever emitted for them. Sessions emptied here keep
// their event; the policy pass tears it down through the grace rule.
func (s *service) prune(seen map[string]struct{}) {
	now := s.clock.Now()

	for name, session := range s.table {
		for _, id := range append([]string{}, session.PlayerIDs...) {
			if _, ok := seen[id]; ok {
				continue
			}

			session.RemovePlayer(id)
			session.LastUpdate = now
			s.markDirtyIfLinked(session)
		}

		if session.PlayerCount() == 0 && session.EventID == "" && session.MessageID == "" {
			delete(s.table, name)
		}
	}
}

// markDirtyIfLinked flags the checkpoint stale when a session with a
// live event changes membership, so persisted player names stay
// current.
func (s *service) markDirtyIfLinked(session *models.GameSession) {
	if session.EventID != "" {
		s.dirty = true
	}
}
