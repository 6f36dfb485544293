package models

import "time"

// GameSession tracks a single game being played by monitored members.
// There is at most one GameSession per game name per process.
type GameSession struct {
	// Game is the activity name reported by the platform
	Game string

	// ActivePlayers holds the member IDs currently playing this game
	ActivePlayers map[string]struct{}

	// PlayerIDs holds the same members in join order
	PlayerIDs []string

	// PlayerNames mirrors PlayerIDs with display names
	PlayerNames []string

	// StartTime is when the player count first reached the activation
	// threshold. Zero until then; never cleared while the session lives.
	StartTime time.Time

	// TrackingStart is when the player count dropped below the
	// threshold. Zero while the session is active.
	TrackingStart time.Time

	// EventID is the platform scheduled event linked to this session,
	// empty when no event has been created or the event was ended
	EventID string

	// MessageID is the status message posted for this session
	MessageID string

	// LastUpdate is the time of the most recent observation that
	// touched this session
	LastUpdate time.Time
}

// NewGameSession creates an empty session for a game.
func NewGameSession(game string) *GameSession {
	return &GameSession{
		Game:          game,
		ActivePlayers: make(map[string]struct{}),
		PlayerIDs:     []string{},
		PlayerNames:   []string{},
	}
}

// Clone returns an independent copy of the session.
func (g *GameSession) Clone() *GameSession {
	dup := *g
	dup.ActivePlayers = make(map[string]struct{}, len(g.ActivePlayers))
	for id := range g.ActivePlayers {
		dup.ActivePlayers[id] = struct{}{}
	}
	dup.PlayerIDs = append([]string{}, g.PlayerIDs...)
	dup.PlayerNames = append([]string{}, g.PlayerNames...)
	return &dup
}

// AddPlayer inserts a member, keeping join order. Re-adding an
// existing member only refreshes their display name.
func (g *GameSession) AddPlayer(memberID, displayName string) {
	// Names restored from a checkpoint have no matching member IDs;
	// they are superseded once live observations arrive.
	if len(g.PlayerNames) > len(g.PlayerIDs) {
		g.PlayerNames = g.PlayerNames[:len(g.PlayerIDs)]
	}

	if g.HasPlayer(memberID) {
		for i, id := range g.PlayerIDs {
			if id == memberID {
				g.PlayerNames[i] = displayName
				return
			}
		}
		return
	}

	g.ActivePlayers[memberID] = struct{}{}
	g.PlayerIDs = append(g.PlayerIDs, memberID)
	g.PlayerNames = append(g.PlayerNames, displayName)
}

// RemovePlayer drops a member from the session if present.
func (g *GameSession) RemovePlayer(memberID string) {
	if !g.HasPlayer(memberID) {
		return
	}

	delete(g.ActivePlayers, memberID)
	for i, id := range g.PlayerIDs {
		if id == memberID {
			g.PlayerIDs = append(g.PlayerIDs[:i], g.PlayerIDs[i+1:]...)
			g.PlayerNames = append(g.PlayerNames[:i], g.PlayerNames[i+1:]...)
			return
		}
	}
}

// PlayerCount returns the number of members currently in the session.
func (g *GameSession) PlayerCount() int {
	return len(g.ActivePlayers)
}

// HasPlayer reports whether the member is part of this session.
func (g *GameSession) HasPlayer(memberID string) bool {
	_, ok := g.ActivePlayers[memberID]
	return ok
}
