package gamewatch

import "context"

// Service drives the game-session monitor: it folds presence
// observations into the state table, applies the session policy and
// keeps the platform and the checkpoint in sync.
type Service interface {
	// Restore loads checkpointed sessions; call once before Run
	Restore(ctx context.Context) error

	// RunCycle executes a single poll cycle
	RunCycle(ctx context.Context) error

	// Run ticks RunCycle until the context is cancelled, then
	// attempts a final checkpoint
	Run(ctx context.Context)

	// Snapshot returns a read-only view of the tracked games
	Snapshot() []GameGroup

	// Checkpoint persists the current table
	Checkpoint(ctx context.Context) error
}
