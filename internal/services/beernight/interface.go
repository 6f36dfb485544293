package beernight

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/robuso/conclave/internal/services/beernight Service

// Service runs guild drinking sessions: one active session per guild,
// a rule deck drawn without repeats, periodic drink nudges and a
// timed automatic end.
type Service interface {
	// Start begins a session and draws the first rule
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// MoreRules draws another rule into the active session
	MoreRules(ctx context.Context, input *MoreRulesInput) (*MoreRulesOutput, error)

	// End finishes the active session
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// Tick sends a drink nudge and auto-ends expired sessions; Run
	// calls it periodically
	Tick(ctx context.Context, guildID string) error

	// Run nudges the guild's session until the context is cancelled
	Run(ctx context.Context, guildID string)
}
