package pushups

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/robuso/conclave/internal/services/pushups Service

// Service runs the daily push-up challenge: day N of the challenge
// means N push-ups, reminded at 16:00 and nagged at 23:59 when still
// unconfirmed.
type Service interface {
	// Confirm marks today's set as done
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)

	// Status reports today's day number and reminder state
	Status(ctx context.Context) (*StatusOutput, error)

	// Tick sends the reminder or nag when their minute has come; Run
	// calls it every minute
	Tick(ctx context.Context) error

	// Run ticks every minute until the context is cancelled
	Run(ctx context.Context)
}
