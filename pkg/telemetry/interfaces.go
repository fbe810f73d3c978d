package telemetry

import "context"

// Sink sends events to a downstream destination (SQS, SNS, HTTP, Pub/Sub).
type Sink interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}
