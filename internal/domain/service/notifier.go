package service

import "context"

// Notifier delivers outbound messages to users.
type Notifier interface {
	// Send delivers a plain text message.
	Send(ctx context.Context, to, subject, body string) error
}
