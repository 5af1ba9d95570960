// Package mail defines the outbound mail collaborator used by the
// notification dispatcher. Transport implementations are external; this
// package ships a console sender for local runs and tests.
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers messages. Failures are surfaced verbatim to the caller;
// whether they are fatal is the caller's decision.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
