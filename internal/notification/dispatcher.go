package notification

import (
	"context"
	"fmt"

	"github.com/jonathan/job-portal/internal/mail"
	"github.com/jonathan/job-portal/internal/types"
)

// Dispatcher renders a status-specific message and submits it to the mail
// collaborator. The transport's success or failure is surfaced verbatim.
type Dispatcher struct {
	sender mail.Sender
	from   string
}

// NewDispatcher creates a dispatcher sending from the given address.
func NewDispatcher(sender mail.Sender, from string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from}
}

// Notify composes the message for the new status and sends it to the
// candidate. Callers invoke it exactly once per committed transition.
func (d *Dispatcher) Notify(ctx context.Context, app *types.Application, job *types.Job, newStatus types.Status) error {
	tmpl := renderTemplate(app, job, newStatus)

	msg := mail.Message{
		From:    d.from,
		To:      app.CandidateEmail,
		Subject: tmpl.subject,
		Body:    tmpl.body,
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s notification: %w", newStatus, err)
	}
	return nil
}
