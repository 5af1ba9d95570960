package mail

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleSender "delivers" messages by logging them. It stands in for a
// real transport in local and demo runs.
type ConsoleSender struct {
	logger *zap.Logger
}

// NewConsoleSender creates a console sender writing through the given logger.
func NewConsoleSender(logger *zap.Logger) *ConsoleSender {
	return &ConsoleSender{logger: logger}
}

// Send logs the message and always succeeds.
func (s *ConsoleSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email sent",
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.Body)),
	)
	return nil
}
