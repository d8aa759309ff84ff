package mailer

import (
	"context"

	"resume-checker/internal/shared/telemetry"
)

// LogSender logs messages instead of delivering them. It is the default in
// development, where no mail provider is configured.
type LogSender struct{}

// Send records the message and succeeds.
func (LogSender) Send(_ context.Context, msg Message) error {
	telemetry.Info("mailer.log_delivery", map[string]any{
		"to":         msg.To,
		"subject":    msg.Subject,
		"body_bytes": len(msg.HTML),
	})
	return nil
}
