// Package mailer renders analysis reports and delivers them over a
// pluggable transport.
package mailer

import (
	"context"

	"resume-checker/internal/analyses"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Service renders analysis reports and hands them to a Sender.
type Service struct {
	Sender Sender
	// From is the envelope sender, e.g. `"All About Resume" <noreply@allaboutresume.com>`.
	From string
}

// SendReport renders the report for one analysis and sends it.
func (s *Service) SendReport(ctx context.Context, to string, result analyses.AnalysisResult, fileName string) error {
	subject, html, err := RenderReport(result, fileName)
	if err != nil {
		return err
	}
	return s.Sender.Send(ctx, Message{
		From:    s.From,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}
