package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-checker/internal/analyses"
)

type captureSender struct {
	last Message
	err  error
}

func (c *captureSender) Send(_ context.Context, msg Message) error {
	if c.err != nil {
		return c.err
	}
	c.last = msg
	return nil
}

func sampleResult(t *testing.T) analyses.AnalysisResult {
	t.Helper()
	return analyses.NormalizeResult(json.RawMessage(`{
		"atsScore": 85,
		"writingScore": 72,
		"overallGrade": "B+",
		"categories": {
			"content": {"checks": [
				{"name": "ATS Parsing", "status": "pass", "explanation": "Parses cleanly"},
				{"name": "Repeated Words", "status": "warning", "explanation": "Some repetition", "improvement": "Vary your verbs"}
			]}
		},
		"actionItems": [
			{"priority": "high", "task": "Add metrics", "detail": "Quantify your impact"}
		]
	}`))
}

func TestServiceSendReport(t *testing.T) {
	sender := &captureSender{}
	svc := &Service{Sender: sender, From: `"All About Resume" <noreply@allaboutresume.com>`}

	err := svc.SendReport(context.Background(), "user@example.com", sampleResult(t), "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", sender.last.To)
	assert.Equal(t, "Your Resume Analysis Results - B+ Grade", sender.last.Subject)
	assert.Contains(t, sender.last.HTML, "resume.pdf")
}

func TestServiceSendReportPropagatesSenderError(t *testing.T) {
	sendErr := errors.New("relay down")
	svc := &Service{Sender: &captureSender{err: sendErr}, From: "noreply@example.com"}

	err := svc.SendReport(context.Background(), "user@example.com", sampleResult(t), "resume.pdf")
	assert.ErrorIs(t, err, sendErr)
}

func TestRenderReport(t *testing.T) {
	subject, html, err := RenderReport(sampleResult(t), "resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Your Resume Analysis Results - B+ Grade", subject)

	// html/template escapes "+" in text context, so B+ renders as B&#43;.
	assert.Contains(t, html, "<div class=\"grade\">B&#43;</div>")
	assert.Contains(t, html, ">85<")
	assert.Contains(t, html, ">72<")
	assert.Contains(t, html, "Content (1/2 passed)")
	assert.Contains(t, html, "ATS Parsing")
	assert.Contains(t, html, "Vary your verbs", "improvement shown for non-pass checks")
	assert.Contains(t, html, "Add metrics")
	assert.Contains(t, html, "priority-high")
	assert.Contains(t, html, "All About Resume")
}

func TestRenderReportPlainGrade(t *testing.T) {
	result := analyses.NormalizeResult(json.RawMessage(`{"overallGrade": "A"}`))

	subject, html, err := RenderReport(result, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Your Resume Analysis Results - A Grade", subject)
	assert.Contains(t, html, `<div class="grade">A</div>`)
}

func TestRenderReportOmitsImprovementForPassingChecks(t *testing.T) {
	result := analyses.NormalizeResult(json.RawMessage(`{
		"categories": {
			"format": {"checks": [
				{"name": "File Type", "status": "pass", "explanation": "PDF", "improvement": "should never render"}
			]}
		}
	}`))

	_, html, err := RenderReport(result, "resume.pdf")
	require.NoError(t, err)
	assert.NotContains(t, html, "should never render")
}

func TestRenderReportEscapesModelText(t *testing.T) {
	result := analyses.NormalizeResult(json.RawMessage(`{
		"actionItems": [{"priority": "high", "task": "<script>alert(1)</script>", "detail": "x"}]
	}`))

	_, html, err := RenderReport(result, `<img src=x onerror=alert(1)>.pdf`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<img src=x")
}

type fakeSES struct {
	last *ses.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = params
	return &ses.SendEmailOutput{}, nil
}

func TestSESSenderSend(t *testing.T) {
	fake := &fakeSES{}
	sender := &SESSender{Client: fake}

	err := sender.Send(context.Background(), Message{
		From:    "noreply@example.com",
		To:      "user@example.com",
		Subject: "subject line",
		HTML:    "<p>body</p>",
	})
	require.NoError(t, err)

	require.NotNil(t, fake.last)
	assert.Equal(t, []string{"user@example.com"}, fake.last.Destination.ToAddresses)
	assert.Equal(t, "subject line", *fake.last.Message.Subject.Data)
	assert.Equal(t, "<p>body</p>", *fake.last.Message.Body.Html.Data)
	assert.Equal(t, "noreply@example.com", *fake.last.Source)
}

func TestSESSenderSendError(t *testing.T) {
	sender := &SESSender{Client: &fakeSES{err: errors.New("throttled")}}

	err := sender.Send(context.Background(), Message{To: "user@example.com"})
	assert.ErrorContains(t, err, "throttled")
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "noreply@allaboutresume.com",
		envelopeAddress(`"All About Resume" <noreply@allaboutresume.com>`))
	assert.Equal(t, "plain@example.com", envelopeAddress("plain@example.com"))
}

func TestBuildMIMEMessage(t *testing.T) {
	body := string(buildMIMEMessage(Message{
		From:    "noreply@example.com",
		To:      "user@example.com",
		Subject: "hello",
		HTML:    "<p>hi</p>",
	}))

	assert.True(t, strings.HasPrefix(body, "From: noreply@example.com\r\n"))
	assert.Contains(t, body, "To: user@example.com\r\n")
	assert.Contains(t, body, "Subject: hello\r\n")
	assert.Contains(t, body, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(body, "\r\n<p>hi</p>"))
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), Message{To: "user@example.com"}))
}
