package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-checker/internal/extract"
	"resume-checker/internal/llm"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/storage/object"
	"resume-checker/internal/shared/telemetry"
)

// Upload limits. MIME types outside the allowed set and payloads over the
// byte limit are rejected before any extraction happens.
const (
	MaxUploadBytes   = 2 << 20
	MinParsedTextLen = 50
)

var allowedMimeTypes = map[string]struct{}{
	extract.MimePDF:  {},
	extract.MimeDOCX: {},
}

// Upload is one resume file as received from the caller.
type Upload struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string, fileName string) (string, error)
}

// ReportMailer renders and dispatches an analysis report.
type ReportMailer interface {
	SendReport(ctx context.Context, to string, result AnalysisResult, fileName string) error
}

// Service orchestrates ingest, scoring, persistence and report dispatch.
type Service struct {
	Repo      Repo
	Extractor TextExtractor
	LLM       llm.Client
	Mailer    ReportMailer
	// Archive keeps a copy of the upload and its extracted text. Optional;
	// archive failures never fail the request.
	Archive object.ObjectStore
	// ScoreTimeout bounds each scoring call. Zero means no timeout.
	ScoreTimeout time.Duration
}

// Analyze runs the full pipeline for one upload and returns the stored
// record.
func (s *Service) Analyze(ctx context.Context, up Upload) (ResumeAnalysis, error) {
	started := time.Now()
	metrics.AnalysesStarted.Inc()

	if len(up.Data) == 0 {
		metrics.AnalysesFailed.WithLabelValues("no_file").Inc()
		return ResumeAnalysis{}, ErrNoFile
	}

	mimeType := extract.NormalizeMimeType(up.MimeType, up.FileName, up.Data)
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		metrics.AnalysesFailed.WithLabelValues("unsupported_type").Inc()
		return ResumeAnalysis{}, ErrUnsupportedFileType
	}

	size := up.Size
	if int64(len(up.Data)) > size {
		size = int64(len(up.Data))
	}
	if size > MaxUploadBytes {
		metrics.AnalysesFailed.WithLabelValues("too_large").Inc()
		return ResumeAnalysis{}, ErrFileTooLarge
	}

	text, err := s.Extractor.ExtractText(ctx, up.Data, mimeType, up.FileName)
	if err != nil {
		telemetry.Warn("analysis.extract_failed", map[string]any{
			"file_name": up.FileName,
			"mime_type": mimeType,
			"err":       err.Error(),
		})
		metrics.AnalysesFailed.WithLabelValues("unreadable").Inc()
		return ResumeAnalysis{}, ErrUnreadableContent
	}
	if len(strings.TrimSpace(text)) < MinParsedTextLen {
		metrics.AnalysesFailed.WithLabelValues("unreadable").Inc()
		return ResumeAnalysis{}, ErrUnreadableContent
	}

	raw, err := s.score(ctx, text, up.FileName)
	if err != nil {
		telemetry.Error("analysis.score_failed", map[string]any{
			"file_name": up.FileName,
			"err":       err.Error(),
		})
		metrics.AnalysesFailed.WithLabelValues("scoring").Inc()
		return ResumeAnalysis{}, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	created, err := s.Repo.Create(ctx, ResumeAnalysis{
		FileName:   up.FileName,
		FileSize:   size,
		ParsedText: text,
		Result:     NormalizeResult(raw),
	})
	if err != nil {
		metrics.AnalysesFailed.WithLabelValues("storage").Inc()
		return ResumeAnalysis{}, err
	}

	s.archive(ctx, created, up, text)

	metrics.AnalysesCompleted.Inc()
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": created.ID,
		"file_name":   created.FileName,
		"file_size":   created.FileSize,
		"grade":       created.Result.OverallGrade,
	})
	return created, nil
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (ResumeAnalysis, error) {
	if strings.TrimSpace(analysisID) == "" {
		return ResumeAnalysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// EmailReport sends the stored analysis to the given address.
func (s *Service) EmailReport(ctx context.Context, analysisID, email string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return err
	}

	if s.Mailer == nil {
		return ErrEmailDelivery
	}
	if err := s.Mailer.SendReport(ctx, email, analysis.Result, analysis.FileName); err != nil {
		telemetry.Error("analysis.email_failed", map[string]any{
			"analysis_id": analysisID,
			"err":         err.Error(),
		})
		metrics.ReportEmailsFailed.Inc()
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	metrics.ReportEmailsSent.Inc()
	telemetry.Info("analysis.email_sent", map[string]any{"analysis_id": analysisID})
	return nil
}

// score calls the external model with a per-attempt timeout and one retry.
// The upstream behavior had neither; both are a deliberate strengthening.
func (s *Service) score(ctx context.Context, text, fileName string) (json.RawMessage, error) {
	input := llm.ScoreInput{ResumeText: text, FileName: fileName}

	raw, err := s.scoreOnce(ctx, input)
	if err == nil {
		return raw, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return s.scoreOnce(ctx, input)
}

func (s *Service) scoreOnce(ctx context.Context, input llm.ScoreInput) (json.RawMessage, error) {
	callCtx := ctx
	if s.ScoreTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.ScoreTimeout)
		defer cancel()
	}
	return s.LLM.ScoreResume(callCtx, input)
}

func (s *Service) archive(ctx context.Context, analysis ResumeAnalysis, up Upload, text string) {
	if s.Archive == nil {
		return
	}
	key, _, err := s.Archive.Save(ctx, analysis.ID+"_"+up.FileName, up.MimeType, bytes.NewReader(up.Data))
	if err != nil {
		telemetry.Warn("analysis.archive_failed", map[string]any{
			"analysis_id": analysis.ID,
			"err":         err.Error(),
		})
		return
	}
	if _, err := s.Archive.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Warn("analysis.archive_failed", map[string]any{
			"analysis_id": analysis.ID,
			"err":         err.Error(),
		})
	}
}
