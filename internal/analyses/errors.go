package analyses

import "errors"

// Error taxonomy for the analysis pipeline. All are terminal for the current
// request; the handler maps each to a status code and JSON error body.
var (
	ErrNoFile              = errors.New("No file uploaded")
	ErrUnsupportedFileType = errors.New("Only PDF and DOCX files are allowed")
	ErrFileTooLarge        = errors.New("File exceeds the 2MB size limit")
	ErrUnreadableContent   = errors.New("Resume content is too short or unreadable")
	ErrScoringUnavailable  = errors.New("Failed to analyze resume with AI")
	ErrNotFound            = errors.New("Analysis not found")
	ErrInvalidEmail        = errors.New("Valid email is required")
	ErrEmailDelivery       = errors.New("Failed to send email")
)
