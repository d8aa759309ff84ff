package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/server/respond"
)

// Handler exposes the analysis pipeline over HTTP.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the analysis endpoints on the given group. Extra
// middleware applies to the upload route only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, analyzeMiddleware ...gin.HandlerFunc) {
	analyzeChain := append(analyzeMiddleware, h.Analyze)
	rg.POST("/analyze", analyzeChain...)
	rg.GET("/results/:id", h.GetResult)
	rg.POST("/results/:id/email", h.EmailResult)
}

// Analyze accepts a multipart upload under the "file" field, runs the
// pipeline and returns the new analysis ID.
func (h *Handler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrNoFile.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrNoFile.Error())
		return
	}
	defer f.Close()

	// Read at most one byte past the limit; anything larger is rejected by
	// size without buffering the whole payload.
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	size := fileHeader.Size
	if int64(len(data)) > size {
		size = int64(len(data))
	}

	created, err := h.Service.Analyze(c.Request.Context(), Upload{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     size,
		Data:     data,
	})
	if err != nil {
		h.writeError(c, err, "Failed to analyze resume")
		return
	}

	c.Set("analysisId", created.ID)
	respond.OK(c, gin.H{"id": created.ID})
}

// GetResult returns a stored analysis result by ID.
func (h *Handler) GetResult(c *gin.Context) {
	analysis, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to fetch analysis")
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.OK(c, gin.H{"analysis": analysis.Result})
}

type emailRequest struct {
	Email string `json:"email"`
}

// EmailResult sends the analysis report to the address in the request body.
func (h *Handler) EmailResult(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrInvalidEmail.Error())
		return
	}

	analysisID := c.Param("id")
	if err := h.Service.EmailReport(c.Request.Context(), analysisID, req.Email); err != nil {
		h.writeError(c, err, "Failed to send email")
		return
	}

	c.Set("analysisId", analysisID)
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoFile),
		errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrUnreadableContent),
		errors.Is(err, ErrInvalidEmail):
		respond.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrScoringUnavailable):
		respond.Error(c, http.StatusInternalServerError, ErrScoringUnavailable.Error())
	case errors.Is(err, ErrEmailDelivery):
		respond.Error(c, http.StatusInternalServerError, ErrEmailDelivery.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, fallback)
	}
}
