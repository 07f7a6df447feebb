package handler

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/errors"
	"github.com/johnquangdev/meeting-recap/internal/adapter/dto/transcript"
	"github.com/johnquangdev/meeting-recap/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/followup"
	"github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
	pkgvalidator "github.com/johnquangdev/meeting-recap/pkg/validator"
)

// transcriptFormField is the multipart field carrying the uploaded file
const transcriptFormField = "transcript"

// Transcript handles transcript processing and meeting record HTTP requests
type Transcript struct {
	svc            meeting.Service
	composer       *followup.Composer
	maxUploadBytes int
	logger         *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(svc meeting.Service, composer *followup.Composer, maxUploadBytes int, logger *zap.Logger) *Transcript {
	if composer == nil {
		composer = followup.NewComposer("")
	}
	return &Transcript{
		svc:            svc,
		composer:       composer,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Process handles POST /transcripts
// @Summary      Process a transcript
// @Description  Accepts a multipart upload (field "transcript"), a JSON body with content and format, or {"use_demo": true}. The meeting record is stored and its ID returned.
// @Tags         Transcripts
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        request     body      transcript.ProcessTranscriptRequest  false  "Transcript content"
// @Param        transcript  formData  file                                 false  "Transcript file (.txt, .csv, .json)"
// @Success      201         {object}  transcript.ProcessTranscriptResponse  "Record stored"
// @Failure      400         {object}  map[string]interface{}  "Empty transcript or invalid payload"
// @Failure      413         {object}  map[string]interface{}  "Transcript too large"
// @Failure      500         {object}  map[string]interface{}  "Processing failed"
// @Router       /transcripts [post]
func (h *Transcript) Process(c echo.Context) error {
	sub, err := h.bindSubmission(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	stored, err := h.svc.Process(c.Request().Context(), sub)
	if err != nil {
		return HandleError(h.logger, c, h.toAppError(err, ""))
	}

	return HandleSuccessStatus(h.logger, c, http.StatusCreated, presenter.ToProcessTranscriptResponse(stored))
}

// Extract handles POST /transcripts/extract
// @Summary      Extract a meeting record
// @Description  Runs the extraction pipeline on the given content and returns the record without storing it
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.ExtractTranscriptRequest  true  "Transcript content"
// @Success      200      {object}  transcript.MeetingRecordResponse  "Meeting record"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Router       /transcripts/extract [post]
func (h *Transcript) Extract(c echo.Context) error {
	var req transcript.ExtractTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, invalidPayload(err))
	}

	format, err := entities.ParseTranscriptFormat(req.Format)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedFormat(req.Format))
	}

	record, err := h.svc.Extract(c.Request().Context(), entities.Submission{Content: req.Content, Format: format})
	if err != nil {
		return HandleError(h.logger, c, h.toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingRecordResponse(record))
}

// Get handles GET /transcripts/:id
// @Summary      Get a meeting record
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Record ID (UUID)"
// @Success      200  {object}  transcript.StoredRecordResponse  "Stored meeting record"
// @Failure      400  {object}  map[string]interface{}  "Invalid record ID"
// @Failure      404  {object}  map[string]interface{}  "Record not found or expired"
// @Router       /transcripts/{id} [get]
func (h *Transcript) Get(c echo.Context) error {
	stored, err := h.load(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToStoredRecordResponse(stored))
}

// Delete handles DELETE /transcripts/:id
// @Summary      Delete a meeting record
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Record ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Record deleted"
// @Failure      404  {object}  map[string]interface{}  "Record not found"
// @Router       /transcripts/{id} [delete]
func (h *Transcript) Delete(c echo.Context) error {
	id, err := parseRecordID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, h.toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{"id": id.String(), "deleted": true})
}

// Export handles GET /transcripts/:id/export
// @Summary      Export a meeting record
// @Description  Downloads the record as JSON, YAML or Markdown
// @Tags         Transcripts
// @Produce      json
// @Produce      plain
// @Param        id      path      string  true   "Record ID (UUID)"
// @Param        format  query     string  false  "json (default), yaml or md"
// @Success      200     {file}    file    "Exported record"
// @Failure      400     {object}  map[string]interface{}  "Unsupported format"
// @Failure      404     {object}  map[string]interface{}  "Record not found"
// @Router       /transcripts/{id}/export [get]
func (h *Transcript) Export(c echo.Context) error {
	var req transcript.ExportRecordRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedFormat(req.Format))
	}

	stored, err := h.load(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	exporter, err := presenter.NewExporter(req.Format)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedFormat(req.Format))
	}

	var buf bytes.Buffer
	if err := exporter.Export(stored.Record, &buf); err != nil {
		return HandleError(h.logger, c, errors.ErrExportFailed(exporter.Extension(), err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", presenter.ExportFileName(stored.Record, exporter)))
	return c.Blob(http.StatusOK, exporter.ContentType(), buf.Bytes())
}

// Email handles GET /transcripts/:id/email
// @Summary      Compose a follow-up email draft
// @Description  Builds a team draft, or a personal draft when person is set. Nothing is sent.
// @Tags         Transcripts
// @Produce      json
// @Param        id      path      string  true   "Record ID (UUID)"
// @Param        person  query     string  false  "Recipient name; empty or all for the team"
// @Success      200     {object}  transcript.EmailDraftResponse  "Draft"
// @Failure      400     {object}  map[string]interface{}  "Unknown recipient"
// @Failure      404     {object}  map[string]interface{}  "Record not found"
// @Router       /transcripts/{id}/email [get]
func (h *Transcript) Email(c echo.Context) error {
	var req transcript.EmailDraftRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, invalidPayload(err))
	}

	stored, err := h.load(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	draft, err := h.composer.Compose(stored.Record, req.Person)
	if err != nil {
		return HandleError(h.logger, c, h.toAppError(err, stored.ID.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToEmailDraftResponse(draft, stored.Record))
}

func (h *Transcript) load(c echo.Context) (*entities.StoredRecord, error) {
	id, err := parseRecordID(c)
	if err != nil {
		return nil, err
	}
	stored, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return nil, h.toAppError(err, id.String())
	}
	return stored, nil
}

// bindSubmission reads either a multipart upload or a JSON body
func (h *Transcript) bindSubmission(c echo.Context) (entities.Submission, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.bindUpload(c)
	}

	var req transcript.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return entities.Submission{}, errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		if strings.TrimSpace(req.Content) == "" && !req.UseDemo {
			return entities.Submission{}, errors.ErrTranscriptEmpty()
		}
		return entities.Submission{}, invalidPayload(err)
	}

	format, err := entities.ParseTranscriptFormat(req.Format)
	if err != nil {
		return entities.Submission{}, errors.ErrUnsupportedFormat(req.Format)
	}

	return entities.Submission{
		Content:    req.Content,
		Format:     format,
		SourceName: req.SourceName,
		UseDemo:    req.UseDemo,
	}, nil
}

func (h *Transcript) bindUpload(c echo.Context) (entities.Submission, error) {
	file, err := c.FormFile(transcriptFormField)
	if err != nil {
		return entities.Submission{}, errors.ErrInvalidArgument(fmt.Sprintf("multipart field %q is required", transcriptFormField))
	}
	if h.maxUploadBytes > 0 && file.Size > int64(h.maxUploadBytes) {
		return entities.Submission{}, errors.ErrTranscriptTooLarge(h.maxUploadBytes)
	}

	src, err := file.Open()
	if err != nil {
		return entities.Submission{}, errors.ErrInvalidPayload(err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return entities.Submission{}, errors.ErrInvalidPayload(err)
	}

	format := entities.FormatFromFileName(file.Filename)
	if hint := c.FormValue("format"); hint != "" {
		if format, err = entities.ParseTranscriptFormat(hint); err != nil {
			return entities.Submission{}, errors.ErrUnsupportedFormat(hint)
		}
	}

	if h.logger != nil {
		h.logger.Info("📄 Transcript uploaded",
			zap.String("filename", file.Filename),
			zap.Int64("size", file.Size),
			zap.String("format", format.String()),
		)
	}

	return entities.Submission{
		Content:    string(content),
		Format:     format,
		SourceName: file.Filename,
	}, nil
}

// toAppError maps domain errors onto the HTTP error taxonomy
func (h *Transcript) toAppError(err error, recordID string) error {
	var appErr errors.AppError
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.Is(err, entities.ErrEmptyTranscript):
		return errors.ErrTranscriptEmpty()
	case stdErrors.Is(err, entities.ErrTranscriptTooLarge):
		return errors.ErrTranscriptTooLarge(h.maxUploadBytes)
	case stdErrors.Is(err, entities.ErrUnsupportedFormat):
		return errors.ErrUnsupportedFormat("")
	case stdErrors.Is(err, entities.ErrRecordNotFound), stdErrors.Is(err, entities.ErrRecordExpired):
		return errors.ErrRecordNotFound(recordID)
	case stdErrors.Is(err, followup.ErrUnknownRecipient):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrProcessingFailed(err)
	}
}

// invalidPayload reports each failing field in the error details
func invalidPayload(err error) errors.AppError {
	appErr := errors.ErrInvalidPayload(err)
	for field, rule := range pkgvalidator.FieldErrors(err) {
		appErr = appErr.WithDetail(field, rule)
	}
	return appErr
}

func parseRecordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("record ID must be a valid UUID").WithDetail("id", c.Param("id"))
	}
	return id, nil
}
