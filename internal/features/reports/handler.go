package reports

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/pkg/cloudinary"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/pagination"
	"github.com/xyz-asif/dropwatch/internal/pkg/response"
)

// EvidenceUploader stores evidence files and hands back their public URLs.
type EvidenceUploader interface {
	UploadEvidence(ctx context.Context, file io.Reader, header *multipart.FileHeader) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}

type Handler struct {
	svc      *Service
	uploader EvidenceUploader
	log      *logger.Logger
}

// NewHandler builds the HTTP adapter. uploader may be nil, in which case
// multipart evidence files are refused.
func NewHandler(svc *Service, uploader EvidenceUploader, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{svc: svc, uploader: uploader, log: log.Named("reports-http")}
}

// SubmitResponse is returned on a successful submission
type SubmitResponse struct {
	Reference string `json:"reference" example:"4A9F2CDE"`
}

// UpdateStatusRequest is the admin status change body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"In Progress"`
}

// TransitionResponse is the updated report plus where it can go next
type TransitionResponse struct {
	Report  *Report  `json:"report"`
	Allowed []Status `json:"allowedTransitions"`
}

// Submit godoc
// @Summary Submit a leak report
// @Description Accepts JSON, or multipart/form-data with up to 10 "evidence" photo/video files
// @Tags reports
// @Accept json,mpfd
// @Produce json
// @Param request body SubmitRequest true "Report details"
// @Success 201 {object} response.SuccessResponse{data=SubmitResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse{details=[]FieldError}
// @Failure 429 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	var uploads []*cloudinary.UploadResult

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			response.BadRequest(c, "Invalid form data", "INVALID_FORM")
			return
		}
		var ok bool
		if uploads, ok = h.uploadEvidence(c, &req); !ok {
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	ref, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		h.discard(c.Request.Context(), uploads)
		h.writeError(c, err)
		return
	}

	response.Created(c, SubmitResponse{Reference: ref})
}

// uploadEvidence pushes every "evidence" file to storage and appends the
// resulting URLs to req. On failure it has already written the response.
func (h *Handler) uploadEvidence(c *gin.Context, req *SubmitRequest) ([]*cloudinary.UploadResult, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid form data", "INVALID_FORM")
		return nil, false
	}
	req.Evidence = append(req.Evidence, form.Value["evidence"]...)
	files := form.File["evidence"]
	if len(files) == 0 {
		return nil, true
	}
	if h.uploader == nil {
		response.BadRequest(c, "Evidence uploads are not enabled", "EVIDENCE_DISABLED")
		return nil, false
	}
	if len(files)+len(req.Evidence) > 10 {
		response.ValidationFailed(c, "Submission is invalid", []FieldError{{Field: "evidence", Message: "must be at most 10 long"}})
		return nil, false
	}

	var uploads []*cloudinary.UploadResult
	for _, fh := range files {
		res, err := h.uploadOne(c.Request.Context(), fh)
		if err != nil {
			h.discard(c.Request.Context(), uploads)
			var verr *evidenceFileError
			if errors.As(err, &verr) {
				response.BadRequest(c, verr.Error(), "INVALID_FILE")
			} else {
				h.log.Error("evidence upload failed: %v", err)
				response.ServiceUnavailable(c, "Failed to upload evidence, please try again", "UPLOAD_FAILED")
			}
			return nil, false
		}
		uploads = append(uploads, res)
		req.Evidence = append(req.Evidence, res.URL)
	}
	return uploads, true
}

type evidenceFileError struct{ err error }

func (e *evidenceFileError) Error() string { return e.err.Error() }

func (h *Handler) uploadOne(ctx context.Context, fh *multipart.FileHeader) (*cloudinary.UploadResult, error) {
	if _, err := cloudinary.ValidateEvidenceFile(fh); err != nil {
		return nil, &evidenceFileError{err: err}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, &evidenceFileError{err: err}
	}
	defer f.Close()
	return h.uploader.UploadEvidence(ctx, f, fh)
}

// discard removes uploads that will never be referenced by a stored report.
func (h *Handler) discard(ctx context.Context, uploads []*cloudinary.UploadResult) {
	ctx = context.WithoutCancel(ctx)
	for _, u := range uploads {
		if err := h.uploader.Delete(ctx, u.PublicID, u.ResourceType); err != nil {
			h.log.Warn("could not delete orphaned upload %s: %v", u.PublicID, err)
		}
	}
}

// CheckStatus godoc
// @Summary Check a report's status
// @Description Look a report up by its reference code. Reporter details are not returned.
// @Tags reports
// @Produce json
// @Param reference path string true "Reference code"
// @Success 200 {object} response.SuccessResponse{data=PublicReport}
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports/{reference} [get]
func (h *Handler) CheckStatus(c *gin.Context) {
	report, found, err := h.svc.CheckStatus(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "No report with that reference code", "REPORT_NOT_FOUND")
		return
	}

	response.Success(c, report.Public())
}

// Dashboard godoc
// @Summary Dashboard summary
// @Description Counts by status, category and municipality, a daily timeseries and map points
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=Summary}
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	summary, err := h.svc.ListForDashboard(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, summary)
}

// List godoc
// @Summary List reports
// @Description Newest first, optionally filtered by status and municipality
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(Pending, In Progress, Resolved, Rejected)
// @Param municipality query string false "Municipality filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.PaginatedResponse{data=[]Report}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /admin/reports [get]
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if raw := c.Query("status"); raw != "" {
		st, ok := ParseStatus(raw)
		if !ok {
			response.BadRequest(c, "Unknown status "+raw, "INVALID_STATUS")
			return
		}
		filter.Status = st
	}
	filter.Municipality = strings.TrimSpace(c.Query("municipality"))
	filter.Page, filter.Limit = pagination.FromQuery(c.Query("page"), c.Query("limit"))

	items, page, err := h.svc.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Paginated(c, items, page)
}

// UpdateStatus godoc
// @Summary Change a report's status
// @Description Pending may become In Progress, Resolved or Rejected; In Progress may become Resolved or Rejected
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Reference code"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse{data=TransitionResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /admin/reports/{reference}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	requested, ok := ParseStatus(req.Status)
	if !ok || strings.TrimSpace(req.Status) == "" {
		response.BadRequest(c, "Unknown status "+req.Status, "INVALID_STATUS")
		return
	}

	report, err := h.svc.Transition(c.Request.Context(), c.Param("reference"), requested)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, TransitionResponse{Report: report, Allowed: AllowedTransitions(report.Status)})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		verr *ValidationError
		terr *InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, "Submission is invalid", verr.Fields)
	case errors.As(err, &terr):
		response.Conflict(c, terr.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "No report with that reference code", "REPORT_NOT_FOUND")
	case errors.Is(err, ErrStaleHandle):
		response.Conflict(c, "The report changed while it was being updated, please reload and try again", "STALE_REPORT")
	case errors.Is(err, ErrUnavailable):
		response.StoreUnavailable(c)
	default:
		h.log.Error("unexpected error: %v", err)
		response.InternalServerError(c, "Something went wrong", "INTERNAL_ERROR")
	}
}
