package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/service"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler holds the assessment service dependency.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// --- DTOs ---

// CreateAssessmentRequest defines the expected JSON for recording a session.
// Circumference and skinfold keys must come from the recognized site
// vocabularies; unknown keys are rejected rather than silently dropped.
type CreateAssessmentRequest struct {
	Date           string             `json:"date" binding:"omitempty"` // YYYY-MM-DD, defaults to today
	WeightKg       float64            `json:"weightKg" binding:"required,gt=0"`
	HeightCm       float64            `json:"heightCm" binding:"required,gt=0"`
	ActivityLevel  string             `json:"activityLevel" binding:"omitempty"`
	Circumferences map[string]float64 `json:"circumferences"`
	Skinfolds      map[string]float64 `json:"skinfolds"`
}

// AssessmentResponse is the DTO for returning a recorded session.
type AssessmentResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"clientId"`
	Date           time.Time          `json:"date"`
	WeightKg       float64            `json:"weightKg"`
	HeightCm       float64            `json:"heightCm"`
	ActivityLevel  string             `json:"activityLevel,omitempty"`
	Circumferences map[string]float64 `json:"circumferences,omitempty"`
	Skinfolds      map[string]float64 `json:"skinfolds,omitempty"`
	PhotoID        *string            `json:"photoId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type ConfirmPhotoUploadRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required,gt=0"`
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoResponse struct {
	ID           string    `json:"id"`
	AssessmentID string    `json:"assessmentId"`
	FileName     string    `json:"fileName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// MapAssessmentToResponse converts a domain.Assessment to its DTO.
func MapAssessmentToResponse(a *domain.Assessment) AssessmentResponse {
	if a == nil {
		return AssessmentResponse{}
	}
	resp := AssessmentResponse{
		ID:            a.ID.Hex(),
		ClientID:      a.ClientID.Hex(),
		Date:          a.Date,
		WeightKg:      a.WeightKg,
		HeightCm:      a.HeightCm,
		ActivityLevel: string(a.ActivityLevel),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if len(a.Circumferences) > 0 {
		resp.Circumferences = make(map[string]float64, len(a.Circumferences))
		for site, value := range a.Circumferences {
			resp.Circumferences[string(site)] = value
		}
	}
	if len(a.Skinfolds) > 0 {
		resp.Skinfolds = make(map[string]float64, len(a.Skinfolds))
		for site, value := range a.Skinfolds {
			resp.Skinfolds[string(site)] = value
		}
	}
	if a.PhotoID != nil {
		photoIDHex := a.PhotoID.Hex()
		resp.PhotoID = &photoIDHex
	}
	return resp
}

// MapAssessmentsToResponse converts a slice of assessments to DTOs.
func MapAssessmentsToResponse(assessments []domain.Assessment) []AssessmentResponse {
	responses := make([]AssessmentResponse, len(assessments))
	for i, a := range assessments {
		responses[i] = MapAssessmentToResponse(&a)
	}
	return responses
}

// Recognized wire keys, built once from the site vocabularies.
var (
	knownCircumferenceSites = func() map[string]domain.CircumferenceSite {
		m := make(map[string]domain.CircumferenceSite, len(domain.CircumferenceSites))
		for _, site := range domain.CircumferenceSites {
			m[string(site)] = site
		}
		return m
	}()
	knownSkinfoldSites = func() map[string]domain.SkinfoldSite {
		m := make(map[string]domain.SkinfoldSite, len(domain.SkinfoldSites))
		for _, site := range domain.SkinfoldSites {
			m[string(site)] = site
		}
		return m
	}()
	knownActivityLevels = map[string]domain.ActivityLevel{
		string(domain.ActivitySedentary):  domain.ActivitySedentary,
		string(domain.ActivityLight):      domain.ActivityLight,
		string(domain.ActivityModerate):   domain.ActivityModerate,
		string(domain.ActivityVeryActive): domain.ActivityVeryActive,
		string(domain.ActivityExtreme):    domain.ActivityExtreme,
	}
)

// parseCircumferences validates wire keys against the site vocabulary.
func parseCircumferences(raw map[string]float64) (domain.Circumferences, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(domain.Circumferences, len(raw))
	for key, value := range raw {
		site, ok := knownCircumferenceSites[key]
		if !ok {
			return nil, fmt.Errorf("unknown circumference site %q", key)
		}
		if value < 0 {
			return nil, fmt.Errorf("circumference %q must not be negative", key)
		}
		out[site] = value
	}
	return out, nil
}

// parseSkinfolds validates wire keys against the skinfold vocabulary.
func parseSkinfolds(raw map[string]float64) (domain.Skinfolds, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(domain.Skinfolds, len(raw))
	for key, value := range raw {
		site, ok := knownSkinfoldSites[key]
		if !ok {
			return nil, fmt.Errorf("unknown skinfold site %q", key)
		}
		if value < 0 {
			return nil, fmt.Errorf("skinfold %q must not be negative", key)
		}
		out[site] = value
	}
	return out, nil
}

// --- Handler Methods ---

// CreateAssessment godoc
// @Summary Record a measurement session
// @Description Stores a new assessment for a client of the authenticated trainer.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param assessment body CreateAssessmentRequest true "Session measurements"
// @Success 201 {object} AssessmentResponse "Assessment recorded"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId}/assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	var activityLevel domain.ActivityLevel
	if req.ActivityLevel != "" {
		level, ok := knownActivityLevels[req.ActivityLevel]
		if !ok {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown activity level %q.", req.ActivityLevel))
			return
		}
		activityLevel = level
	}

	circumferences, err := parseCircumferences(req.Circumferences)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	skinfolds, err := parseSkinfolds(req.Skinfolds)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.assessmentService.RecordAssessment(c.Request.Context(), trainerID, clientID, service.NewAssessmentInput{
		Date:           date,
		WeightKg:       req.WeightKg,
		HeightCm:       req.HeightCm,
		ActivityLevel:  activityLevel,
		Circumferences: circumferences,
		Skinfolds:      skinfolds,
	})
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapAssessmentToResponse(assessment))
}

// GetAssessmentHistory godoc
// @Summary List a client's assessments
// @Description Retrieves all sessions of a client, oldest first.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {array} AssessmentResponse "Assessment history"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId}/assessments [get]
func (h *AssessmentHandler) GetAssessmentHistory(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	history, err := h.assessmentService.GetHistory(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}
	if history == nil {
		c.JSON(http.StatusOK, []AssessmentResponse{})
		return
	}

	c.JSON(http.StatusOK, MapAssessmentsToResponse(history))
}

// GetAssessment godoc
// @Summary Get an assessment
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Success 200 {object} AssessmentResponse "Assessment details"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Router /assessments/{assessmentId} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	assessment, err := h.assessmentService.GetAssessment(c.Request.Context(), trainerID, assessmentID)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapAssessmentToResponse(assessment))
}

// DeleteAssessment godoc
// @Summary Delete an assessment
// @Description Removes a session and its progress photo, if any.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Success 204 "Assessment deleted"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Router /assessments/{assessmentId} [delete]
func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	if err := h.assessmentService.DeleteAssessment(c.Request.Context(), trainerID, assessmentID); err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMetrics godoc
// @Summary Compute the metrics of a session
// @Description Returns BMI, BMR/TDEE, calorie targets, ideal weight range, the 7-site body fat block, waist-hip ratio, region sums and the radar series.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Success 200 {object} service.AssessmentMetrics "Computed metrics"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Router /assessments/{assessmentId}/metrics [get]
func (h *AssessmentHandler) GetMetrics(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	metrics, err := h.assessmentService.ComputeMetrics(c.Request.Context(), trainerID, assessmentID)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetSymmetry godoc
// @Summary Bilateral symmetry report for a session
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Success 200 {array} perimetry.SymmetryEntry "Symmetry entries, pairs with both sides measured"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Router /assessments/{assessmentId}/symmetry [get]
func (h *AssessmentHandler) GetSymmetry(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	report, err := h.assessmentService.SymmetryReport(c.Request.Context(), trainerID, assessmentID)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetComparison godoc
// @Summary Compare two sessions of a client
// @Description Compares two sessions: weight and BMI deltas, per-site variation and the comparative radar series. Defaults to the first and latest session when the dates are omitted.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param from query string false "Earlier session date (YYYY-MM-DD), defaults to the first session"
// @Param to query string false "Later session date (YYYY-MM-DD), defaults to the latest session"
// @Success 200 {object} service.AssessmentComparison "Comparison result"
// @Failure 400 {object} gin.H "Invalid or missing dates"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "No session on one of the dates"
// @Router /clients/{clientId}/comparison [get]
func (h *AssessmentHandler) GetComparison(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	var fromDate, toDate time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD.")
			return
		}
		fromDate = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD.")
			return
		}
		toDate = parsed
	}

	comparison, err := h.assessmentService.Compare(c.Request.Context(), trainerID, clientID, fromDate, toDate)
	if err != nil {
		if errors.Is(err, service.ErrComparisonNeedsTwoDates) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// RequestPhotoUpload godoc
// @Summary Request a presigned photo upload URL
// @Tags Photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Param upload body PhotoUploadURLRequest true "Content type of the image"
// @Success 200 {object} service.PhotoUploadURLResponse "Presigned URL and object key"
// @Failure 400 {object} gin.H "Invalid content type"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Failure 409 {object} gin.H "Assessment already has a photo"
// @Router /assessments/{assessmentId}/photo/upload-url [post]
func (h *AssessmentHandler) RequestPhotoUpload(c *gin.Context) {
	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	resp, err := h.assessmentService.RequestPhotoUploadURL(c.Request.Context(), trainerID, assessmentID, req.ContentType)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmPhotoUpload godoc
// @Summary Confirm a completed photo upload
// @Description Records the photo metadata and links it to the assessment. Call after the PUT to the presigned URL succeeded.
// @Tags Photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Param confirmation body ConfirmPhotoUploadRequest true "Uploaded object details"
// @Success 201 {object} PhotoResponse "Photo linked"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment not found"
// @Failure 409 {object} gin.H "Assessment already has a photo"
// @Router /assessments/{assessmentId}/photo/confirm [post]
func (h *AssessmentHandler) ConfirmPhotoUpload(c *gin.Context) {
	var req ConfirmPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	photo, err := h.assessmentService.ConfirmPhotoUpload(c.Request.Context(), trainerID, assessmentID, req.ObjectKey, req.FileName, req.FileSize, req.ContentType)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PhotoResponse{
		ID:           photo.ID.Hex(),
		AssessmentID: photo.AssessmentID.Hex(),
		FileName:     photo.FileName,
		ContentType:  photo.ContentType,
		Size:         photo.Size,
		UploadedAt:   photo.UploadedAt,
	})
}

// GetPhotoDownloadURL godoc
// @Summary Get a presigned photo download URL
// @Tags Photos
// @Produce json
// @Security BearerAuth
// @Param assessmentId path string true "Assessment ID"
// @Success 200 {object} gin.H "downloadUrl"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Assessment or photo not found"
// @Router /assessments/{assessmentId}/photo/download-url [get]
func (h *AssessmentHandler) GetPhotoDownloadURL(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	assessmentID, ok := pathObjectID(c, "assessmentId")
	if !ok {
		return
	}

	url, err := h.assessmentService.GetPhotoDownloadURL(c.Request.Context(), trainerID, assessmentID)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

// respondAssessmentError maps assessment service errors to HTTP status codes.
func respondAssessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrPhotoNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAssessmentAccessDenied),
		errors.Is(err, service.ErrClientAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPhotoAlreadyLinked):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidContentType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUploadURLError), errors.Is(err, service.ErrDownloadURLError):
		abortWithError(c, http.StatusInternalServerError, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
