// Package handler contains the Echo HTTP handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FacilityHandlerParams holds dependencies for FacilityHandler, injected by Fx.
type FacilityHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	FacilityUC  usecase.FacilityUsecase
	Logger      *slog.Logger
}

// FacilityHandler holds dependencies for facility discovery and onboarding handlers
type FacilityHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	facilityUC  usecase.FacilityUsecase
	logger      *slog.Logger
}

// NewFacilityHandler is the constructor for FacilityHandler
func NewFacilityHandler(params FacilityHandlerParams) *FacilityHandler {
	return &FacilityHandler{
		discoveryUC: params.DiscoveryUC,
		facilityUC:  params.FacilityUC,
		logger:      params.Logger,
	}
}

// DiscoverFacilitiesRequest represents the query parameters for discovery.
// Exactly one of radiusKm or zoom selects the search radius.
type DiscoverFacilitiesRequest struct {
	Latitude  *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Longitude *float64 `query:"lng" validate:"required,min=-180,max=180"`
	RadiusKm  *float64 `query:"radiusKm"`
	Zoom      *float64 `query:"zoom"`
}

// CreateFacilityRequest represents the request body for onboarding a facility
type CreateFacilityRequest struct {
	Name        string          `json:"name" validate:"required"`
	Address     string          `json:"address" validate:"required"`
	Location    LocationPayload `json:"location" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	PlaceID     string          `json:"placeId"`
	PhoneNumber string          `json:"phoneNumber"`
	Website     string          `json:"website"`
}

// LocationPayload is the coordinate pair carried in request bodies
type LocationPayload struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// FacilityResponse is the wire representation of a facility with its
// community consensus aggregates
type FacilityResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Type        string          `json:"type"`
	Location    LocationPayload `json:"location"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	Website     string          `json:"website,omitempty"`

	RatingCount        int64      `json:"ratingCount"`
	AverageRating      *float64   `json:"averageRating,omitempty"`
	CurrentWaitTime    *float64   `json:"currentWaitTime,omitempty"`
	WaitTimeReports    int64      `json:"waitTimeReports"`
	LastWaitTimeUpdate *time.Time `json:"lastWaitTimeUpdate,omitempty"`
	CrowdingLevel      string     `json:"crowdingLevel,omitempty"`
}

// ReviewResponse is the wire representation of a ledger review
type ReviewResponse struct {
	ID              string    `json:"id"`
	FacilityID      string    `json:"facilityId"`
	UserID          string    `json:"userId"`
	UserDisplayName string    `json:"userDisplayName"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	WaitTime        *float64  `json:"waitTime,omitempty"`
	CrowdingLevel   string    `json:"crowdingLevel,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// HealthCheck handles the liveness probe
func (h *FacilityHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// DiscoverFacilities handles radius and viewport discovery queries
func (h *FacilityHandler) DiscoverFacilities(c echo.Context) error {
	var req DiscoverFacilitiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discovery query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if req.RadiusKm == nil && req.Zoom == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Either radiusKm or zoom is required")
	}

	center := entity.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}

	var (
		facilities []*entity.Facility
		err        error
	)

	if req.RadiusKm != nil {
		facilities, err = h.discoveryUC.DiscoverByRadius(c.Request().Context(), &usecase.DiscoverByRadiusInput{
			Center:   center,
			RadiusKm: *req.RadiusKm,
		})
	} else {
		facilities, err = h.discoveryUC.DiscoverByViewport(c.Request().Context(), &usecase.DiscoverByViewportInput{
			Center:    center,
			ZoomLevel: *req.Zoom,
		})
	}

	if err != nil {
		return h.handleAppError(c, err)
	}

	results := make([]*FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		results = append(results, toFacilityResponse(facility))
	}

	return response.Success(c, http.StatusOK, results, "Facilities retrieved successfully")
}

// CreateFacility handles onboarding a new facility
func (h *FacilityHandler) CreateFacility(c echo.Context) error {
	var req CreateFacilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	facility, err := h.facilityUC.CreateFacility(c.Request().Context(), &usecase.CreateFacilityInput{
		Name:        req.Name,
		Address:     req.Address,
		Location:    entity.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude},
		Type:        entity.FacilityType(req.Type),
		PlaceID:     req.PlaceID,
		PhoneNumber: req.PhoneNumber,
		Website:     req.Website,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFacilityResponse(facility), "Facility created successfully")
}

// GetFacility handles retrieving a single facility with its aggregates
func (h *FacilityHandler) GetFacility(c echo.Context) error {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid facility ID")
	}

	facility, err := h.discoveryUC.GetFacility(c.Request().Context(), facilityID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFacilityResponse(facility), "Facility retrieved successfully")
}

// ListReviews handles retrieving the newest reviews of a facility
func (h *FacilityHandler) ListReviews(c echo.Context) error {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid facility ID")
	}

	var query struct {
		Limit int `query:"limit"`
	}
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid limit")
	}

	reviews, err := h.discoveryUC.ListReviews(c.Request().Context(), facilityID, query.Limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	results := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, results, "Reviews retrieved successfully")
}

// handleAppError handles application errors
func (h *FacilityHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// toFacilityResponse maps the facility entity onto the wire representation.
// Absent aggregates stay absent: no rating yields no averageRating field and
// no wait-time report yields no currentWaitTime field.
func toFacilityResponse(facility *entity.Facility) *FacilityResponse {
	resp := &FacilityResponse{
		ID:      facility.ID.String(),
		Name:    facility.Name,
		Address: facility.Address,
		Type:    string(facility.Type),
		Location: LocationPayload{
			Latitude:  facility.Location.Latitude,
			Longitude: facility.Location.Longitude,
		},
		PhoneNumber:   facility.PhoneNumber,
		Website:       facility.Website,
		RatingCount:   facility.RatingCount,
		CrowdingLevel: string(facility.Crowding),
	}

	if avg, ok := facility.AverageRating(); ok {
		resp.AverageRating = &avg
	}

	if facility.WaitTime != nil {
		minutes := facility.WaitTime.Minutes
		updatedAt := facility.WaitTime.UpdatedAt
		resp.CurrentWaitTime = &minutes
		resp.WaitTimeReports = facility.WaitTime.Reports
		resp.LastWaitTimeUpdate = &updatedAt
	}

	return resp
}

// toReviewResponse maps the review entity onto the wire representation
func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:              review.ID.String(),
		FacilityID:      review.FacilityID.String(),
		UserID:          review.UserID,
		UserDisplayName: review.UserDisplayName,
		Rating:          review.Rating,
		Comment:         review.Comment,
		WaitTime:        review.WaitTime,
		CrowdingLevel:   string(review.CrowdingLevel),
		Timestamp:       review.Timestamp,
	}
}
