package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PulseHandlerParams holds dependencies for PulseHandler, injected by Fx.
type PulseHandlerParams struct {
	fx.In

	PulseUC usecase.PulseUsecase
	Logger  *slog.Logger
}

// PulseHandler holds dependencies for the consensus write-path handlers
type PulseHandler struct {
	pulseUC usecase.PulseUsecase
	logger  *slog.Logger
}

// NewPulseHandler is the constructor for PulseHandler
func NewPulseHandler(params PulseHandlerParams) *PulseHandler {
	return &PulseHandler{
		pulseUC: params.PulseUC,
		logger:  params.Logger,
	}
}

// SubmitReviewRequest represents the request body for submitting a review.
// Rating range, wait-time sign, and crowding values are checked by the
// usecase so their dedicated error codes surface.
type SubmitReviewRequest struct {
	UserID          string   `json:"userId" validate:"required"`
	UserDisplayName string   `json:"userDisplayName" validate:"required"`
	Rating          int      `json:"rating"`
	Comment         string   `json:"comment"`
	WaitTime        *float64 `json:"waitTime"`
	CrowdingLevel   string   `json:"crowdingLevel"`
}

// UpdateWaitTimeRequest represents the request body for a wait-time report
type UpdateWaitTimeRequest struct {
	WaitTimeMinutes *float64 `json:"waitTimeMinutes" validate:"required"`
	CrowdingLevel   string   `json:"crowdingLevel"`
}

// SubmitReview handles appending a review and folding it into the
// facility aggregate
func (h *PulseHandler) SubmitReview(c echo.Context) error {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid facility ID")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.pulseUC.SubmitReview(c.Request().Context(), &usecase.SubmitReviewInput{
		FacilityID:      facilityID,
		UserID:          req.UserID,
		UserDisplayName: req.UserDisplayName,
		Rating:          req.Rating,
		Comment:         req.Comment,
		WaitTime:        req.WaitTime,
		CrowdingLevel:   entity.CrowdingLevel(req.CrowdingLevel),
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": output.ReviewID.String()}, "Review submitted successfully")
}

// UpdateWaitTime handles folding a wait-time report into the facility
// aggregate without leaving a review behind
func (h *PulseHandler) UpdateWaitTime(c echo.Context) error {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid facility ID")
	}

	var req UpdateWaitTimeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wait-time input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if _, err := h.pulseUC.UpdateWaitTime(c.Request().Context(), &usecase.UpdateWaitTimeInput{
		FacilityID:    facilityID,
		Minutes:       *req.WaitTimeMinutes,
		CrowdingLevel: entity.CrowdingLevel(req.CrowdingLevel),
	}); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Wait time updated successfully")
}

// handleAppError handles application errors
func (h *PulseHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
