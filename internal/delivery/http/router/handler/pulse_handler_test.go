package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	mockusecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewContext(e *echo.Echo, facilityID string, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues(facilityID)

	return c, rec
}

func newWaitTimeContext(e *echo.Echo, facilityID string, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id/wait-time")
	c.SetParamNames("id")
	c.SetParamValues(facilityID)

	return c, rec
}

func TestPulseHandler_SubmitReview(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	facilityID := uuid.New()
	reviewID := uuid.New()

	var captured *usecase.SubmitReviewInput
	pulseUC.EXPECT().
		SubmitReview(mock.Anything, mock.AnythingOfType("*usecase.SubmitReviewInput")).
		Run(func(_ context.Context, input *usecase.SubmitReviewInput) {
			captured = input
		}).
		Return(&usecase.SubmitReviewOutput{ReviewID: reviewID, Facility: testFacility()}, nil)

	body := `{"userId":"user-1","userDisplayName":"Alex","rating":5,"comment":"Quick visit","waitTime":20,"crowdingLevel":"low"}`
	c, rec := newReviewContext(e, facilityID.String(), body)

	require.NoError(t, h.SubmitReview(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), reviewID.String())

	require.NotNil(t, captured)
	assert.Equal(t, facilityID, captured.FacilityID)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, 5, captured.Rating)
	require.NotNil(t, captured.WaitTime)
	assert.InDelta(t, 20, *captured.WaitTime, 0.001)
	assert.Equal(t, entity.CrowdingLow, captured.CrowdingLevel)
}

func TestPulseHandler_SubmitReview_RequiresAttribution(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	body := `{"rating":5}`
	c, rec := newReviewContext(e, uuid.NewString(), body)

	require.NoError(t, h.SubmitReview(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	pulseUC.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything)
}

func TestPulseHandler_SubmitReview_RatingOutOfRange(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	pulseUC.EXPECT().
		SubmitReview(mock.Anything, mock.AnythingOfType("*usecase.SubmitReviewInput")).
		Return(nil, domainerrors.ErrRatingOutOfRange)

	body := `{"userId":"user-1","userDisplayName":"Alex","rating":9}`
	c, rec := newReviewContext(e, uuid.NewString(), body)

	require.NoError(t, h.SubmitReview(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATING_OUT_OF_RANGE")
}

func TestPulseHandler_SubmitReview_InvalidFacilityID(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	c, rec := newReviewContext(e, "not-a-uuid", `{"userId":"user-1","userDisplayName":"Alex","rating":5}`)

	require.NoError(t, h.SubmitReview(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	pulseUC.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything)
}

func TestPulseHandler_UpdateWaitTime(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	facilityID := uuid.New()
	pulseUC.EXPECT().
		UpdateWaitTime(mock.Anything, &usecase.UpdateWaitTimeInput{
			FacilityID:    facilityID,
			Minutes:       45,
			CrowdingLevel: entity.CrowdingHigh,
		}).
		Return(testFacility(), nil)

	body := `{"waitTimeMinutes":45,"crowdingLevel":"high"}`
	c, rec := newWaitTimeContext(e, facilityID.String(), body)

	require.NoError(t, h.UpdateWaitTime(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPulseHandler_UpdateWaitTime_ZeroMinutesIsValid(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	facilityID := uuid.New()
	pulseUC.EXPECT().
		UpdateWaitTime(mock.Anything, &usecase.UpdateWaitTimeInput{
			FacilityID: facilityID,
			Minutes:    0,
		}).
		Return(testFacility(), nil)

	// Zero minutes is a real report, distinct from no report at all
	c, rec := newWaitTimeContext(e, facilityID.String(), `{"waitTimeMinutes":0}`)

	require.NoError(t, h.UpdateWaitTime(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPulseHandler_UpdateWaitTime_RequiresMinutes(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	c, rec := newWaitTimeContext(e, uuid.NewString(), `{"crowdingLevel":"low"}`)

	require.NoError(t, h.UpdateWaitTime(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	pulseUC.AssertNotCalled(t, "UpdateWaitTime", mock.Anything, mock.Anything)
}

func TestPulseHandler_UpdateWaitTime_NegativeMinutes(t *testing.T) {
	e := newTestEcho()
	pulseUC := mockusecase.NewMockPulseUsecase(t)
	h := NewPulseHandler(PulseHandlerParams{PulseUC: pulseUC})

	pulseUC.EXPECT().
		UpdateWaitTime(mock.Anything, mock.AnythingOfType("*usecase.UpdateWaitTimeInput")).
		Return(nil, domainerrors.ErrNegativeWaitTime)

	c, rec := newWaitTimeContext(e, uuid.NewString(), `{"waitTimeMinutes":-5}`)

	require.NoError(t, h.UpdateWaitTime(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NEGATIVE_WAIT_TIME")
}
