package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulse/internal/delivery/http/validator"
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

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func testFacility() *entity.Facility {
	minutes := 24.5
	return &entity.Facility{
		ID:       uuid.New(),
		Name:     "Mercy General Hospital",
		Address:  "120 Main St",
		Location: entity.Location{Latitude: 40.0, Longitude: -74.0},
		Type:     entity.FacilityTypeHospital,
		WaitTime: &entity.WaitTimeEstimate{
			Minutes:   minutes,
			Reports:   3,
			UpdatedAt: time.Now(),
		},
		Crowding:    entity.CrowdingModerate,
		RatingCount: 2,
		RatingSum:   9,
	}
}

func TestFacilityHandler_DiscoverFacilities_ByRadius(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	facility := testFacility()
	discoveryUC.EXPECT().
		DiscoverByRadius(mock.Anything, &usecase.DiscoverByRadiusInput{
			Center:   entity.Location{Latitude: 40.0, Longitude: -74.0},
			RadiusKm: 5,
		}).
		Return([]*entity.Facility{facility}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/facilities?lat=40.0&lng=-74.0&radiusKm=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscoverFacilities(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mercy General Hospital")
	assert.Contains(t, rec.Body.String(), `"averageRating":4.5`)
	assert.Contains(t, rec.Body.String(), `"currentWaitTime":24.5`)
}

func TestFacilityHandler_DiscoverFacilities_ByZoom(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	discoveryUC.EXPECT().
		DiscoverByViewport(mock.Anything, &usecase.DiscoverByViewportInput{
			Center:    entity.Location{Latitude: 40.0, Longitude: -74.0},
			ZoomLevel: 13,
		}).
		Return([]*entity.Facility{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/facilities?lat=40.0&lng=-74.0&zoom=13", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscoverFacilities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFacilityHandler_DiscoverFacilities_RequiresRadiusOrZoom(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	req := httptest.NewRequest(http.MethodGet, "/api/facilities?lat=40.0&lng=-74.0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscoverFacilities(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	discoveryUC.AssertNotCalled(t, "DiscoverByRadius", mock.Anything, mock.Anything)
	discoveryUC.AssertNotCalled(t, "DiscoverByViewport", mock.Anything, mock.Anything)
}

func TestFacilityHandler_DiscoverFacilities_RequiresCenter(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	req := httptest.NewRequest(http.MethodGet, "/api/facilities?radiusKm=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscoverFacilities(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFacilityHandler_CreateFacility(t *testing.T) {
	e := newTestEcho()
	facilityUC := mockusecase.NewMockFacilityUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{FacilityUC: facilityUC})

	created := &entity.Facility{
		ID:       uuid.New(),
		Name:     "Downtown Clinic",
		Address:  "1 Elm St",
		Location: entity.Location{Latitude: 40.0, Longitude: -74.0},
		Type:     entity.FacilityTypeClinic,
	}
	facilityUC.EXPECT().
		CreateFacility(mock.Anything, &usecase.CreateFacilityInput{
			Name:     "Downtown Clinic",
			Address:  "1 Elm St",
			Location: entity.Location{Latitude: 40.0, Longitude: -74.0},
			Type:     entity.FacilityTypeClinic,
		}).
		Return(created, nil)

	body := `{"name":"Downtown Clinic","address":"1 Elm St","type":"clinic","location":{"latitude":40.0,"longitude":-74.0}}`
	req := httptest.NewRequest(http.MethodPost, "/api/facilities", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateFacility(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	// Aggregates start absent on a fresh facility
	assert.NotContains(t, rec.Body.String(), "averageRating")
	assert.NotContains(t, rec.Body.String(), "currentWaitTime")
}

func TestFacilityHandler_CreateFacility_MissingName(t *testing.T) {
	e := newTestEcho()
	facilityUC := mockusecase.NewMockFacilityUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{FacilityUC: facilityUC})

	body := `{"address":"1 Elm St","type":"clinic","location":{"latitude":40.0,"longitude":-74.0}}`
	req := httptest.NewRequest(http.MethodPost, "/api/facilities", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateFacility(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	facilityUC.AssertNotCalled(t, "CreateFacility", mock.Anything, mock.Anything)
}

func TestFacilityHandler_GetFacility(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	facility := testFacility()
	discoveryUC.EXPECT().GetFacility(mock.Anything, facility.ID).Return(facility, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id")
	c.SetParamNames("id")
	c.SetParamValues(facility.ID.String())

	require.NoError(t, h.GetFacility(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), facility.ID.String())
	assert.Contains(t, rec.Body.String(), `"crowdingLevel":"moderate"`)
}

func TestFacilityHandler_GetFacility_NotFound(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	unknownID := uuid.New()
	discoveryUC.EXPECT().GetFacility(mock.Anything, unknownID).Return(nil, domainerrors.ErrFacilityNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id")
	c.SetParamNames("id")
	c.SetParamValues(unknownID.String())

	require.NoError(t, h.GetFacility(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "FACILITY_NOT_FOUND")
}

func TestFacilityHandler_GetFacility_InvalidID(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetFacility(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	discoveryUC.AssertNotCalled(t, "GetFacility", mock.Anything, mock.Anything)
}

func TestFacilityHandler_ListReviews(t *testing.T) {
	e := newTestEcho()
	discoveryUC := mockusecase.NewMockDiscoveryUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{DiscoveryUC: discoveryUC})

	facilityID := uuid.New()
	reviews := []*entity.Review{
		{
			ID:              uuid.New(),
			FacilityID:      facilityID,
			UserID:          "user-1",
			UserDisplayName: "Alex",
			Rating:          5,
			Comment:         "Fast and friendly",
			Timestamp:       time.Now(),
		},
	}
	discoveryUC.EXPECT().ListReviews(mock.Anything, facilityID, 5).Return(reviews, nil)

	req := httptest.NewRequest(http.MethodGet, "/?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/facilities/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues(facilityID.String())

	require.NoError(t, h.ListReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fast and friendly")
	assert.Contains(t, rec.Body.String(), `"userDisplayName":"Alex"`)
}

func TestFacilityHandler_HealthCheck(t *testing.T) {
	e := newTestEcho()
	h := NewFacilityHandler(FacilityHandlerParams{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
