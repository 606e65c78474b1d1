package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacility_AverageRating_Undefined(t *testing.T) {
	facility := &Facility{}

	avg, ok := facility.AverageRating()
	assert.False(t, ok)
	assert.Zero(t, avg)
}

func TestFacility_ApplyRating_OrderIndependent(t *testing.T) {
	ratings := []int{5, 1, 3, 4, 2}

	forward := &Facility{}
	for _, r := range ratings {
		forward.ApplyRating(r)
	}

	backward := &Facility{}
	for i := len(ratings) - 1; i >= 0; i-- {
		backward.ApplyRating(ratings[i])
	}

	avgForward, ok := forward.AverageRating()
	require.True(t, ok)
	avgBackward, ok := backward.AverageRating()
	require.True(t, ok)

	assert.Equal(t, int64(5), forward.RatingCount)
	assert.InDelta(t, 3.0, avgForward, 1e-9)
	assert.Equal(t, avgForward, avgBackward)
}

func TestFacility_ApplyWaitTimeReport_FirstReportSeedsUnsmoothed(t *testing.T) {
	now := time.Now()
	facility := &Facility{}

	facility.ApplyWaitTimeReport(45, CrowdingLow, now)

	require.NotNil(t, facility.WaitTime)
	assert.Equal(t, 45.0, facility.WaitTime.Minutes)
	assert.Equal(t, int64(1), facility.WaitTime.Reports)
	assert.Equal(t, now, facility.WaitTime.UpdatedAt)
	assert.Equal(t, CrowdingLow, facility.Crowding)
}

func TestFacility_ApplyWaitTimeReport_OrderDependent(t *testing.T) {
	now := time.Now()

	highFirst := &Facility{}
	highFirst.ApplyWaitTimeReport(30, CrowdingUnknown, now)
	assert.Equal(t, 30.0, highFirst.WaitTime.Minutes)
	highFirst.ApplyWaitTimeReport(10, CrowdingUnknown, now)
	assert.InDelta(t, 24.0, highFirst.WaitTime.Minutes, 1e-9)

	lowFirst := &Facility{}
	lowFirst.ApplyWaitTimeReport(10, CrowdingUnknown, now)
	assert.Equal(t, 10.0, lowFirst.WaitTime.Minutes)
	lowFirst.ApplyWaitTimeReport(30, CrowdingUnknown, now)
	assert.InDelta(t, 16.0, lowFirst.WaitTime.Minutes, 1e-9)

	// The smoothed estimate depends on report order.
	assert.NotEqual(t, highFirst.WaitTime.Minutes, lowFirst.WaitTime.Minutes)
	assert.Equal(t, int64(2), highFirst.WaitTime.Reports)
	assert.Equal(t, int64(2), lowFirst.WaitTime.Reports)
}

func TestFacility_ApplyWaitTimeReport_CrowdingKeptWhenNotProvided(t *testing.T) {
	now := time.Now()
	facility := &Facility{}

	facility.ApplyWaitTimeReport(20, CrowdingHigh, now)
	facility.ApplyWaitTimeReport(25, CrowdingUnknown, now.Add(time.Minute))

	assert.Equal(t, CrowdingHigh, facility.Crowding)
	assert.Equal(t, now.Add(time.Minute), facility.WaitTime.UpdatedAt)
}

func TestFacility_ReviewThenRatingOnlyReview(t *testing.T) {
	now := time.Now()
	facility := &Facility{}

	// Review with rating 5 and a 20 minute wait report.
	facility.ApplyRating(5)
	facility.ApplyWaitTimeReport(20, CrowdingLow, now)

	avg, ok := facility.AverageRating()
	require.True(t, ok)
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, int64(1), facility.RatingCount)
	assert.Equal(t, 20.0, facility.WaitTime.Minutes)
	assert.Equal(t, int64(1), facility.WaitTime.Reports)

	// Rating-only review must not touch the wait-time state.
	facility.ApplyRating(3)

	avg, ok = facility.AverageRating()
	require.True(t, ok)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 20.0, facility.WaitTime.Minutes)
	assert.Equal(t, int64(1), facility.WaitTime.Reports)
}

func TestFacilityType_IsValid(t *testing.T) {
	assert.True(t, FacilityTypeHospital.IsValid())
	assert.True(t, FacilityTypeOther.IsValid())
	assert.False(t, FacilityType("spa").IsValid())
}

func TestCrowdingLevel_IsValid(t *testing.T) {
	assert.True(t, CrowdingModerate.IsValid())
	assert.False(t, CrowdingUnknown.IsValid())
	assert.False(t, CrowdingLevel("packed").IsValid())
}
