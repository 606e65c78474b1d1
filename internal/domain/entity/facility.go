// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FacilityType classifies a healthcare facility.
type FacilityType string

const (
	FacilityTypeHospital   FacilityType = "hospital"
	FacilityTypeUrgentCare FacilityType = "urgent_care"
	FacilityTypeClinic     FacilityType = "clinic"
	FacilityTypePharmacy   FacilityType = "pharmacy"
	FacilityTypeOther      FacilityType = "other"
)

// IsValid reports whether the facility type is one of the known values.
func (t FacilityType) IsValid() bool {
	switch t {
	case FacilityTypeHospital, FacilityTypeUrgentCare, FacilityTypeClinic, FacilityTypePharmacy, FacilityTypeOther:
		return true
	}

	return false
}

// CrowdingLevel is the most recently reported crowding estimate for a facility.
// The zero value means no report has mentioned crowding yet.
type CrowdingLevel string

const (
	CrowdingUnknown  CrowdingLevel = ""
	CrowdingLow      CrowdingLevel = "low"
	CrowdingModerate CrowdingLevel = "moderate"
	CrowdingHigh     CrowdingLevel = "high"
)

// IsValid reports whether the crowding level is a known reported value.
// The unknown zero value is not a reportable level.
func (l CrowdingLevel) IsValid() bool {
	switch l {
	case CrowdingLow, CrowdingModerate, CrowdingHigh:
		return true
	}

	return false
}

// Location is a WGS84 coordinate pair, immutable after facility creation.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WaitTimeEstimate holds the smoothed community wait-time state for a facility.
// It exists only after the first wait-time report; absence and zero minutes
// are distinct states.
type WaitTimeEstimate struct {
	Minutes   float64   `json:"minutes"`    // Smoothed estimate in minutes.
	Reports   int64     `json:"reports"`    // Number of reports folded in.
	UpdatedAt time.Time `json:"updated_at"` // Time of the most recent fold.
}

// Facility represents a healthcare facility together with its community
// consensus aggregates (rating statistics, wait time, crowding).
type Facility struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Location Location     `json:"location"`
	Type     FacilityType `json:"type"`

	// Optional metadata carried over from the place-search provider.
	PlaceID     string `json:"place_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Website     string `json:"website,omitempty"`

	RatingCount int64   `json:"rating_count"`
	RatingSum   float64 `json:"rating_sum"`

	WaitTime *WaitTimeEstimate `json:"wait_time,omitempty"`
	Crowding CrowdingLevel     `json:"crowding_level,omitempty"`

	// Version is the optimistic-concurrency token of the persisted row.
	// Aggregate writes succeed only when the stored version still matches.
	Version int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageRating returns the derived mean rating. The boolean is false while
// no rating has been folded in; there is no meaningful average then.
func (f *Facility) AverageRating() (float64, bool) {
	if f.RatingCount == 0 {
		return 0, false
	}

	return f.RatingSum / float64(f.RatingCount), true
}

// ApplyRating folds a single 1-5 star rating into the aggregate.
// Rating folds are commutative: the resulting average does not depend on
// submission order.
func (f *Facility) ApplyRating(rating int) {
	f.RatingCount++
	f.RatingSum += float64(rating)
}

// ApplyWaitTimeReport folds a wait-time report into the smoothed estimate.
//
// The first report seeds the estimate unsmoothed. Every later report applies
// the 0.7/0.3 exponential weighting, which favors the newest community report
// while damping single outliers and needs no history to be stored. The
// recurrence is order-dependent on purpose: replaying the same reports in a
// different order yields a different estimate.
func (f *Facility) ApplyWaitTimeReport(minutes float64, crowding CrowdingLevel, now time.Time) {
	if f.WaitTime == nil {
		f.WaitTime = &WaitTimeEstimate{Minutes: minutes}
	} else {
		f.WaitTime.Minutes = f.WaitTime.Minutes*0.7 + minutes*0.3
	}
	f.WaitTime.Reports++
	f.WaitTime.UpdatedAt = now

	if crowding.IsValid() {
		f.Crowding = crowding
	}
}
