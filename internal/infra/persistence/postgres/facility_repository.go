// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// facilityRepository implements the repository.FacilityRepository interface.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{
		db: db,
	}
}

// CreateFacility persists a new facility with zeroed aggregates.
func (repo *facilityRepository) CreateFacility(ctx context.Context, facility *entity.Facility) error {
	facilityM := fromFacilityDomain(facility)

	if err := repo.db.WithContext(ctx).Create(facilityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFacility
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required facility information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create facility")
	}

	// Update the entity with generated values
	facility.ID = facilityM.ID
	facility.Version = facilityM.Version
	facility.CreatedAt = facilityM.CreatedAt
	facility.UpdatedAt = facilityM.UpdatedAt

	return nil
}

// FindFacilityByID retrieves a facility by its unique ID.
func (repo *facilityRepository) FindFacilityByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	var facilityM model.FacilityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&facilityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFacilityNotFound
		}

		return nil, errors.Wrap(err, "failed to find facility by ID")
	}

	return toFacilityDomain(&facilityM), nil
}

// FindFacilityByPlaceID retrieves a facility by its provider place id.
func (repo *facilityRepository) FindFacilityByPlaceID(ctx context.Context, placeID string) (*entity.Facility, error) {
	var facilityM model.FacilityModel

	if err := repo.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		First(&facilityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFacilityNotFound
		}

		return nil, errors.Wrap(err, "failed to find facility by place ID")
	}

	return toFacilityDomain(&facilityM), nil
}

// FindFacilitiesByIDs batch-fetches facilities, omitting ids that no longer exist.
func (repo *facilityRepository) FindFacilitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Facility, error) {
	if len(ids) == 0 {
		return []*entity.Facility{}, nil
	}

	var facilityModels []*model.FacilityModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&facilityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find facilities by IDs")
	}

	facilities := make([]*entity.Facility, 0, len(facilityModels))
	for _, facilityM := range facilityModels {
		facilities = append(facilities, toFacilityDomain(facilityM))
	}

	return facilities, nil
}

// UpdateAggregate writes all derived aggregate fields in a single statement
// guarded by the version check. Either the whole fold becomes visible or,
// when a concurrent writer advanced the version first, nothing does.
func (repo *facilityRepository) UpdateAggregate(ctx context.Context, facility *entity.Facility, expectedVersion int64) error {
	updates := map[string]any{
		"rating_count": facility.RatingCount,
		"rating_sum":   facility.RatingSum,
		"version":      expectedVersion + 1,
		"updated_at":   time.Now(),
	}

	if avg, ok := facility.AverageRating(); ok {
		updates["average_rating"] = avg
	}
	if facility.WaitTime != nil {
		updates["current_wait_time"] = facility.WaitTime.Minutes
		updates["wait_time_reports"] = facility.WaitTime.Reports
		updates["last_wait_time_update"] = facility.WaitTime.UpdatedAt
	}
	if facility.Crowding != entity.CrowdingUnknown {
		updates["crowding_level"] = string(facility.Crowding)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FacilityModel{}).
		Where("id = ? AND version = ?", facility.ID, expectedVersion).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update facility aggregate")
	}

	if result.RowsAffected == 0 {
		// Either a concurrent fold advanced the version or the facility is
		// gone; the caller re-reads inside its retry loop and finds out.
		return repository.ErrVersionConflict
	}

	facility.Version = expectedVersion + 1

	return nil
}

// toFacilityDomain converts a GORM FacilityModel to a domain Facility entity.
func toFacilityDomain(data *model.FacilityModel) *entity.Facility {
	if data == nil {
		return nil
	}

	facility := &entity.Facility{
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
		Location: entity.Location{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Type:        entity.FacilityType(data.Type),
		PhoneNumber: data.PhoneNumber,
		Website:     data.Website,
		RatingCount: data.RatingCount,
		RatingSum:   data.RatingSum,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.PlaceID != nil {
		facility.PlaceID = *data.PlaceID
	}
	if data.CrowdingLevel != nil {
		facility.Crowding = entity.CrowdingLevel(*data.CrowdingLevel)
	}
	if data.WaitTimeReports > 0 && data.CurrentWaitTime != nil {
		estimate := &entity.WaitTimeEstimate{
			Minutes: *data.CurrentWaitTime,
			Reports: data.WaitTimeReports,
		}
		if data.LastWaitTimeUpdate != nil {
			estimate.UpdatedAt = *data.LastWaitTimeUpdate
		}
		facility.WaitTime = estimate
	}

	return facility
}

// fromFacilityDomain converts a domain Facility entity to a GORM FacilityModel.
func fromFacilityDomain(data *entity.Facility) *model.FacilityModel {
	if data == nil {
		return nil
	}

	facilityM := &model.FacilityModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		Latitude:    data.Location.Latitude,
		Longitude:   data.Location.Longitude,
		Type:        string(data.Type),
		PhoneNumber: data.PhoneNumber,
		Website:     data.Website,
		RatingCount: data.RatingCount,
		RatingSum:   data.RatingSum,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.PlaceID != "" {
		placeID := data.PlaceID
		facilityM.PlaceID = &placeID
	}
	if avg, ok := data.AverageRating(); ok {
		facilityM.AverageRating = &avg
	}
	if data.Crowding != entity.CrowdingUnknown {
		crowding := string(data.Crowding)
		facilityM.CrowdingLevel = &crowding
	}
	if data.WaitTime != nil {
		minutes := data.WaitTime.Minutes
		updatedAt := data.WaitTime.UpdatedAt
		facilityM.CurrentWaitTime = &minutes
		facilityM.WaitTimeReports = data.WaitTime.Reports
		facilityM.LastWaitTimeUpdate = &updatedAt
	}

	return facilityM
}
