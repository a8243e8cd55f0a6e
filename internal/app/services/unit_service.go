package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/query"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// UnitService defines the interface for unit operations. Every operation is
// addressed through the owning course.
type UnitService interface {
	AddUnit(ctx context.Context, courseID uuid.UUID, req *dto.CreateUnitRequest) (*models.Unit, error)
	ListUnits(ctx context.Context, courseID uuid.UUID, page, size int) (query.Page[models.Unit], error)
	GetUnit(ctx context.Context, courseID, unitID uuid.UUID) (*models.Unit, error)
	UpdateUnit(ctx context.Context, courseID, unitID uuid.UUID, req *dto.UpdateUnitRequest) (*models.Unit, error)
	PatchUnit(ctx context.Context, courseID, unitID uuid.UUID, fields map[string]interface{}) (*models.Unit, error)
	DeleteUnit(ctx context.Context, courseID, unitID uuid.UUID) error
}

// unitServiceImpl implements UnitService
type unitServiceImpl struct {
	courseRepo repositories.CourseRepository
	unitRepo   repositories.UnitRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(courseRepo repositories.CourseRepository, unitRepo repositories.UnitRepository) UnitService {
	return &unitServiceImpl{
		courseRepo: courseRepo,
		unitRepo:   unitRepo,
	}
}

// requireCourse returns ErrCourseNotFound unless the course exists
func (s *unitServiceImpl) requireCourse(ctx context.Context, courseID uuid.UUID) error {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error checking course %s: %w", courseID, err)
	}
	if !exists {
		return fmt.Errorf("course %s: %w", courseID, apperrors.ErrCourseNotFound)
	}
	return nil
}

// ownedUnit loads a unit and checks it belongs to courseID
func (s *unitServiceImpl) ownedUnit(ctx context.Context, courseID, unitID uuid.UUID) (*models.Unit, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving unit %s: %w", unitID, err)
	}

	if !unit.BelongsTo(courseID) {
		return nil, apperrors.NewUnitOwnershipError(unitID, courseID)
	}
	return unit, nil
}

// AddUnit appends a new unit to the course
func (s *unitServiceImpl) AddUnit(ctx context.Context, courseID uuid.UUID, req *dto.CreateUnitRequest) (*models.Unit, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	unit := req.ToModel()
	unit.CourseID = &courseID
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("error adding unit to course %s: %w", courseID, err)
	}

	logger.Info().
		Str("courseId", courseID.String()).
		Str("unitId", unit.ID.String()).
		Msg("Unit added")
	return unit, nil
}

// ListUnits pages through the course's units in position order
func (s *unitServiceImpl) ListUnits(ctx context.Context, courseID uuid.UUID, page, size int) (query.Page[models.Unit], error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return query.Page[models.Unit]{}, err
	}

	units, err := s.unitRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return query.Page[models.Unit]{}, fmt.Errorf("error listing units of course %s: %w", courseID, err)
	}
	return query.Paginate(units, page, size), nil
}

// GetUnit retrieves a unit owned by the course
func (s *unitServiceImpl) GetUnit(ctx context.Context, courseID, unitID uuid.UUID) (*models.Unit, error) {
	return s.ownedUnit(ctx, courseID, unitID)
}

// UpdateUnit overwrites the supplied non-blank fields
func (s *unitServiceImpl) UpdateUnit(ctx context.Context, courseID, unitID uuid.UUID, req *dto.UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.ownedUnit(ctx, courseID, unitID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(unit)
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, fmt.Errorf("error updating unit %s: %w", unitID, err)
	}

	logger.Info().Str("courseId", courseID.String()).Str("unitId", unitID.String()).Msg("Unit updated")
	return unit, nil
}

// PatchUnit applies a sparse field map. Nothing is stored if any field is invalid.
func (s *unitServiceImpl) PatchUnit(ctx context.Context, courseID, unitID uuid.UUID, fields map[string]interface{}) (*models.Unit, error) {
	unit, err := s.ownedUnit(ctx, courseID, unitID)
	if err != nil {
		return nil, err
	}

	changed, err := unitPatchFields.apply(unit, fields)
	if err != nil {
		return nil, err
	}
	if !changed {
		return unit, nil
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, fmt.Errorf("error patching unit %s: %w", unitID, err)
	}

	logger.Info().Str("courseId", courseID.String()).Str("unitId", unitID.String()).Msg("Unit patched")
	return unit, nil
}

// DeleteUnit removes a unit owned by the course
func (s *unitServiceImpl) DeleteUnit(ctx context.Context, courseID, unitID uuid.UUID) error {
	if _, err := s.ownedUnit(ctx, courseID, unitID); err != nil {
		return err
	}

	if err := s.unitRepo.Delete(ctx, unitID); err != nil {
		return fmt.Errorf("error deleting unit %s: %w", unitID, err)
	}

	logger.Info().Str("courseId", courseID.String()).Str("unitId", unitID.String()).Msg("Unit deleted")
	return nil
}
