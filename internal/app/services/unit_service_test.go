package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func createTwoCourses(t *testing.T, svc *Services) (a, b *models.Course) {
	t.Helper()
	ctx := context.Background()

	a, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	req := scienceStarter()
	req.Name = "History and Geography"
	b, err = svc.CourseService.CreateCourse(ctx, req)
	require.NoError(t, err)
	return a, b
}

func TestAddUnitAppends(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	course, _ := createTwoCourses(t, svc)

	unit, err := svc.UnitService.AddUnit(ctx, course.ID, &dto.CreateUnitRequest{Title: "Weather", Content: "Seasons"})
	require.NoError(t, err)
	assert.True(t, unit.BelongsTo(course.ID))
	assert.Equal(t, 2, unit.Position)

	page, err := svc.UnitService.ListUnits(ctx, course.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, "Weather", page.Content[2].Title)
}

func TestAddUnitValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	course, _ := createTwoCourses(t, svc)

	_, err := svc.UnitService.AddUnit(ctx, course.ID, &dto.CreateUnitRequest{Title: "Weather", Content: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "content", apperrors.FieldOf(err))

	_, err = svc.UnitService.AddUnit(ctx, uuid.New(), &dto.CreateUnitRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListUnitsPaginates(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	course, _ := createTwoCourses(t, svc)

	page, err := svc.UnitService.ListUnits(ctx, course.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Animals", page.Content[0].Title)
	assert.Equal(t, 2, page.TotalPages)

	page, err = svc.UnitService.ListUnits(ctx, course.ID, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestUnitOwnershipMismatchIsValidationFailure(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	a, b := createTwoCourses(t, svc)
	unit := a.Units[0]

	_, err := svc.UnitService.PatchUnit(ctx, b.ID, unit.ID, map[string]interface{}{"title": "Moved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.ErrorIs(t, err, apperrors.ErrUnitOwnership)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.UnitService.UpdateUnit(ctx, b.ID, unit.ID, &dto.UpdateUnitRequest{Title: "Moved"})
	assert.ErrorIs(t, err, apperrors.ErrUnitOwnership)

	assert.ErrorIs(t, svc.UnitService.DeleteUnit(ctx, b.ID, unit.ID), apperrors.ErrUnitOwnership)

	got, err := svc.UnitService.GetUnit(ctx, a.ID, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plants", got.Title)
}

func TestUnitMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	a, _ := createTwoCourses(t, svc)

	_, err := svc.UnitService.GetUnit(ctx, a.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)

	_, err = svc.UnitService.GetUnit(ctx, uuid.New(), a.Units[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUpdateAndPatchUnit(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	a, _ := createTwoCourses(t, svc)
	unit := a.Units[1]

	updated, err := svc.UnitService.UpdateUnit(ctx, a.ID, unit.ID, &dto.UpdateUnitRequest{Content: "Habitats and food chains"})
	require.NoError(t, err)
	assert.Equal(t, "Animals", updated.Title)
	assert.Equal(t, "Habitats and food chains", updated.Content)

	_, err = svc.UnitService.PatchUnit(ctx, a.ID, unit.ID, map[string]interface{}{"title": 3})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	patched, err := svc.UnitService.PatchUnit(ctx, a.ID, unit.ID, map[string]interface{}{"title": "Animal Kingdom"})
	require.NoError(t, err)
	assert.Equal(t, "Animal Kingdom", patched.Title)

	got, err := svc.UnitService.GetUnit(ctx, a.ID, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animal Kingdom", got.Title)
	assert.Equal(t, "Habitats and food chains", got.Content)
}

func TestDeleteUnit(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	a, _ := createTwoCourses(t, svc)

	require.NoError(t, svc.UnitService.DeleteUnit(ctx, a.ID, a.Units[0].ID))

	course, err := svc.CourseService.GetCourse(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, course.Units, 1)
	assert.Equal(t, "Animals", course.Units[0].Title)

	_, err = svc.UnitService.GetUnit(ctx, a.ID, a.Units[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)
}
