package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/query"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func newTestServices() *Services {
	return NewServices(repositories.NewMemoryRepositories(), nil, 0)
}

func scienceStarter() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Name:        "Science Starter",
		Description: "Introduction to physics, chemistry, and biology concepts.",
		Board:       "STATE",
		Medium:      []string{"ENGLISH", "KANNADA"},
		Grade:       "CLASS_2",
		Subject:     "SCIENCE",
		Units: []dto.CreateUnitRequest{
			{Title: "Plants", Content: "Parts of a plant"},
			{Title: "Animals", Content: "Animal habitats"},
		},
	}
}

func TestCreateCourseRejectsBlankName(t *testing.T) {
	svc := newTestServices()
	req := scienceStarter()
	req.Name = "  "

	_, err := svc.CourseService.CreateCourse(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "name", apperrors.FieldOf(err))

	page, err := svc.CourseService.ListCourses(context.Background(), query.Params{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalElements)
}

func TestCreateCourseRejectsEmptyMedium(t *testing.T) {
	svc := newTestServices()
	req := scienceStarter()
	req.Medium = []string{}

	_, err := svc.CourseService.CreateCourse(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "medium", apperrors.FieldOf(err))
}

func TestCreateAndGetCourse(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, created.Units, 2)

	got, err := svc.CourseService.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Starter", got.Name)
	assert.Equal(t, []string{"ENGLISH", "KANNADA"}, got.Medium)
	assert.Equal(t, "Plants", got.Units[0].Title)
}

func TestCreateCourseWithoutUnits(t *testing.T) {
	svc := newTestServices()
	req := scienceStarter()
	req.Units = nil

	created, err := svc.CourseService.CreateCourse(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, created.Units)
	assert.Empty(t, created.Units)
}

func TestGetCourseNotFound(t *testing.T) {
	_, err := newTestServices().CourseService.GetCourse(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdateCourseOverwritesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	updated, err := svc.CourseService.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		Name:  "Science Explorer",
		Board: "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Science Explorer", updated.Name)
	assert.Equal(t, "STATE", updated.Board)
	assert.Len(t, updated.Units, 2)
}

func TestUpdateCourseReplacesUnits(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)
	plants, animals := created.Units[0], created.Units[1]

	updated, err := svc.CourseService.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		Units: []dto.UnitUpsertRequest{
			{ID: &animals.ID, Title: "Animals", Content: "Wild and domestic"},
			{Title: "Weather", Content: "Seasons"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Units, 2)
	assert.Equal(t, animals.ID, updated.Units[0].ID)
	assert.Equal(t, "Wild and domestic", updated.Units[0].Content)
	assert.Equal(t, "Weather", updated.Units[1].Title)

	_, err = svc.UnitService.GetUnit(ctx, created.ID, plants.ID)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "detached unit is no longer owned")
}

func TestUpdateCourseRejectsBlankUnitTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	_, err = svc.CourseService.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		Units: []dto.UnitUpsertRequest{{Title: "", Content: "x"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "units[0].title", apperrors.FieldOf(err))

	got, err := svc.CourseService.GetCourse(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Units, 2)
}

func TestUpdateCourseNotFound(t *testing.T) {
	_, err := newTestServices().CourseService.UpdateCourse(context.Background(), uuid.New(), &dto.UpdateCourseRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestPatchCourse(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	patched, err := svc.CourseService.PatchCourse(ctx, created.ID, map[string]interface{}{
		"subject": "PHYSICS",
		"medium":  []interface{}{"HINDI"},
		"unknown": 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "PHYSICS", patched.Subject)
	assert.Equal(t, []string{"HINDI"}, patched.Medium)
	assert.Equal(t, "Science Starter", patched.Name)
}

func TestPatchCourseInvalidLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	tests := []struct {
		name   string
		fields map[string]interface{}
		field  string
	}{
		{"wrong type", map[string]interface{}{"name": 12.0}, "name"},
		{"blank value", map[string]interface{}{"grade": " "}, "grade"},
		{"empty medium", map[string]interface{}{"medium": []interface{}{}}, "medium"},
		{"medium not a list", map[string]interface{}{"medium": "ENGLISH"}, "medium"},
		{"valid field with invalid field", map[string]interface{}{"board": "CBSE", "subject": nil}, "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CourseService.PatchCourse(ctx, created.ID, tt.fields)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))

			got, err := svc.CourseService.GetCourse(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Science Starter", got.Name)
			assert.Equal(t, "STATE", got.Board)
			assert.Equal(t, "CLASS_2", got.Grade)
			assert.Equal(t, []string{"ENGLISH", "KANNADA"}, got.Medium)
		})
	}
}

func TestDeleteCourseDetachesUnits(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.CourseService.CreateCourse(ctx, scienceStarter())
	require.NoError(t, err)

	require.NoError(t, svc.CourseService.DeleteCourse(ctx, created.ID))

	_, err = svc.CourseService.GetCourse(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.UnitService.ListUnits(ctx, created.ID, 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	assert.ErrorIs(t, svc.CourseService.DeleteCourse(ctx, created.ID), apperrors.ErrResourceNotFound)
}

func TestListCoursesAppliesQuery(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	for _, name := range []string{"Science Starter", "Mathematics Basics", "Physics Essentials"} {
		req := scienceStarter()
		req.Name = name
		req.Description = name
		_, err := svc.CourseService.CreateCourse(ctx, req)
		require.NoError(t, err)
	}

	page, err := svc.CourseService.ListCourses(ctx, query.Params{Search: "science"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Science Starter", page.Content[0].Name)

	page, err = svc.CourseService.ListCourses(ctx, query.Params{Direction: "desc", Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "Science Starter", page.Content[0].Name)
}
