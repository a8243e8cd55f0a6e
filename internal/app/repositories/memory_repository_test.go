package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func sampleCourse(name string, unitTitles ...string) *models.Course {
	c := &models.Course{
		Name:        name,
		Description: name + " description",
		Board:       "CBSE",
		Medium:      []string{"ENGLISH"},
		Grade:       "CLASS_1",
		Subject:     "MATHEMATICS",
	}
	for _, t := range unitTitles {
		c.Units = append(c.Units, models.Unit{Title: t, Content: t + " content"})
	}
	return c
}

func TestMemoryCourseCreateAssignsIdsAndPositions(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Mathematics Basics", "Numbers", "Shapes")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	assert.NotEqual(t, uuid.Nil, course.ID)
	assert.False(t, course.CreatedAt.IsZero())

	stored, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, stored.Units, 2)
	assert.Equal(t, "Numbers", stored.Units[0].Title)
	assert.Equal(t, 0, stored.Units[0].Position)
	assert.Equal(t, 1, stored.Units[1].Position)
	assert.True(t, stored.Units[1].BelongsTo(course.ID))
}

func TestMemoryCourseCreateWithoutUnitsHasEmptyList(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Science Starter")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	stored, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.Units)
	assert.Empty(t, stored.Units)
}

func TestMemoryListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	for _, name := range []string{"Zoology", "Algebra", "Music"} {
		require.NoError(t, repos.CourseRepository.Create(ctx, sampleCourse(name)))
	}

	courses, err := repos.CourseRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Zoology", courses[0].Name)
	assert.Equal(t, "Music", courses[2].Name)

	count, err := repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("History", "Ancient")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	got, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	got.Name = "changed"
	got.Medium[0] = "changed"
	got.Units[0].Title = "changed"

	again, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "History", again.Name)
	assert.Equal(t, "ENGLISH", again.Medium[0])
	assert.Equal(t, "Ancient", again.Units[0].Title)
}

func TestMemoryUpdateReplacesUnits(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Physics", "Motion", "Energy")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))
	motion, energy := course.Units[0], course.Units[1]

	// keep Energy (renamed) first, add a new unit, drop Motion
	replacement := []models.Unit{
		{ID: energy.ID, Title: "Energy and Work", Content: "updated"},
		{Title: "Waves", Content: "new"},
	}
	require.NoError(t, repos.CourseRepository.Update(ctx, course, replacement))

	require.Len(t, course.Units, 2)
	assert.Equal(t, energy.ID, course.Units[0].ID)
	assert.Equal(t, "Energy and Work", course.Units[0].Title)
	assert.Equal(t, 0, course.Units[0].Position)
	assert.Equal(t, "Waves", course.Units[1].Title)

	detached, err := repos.UnitRepository.GetByID(ctx, motion.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.CourseID)
}

func TestMemoryUpdateWithNilUnitsLeavesThem(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Civics", "Rights")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	course.Name = "Civics and Economics"
	require.NoError(t, repos.CourseRepository.Update(ctx, course, nil))

	stored, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Civics and Economics", stored.Name)
	assert.Len(t, stored.Units, 1)
}

func TestMemoryDeleteDetachesUnits(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Geography", "Maps")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))
	unitID := course.Units[0].ID

	require.NoError(t, repos.CourseRepository.Delete(ctx, course.ID))

	_, err := repos.CourseRepository.GetByID(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	unit, err := repos.UnitRepository.GetByID(ctx, unitID)
	require.NoError(t, err)
	assert.Nil(t, unit.CourseID)

	units, err := repos.UnitRepository.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, units)

	assert.ErrorIs(t, repos.CourseRepository.Delete(ctx, course.ID), apperrors.ErrResourceNotFound)
}

func TestMemoryUnitCreateAppends(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Grammar", "Nouns", "Verbs")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	owner := course.ID
	unit := &models.Unit{CourseID: &owner, Title: "Adjectives", Content: "describing words"}
	require.NoError(t, repos.UnitRepository.Create(ctx, unit))
	assert.Equal(t, 2, unit.Position)

	units, err := repos.UnitRepository.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "Adjectives", units[2].Title)
}

func TestMemoryUnitCreateRequiresCourse(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	missing := uuid.New()
	err := repos.UnitRepository.Create(ctx, &models.Unit{CourseID: &missing, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestMemoryUnitUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	course := sampleCourse("Biology", "Cells")
	require.NoError(t, repos.CourseRepository.Create(ctx, course))
	unit := course.Units[0]

	unit.Title = "Cells and Tissues"
	require.NoError(t, repos.UnitRepository.Update(ctx, &unit))

	stored, err := repos.UnitRepository.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cells and Tissues", stored.Title)

	require.NoError(t, repos.UnitRepository.Delete(ctx, unit.ID))
	_, err = repos.UnitRepository.GetByID(ctx, unit.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)
	assert.ErrorIs(t, repos.UnitRepository.Delete(ctx, unit.ID), apperrors.ErrResourceNotFound)
}
