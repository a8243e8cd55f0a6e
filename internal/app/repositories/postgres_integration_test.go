package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/migrations"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// openTestDB connects to COURSEHUB_TEST_DATABASE_URL, migrates and truncates it.
func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	url := os.Getenv("COURSEHUB_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("COURSEHUB_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, url, db.PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, migrations.NewMigrator(database.Pool).Migrate(ctx))
	_, err = database.Pool.Exec(ctx, "TRUNCATE units, courses")
	require.NoError(t, err)
	return database
}

func TestPostgresCourseLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	course := sampleCourse("Science Starter", "Plants", "Animals")
	course.Medium = []string{"ENGLISH", "KANNADA"}
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	stored, err := repos.CourseRepository.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENGLISH", "KANNADA"}, stored.Medium)
	require.Len(t, stored.Units, 2)
	assert.Equal(t, "Plants", stored.Units[0].Title)

	listed, err := repos.CourseRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Units, 2)

	plants := stored.Units[0]
	owner := course.ID
	added := &models.Unit{CourseID: &owner, Title: "Weather", Content: "rain and sun"}
	require.NoError(t, repos.UnitRepository.Create(ctx, added))
	assert.Equal(t, 2, added.Position)

	stored.Name = "Science Explorer"
	require.NoError(t, repos.CourseRepository.Update(ctx, stored, []models.Unit{
		{ID: added.ID, Title: "Weather", Content: "clouds"},
	}))
	require.Len(t, stored.Units, 1)
	assert.Equal(t, 0, stored.Units[0].Position)

	detached, err := repos.UnitRepository.GetByID(ctx, plants.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.CourseID)

	require.NoError(t, repos.CourseRepository.Delete(ctx, course.ID))
	_, err = repos.CourseRepository.GetByID(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	weather, err := repos.UnitRepository.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, weather.CourseID)
}
