package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
)

// sampleCourses is the catalogue inserted into an empty store
func sampleCourses() []*appModels.Course {
	return []*appModels.Course{
		{
			Name:        "Mathematics Basics",
			Description: "Covers numbers, addition, subtraction and multiplication.",
			Board:       "CBSE", Medium: []string{"ENGLISH"}, Grade: "CLASS_1", Subject: "MATHEMATICS",
			Units: []appModels.Unit{
				{Title: "Counting to 100", Content: "Reading, writing and ordering numbers up to one hundred."},
				{Title: "Addition and Subtraction", Content: "Single digit sums and differences with number lines."},
			},
		},
		{
			Name:        "Science Starter",
			Description: "Introduction to physics, chemistry, and biology concepts.",
			Board:       "STATE", Medium: []string{"ENGLISH", "KANNADA"}, Grade: "CLASS_2", Subject: "SCIENCE",
		},
		{
			Name:        "English Grammar Essentials",
			Description: "Learn basic grammar, tenses, and sentence structure.",
			Board:       "ICSE", Medium: []string{"ENGLISH"}, Grade: "CLASS_3", Subject: "ENGLISH",
		},
		{
			Name:        "History and Geography",
			Description: "Explore ancient civilizations and Indian geography.",
			Board:       "STATE", Medium: []string{"KANNADA", "ENGLISH"}, Grade: "CLASS_4", Subject: "SOCIAL",
		},
		{
			Name:        "Hindi Literature",
			Description: "Enhance Hindi reading and writing with stories and poems.",
			Board:       "ICSE", Medium: []string{"HINDI"}, Grade: "CLASS_5", Subject: "HINDI",
		},
		{
			Name:        "Kannada Language",
			Description: "Learn Kannada grammar and vocabulary through simple lessons.",
			Board:       "STATE", Medium: []string{"KANNADA"}, Grade: "CLASS_2", Subject: "KANNADA",
		},
		{
			Name:        "Environmental Studies",
			Description: "Learn about nature, seasons, and environmental care.",
			Board:       "CBSE", Medium: []string{"ENGLISH"}, Grade: "CLASS_1", Subject: "SCIENCE",
		},
		{
			Name:        "Geometry Fundamentals",
			Description: "Understand lines, angles, shapes, and basic geometry terms.",
			Board:       "ICSE", Medium: []string{"ENGLISH"}, Grade: "CLASS_6", Subject: "MATHEMATICS",
		},
		{
			Name:        "Physics Essentials",
			Description: "Covers motion, force, and simple machines with examples.",
			Board:       "STATE", Medium: []string{"ENGLISH"}, Grade: "CLASS_7", Subject: "SCIENCE",
			Units: []appModels.Unit{
				{Title: "Motion and Force", Content: "Newton's laws with everyday examples."},
				{Title: "Simple Machines", Content: "Levers, pulleys and inclined planes."},
			},
		},
		{
			Name:        "Civics and Economics",
			Description: "Basic introduction to governance, rights, and money systems.",
			Board:       "CBSE", Medium: []string{"ENGLISH"}, Grade: "CLASS_9", Subject: "SOCIAL",
		},
	}
}

// CreateDefaultData inserts the sample catalogue when no course exists yet.
// It returns the number of courses created.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) (int, error) {
	existing, err := repos.CourseRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	lgr.Info().Int("existing", existing).Msg("Checking default data...")

	if existing > 0 {
		lgr.Info().Int("existing", existing).Msg("Existing data found, skipping seed")
		return 0, nil
	}

	created := 0
	var finalErr error // collect errors without stopping the process
	for _, course := range sampleCourses() {
		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default data seeded")
	return created, finalErr
}
