package query

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
)

func course(name, description, board, grade, subject string, medium ...string) models.Course {
	return models.Course{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Board:       board,
		Medium:      medium,
		Grade:       grade,
		Subject:     subject,
	}
}

func catalogue() []models.Course {
	return []models.Course{
		course("Mathematics Basics", "Numbers, counting, and simple arithmetic.", "CBSE", "CLASS_1", "MATHEMATICS", "ENGLISH"),
		course("Science Starter", "Introduction to physics, chemistry, and biology concepts.", "STATE", "CLASS_2", "SCIENCE", "ENGLISH", "KANNADA"),
		course("English Grammar Essentials", "Parts of speech and sentence building.", "ICSE", "CLASS_3", "ENGLISH", "ENGLISH"),
		course("History and Geography", "Our past and the world around us.", "STATE", "CLASS_4", "SOCIAL", "KANNADA", "ENGLISH"),
		course("Physics Essentials", "Motion, force, and energy for young learners.", "CBSE", "CLASS_5", "SCIENCE", "ENGLISH"),
	}
}

func names(courses []models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Name)
	}
	return out
}

func TestApplySearchMatchesNameOrDescription(t *testing.T) {
	// "Science Starter" matches on name; nothing else mentions science in name or description.
	page := Apply(catalogue(), Params{Search: "science"})
	assert.Equal(t, []string{"Science Starter"}, names(page.Content))

	page = Apply(catalogue(), Params{Search: "PHYSICS"})
	assert.Equal(t, []string{"Physics Essentials", "Science Starter"}, names(page.Content))
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	page := Apply(catalogue(), Params{Board: "cbse", Subject: "science"})
	assert.Equal(t, []string{"Physics Essentials"}, names(page.Content))

	page = Apply(catalogue(), Params{Board: "STATE", Medium: "kannada"})
	assert.Equal(t, []string{"History and Geography", "Science Starter"}, names(page.Content))

	page = Apply(catalogue(), Params{Board: "STATE", Grade: "CLASS_1"})
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
}

func TestApplyFilterResultsSatisfyEveryFilter(t *testing.T) {
	params := Params{Board: "S", Medium: "ENGLISH", Search: "e"}
	for _, c := range Apply(catalogue(), params).Content {
		assert.Contains(t, c.Board, "S")
		assert.Contains(t, c.Medium, "ENGLISH")
	}
}

func TestApplySortsCaseInsensitively(t *testing.T) {
	courses := []models.Course{
		course("beta", "d", "b", "g", "s", "m"),
		course("Alpha", "d", "b", "g", "s", "m"),
		course("gamma", "d", "b", "g", "s", "m"),
	}
	page := Apply(courses, Params{OrderBy: "NAME"})
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names(page.Content))
}

func TestApplyDescIsReverseOfAscForDistinctKeys(t *testing.T) {
	asc := Apply(catalogue(), Params{OrderBy: OrderByGrade, Direction: "asc", Size: 100})
	desc := Apply(catalogue(), Params{OrderBy: OrderByGrade, Direction: "DESC", Size: 100})

	reversed := names(desc.Content)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, names(asc.Content), reversed)
}

func TestApplyUnknownOrderAndDirectionFallBack(t *testing.T) {
	page := Apply(catalogue(), Params{OrderBy: "popularity", Direction: "sideways"})
	assert.Equal(t, "English Grammar Essentials", page.Content[0].Name)
}

func TestApplySortIsStable(t *testing.T) {
	courses := catalogue()
	page := Apply(courses, Params{OrderBy: OrderByBoard, Size: 100})
	// CBSE entries keep their input order
	assert.Equal(t, []string{"Mathematics Basics", "Physics Essentials"}, names(page.Content[:2]))
}

func TestApplyDoesNotMutateCandidates(t *testing.T) {
	courses := catalogue()
	before := names(courses)
	Apply(courses, Params{OrderBy: OrderByName, Direction: DirectionDesc})
	assert.Equal(t, before, names(courses))
}

func TestApplyPagesConcatenateToFullResult(t *testing.T) {
	var courses []models.Course
	for i := 0; i < 23; i++ {
		courses = append(courses, course(fmt.Sprintf("Course %02d", i), "d", "b", "g", "s", "m"))
	}

	full := Apply(courses, Params{Size: 100})
	require.Len(t, full.Content, 23)

	var concatenated []models.Course
	for p := 0; p < 3; p++ {
		page := Apply(courses, Params{Page: p, Size: 10})
		assert.Equal(t, 23, page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, p, page.CurrentPage)
		assert.Equal(t, 10, page.PageSize)
		concatenated = append(concatenated, page.Content...)
	}
	assert.Equal(t, names(full.Content), names(concatenated))
}

func TestApplyOutOfRangePageIsEmpty(t *testing.T) {
	page := Apply(catalogue(), Params{Page: 7, Size: 2})
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.Equal(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 7, page.CurrentPage)
}

func TestApplyDefaults(t *testing.T) {
	page := Apply(nil, Params{})
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 0, page.TotalPages)
}
