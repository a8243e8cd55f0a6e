// Package query filters, searches, sorts and paginates course listings.
//
// Apply is a pure function of its inputs: it never mutates the candidate slice
// and keeps no state between calls, so it is safe to call concurrently.
package query

import (
	"sort"
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
)

// Sort fields recognised by orderBy
const (
	OrderByName    = "name"
	OrderByBoard   = "board"
	OrderByGrade   = "grade"
	OrderBySubject = "subject"
	OrderByMedium  = "medium"
)

// Sort directions
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Params are the optional listing parameters. Zero values mean "not supplied".
type Params struct {
	Board     string `json:"board,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Search    string `json:"search,omitempty"`
	OrderBy   string `json:"orderBy,omitempty"`
	Direction string `json:"direction,omitempty"`
	Page      int    `json:"page"`
	Size      int    `json:"size"`
}

// Normalize resolves defaults: unknown orderBy falls back to name, unknown
// direction to asc, and non-positive size to DefaultPageSize.
func (p Params) Normalize() Params {
	p.Board = strings.TrimSpace(p.Board)
	p.Medium = strings.TrimSpace(p.Medium)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Subject = strings.TrimSpace(p.Subject)
	p.Search = strings.TrimSpace(p.Search)

	p.OrderBy = strings.ToLower(strings.TrimSpace(p.OrderBy))
	if _, ok := sortKeys[p.OrderBy]; !ok {
		p.OrderBy = OrderByName
	}

	if strings.EqualFold(strings.TrimSpace(p.Direction), DirectionDesc) {
		p.Direction = DirectionDesc
	} else {
		p.Direction = DirectionAsc
	}

	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// sortKeys maps an orderBy value to the string a course is compared on.
var sortKeys = map[string]func(c *models.Course) string{
	OrderByName:    func(c *models.Course) string { return c.Name },
	OrderByBoard:   func(c *models.Course) string { return c.Board },
	OrderByGrade:   func(c *models.Course) string { return c.Grade },
	OrderBySubject: func(c *models.Course) string { return c.Subject },
	OrderByMedium:  func(c *models.Course) string { return c.MediumLabel() },
}

// predicate reports whether a course survives one filter
type predicate func(c *models.Course) bool

// containsFold is case-insensitive substring containment. needle must already be lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func fieldContains(field func(c *models.Course) string, value string) predicate {
	needle := strings.ToLower(value)
	return func(c *models.Course) bool {
		return containsFold(field(c), needle)
	}
}

func mediumContains(value string) predicate {
	needle := strings.ToLower(value)
	return func(c *models.Course) bool {
		for _, m := range c.Medium {
			if containsFold(m, needle) {
				return true
			}
		}
		return false
	}
}

func searchMatches(value string) predicate {
	needle := strings.ToLower(value)
	return func(c *models.Course) bool {
		return containsFold(c.Name, needle) || containsFold(c.Description, needle)
	}
}

// predicates builds the conjunctive filter list; blank parameters add nothing.
func (p Params) predicates() []predicate {
	var preds []predicate
	if p.Board != "" {
		preds = append(preds, fieldContains(sortKeys[OrderByBoard], p.Board))
	}
	if p.Medium != "" {
		preds = append(preds, mediumContains(p.Medium))
	}
	if p.Grade != "" {
		preds = append(preds, fieldContains(sortKeys[OrderByGrade], p.Grade))
	}
	if p.Subject != "" {
		preds = append(preds, fieldContains(sortKeys[OrderBySubject], p.Subject))
	}
	if p.Search != "" {
		preds = append(preds, searchMatches(p.Search))
	}
	return preds
}

// Filter returns the courses matching every supplied filter and the search term,
// in input order.
func Filter(courses []models.Course, params Params) []models.Course {
	preds := params.Normalize().predicates()
	out := make([]models.Course, 0, len(courses))
next:
	for i := range courses {
		for _, match := range preds {
			if !match(&courses[i]) {
				continue next
			}
		}
		out = append(out, courses[i])
	}
	return out
}

// Sort orders courses in place by the resolved field, case-insensitively.
// The sort is stable: equal keys keep their relative input order in both directions.
func Sort(courses []models.Course, orderBy, direction string) {
	p := Params{OrderBy: orderBy, Direction: direction}.Normalize()
	key := sortKeys[p.OrderBy]

	keys := make([]string, len(courses))
	for i := range courses {
		keys[i] = strings.ToLower(key(&courses[i]))
	}

	sort.Stable(&byKey{courses: courses, keys: keys, desc: p.Direction == DirectionDesc})
}

type byKey struct {
	courses []models.Course
	keys    []string
	desc    bool
}

func (b *byKey) Len() int { return len(b.courses) }

func (b *byKey) Less(i, j int) bool {
	if b.desc {
		return b.keys[i] > b.keys[j]
	}
	return b.keys[i] < b.keys[j]
}

func (b *byKey) Swap(i, j int) {
	b.courses[i], b.courses[j] = b.courses[j], b.courses[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// Apply runs filter, search, sort and pagination over the candidate set.
// The result is always a valid page, even when nothing matches.
func Apply(candidates []models.Course, params Params) Page[models.Course] {
	p := params.Normalize()
	matched := Filter(candidates, p)
	Sort(matched, p.OrderBy, p.Direction)
	return Paginate(matched, p.Page, p.Size)
}
