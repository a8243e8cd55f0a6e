package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
)

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string              `json:"name" validate:"notblank" example:"Science Starter"`
	Description string              `json:"description" validate:"notblank" example:"Introduction to physics, chemistry, and biology concepts."`
	Board       string              `json:"board" validate:"notblank" example:"STATE"`
	Medium      []string            `json:"medium" validate:"notblank,dive,notblank" example:"ENGLISH,KANNADA"`
	Grade       string              `json:"grade" validate:"notblank" example:"CLASS_2"`
	Subject     string              `json:"subject" validate:"notblank" example:"SCIENCE"`
	Units       []CreateUnitRequest `json:"units,omitempty" validate:"omitempty,dive"`
}

// UpdateCourseRequest represents course update data. Blank or empty fields are
// left unchanged; a non-empty units list replaces the course's units.
type UpdateCourseRequest struct {
	Name        string              `json:"name,omitempty" example:"Science Starter"`
	Description string              `json:"description,omitempty"`
	Board       string              `json:"board,omitempty"`
	Medium      []string            `json:"medium,omitempty" validate:"omitempty,dive,notblank"`
	Grade       string              `json:"grade,omitempty"`
	Subject     string              `json:"subject,omitempty"`
	Units       []UnitUpsertRequest `json:"units,omitempty" validate:"omitempty,dive"`
}

// UnitUpsertRequest is a unit inside a course update. When ID is set the
// existing unit is re-parented and overwritten, otherwise a new unit is created.
type UnitUpsertRequest struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Title   string     `json:"title" validate:"notblank"`
	Content string     `json:"content" validate:"notblank"`
}

// ToModel converts the request into a new course without an id
func (r *CreateCourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Board:       strings.TrimSpace(r.Board),
		Medium:      trimAll(r.Medium),
		Grade:       strings.TrimSpace(r.Grade),
		Subject:     strings.TrimSpace(r.Subject),
		Units:       make([]models.Unit, 0, len(r.Units)),
	}
	for _, u := range r.Units {
		course.Units = append(course.Units, *u.ToModel())
	}
	return course
}

// ApplyTo overwrites the course fields that were supplied in the request
func (r *UpdateCourseRequest) ApplyTo(course *models.Course) {
	setIfPresent(&course.Name, r.Name)
	setIfPresent(&course.Description, r.Description)
	setIfPresent(&course.Board, r.Board)
	setIfPresent(&course.Grade, r.Grade)
	setIfPresent(&course.Subject, r.Subject)
	if len(r.Medium) > 0 {
		course.Medium = trimAll(r.Medium)
	}
}

// ReplacementUnits returns the units that should replace the course's units,
// or nil when the request leaves them untouched.
func (r *UpdateCourseRequest) ReplacementUnits() []models.Unit {
	if len(r.Units) == 0 {
		return nil
	}
	units := make([]models.Unit, 0, len(r.Units))
	for _, u := range r.Units {
		unit := models.Unit{
			Title:   strings.TrimSpace(u.Title),
			Content: strings.TrimSpace(u.Content),
		}
		if u.ID != nil {
			unit.ID = *u.ID
		}
		units = append(units, unit)
	}
	return units
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
