package dto

import (
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
)

// CreateUnitRequest represents unit creation data
type CreateUnitRequest struct {
	Title   string `json:"title" validate:"notblank" example:"Motion and Force"`
	Content string `json:"content" validate:"notblank" example:"Newton's laws with everyday examples."`
}

// UpdateUnitRequest represents unit update data; blank fields are left unchanged
type UpdateUnitRequest struct {
	Title   string `json:"title,omitempty" example:"Motion and Force"`
	Content string `json:"content,omitempty"`
}

// ToModel converts the request into a unit without id or owner
func (r *CreateUnitRequest) ToModel() *models.Unit {
	return &models.Unit{
		Title:   strings.TrimSpace(r.Title),
		Content: strings.TrimSpace(r.Content),
	}
}

// ApplyTo overwrites the unit fields that were supplied in the request
func (r *UpdateUnitRequest) ApplyTo(unit *models.Unit) {
	setIfPresent(&unit.Title, r.Title)
	setIfPresent(&unit.Content, r.Content)
}
