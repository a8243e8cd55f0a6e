package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Course is a top-level content record tagged with board, medium, grade and subject.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Board       string    `json:"board" db:"board"`
	Medium      []string  `json:"medium" db:"medium"`
	Grade       string    `json:"grade" db:"grade"`
	Subject     string    `json:"subject" db:"subject"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Units are loaded with the course, ordered by position.
	Units []Unit `json:"units"`
}

// MediumLabel joins the medium list for display and sorting.
func (c *Course) MediumLabel() string {
	return strings.Join(c.Medium, ",")
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Medium = append([]string(nil), c.Medium...)
	out.Units = make([]Unit, len(c.Units))
	for i := range c.Units {
		out.Units[i] = *c.Units[i].Clone()
	}
	return &out
}
