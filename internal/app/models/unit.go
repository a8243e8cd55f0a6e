package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a titled content block. CourseID is nil once the unit has been
// detached from a deleted course.
type Unit struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	CourseID  *uuid.UUID `json:"courseId,omitempty" db:"course_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Position  int        `json:"position" db:"position"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// BelongsTo reports whether the unit is currently owned by courseID.
func (u *Unit) BelongsTo(courseID uuid.UUID) bool {
	return u.CourseID != nil && *u.CourseID == courseID
}

func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	out := *u
	if u.CourseID != nil {
		id := *u.CourseID
		out.CourseID = &id
	}
	return &out
}
