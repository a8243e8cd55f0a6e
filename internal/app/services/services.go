// Package services holds the course and unit command handlers and the
// caching decorators composed around them.
package services

import (
	"time"

	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/cache"
)

// Services defined in this package:
// - CourseService: course CRUD, patch and the filtered listing
// - UnitService: unit CRUD scoped to an owning course
type Services struct {
	CourseService CourseService
	UnitService   UnitService
}

// NewServices wires the services over repos. When store is non-nil both
// services are wrapped in read-through caching decorators.
func NewServices(repos *repositories.Repositories, store cache.Store, ttl time.Duration) *Services {
	courseService := NewCourseService(repos.CourseRepository)
	unitService := NewUnitService(repos.CourseRepository, repos.UnitRepository)

	if store != nil {
		ns := NewCacheNamespace(store, ttl)
		courseService = NewCachedCourseService(courseService, ns)
		unitService = NewCachedUnitService(unitService, ns)
	}

	return &Services{
		CourseService: courseService,
		UnitService:   unitService,
	}
}
