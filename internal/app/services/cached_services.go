package services

import (
	"context"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/query"
	"github.com/yigit/coursehub/internal/pkg/cache"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// CacheNamespace is the cache shared by the course and unit decorators. Its
// generation advances on every invalidation so a read that raced a write does
// not repopulate the cache with what it loaded before the write.
type CacheNamespace struct {
	store cache.Store
	ttl   time.Duration
	gen   atomic.Uint64
}

// NewCacheNamespace creates a namespace over store whose entries live for ttl
func NewCacheNamespace(store cache.Store, ttl time.Duration) *CacheNamespace {
	return &CacheNamespace{store: store, ttl: ttl}
}

// invalidate drops every cached read after a successful write
func (n *CacheNamespace) invalidate(ctx context.Context) {
	n.gen.Add(1)
	if err := n.store.InvalidateAll(ctx); err != nil {
		logger.Warn().Err(err).Msg("Cache invalidation failed")
	}
}

// readThrough returns the cached value for key, or loads, caches and returns it.
// Cache failures are logged and never reach the caller.
func readThrough[T any](ctx context.Context, ns *CacheNamespace, key string, load func() (T, error)) (T, error) {
	var cached T
	found, err := cache.GetJSON(ctx, ns.store, key, &cached)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling back to store")
	}
	if found {
		return cached, nil
	}

	gen := ns.gen.Load()
	value, err := load()
	if err != nil {
		return value, err
	}

	// a write landed while loading; value may predate it
	if ns.gen.Load() != gen {
		return value, nil
	}
	if err := cache.SetJSON(ctx, ns.store, key, value, ns.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return value, nil
}

// listKey is the canonical cache key of a course listing
func listKey(params query.Params) string {
	p := params.Normalize()
	v := url.Values{}
	v.Set("board", p.Board)
	v.Set("medium", p.Medium)
	v.Set("grade", p.Grade)
	v.Set("subject", p.Subject)
	v.Set("search", p.Search)
	v.Set("orderBy", p.OrderBy)
	v.Set("direction", p.Direction)
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("size", strconv.Itoa(p.Size))
	// Encode sorts by key
	return cache.Key("course", "list", v.Encode())
}

// cachedCourseService decorates a CourseService with a read-through cache
type cachedCourseService struct {
	next CourseService
	ns   *CacheNamespace
}

// NewCachedCourseService wraps next so reads are cached and writes invalidate
func NewCachedCourseService(next CourseService, ns *CacheNamespace) CourseService {
	return &cachedCourseService{next: next, ns: ns}
}

func (s *cachedCourseService) ListCourses(ctx context.Context, params query.Params) (query.Page[models.Course], error) {
	return readThrough(ctx, s.ns, listKey(params), func() (query.Page[models.Course], error) {
		return s.next.ListCourses(ctx, params)
	})
}

func (s *cachedCourseService) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return readThrough(ctx, s.ns, cache.Key("course", "get", id.String()), func() (*models.Course, error) {
		return s.next.GetCourse(ctx, id)
	})
}

func (s *cachedCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := s.next.CreateCourse(ctx, req)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return course, nil
}

func (s *cachedCourseService) UpdateCourse(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.next.UpdateCourse(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return course, nil
}

func (s *cachedCourseService) PatchCourse(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Course, error) {
	course, err := s.next.PatchCourse(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return course, nil
}

func (s *cachedCourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.next.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.ns.invalidate(ctx)
	return nil
}

// cachedUnitService decorates a UnitService with a read-through cache. It shares
// the namespace with the course cache because courses embed their units.
type cachedUnitService struct {
	next UnitService
	ns   *CacheNamespace
}

// NewCachedUnitService wraps next so reads are cached and writes invalidate
func NewCachedUnitService(next UnitService, ns *CacheNamespace) UnitService {
	return &cachedUnitService{next: next, ns: ns}
}

func (s *cachedUnitService) AddUnit(ctx context.Context, courseID uuid.UUID, req *dto.CreateUnitRequest) (*models.Unit, error) {
	unit, err := s.next.AddUnit(ctx, courseID, req)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return unit, nil
}

func (s *cachedUnitService) ListUnits(ctx context.Context, courseID uuid.UUID, page, size int) (query.Page[models.Unit], error) {
	key := cache.Key("unit", "list", courseID.String(), strconv.Itoa(page), strconv.Itoa(size))
	return readThrough(ctx, s.ns, key, func() (query.Page[models.Unit], error) {
		return s.next.ListUnits(ctx, courseID, page, size)
	})
}

func (s *cachedUnitService) GetUnit(ctx context.Context, courseID, unitID uuid.UUID) (*models.Unit, error) {
	key := cache.Key("unit", "get", courseID.String(), unitID.String())
	return readThrough(ctx, s.ns, key, func() (*models.Unit, error) {
		return s.next.GetUnit(ctx, courseID, unitID)
	})
}

func (s *cachedUnitService) UpdateUnit(ctx context.Context, courseID, unitID uuid.UUID, req *dto.UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.next.UpdateUnit(ctx, courseID, unitID, req)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return unit, nil
}

func (s *cachedUnitService) PatchUnit(ctx context.Context, courseID, unitID uuid.UUID, fields map[string]interface{}) (*models.Unit, error) {
	unit, err := s.next.PatchUnit(ctx, courseID, unitID, fields)
	if err != nil {
		return nil, err
	}
	s.ns.invalidate(ctx)
	return unit, nil
}

func (s *cachedUnitService) DeleteUnit(ctx context.Context, courseID, unitID uuid.UUID) error {
	if err := s.next.DeleteUnit(ctx, courseID, unitID); err != nil {
		return err
	}
	s.ns.invalidate(ctx)
	return nil
}
