// Package memory provides in-memory implementations of the driven
// storage ports, used for tests and for running without a database.
package memory

import (
	"context"
	"sync"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
)

// Ensure EntityStore implements the interface.
var _ driven.EntityStore = (*EntityStore)(nil)

// EntityStore is an in-memory implementation of driven.EntityStore.
type EntityStore struct {
	mu       sync.RWMutex
	colleges map[string]domain.Entity
	courses  map[string][]domain.Entity
	order    []string
}

// NewEntityStore creates an empty in-memory entity store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		colleges: make(map[string]domain.Entity),
		courses:  make(map[string][]domain.Entity),
	}
}

// Seed creates a store preloaded with college records.
func Seed(colleges []domain.Entity) *EntityStore {
	s := NewEntityStore()
	for _, college := range colleges {
		_ = s.UpsertCollege(context.Background(), college, nil)
	}
	return s
}

// ListColleges returns all college records in insertion order.
func (s *EntityStore) ListColleges(_ context.Context) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.colleges[id])
	}
	return out, nil
}

// ListCourses returns the course records for a college.
func (s *EntityStore) ListCourses(_ context.Context, collegeID string) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.colleges[collegeID]; !ok {
		return nil, domain.ErrNotFound
	}
	return s.courses[collegeID], nil
}

// UpsertCollege stores or updates a college and its courses.
func (s *EntityStore) UpsertCollege(_ context.Context, college domain.Entity, courses []domain.Entity) error {
	id := college.ID()
	if id == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.colleges[id]; !ok {
		s.order = append(s.order, id)
	}
	s.colleges[id] = college
	if courses != nil {
		s.courses[id] = courses
	}
	return nil
}

// DeleteCollege removes a college and its courses.
func (s *EntityStore) DeleteCollege(_ context.Context, collegeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.colleges[collegeID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.colleges, collegeID)
	delete(s.courses, collegeID)
	for i, id := range s.order {
		if id == collegeID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close releases resources. A no-op for the in-memory store.
func (s *EntityStore) Close() error {
	return nil
}
