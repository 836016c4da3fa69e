package driven

import (
	"context"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// EntityStore provides access to the college directory records.
// Implementations return complete, current snapshots: the filter
// synchronization logic assumes it sees the whole directory, not a
// page of it.
type EntityStore interface {
	// ListColleges returns all college records.
	ListColleges(ctx context.Context) ([]domain.Entity, error)

	// ListCourses returns the course records for a college.
	// Returns domain.ErrNotFound if the college does not exist.
	ListCourses(ctx context.Context, collegeID string) ([]domain.Entity, error)

	// UpsertCollege stores or updates a college record together with
	// its courses.
	UpsertCollege(ctx context.Context, college domain.Entity, courses []domain.Entity) error

	// DeleteCollege removes a college and its courses.
	DeleteCollege(ctx context.Context, collegeID string) error

	// Close releases resources.
	Close() error
}
