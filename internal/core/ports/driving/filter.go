package driving

import (
	"context"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// FilterService provides synchronized directory filtering to external actors.
type FilterService interface {
	// Filter returns the colleges matching a selection together with
	// the option lists for each dimension, synchronized against the
	// other active dimensions.
	Filter(ctx context.Context, sel domain.FilterSelection) (*domain.FilterResult, error)

	// Courses returns the course records for a college.
	Courses(ctx context.Context, collegeID string) ([]domain.Entity, error)
}
