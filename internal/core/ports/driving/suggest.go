package driving

import (
	"context"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
)

// SuggestService provides ranked search suggestions to external actors.
type SuggestService interface {
	// Suggest returns ranked suggestions for a query across the
	// directory. Queries shorter than two characters return no
	// suggestions. maxResults <= 0 uses the default limit.
	Suggest(ctx context.Context, query string, maxResults int) ([]domain.Suggestion, error)
}
