package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/turutin/intake-backend/internal/domain"
)

// freshWindow is how far back an application still counts as "new" on the
// admin dashboard.
const freshWindow = 10 * time.Second

// Stats are the admin dashboard counters.
type Stats struct {
	OpenCount int
	NewCount  int
}

// GetStats returns the number of open applications and the number created
// within the fresh window.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	open, err := s.applications.CountByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("count open applications: %w", err)
	}

	fresh, err := s.applications.CountCreatedSince(ctx, s.now().UTC().Add(-freshWindow))
	if err != nil {
		return nil, fmt.Errorf("count fresh applications: %w", err)
	}

	return &Stats{OpenCount: open, NewCount: fresh}, nil
}
