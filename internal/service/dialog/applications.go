package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/turutin/intake-backend/internal/domain"
)

// MyApplications lists the user's submitted applications with their current
// statuses. Bound to the transport's "my applications" command.
func (s *Service) MyApplications(ctx context.Context, user UserRef) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	apps, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}
	if len(apps) == 0 {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNoApplications, Actions: startActions()})
	}

	var b strings.Builder
	b.WriteString("Your applications:\n")
	for i, app := range apps {
		fmt.Fprintf(&b, "\n#%d: %s, submitted %s",
			i+1, statusLabel(app.Status), app.CreatedAt.Format("02.01.2006"))
	}

	return s.gateway.Send(ctx, userID, Prompt{Text: b.String()})
}
