package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/turutin/intake-backend/internal/domain"
)

// MyProfile shows the user's profile with one edit action per field.
// Bound to the transport's "my profile" command.
func (s *Service) MyProfile(ctx context.Context, user UserRef) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	return s.gateway.Send(ctx, userID, Prompt{
		Text: renderProfile(u),
		Actions: []Action{
			{Label: "Change name", Token: tokenProfilePrefix + domain.ProfileFieldName.String()},
			{Label: "Change email", Token: tokenProfilePrefix + domain.ProfileFieldEmail.String()},
			{Label: "Change phone", Token: tokenProfilePrefix + domain.ProfileFieldPhone.String()},
		},
	})
}

// selectProfileField arms the profile-edit excursion: the user's next
// free-text message is interpreted as the new value for the field.
func (s *Service) selectProfileField(ctx context.Context, userID string, field domain.ProfileField) error {
	if !field.IsValid() {
		s.log.Warn("unknown profile field", "user_id", userID, "field", field)
		return nil
	}

	s.sessions.Update(userID, func(st *ConversationState) {
		st.ProfileField = field
	})

	return s.gateway.Send(ctx, userID, Prompt{Text: fmt.Sprintf(msgProfileValue, fieldLabel(field))})
}

// submitProfileValue validates and writes the new field value. Email and
// phone use the same classifiers as contact capture. A malformed value gets
// a retry prompt and the edit target is preserved.
func (s *Service) submitProfileValue(ctx context.Context, userID string, field domain.ProfileField, text string) error {
	value := strings.TrimSpace(text)

	valid := false
	switch field {
	case domain.ProfileFieldName:
		valid = value != ""
	case domain.ProfileFieldEmail:
		valid = domain.IsValidEmail(value)
	case domain.ProfileFieldPhone:
		valid = domain.IsValidPhone(value)
	}
	if !valid {
		return s.gateway.Send(ctx, userID, Prompt{Text: fmt.Sprintf(msgProfileBadValue, fieldLabel(field))})
	}

	if err := s.users.UpdateField(ctx, userID, field, value); err != nil {
		s.log.Error("update profile field", "user_id", userID, "field", field, "error", err)
		return s.gateway.Send(ctx, userID, Prompt{Text: msgFailure})
	}

	s.sessions.Update(userID, func(st *ConversationState) {
		st.ProfileField = ""
	})

	return s.gateway.Send(ctx, userID, Prompt{Text: msgProfileUpdated})
}

func renderProfile(u *domain.User) string {
	name := u.Name
	if name == "" {
		name = "-"
	}

	var b strings.Builder
	b.WriteString("Your profile:\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", orDash(u.Email))
	fmt.Fprintf(&b, "Phone: %s", orDash(u.Phone))
	return b.String()
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
