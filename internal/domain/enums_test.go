package domain

import "testing"

func TestStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusOpen, StatusInProgress, StatusClosed} {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []Status{"", "OPEN", "done", "открыта"} {
		if s.IsValid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleCustomer, RoleStaff, RoleOperator} {
		if !r.IsValid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	if Role("admin").IsValid() {
		t.Error("unknown role should be invalid")
	}
}

func TestProfileFieldIsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []ProfileField{ProfileFieldName, ProfileFieldEmail, ProfileFieldPhone} {
		if !f.IsValid() {
			t.Errorf("field %q should be valid", f)
		}
	}
	if ProfileField("address").IsValid() {
		t.Error("unknown field should be invalid")
	}
}

func TestUserHasContact(t *testing.T) {
	t.Parallel()

	email := "a@b.co"
	phone := "+79261234567"
	empty := ""

	cases := []struct {
		name string
		u    User
		want bool
	}{
		{"no contact", User{}, false},
		{"email", User{Email: &email}, true},
		{"phone", User{Phone: &phone}, true},
		{"empty strings", User{Email: &empty, Phone: &empty}, false},
	}
	for _, tc := range cases {
		if got := tc.u.HasContact(); got != tc.want {
			t.Errorf("%s: HasContact() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
