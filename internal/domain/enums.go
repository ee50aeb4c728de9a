package domain

// Role represents the role tag on a bot user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOperator Role = "operator"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleOperator:
		return true
	}
	return false
}

// Status represents the lifecycle state of an application.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// ProfileField identifies a user profile field editable from the bot.
type ProfileField string

const (
	ProfileFieldName  ProfileField = "name"
	ProfileFieldEmail ProfileField = "email"
	ProfileFieldPhone ProfileField = "phone"
)

func (f ProfileField) String() string { return string(f) }

func (f ProfileField) IsValid() bool {
	switch f {
	case ProfileFieldName, ProfileFieldEmail, ProfileFieldPhone:
		return true
	}
	return false
}

// OutboxState tracks the delivery lifecycle of a queued notification.
type OutboxState string

const (
	OutboxStatePending   OutboxState = "pending"
	OutboxStateDelivered OutboxState = "delivered"
	OutboxStateFailed    OutboxState = "failed"
)

func (s OutboxState) String() string { return string(s) }

func (s OutboxState) IsValid() bool {
	switch s {
	case OutboxStatePending, OutboxStateDelivered, OutboxStateFailed:
		return true
	}
	return false
}
