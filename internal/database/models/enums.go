package models

// UserRole represents the role of a portal user
type UserRole string

const (
	UserRoleHacker UserRole = "hacker"
	UserRoleAdmin  UserRole = "admin"
)

// ApplicationStatus tracks a user's application through the review pipeline
type ApplicationStatus string

const (
	ApplicationStatusDraft      ApplicationStatus = "draft"
	ApplicationStatusSubmitted  ApplicationStatus = "submitted"
	ApplicationStatusAccepted   ApplicationStatus = "accepted"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
	ApplicationStatusWaitlisted ApplicationStatus = "waitlisted"
)

// TeamSearchStatus controls whether a team shows up in the team browser
type TeamSearchStatus string

const (
	TeamSearchStatusDiscoverable TeamSearchStatus = "discoverable"
	TeamSearchStatusHidden       TeamSearchStatus = "hidden"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleHacker, UserRoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusDraft, ApplicationStatusSubmitted, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWaitlisted:
		return true
	}
	return false
}

// IsDecision reports whether the status is one an admin may assign during review
func (s ApplicationStatus) IsDecision() bool {
	switch s {
	case ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWaitlisted:
		return true
	}
	return false
}

// IsValid checks if the TeamSearchStatus is valid
func (s TeamSearchStatus) IsValid() bool {
	switch s {
	case TeamSearchStatusDiscoverable, TeamSearchStatusHidden:
		return true
	}
	return false
}
