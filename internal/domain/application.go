package domain

import "time"

// ApplicationStatus enumerates review states for applications.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusSelected    ApplicationStatus = "selected"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether the value is one of the defined states.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusInterviewed, ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// ApplicationStatusTransitionAllowed is the central transition table for
// application review states. Reviewers may move an application between any
// two defined states in any order; the table exists so that restriction
// becomes a one-line change.
func ApplicationStatusTransitionAllowed(from, to ApplicationStatus) bool {
	return ValidApplicationStatus(from) && ValidApplicationStatus(to)
}

// Application links a student to a job. At most one exists per
// (job, applicant) pair, enforced by a unique index. Resume is a snapshot
// of the applicant's resume path taken at apply time, independent of later
// profile edits.
type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	Resume      string
	Status      ApplicationStatus
	Notes       string
	AppliedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
