package domain

import "time"

// JobStatus enumerates lifecycle states for job postings.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// ValidJobStatus reports whether the value is one of the defined states.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	default:
		return false
	}
}

// JobStatusTransitionAllowed is the central transition table for job
// postings. Every transition between defined states is currently legal
// (closed jobs may be reopened); tightening the table later is a local
// change here.
func JobStatusTransitionAllowed(from, to JobStatus) bool {
	return ValidJobStatus(from) && ValidJobStatus(to)
}

// JobType enumerates employment types.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
	JobTypeRemote     JobType = "Remote"
)

// ValidJobType reports whether the value is one of the defined types.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract, JobTypeRemote:
		return true
	default:
		return false
	}
}

// Job is a posting owned by exactly one HR user. ApplicationsCount is a
// derived counter maintained by the apply flow; it only ever increases.
type Job struct {
	ID                string
	Title             string
	Company           string
	Location          string
	Type              JobType
	Salary            string
	Description       string
	Requirements      []string
	SkillsRequired    []string
	Experience        string
	Openings          int
	Deadline          *time.Time
	PostedBy          string
	Status            JobStatus
	ApplicationsCount int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AcceptingApplications reports whether new applications may target the job.
func (j *Job) AcceptingApplications() bool {
	return j.Status == JobStatusActive
}
