package dto

import (
	"time"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title          string         `json:"title"`
	Company        string         `json:"company"`
	Location       string         `json:"location"`
	Type           domain.JobType `json:"type"`
	Salary         string         `json:"salary"`
	Description    string         `json:"description"`
	Requirements   StringList     `json:"requirements"`
	SkillsRequired StringList     `json:"skillsRequired"`
	Experience     string         `json:"experience"`
	Openings       int            `json:"openings"`
	Deadline       *time.Time     `json:"deadline"`
}

// UpdateJobRequest carries optional edits.
type UpdateJobRequest struct {
	Title          *string           `json:"title"`
	Company        *string           `json:"company"`
	Location       *string           `json:"location"`
	Type           *domain.JobType   `json:"type"`
	Salary         *string           `json:"salary"`
	Description    *string           `json:"description"`
	Requirements   StringList        `json:"requirements"`
	SkillsRequired StringList        `json:"skillsRequired"`
	Experience     *string           `json:"experience"`
	Openings       *int              `json:"openings"`
	Deadline       *time.Time        `json:"deadline"`
	Status         *domain.JobStatus `json:"status"`
}

// PosterSummary embeds the posting user's public fields.
type PosterSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// JobResponse is the full job shape.
type JobResponse struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Company           string           `json:"company"`
	Location          string           `json:"location"`
	Type              domain.JobType   `json:"type"`
	Salary            string           `json:"salary"`
	Description       string           `json:"description"`
	Requirements      []string         `json:"requirements"`
	SkillsRequired    []string         `json:"skillsRequired"`
	Experience        string           `json:"experience"`
	Openings          int              `json:"openings"`
	Deadline          *time.Time       `json:"deadline,omitempty"`
	PostedBy          PosterSummary    `json:"postedBy"`
	Status            domain.JobStatus `json:"status"`
	ApplicationsCount int              `json:"applicationsCount"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// NewJobResponse maps a domain job; the poster carries only the id.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Type:              job.Type,
		Salary:            job.Salary,
		Description:       job.Description,
		Requirements:      emptyIfNil(job.Requirements),
		SkillsRequired:    emptyIfNil(job.SkillsRequired),
		Experience:        job.Experience,
		Openings:          job.Openings,
		Deadline:          job.Deadline,
		PostedBy:          PosterSummary{ID: job.PostedBy},
		Status:            job.Status,
		ApplicationsCount: job.ApplicationsCount,
		CreatedAt:         job.CreatedAt,
		UpdatedAt:         job.UpdatedAt,
	}
}

// NewJobWithPosterResponse maps a joined job row.
func NewJobWithPosterResponse(row *repository.JobWithPoster) JobResponse {
	resp := NewJobResponse(&row.Job)
	resp.PostedBy = PosterSummary{
		ID:      row.PostedBy,
		Name:    row.PosterName,
		Email:   row.PosterEmail,
		Company: row.PosterCompany,
	}
	return resp
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
