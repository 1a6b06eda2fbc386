package dto

import (
	"time"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
)

// ApplicationStatusRequest payload for review updates.
type ApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
	Notes  *string                  `json:"notes"`
}

// ApplicationResponse is the base application shape.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job"`
	ApplicantID string                   `json:"applicant"`
	Resume      string                   `json:"resume"`
	Status      domain.ApplicationStatus `json:"status"`
	Notes       string                   `json:"notes"`
	AppliedAt   time.Time                `json:"appliedAt"`
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(application *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		ApplicantID: application.ApplicantID,
		Resume:      application.Resume,
		Status:      application.Status,
		Notes:       application.Notes,
		AppliedAt:   application.AppliedAt,
	}
}

// ApplicationJobSummary embeds a job summary in a student's application.
type ApplicationJobSummary struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Location string           `json:"location"`
	Type     domain.JobType   `json:"type"`
	Salary   string           `json:"salary"`
	Status   domain.JobStatus `json:"status"`
}

// ApplicationWithJobResponse is the student's own-applications shape.
type ApplicationWithJobResponse struct {
	ApplicationResponse
	Job ApplicationJobSummary `json:"jobDetails"`
}

// NewApplicationWithJobResponse maps a joined row.
func NewApplicationWithJobResponse(row *repository.ApplicationWithJob) ApplicationWithJobResponse {
	return ApplicationWithJobResponse{
		ApplicationResponse: NewApplicationResponse(&row.Application),
		Job: ApplicationJobSummary{
			ID:       row.JobID,
			Title:    row.JobTitle,
			Company:  row.JobCompany,
			Location: row.JobLocation,
			Type:     row.JobType,
			Salary:   row.JobSalary,
			Status:   row.JobStatus,
		},
	}
}

// ApplicantSummary embeds the applicant's profile in the HR review shape.
type ApplicantSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Education    string   `json:"education"`
	Experience   string   `json:"experience"`
	ProfileImage string   `json:"profileImage,omitempty"`
}

// ApplicationWithApplicantResponse is the HR review shape.
type ApplicationWithApplicantResponse struct {
	ApplicationResponse
	Applicant ApplicantSummary `json:"applicantDetails"`
}

// NewApplicationWithApplicantResponse maps a joined row.
func NewApplicationWithApplicantResponse(row *repository.ApplicationWithApplicant) ApplicationWithApplicantResponse {
	return ApplicationWithApplicantResponse{
		ApplicationResponse: NewApplicationResponse(&row.Application),
		Applicant: ApplicantSummary{
			ID:           row.ApplicantID,
			Name:         row.ApplicantName,
			Email:        row.ApplicantEmail,
			Phone:        row.ApplicantPhone,
			Skills:       emptyIfNil(row.ApplicantSkills),
			Education:    row.ApplicantEducation,
			Experience:   row.ApplicantExperience,
			ProfileImage: row.ApplicantImage,
		},
	}
}

// ApplicationOverviewResponse joins both sides for admin views.
type ApplicationOverviewResponse struct {
	ApplicationResponse
	Applicant ApplicantSummary      `json:"applicantDetails"`
	Job       ApplicationJobSummary `json:"jobDetails"`
}

// NewApplicationOverviewResponse maps a joined row.
func NewApplicationOverviewResponse(row *repository.ApplicationOverview) ApplicationOverviewResponse {
	return ApplicationOverviewResponse{
		ApplicationResponse: NewApplicationResponse(&row.Application),
		Applicant: ApplicantSummary{
			ID:    row.ApplicantID,
			Name:  row.ApplicantName,
			Email: row.ApplicantEmail,
			Phone: row.ApplicantPhone,
		},
		Job: ApplicationJobSummary{
			ID:       row.JobID,
			Title:    row.JobTitle,
			Company:  row.JobCompany,
			Location: row.JobLocation,
		},
	}
}
