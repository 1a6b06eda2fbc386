package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// JobService coordinates job posting workflows.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, dispatcher: dispatcher}
}

// JobCreateInput describes a job creation payload.
type JobCreateInput struct {
	Title          string
	Company        string
	Location       string
	Type           domain.JobType
	Salary         string
	Description    string
	Requirements   []string
	SkillsRequired []string
	Experience     string
	Openings       int
	Deadline       *time.Time
}

// JobUpdateInput carries optional edits; nil fields are left untouched.
type JobUpdateInput struct {
	Title          *string
	Company        *string
	Location       *string
	Type           *domain.JobType
	Salary         *string
	Description    *string
	Requirements   []string
	SkillsRequired []string
	Experience     *string
	Openings       *int
	Deadline       *time.Time
	Status         *domain.JobStatus
}

// Create posts a new job owned by the acting HR user. New jobs default to
// active status.
func (s *JobService) Create(ctx context.Context, actor authz.Actor, input JobCreateInput) (*domain.Job, error) {
	if decision := authz.Authorize(actor, authz.ActionCreateJob, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}

	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	description := strings.TrimSpace(input.Description)
	if title == "" || location == "" || description == "" {
		return nil, apperrors.NewValidationError("title, location and description are required", nil)
	}

	jobType := input.Type
	if jobType == "" {
		jobType = domain.JobTypeFullTime
	}
	if !domain.ValidJobType(jobType) {
		return nil, apperrors.NewValidationError("invalid job type", map[string]any{"field": "type"})
	}

	job := &domain.Job{
		Title:          title,
		Company:        strings.TrimSpace(input.Company),
		Location:       location,
		Type:           jobType,
		Salary:         strings.TrimSpace(input.Salary),
		Description:    description,
		Requirements:   normalizeList(input.Requirements),
		SkillsRequired: normalizeList(input.SkillsRequired),
		Experience:     strings.TrimSpace(input.Experience),
		Openings:       input.Openings,
		Deadline:       input.Deadline,
		PostedBy:       actor.ID,
		Status:         domain.JobStatusActive,
	}
	if job.Salary == "" {
		job.Salary = "Not Disclosed"
	}
	if job.Experience == "" {
		job.Experience = "Fresher"
	}
	if job.Openings <= 0 {
		job.Openings = 1
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventJobCreated,
		SubjectID: job.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.JobCreatedPayload{
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Type:     job.Type,
			Status:   job.Status,
		},
	})
	return job, nil
}

// Update edits a job. Resolution happens before authorization so that a
// missing job surfaces as not-found rather than forbidden.
func (s *JobService) Update(ctx context.Context, actor authz.Actor, jobID string, input JobUpdateInput) (*domain.Job, error) {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	decision := authz.Authorize(actor, authz.ActionUpdateJob, &authz.Resource{OwnerID: job.PostedBy})
	if !decision.Allowed {
		return nil, apperrors.NewForbidden("not authorized to update this job")
	}

	oldStatus := job.Status

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Company != nil {
		job.Company = strings.TrimSpace(*input.Company)
	}
	if input.Location != nil && strings.TrimSpace(*input.Location) != "" {
		job.Location = strings.TrimSpace(*input.Location)
	}
	if input.Type != nil {
		if !domain.ValidJobType(*input.Type) {
			return nil, apperrors.NewValidationError("invalid job type", map[string]any{"field": "type"})
		}
		job.Type = *input.Type
	}
	if input.Salary != nil {
		job.Salary = strings.TrimSpace(*input.Salary)
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		job.Description = strings.TrimSpace(*input.Description)
	}
	if input.Requirements != nil {
		job.Requirements = normalizeList(input.Requirements)
	}
	if input.SkillsRequired != nil {
		job.SkillsRequired = normalizeList(input.SkillsRequired)
	}
	if input.Experience != nil {
		job.Experience = strings.TrimSpace(*input.Experience)
	}
	if input.Openings != nil {
		if *input.Openings <= 0 {
			return nil, apperrors.NewValidationError("openings must be positive", map[string]any{"field": "openings"})
		}
		job.Openings = *input.Openings
	}
	if input.Deadline != nil {
		job.Deadline = input.Deadline
	}
	if input.Status != nil {
		if !domain.ValidJobStatus(*input.Status) {
			return nil, apperrors.NewValidationError("invalid job status", map[string]any{"field": "status"})
		}
		if !domain.JobStatusTransitionAllowed(job.Status, *input.Status) {
			return nil, apperrors.NewValidationError("job status transition not allowed", map[string]any{"field": "status"})
		}
		job.Status = *input.Status
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	if job.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:      events.EventJobStatusChanged,
			SubjectID: job.ID,
			Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
			Payload:   events.JobStatusChangedPayload{OldStatus: oldStatus, NewStatus: job.Status},
		})
	}
	return job, nil
}

// Delete removes a job. Applications referencing it are removed with it
// by the schema's ON DELETE CASCADE.
func (s *JobService) Delete(ctx context.Context, actor authz.Actor, jobID string) error {
	job, err := s.getJob(ctx, jobID)
	if err != nil {
		return err
	}
	decision := authz.Authorize(actor, authz.ActionDeleteJob, &authz.Resource{OwnerID: job.PostedBy})
	if !decision.Allowed {
		return apperrors.NewForbidden("not authorized to delete this job")
	}
	return s.jobs.Delete(ctx, jobID)
}

// Get returns a single job by id; public, no authorization.
func (s *JobService) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.getJob(ctx, jobID)
}

// ListPublic returns active jobs matching the public listing filters.
func (s *JobService) ListPublic(ctx context.Context, filter repository.JobFilter) ([]repository.JobWithPoster, error) {
	return s.jobs.ListActive(ctx, filter)
}

// ListAll returns every job regardless of status; admin only.
func (s *JobService) ListAll(ctx context.Context, actor authz.Actor) ([]repository.JobWithPoster, error) {
	if decision := authz.Authorize(actor, authz.ActionViewAllJobs, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	return s.jobs.ListAll(ctx)
}

// ListOwn returns the acting HR user's postings.
func (s *JobService) ListOwn(ctx context.Context, actor authz.Actor) ([]domain.Job, error) {
	if decision := authz.Authorize(actor, authz.ActionListOwnJobs, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	return s.jobs.ListByPoster(ctx, actor.ID)
}

func (s *JobService) getJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": jobID})
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizeList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
