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

// ApplicationService coordinates the apply flow and application review.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	users repository.UserRepository,
	dispatcher events.Dispatcher,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		dispatcher:   dispatcher,
	}
}

// Apply submits a one-action application for the acting student, reusing the
// stored resume reference. On success exactly one application exists for the
// (job, applicant) pair and the job's applications_count has grown by one.
func (s *ApplicationService) Apply(ctx context.Context, actor authz.Actor, jobID string) (*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": jobID})
		}
		return nil, err
	}

	if decision := authz.Authorize(actor, authz.ActionApplyToJob, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}

	if !job.AcceptingApplications() {
		return nil, apperrors.NewValidationError("this job is no longer accepting applications",
			map[string]any{"status": job.Status})
	}

	// Fast-path duplicate check; the unique index remains the backstop for
	// concurrent applies.
	if _, err := s.applications.GetByJobAndApplicant(ctx, jobID, actor.ID); err == nil {
		return nil, apperrors.NewConflict("you have already applied for this job", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	student, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	if student.Resume == "" {
		return nil, apperrors.NewValidationError("please upload your resume before applying",
			map[string]any{"field": "resume"})
	}

	application := &domain.Application{
		JobID:       jobID,
		ApplicantID: actor.ID,
		// Snapshot of the current resume path; later profile edits do not
		// touch submitted applications.
		Resume: student.Resume,
		Status: domain.ApplicationStatusApplied,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if err == repository.ErrDuplicate {
			return nil, apperrors.NewConflict("you have already applied for this job", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventApplicationSubmitted,
		SubjectID: application.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ApplicationSubmittedPayload{
			JobID:       job.ID,
			JobTitle:    job.Title,
			ApplicantID: actor.ID,
		},
	})
	return application, nil
}

// SetStatus updates an application's review status, optionally overwriting
// the notes. Permitted only for the owning HR of the referenced job or an
// admin; reviewers may move between states in any order.
func (s *ApplicationService) SetStatus(ctx context.Context, actor authz.Actor, applicationID string, newStatus domain.ApplicationStatus, notes *string) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("application", map[string]any{"id": applicationID})
		}
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": application.JobID})
		}
		return nil, err
	}

	decision := authz.Authorize(actor, authz.ActionUpdateApplicationStatus, &authz.Resource{OwnerID: job.PostedBy})
	if !decision.Allowed {
		return nil, apperrors.NewForbidden("not authorized")
	}

	newStatus = domain.ApplicationStatus(strings.TrimSpace(string(newStatus)))
	if !domain.ValidApplicationStatus(newStatus) {
		return nil, apperrors.NewValidationError("invalid application status",
			map[string]any{"field": "status"})
	}
	if !domain.ApplicationStatusTransitionAllowed(application.Status, newStatus) {
		return nil, apperrors.NewValidationError("application status transition not allowed",
			map[string]any{"field": "status"})
	}

	oldStatus := application.Status
	application.Status = newStatus
	if notes != nil {
		application.Notes = *notes
	}

	if err := s.applications.UpdateStatus(ctx, application); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventApplicationStatusChanged,
		SubjectID: application.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.ApplicationStatusChangedPayload{
			JobID:     application.JobID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Notes:     application.Notes,
		},
	})
	return application, nil
}

// ListOwn returns the acting student's applications with job summaries.
func (s *ApplicationService) ListOwn(ctx context.Context, actor authz.Actor) ([]repository.ApplicationWithJob, error) {
	if decision := authz.Authorize(actor, authz.ActionViewOwnApplications, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	return s.applications.ListByApplicant(ctx, actor.ID)
}

// ListForJob returns every application targeting a job, for the owning HR or
// an admin.
func (s *ApplicationService) ListForJob(ctx context.Context, actor authz.Actor, jobID string) ([]repository.ApplicationWithApplicant, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": jobID})
		}
		return nil, err
	}
	decision := authz.Authorize(actor, authz.ActionViewJobApplications, &authz.Resource{OwnerID: job.PostedBy})
	if !decision.Allowed {
		return nil, apperrors.NewForbidden("not authorized")
	}
	return s.applications.ListByJob(ctx, jobID)
}

// ListAll returns every application in the system; admin only.
func (s *ApplicationService) ListAll(ctx context.Context, actor authz.Actor) ([]repository.ApplicationOverview, error) {
	if decision := authz.Authorize(actor, authz.ActionManageUsers, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	return s.applications.ListAll(ctx)
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
