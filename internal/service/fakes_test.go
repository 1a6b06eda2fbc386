package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/repository"
)

type fakeDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *fakeDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *fakeDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *fakeDispatcher) events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.published...)
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) add(user *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	clone := *user
	r.byID[user.ID] = &clone
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			r.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	r.mu.Unlock()
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.byID {
		if role != nil && user.Role != *role {
			continue
		}
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) CountsByRole(ctx context.Context) (map[domain.Role]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.Role]int)
	for _, user := range r.byID {
		counts[user.Role]++
	}
	return counts, nil
}

type fakeJobRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[string]*domain.Job)}
}

func (r *fakeJobRepo) add(job *domain.Job) *domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		r.nextID++
		job.ID = fmt.Sprintf("job-%d", r.nextID)
	}
	clone := *job
	r.byID[job.ID] = &clone
	return job
}

func (r *fakeJobRepo) Create(ctx context.Context, job *domain.Job) error {
	r.add(job)
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *job
	r.byID[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, filter repository.JobFilter) ([]repository.JobWithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []repository.JobWithPoster
	for _, job := range r.byID {
		if job.Status != domain.JobStatusActive {
			continue
		}
		result = append(result, repository.JobWithPoster{Job: *job})
	}
	return result, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]repository.JobWithPoster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []repository.JobWithPoster
	for _, job := range r.byID {
		result = append(result, repository.JobWithPoster{Job: *job})
	}
	return result, nil
}

func (r *fakeJobRepo) ListByPoster(ctx context.Context, posterID string) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Job
	for _, job := range r.byID {
		if job.PostedBy == posterID {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (r *fakeJobRepo) ListRecent(ctx context.Context, limit int) ([]repository.JobWithPoster, error) {
	all, _ := r.ListAll(ctx)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeJobRepo) CountsByStatus(ctx context.Context) (map[domain.JobStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.JobStatus]int)
	for _, job := range r.byID {
		counts[job.Status]++
	}
	return counts, nil
}

// fakeApplicationRepo mirrors the real contract: Create rejects duplicate
// (job, applicant) pairs and bumps the job's counter when a job repo is
// attached.
type fakeApplicationRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.Application
	jobs   *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[string]*domain.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *domain.Application) error {
	r.mu.Lock()
	for _, existing := range r.byID {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			r.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	application.ID = fmt.Sprintf("application-%d", r.nextID)
	clone := *application
	r.byID[application.ID] = &clone
	r.mu.Unlock()

	if r.jobs != nil {
		if job, err := r.jobs.GetByID(ctx, application.JobID); err == nil {
			job.ApplicationsCount++
			_ = r.jobs.Update(ctx, job)
		}
	}
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *application
	return &clone, nil
}

func (r *fakeApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, application := range r.byID {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			clone := *application
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, application *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[application.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = application.Status
	stored.Notes = application.Notes
	return nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]repository.ApplicationWithJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []repository.ApplicationWithJob
	for _, application := range r.byID {
		if application.ApplicantID == applicantID {
			result = append(result, repository.ApplicationWithJob{Application: *application})
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]repository.ApplicationWithApplicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []repository.ApplicationWithApplicant
	for _, application := range r.byID {
		if application.JobID == jobID {
			result = append(result, repository.ApplicationWithApplicant{Application: *application})
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]repository.ApplicationOverview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []repository.ApplicationOverview
	for _, application := range r.byID {
		result = append(result, repository.ApplicationOverview{Application: *application})
	}
	return result, nil
}

func (r *fakeApplicationRepo) ListRecent(ctx context.Context, limit int) ([]repository.ApplicationOverview, error) {
	all, _ := r.ListAll(ctx)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeApplicationRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID), nil
}

func (r *fakeApplicationRepo) StatusCountsByApplicant(ctx context.Context, applicantID string) (map[domain.ApplicationStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.ApplicationStatus]int)
	for _, application := range r.byID {
		if application.ApplicantID == applicantID {
			counts[application.Status]++
		}
	}
	return counts, nil
}
