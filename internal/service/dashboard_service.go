package service

import (
	"context"

	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// DashboardService produces role-scoped summary counts and recent lists.
// Nothing is cached; every call recomputes from current state.
type DashboardService struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(
	users repository.UserRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
) *DashboardService {
	return &DashboardService{users: users, jobs: jobs, applications: applications}
}

// AdminStats carries system-wide totals.
type AdminStats struct {
	TotalUsers        int
	TotalStudents     int
	TotalHRs          int
	TotalJobs         int
	ActiveJobs        int
	TotalApplications int
}

// AdminDashboard bundles admin stats with recent activity.
type AdminDashboard struct {
	Stats              AdminStats
	RecentJobs         []repository.JobWithPoster
	RecentApplications []repository.ApplicationOverview
}

// HRDashboard summarizes the caller's own postings.
type HRDashboard struct {
	TotalJobs         int
	ActiveJobs        int
	ClosedJobs        int
	TotalApplications int
	Jobs              []domain.Job
}

// StudentDashboard counts the caller's applications by status.
type StudentDashboard struct {
	TotalApplications int
	ByStatus          map[domain.ApplicationStatus]int
}

const recentLimit = 5

// Admin computes the admin dashboard. Empty systems yield zero counts and
// empty lists.
func (s *DashboardService) Admin(ctx context.Context, actor authz.Actor) (*AdminDashboard, error) {
	if decision := authz.Authorize(actor, authz.ActionManageUsers, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}

	roleCounts, err := s.users.CountsByRole(ctx)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.jobs.CountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, err
	}
	recentJobs, err := s.jobs.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentApplications, err := s.applications.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	totalUsers := 0
	for _, count := range roleCounts {
		totalUsers += count
	}
	totalJobs := 0
	for _, count := range statusCounts {
		totalJobs += count
	}

	if recentJobs == nil {
		recentJobs = []repository.JobWithPoster{}
	}
	if recentApplications == nil {
		recentApplications = []repository.ApplicationOverview{}
	}

	return &AdminDashboard{
		Stats: AdminStats{
			TotalUsers:        totalUsers,
			TotalStudents:     roleCounts[domain.RoleStudent],
			TotalHRs:          roleCounts[domain.RoleHR],
			TotalJobs:         totalJobs,
			ActiveJobs:        statusCounts[domain.JobStatusActive],
			TotalApplications: totalApplications,
		},
		RecentJobs:         recentJobs,
		RecentApplications: recentApplications,
	}, nil
}

// HR computes the dashboard from the caller's own job set; the counts are
// derived by filtering the postings, not read from a stored aggregate.
func (s *DashboardService) HR(ctx context.Context, actor authz.Actor) (*HRDashboard, error) {
	if decision := authz.Authorize(actor, authz.ActionListOwnJobs, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}

	jobs, err := s.jobs.ListByPoster(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &HRDashboard{Jobs: jobs}
	if dashboard.Jobs == nil {
		dashboard.Jobs = []domain.Job{}
	}
	for _, job := range jobs {
		dashboard.TotalJobs++
		dashboard.TotalApplications += job.ApplicationsCount
		switch job.Status {
		case domain.JobStatusActive:
			dashboard.ActiveJobs++
		case domain.JobStatusClosed:
			dashboard.ClosedJobs++
		}
	}
	return dashboard, nil
}

// Student counts the caller's own applications by status.
func (s *DashboardService) Student(ctx context.Context, actor authz.Actor) (*StudentDashboard, error) {
	if decision := authz.Authorize(actor, authz.ActionViewOwnApplications, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}

	counts, err := s.applications.StatusCountsByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = map[domain.ApplicationStatus]int{}
	}
	total := 0
	for _, count := range counts {
		total += count
	}
	return &StudentDashboard{TotalApplications: total, ByStatus: counts}, nil
}
