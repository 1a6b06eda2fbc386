package service

import (
	"context"
	"testing"

	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/domain"
)

func TestAdminDashboardCounts(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewDashboardService(users, jobs, applications)
	ctx := context.Background()

	users.add(&domain.User{Email: "a@test", Role: domain.RoleAdmin, IsActive: true})
	hr := users.add(&domain.User{Email: "h@test", Role: domain.RoleHR, IsActive: true})
	student := users.add(&domain.User{Email: "s@test", Role: domain.RoleStudent, IsActive: true})

	active := jobs.add(&domain.Job{Title: "A", PostedBy: hr.ID, Status: domain.JobStatusActive})
	jobs.add(&domain.Job{Title: "B", PostedBy: hr.ID, Status: domain.JobStatusClosed})

	if err := applications.Create(ctx, &domain.Application{
		JobID: active.ID, ApplicantID: student.ID,
		Resume: "r.pdf", Status: domain.ApplicationStatusApplied,
	}); err != nil {
		t.Fatalf("create application: %v", err)
	}

	admin := authz.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	board, err := svc.Admin(ctx, admin)
	if err != nil {
		t.Fatalf("admin dashboard: %v", err)
	}

	if board.Stats.TotalUsers != 3 || board.Stats.TotalStudents != 1 || board.Stats.TotalHRs != 1 {
		t.Fatalf("user stats = %+v", board.Stats)
	}
	if board.Stats.TotalJobs != 2 || board.Stats.ActiveJobs != 1 {
		t.Fatalf("job stats = %+v", board.Stats)
	}
	if board.Stats.TotalApplications != 1 {
		t.Fatalf("application stats = %+v", board.Stats)
	}
	if len(board.RecentJobs) != 2 || len(board.RecentApplications) != 1 {
		t.Fatalf("recent lists = %d jobs, %d applications", len(board.RecentJobs), len(board.RecentApplications))
	}
}

func TestAdminDashboardEmptySystem(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewDashboardService(newFakeUserRepo(), jobs, newFakeApplicationRepo(jobs))

	admin := authz.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	board, err := svc.Admin(context.Background(), admin)
	if err != nil {
		t.Fatalf("admin dashboard: %v", err)
	}
	if board.Stats != (AdminStats{}) {
		t.Fatalf("stats = %+v, want all zeros", board.Stats)
	}
	if board.RecentJobs == nil || board.RecentApplications == nil {
		t.Fatal("recent lists must be empty, not nil")
	}
}

func TestAdminDashboardForbiddenForHR(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewDashboardService(newFakeUserRepo(), jobs, newFakeApplicationRepo(jobs))

	hr := authz.Actor{ID: "hr-1", Role: domain.RoleHR}
	_, err := svc.Admin(context.Background(), hr)
	if code := errCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("code = %q, want FORBIDDEN", code)
	}
}

func TestHRDashboardAggregatesOwnJobs(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewDashboardService(newFakeUserRepo(), jobs, newFakeApplicationRepo(jobs))

	jobs.add(&domain.Job{Title: "A", PostedBy: "hr-1", Status: domain.JobStatusActive, ApplicationsCount: 3})
	jobs.add(&domain.Job{Title: "B", PostedBy: "hr-1", Status: domain.JobStatusClosed, ApplicationsCount: 2})
	jobs.add(&domain.Job{Title: "C", PostedBy: "hr-2", Status: domain.JobStatusActive, ApplicationsCount: 9})

	hr := authz.Actor{ID: "hr-1", Role: domain.RoleHR}
	board, err := svc.HR(context.Background(), hr)
	if err != nil {
		t.Fatalf("hr dashboard: %v", err)
	}

	if board.TotalJobs != 2 || board.ActiveJobs != 1 || board.ClosedJobs != 1 {
		t.Fatalf("job counts = %+v", board)
	}
	if board.TotalApplications != 5 {
		t.Fatalf("total applications = %d, want 5", board.TotalApplications)
	}
	if len(board.Jobs) != 2 {
		t.Fatalf("jobs = %d, want only the caller's postings", len(board.Jobs))
	}
}

func TestStudentDashboardStatusCounts(t *testing.T) {
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	svc := NewDashboardService(newFakeUserRepo(), jobs, applications)
	ctx := context.Background()

	for i, status := range []domain.ApplicationStatus{
		domain.ApplicationStatusApplied,
		domain.ApplicationStatusApplied,
		domain.ApplicationStatusShortlisted,
	} {
		job := jobs.add(&domain.Job{Title: "J", PostedBy: "hr-1", Status: domain.JobStatusActive})
		if err := applications.Create(ctx, &domain.Application{
			JobID: job.ID, ApplicantID: "student-1", Resume: "r.pdf", Status: status,
		}); err != nil {
			t.Fatalf("create application %d: %v", i, err)
		}
	}

	student := authz.Actor{ID: "student-1", Role: domain.RoleStudent}
	board, err := svc.Student(ctx, student)
	if err != nil {
		t.Fatalf("student dashboard: %v", err)
	}
	if board.TotalApplications != 3 {
		t.Fatalf("total = %d, want 3", board.TotalApplications)
	}
	if board.ByStatus[domain.ApplicationStatusApplied] != 2 ||
		board.ByStatus[domain.ApplicationStatusShortlisted] != 1 {
		t.Fatalf("by status = %+v", board.ByStatus)
	}
}

func TestStudentDashboardEmpty(t *testing.T) {
	jobs := newFakeJobRepo()
	svc := NewDashboardService(newFakeUserRepo(), jobs, newFakeApplicationRepo(jobs))

	student := authz.Actor{ID: "student-1", Role: domain.RoleStudent}
	board, err := svc.Student(context.Background(), student)
	if err != nil {
		t.Fatalf("student dashboard: %v", err)
	}
	if board.TotalApplications != 0 || board.ByStatus == nil {
		t.Fatalf("board = %+v, want zero total and non-nil map", board)
	}
}
