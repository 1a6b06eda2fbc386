package dto

import "github.com/spec-kit/job-portal/internal/domain"

// AdminStatsResponse carries system-wide totals.
type AdminStatsResponse struct {
	TotalUsers        int `json:"totalUsers"`
	TotalStudents     int `json:"totalStudents"`
	TotalHRs          int `json:"totalHRs"`
	TotalJobs         int `json:"totalJobs"`
	ActiveJobs        int `json:"activeJobs"`
	TotalApplications int `json:"totalApplications"`
}

// AdminDashboardResponse bundles stats with recent activity.
type AdminDashboardResponse struct {
	Stats              AdminStatsResponse            `json:"stats"`
	RecentJobs         []JobResponse                 `json:"recentJobs"`
	RecentApplications []ApplicationOverviewResponse `json:"recentApplications"`
}

// HRDashboardResponse summarizes the caller's own postings.
type HRDashboardResponse struct {
	TotalJobs         int           `json:"totalJobs"`
	ActiveJobs        int           `json:"activeJobs"`
	ClosedJobs        int           `json:"closedJobs"`
	TotalApplications int           `json:"totalApplications"`
	Jobs              []JobResponse `json:"jobs"`
}

// StudentDashboardResponse counts the caller's applications by status.
type StudentDashboardResponse struct {
	TotalApplications int                              `json:"totalApplications"`
	ByStatus          map[domain.ApplicationStatus]int `json:"byStatus"`
}
