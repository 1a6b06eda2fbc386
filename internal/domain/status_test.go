package domain

import "testing"

func TestValidJobStatus(t *testing.T) {
	for _, status := range []JobStatus{JobStatusActive, JobStatusClosed, JobStatusDraft} {
		if !ValidJobStatus(status) {
			t.Errorf("ValidJobStatus(%q) = false", status)
		}
	}
	if ValidJobStatus("archived") {
		t.Error("ValidJobStatus(archived) = true")
	}
	if ValidJobStatus("") {
		t.Error("ValidJobStatus(empty) = true")
	}
}

func TestJobStatusTransitions(t *testing.T) {
	states := []JobStatus{JobStatusActive, JobStatusClosed, JobStatusDraft}
	for _, from := range states {
		for _, to := range states {
			if !JobStatusTransitionAllowed(from, to) {
				t.Errorf("transition %s -> %s should be allowed", from, to)
			}
		}
	}
	if JobStatusTransitionAllowed(JobStatusActive, "archived") {
		t.Error("transition to undefined state should be rejected")
	}
	if JobStatusTransitionAllowed("archived", JobStatusActive) {
		t.Error("transition from undefined state should be rejected")
	}
}

func TestApplicationStatusTransitions(t *testing.T) {
	states := []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusShortlisted,
		ApplicationStatusInterviewed,
		ApplicationStatusSelected,
		ApplicationStatusRejected,
	}
	for _, from := range states {
		for _, to := range states {
			if !ApplicationStatusTransitionAllowed(from, to) {
				t.Errorf("transition %s -> %s should be allowed", from, to)
			}
		}
	}
	if ApplicationStatusTransitionAllowed(ApplicationStatusApplied, "hired") {
		t.Error("transition to undefined state should be rejected")
	}
}

func TestAcceptingApplications(t *testing.T) {
	job := Job{Status: JobStatusActive}
	if !job.AcceptingApplications() {
		t.Error("active job must accept applications")
	}
	for _, status := range []JobStatus{JobStatusClosed, JobStatusDraft} {
		job.Status = status
		if job.AcceptingApplications() {
			t.Errorf("%s job must not accept applications", status)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleHR, RoleStudent} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	if ValidRole("manager") {
		t.Error("ValidRole(manager) = true")
	}
}
