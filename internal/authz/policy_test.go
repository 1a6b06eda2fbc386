package authz

import (
	"testing"

	"github.com/spec-kit/job-portal/internal/domain"
)

func TestAuthorizeMatrix(t *testing.T) {
	admin := Actor{ID: "admin-1", Role: domain.RoleAdmin}
	hr := Actor{ID: "hr-1", Role: domain.RoleHR}
	otherHR := Actor{ID: "hr-2", Role: domain.RoleHR}
	student := Actor{ID: "student-1", Role: domain.RoleStudent}
	anonymous := Actor{}

	owned := &Resource{OwnerID: hr.ID}

	tests := []struct {
		name     string
		actor    Actor
		action   Action
		resource *Resource
		want     bool
	}{
		{"anonymous views public jobs", anonymous, ActionViewPublicJobs, nil, true},
		{"student views public jobs", student, ActionViewPublicJobs, nil, true},

		{"hr creates job", hr, ActionCreateJob, nil, true},
		{"student creates job", student, ActionCreateJob, nil, false},
		{"anonymous creates job", anonymous, ActionCreateJob, nil, false},
		{"admin creates job", admin, ActionCreateJob, nil, true},

		{"hr lists own jobs", hr, ActionListOwnJobs, nil, true},
		{"student lists own jobs", student, ActionListOwnJobs, nil, false},

		{"owner updates job", hr, ActionUpdateJob, owned, true},
		{"other hr updates job", otherHR, ActionUpdateJob, owned, false},
		{"student updates job", student, ActionUpdateJob, owned, false},
		{"admin updates any job", admin, ActionUpdateJob, owned, true},
		{"hr updates without resource", hr, ActionUpdateJob, nil, false},

		{"owner deletes job", hr, ActionDeleteJob, owned, true},
		{"other hr deletes job", otherHR, ActionDeleteJob, owned, false},
		{"admin deletes any job", admin, ActionDeleteJob, owned, true},

		{"student applies", student, ActionApplyToJob, nil, true},
		{"hr applies", hr, ActionApplyToJob, nil, false},
		{"anonymous applies", anonymous, ActionApplyToJob, nil, false},

		{"student views own applications", student, ActionViewOwnApplications, nil, true},
		{"hr views own applications", hr, ActionViewOwnApplications, nil, false},

		{"owner views job applications", hr, ActionViewJobApplications, owned, true},
		{"other hr views job applications", otherHR, ActionViewJobApplications, owned, false},
		{"student views job applications", student, ActionViewJobApplications, owned, false},
		{"admin views job applications", admin, ActionViewJobApplications, owned, true},

		{"owner updates application status", hr, ActionUpdateApplicationStatus, owned, true},
		{"other hr updates application status", otherHR, ActionUpdateApplicationStatus, owned, false},
		{"admin updates application status", admin, ActionUpdateApplicationStatus, owned, true},

		{"admin views all jobs", admin, ActionViewAllJobs, nil, true},
		{"hr views all jobs", hr, ActionViewAllJobs, nil, false},
		{"student views all jobs", student, ActionViewAllJobs, nil, false},

		{"admin manages users", admin, ActionManageUsers, nil, true},
		{"hr manages users", hr, ActionManageUsers, nil, false},
		{"student manages users", student, ActionManageUsers, nil, false},
		{"anonymous manages users", anonymous, ActionManageUsers, nil, false},

		{"unknown action is denied", hr, Action("export-everything"), nil, false},
		{"unknown action allowed for admin", admin, Action("export-everything"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.actor, tt.action, tt.resource)
			if decision.Allowed != tt.want {
				t.Fatalf("Authorize(%v, %s) = %v, want %v (reason %q)",
					tt.actor, tt.action, decision.Allowed, tt.want, decision.Reason)
			}
			if !decision.Allowed && decision.Reason == "" {
				t.Fatal("denials must carry a reason")
			}
		})
	}
}

func TestAnonymous(t *testing.T) {
	if !(Actor{}).Anonymous() {
		t.Fatal("zero actor must be anonymous")
	}
	if (Actor{ID: "u1", Role: domain.RoleStudent}).Anonymous() {
		t.Fatal("identified actor must not be anonymous")
	}
}
