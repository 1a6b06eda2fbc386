package authz

import "github.com/spec-kit/job-portal/internal/domain"

// Action enumerates the operations guarded by the policy.
type Action string

const (
	ActionViewPublicJobs          Action = "view-public-jobs"
	ActionViewAllJobs             Action = "view-all-jobs"
	ActionCreateJob               Action = "create-job"
	ActionListOwnJobs             Action = "list-own-jobs"
	ActionUpdateJob               Action = "update-job"
	ActionDeleteJob               Action = "delete-job"
	ActionApplyToJob              Action = "apply-to-job"
	ActionViewOwnApplications     Action = "view-own-applications"
	ActionViewJobApplications     Action = "view-job-applications"
	ActionUpdateApplicationStatus Action = "update-application-status"
	ActionManageUsers             Action = "manage-users"
)

// Actor is the identity issuing a request. The zero value represents an
// anonymous caller.
type Actor struct {
	ID   string
	Role domain.Role
}

// Anonymous reports whether the actor is unauthenticated.
func (a Actor) Anonymous() bool {
	return a.ID == ""
}

// Resource carries the ownership information the policy needs. Callers must
// resolve the resource before asking for a decision so that a missing
// resource surfaces as not-found rather than a denial.
type Resource struct {
	OwnerID string
}

// Decision is the outcome of a policy evaluation. Reason is set only on
// denial.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether the actor may perform the action on the
// resource. It is a pure function with no side effects. Admins pass every
// check; everything not explicitly allowed is denied.
func Authorize(actor Actor, action Action, resource *Resource) Decision {
	if actor.Role == domain.RoleAdmin {
		return allow()
	}

	switch action {
	case ActionViewPublicJobs:
		// Public listing and detail are open to everyone, anonymous included.
		return allow()

	case ActionCreateJob, ActionListOwnJobs:
		if actor.Role == domain.RoleHR {
			return allow()
		}
		return deny("hr role required")

	case ActionUpdateJob, ActionDeleteJob, ActionViewJobApplications, ActionUpdateApplicationStatus:
		if actor.Role != domain.RoleHR {
			return deny("hr role required")
		}
		if resource == nil || resource.OwnerID == "" || resource.OwnerID != actor.ID {
			return deny("not authorized")
		}
		return allow()

	case ActionApplyToJob, ActionViewOwnApplications:
		if actor.Role == domain.RoleStudent {
			return allow()
		}
		return deny("student role required")

	case ActionViewAllJobs, ActionManageUsers:
		return deny("admin role required")

	default:
		return deny("action not permitted")
	}
}
