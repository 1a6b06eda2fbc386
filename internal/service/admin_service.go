package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// AdminService handles user management, admin only.
type AdminService struct {
	users repository.UserRepository
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns accounts, optionally filtered by role.
func (s *AdminService) ListUsers(ctx context.Context, actor authz.Actor, role *domain.Role) ([]domain.User, error) {
	if decision := authz.Authorize(actor, authz.ActionManageUsers, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	if role != nil && !domain.ValidRole(*role) {
		return nil, apperrors.NewValidationError("invalid role filter", map[string]any{"field": "role"})
	}
	return s.users.List(ctx, role)
}

// ToggleActive flips a user's active flag and returns the updated record.
func (s *AdminService) ToggleActive(ctx context.Context, actor authz.Actor, userID string) (*domain.User, error) {
	if decision := authz.Authorize(actor, authz.ActionManageUsers, nil); !decision.Allowed {
		return nil, apperrors.NewForbidden(decision.Reason)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, actor authz.Actor, userID string) error {
	if decision := authz.Authorize(actor, authz.ActionManageUsers, nil); !decision.Allowed {
		return apperrors.NewForbidden(decision.Reason)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return err
	}
	return s.users.Delete(ctx, userID)
}
