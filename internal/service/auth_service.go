package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/config"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes a registration payload.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        domain.Role
	Phone       string
	Company     string
	Designation string
}

// Register creates a new student or hr account. Admin accounts are
// provisioned out of band and cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name, email and password are required", nil)
	}
	if len(input.Password) < 6 {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be at least 6 characters",
			map[string]any{"field": "password"})
	}

	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if role != domain.RoleStudent && role != domain.RoleHR {
		return nil, "", time.Time{}, apperrors.NewValidationError("role must be student or hr",
			map[string]any{"field": "role"})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
		Skills:       []string{},
		IsActive:     true,
	}
	if role == domain.RoleHR {
		user.Company = strings.TrimSpace(input.Company)
		user.Designation = strings.TrimSpace(input.Designation)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicate {
			return nil, "", time.Time{}, apperrors.NewConflict("user already exists with this email",
				map[string]any{"field": "email"})
		}
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventUserRegistered,
		SubjectID: user.ID,
		Actor:     events.Actor{UserID: user.ID, Role: user.Role},
		Payload:   events.UserRegisteredPayload{Email: user.Email, Role: user.Role},
	})

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewForbidden("account deactivated")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ProfileUpdateInput carries optional self-service profile edits. Nil fields
// are left untouched. Role and email are immutable.
type ProfileUpdateInput struct {
	Name        *string
	Phone       *string
	Skills      []string
	Education   *string
	Experience  *string
	Bio         *string
	Company     *string
	Designation *string
}

// UpdateProfile applies a partial profile update for the caller.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Skills != nil {
		user.Skills = input.Skills
	}
	if input.Education != nil {
		user.Education = *input.Education
	}
	if input.Experience != nil {
		user.Experience = *input.Experience
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Company != nil {
		user.Company = strings.TrimSpace(*input.Company)
	}
	if input.Designation != nil {
		user.Designation = strings.TrimSpace(*input.Designation)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile loads the caller's account.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// SetResume records the stored path of a freshly uploaded resume.
func (s *AuthService) SetResume(ctx context.Context, userID, path string) (*domain.User, error) {
	return s.setFileField(ctx, userID, func(u *domain.User) { u.Resume = path })
}

// SetProfileImage records the stored path of a freshly uploaded profile image.
func (s *AuthService) SetProfileImage(ctx context.Context, userID, path string) (*domain.User, error) {
	return s.setFileField(ctx, userID, func(u *domain.User) { u.ProfileImage = path })
}

func (s *AuthService) setFileField(ctx context.Context, userID string, set func(*domain.User)) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	set(user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
