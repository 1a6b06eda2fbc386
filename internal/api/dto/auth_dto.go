package dto

import (
	"time"

	"github.com/spec-kit/job-portal/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Role        domain.Role `json:"role"`
	Phone       string      `json:"phone"`
	Company     string      `json:"company"`
	Designation string      `json:"designation"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProfileUpdateRequest carries optional self-service profile edits.
type ProfileUpdateRequest struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Skills      StringList `json:"skills"`
	Education   *string    `json:"education"`
	Experience  *string    `json:"experience"`
	Bio         *string    `json:"bio"`
	Company     *string    `json:"company"`
	Designation *string    `json:"designation"`
}

// UserResponse is the public shape of an account; the password hash is
// never serialized.
type UserResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	Phone        string      `json:"phone"`
	Resume       string      `json:"resume,omitempty"`
	Skills       []string    `json:"skills,omitempty"`
	Education    string      `json:"education,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	ProfileImage string      `json:"profileImage,omitempty"`
	Company      string      `json:"company,omitempty"`
	Designation  string      `json:"designation,omitempty"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// NewUserResponse maps a domain user to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Phone:        user.Phone,
		Resume:       user.Resume,
		Skills:       user.Skills,
		Education:    user.Education,
		Experience:   user.Experience,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		Company:      user.Company,
		Designation:  user.Designation,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}
