package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/service"
	"github.com/spec-kit/job-portal/internal/storage"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// UploadsHandler receives resume and profile image uploads.
type UploadsHandler struct {
	auth  *service.AuthService
	store *storage.FileStore
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(authService *service.AuthService, store *storage.FileStore) *UploadsHandler {
	return &UploadsHandler{auth: authService, store: store}
}

// UploadResume POST /api/upload/resume. Student only.
func (h *UploadsHandler) UploadResume(c *fiber.Ctx) error {
	return h.upload(c, "resume", storage.PurposeResume, h.auth.SetResume)
}

// UploadProfileImage POST /api/upload/profile-image. Any authenticated user.
func (h *UploadsHandler) UploadProfileImage(c *fiber.Ctx) error {
	return h.upload(c, "image", storage.PurposeProfileImage, h.auth.SetProfileImage)
}

func (h *UploadsHandler) upload(
	c *fiber.Ctx,
	field string,
	purpose storage.Purpose,
	apply func(ctx context.Context, userID, path string) (*domain.User, error),
) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	file, err := c.FormFile(field)
	if err != nil {
		return apperrors.NewValidationError("file required", map[string]any{"field": field})
	}

	path, err := h.store.Save(file, purpose, principal.User.ID)
	if err != nil {
		return err
	}

	user, err := apply(c.Context(), principal.User.ID, path)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"path": path,
		"user": dto.NewUserResponse(user),
	}})
}
