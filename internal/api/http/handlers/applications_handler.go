package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/authz"
	"github.com/spec-kit/job-portal/internal/service"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// ApplicationsHandler manages apply and review endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Apply POST /api/applications/:jobId. Student only.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	application, err := h.applications.Apply(c.Context(), actor, c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationResponse(application)})
}

// ListOwn GET /api/applications/my-applications. Student only.
func (h *ApplicationsHandler) ListOwn(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	rows, err := h.applications.ListOwn(c.Context(), actor)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationWithJobResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewApplicationWithJobResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListForJob GET /api/applications/job/:jobId. Owning HR or admin.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	rows, err := h.applications.ListForJob(c.Context(), actor, c.Params("jobId"))
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationWithApplicantResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewApplicationWithApplicantResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// SetStatus PUT /api/applications/:id/status. Owning HR or admin.
func (h *ApplicationsHandler) SetStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", map[string]any{"field": "status"})
	}

	application, err := h.applications.SetStatus(c.Context(), actor, c.Params("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationResponse(application)})
}

// ListAll GET /api/applications/all. Admin only.
func (h *ApplicationsHandler) ListAll(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	rows, err := h.applications.ListAll(c.Context(), actor)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationOverviewResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewApplicationOverviewResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func actorFromContext(c *fiber.Ctx) (authz.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return authz.Actor{}, apperrors.NewUnauthorized("authentication required")
	}
	return principal.Actor(), nil
}
