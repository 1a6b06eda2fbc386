package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/service"
)

// AdminHandler exposes user management and the admin dashboard.
type AdminHandler struct {
	admin     *service.AdminService
	dashboard *service.DashboardService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, dashboardService *service.DashboardService) *AdminHandler {
	return &AdminHandler{admin: adminService, dashboard: dashboardService}
}

// Dashboard GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	board, err := h.dashboard.Admin(c.Context(), actor)
	if err != nil {
		return err
	}

	recentJobs := make([]dto.JobResponse, 0, len(board.RecentJobs))
	for i := range board.RecentJobs {
		recentJobs = append(recentJobs, dto.NewJobWithPosterResponse(&board.RecentJobs[i]))
	}
	recentApplications := make([]dto.ApplicationOverviewResponse, 0, len(board.RecentApplications))
	for i := range board.RecentApplications {
		recentApplications = append(recentApplications, dto.NewApplicationOverviewResponse(&board.RecentApplications[i]))
	}

	return c.JSON(fiber.Map{"data": dto.AdminDashboardResponse{
		Stats: dto.AdminStatsResponse{
			TotalUsers:        board.Stats.TotalUsers,
			TotalStudents:     board.Stats.TotalStudents,
			TotalHRs:          board.Stats.TotalHRs,
			TotalJobs:         board.Stats.TotalJobs,
			ActiveJobs:        board.Stats.ActiveJobs,
			TotalApplications: board.Stats.TotalApplications,
		},
		RecentJobs:         recentJobs,
		RecentApplications: recentApplications,
	}})
}

// ListUsers GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var role *domain.Role
	if roleStr := c.Query("role"); roleStr != "" {
		r := domain.Role(roleStr)
		role = &r
	}
	users, err := h.admin.ListUsers(c.Context(), actor, role)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ToggleUserActive PUT /api/admin/users/:id/toggle-active.
func (h *AdminHandler) ToggleUserActive(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	user, err := h.admin.ToggleActive(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	message := "user deactivated"
	if user.IsActive {
		message = "user activated"
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"message": message,
		"user":    dto.NewUserResponse(user),
	}})
}

// DeleteUser DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteUser(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "user deleted successfully"}})
}
