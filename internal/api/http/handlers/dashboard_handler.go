package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/service"
)

// DashboardHandler serves the HR and student dashboards. The admin
// dashboard lives on AdminHandler next to user management.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboardService}
}

// HR GET /api/dashboard/hr. HR only.
func (h *DashboardHandler) HR(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	board, err := h.dashboard.HR(c.Context(), actor)
	if err != nil {
		return err
	}

	jobs := make([]dto.JobResponse, 0, len(board.Jobs))
	for i := range board.Jobs {
		jobs = append(jobs, dto.NewJobResponse(&board.Jobs[i]))
	}

	return c.JSON(fiber.Map{"data": dto.HRDashboardResponse{
		TotalJobs:         board.TotalJobs,
		ActiveJobs:        board.ActiveJobs,
		ClosedJobs:        board.ClosedJobs,
		TotalApplications: board.TotalApplications,
		Jobs:              jobs,
	}})
}

// Student GET /api/dashboard/student. Student only.
func (h *DashboardHandler) Student(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	board, err := h.dashboard.Student(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StudentDashboardResponse{
		TotalApplications: board.TotalApplications,
		ByStatus:          board.ByStatus,
	}})
}
