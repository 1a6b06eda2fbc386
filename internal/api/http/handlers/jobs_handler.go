package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
	"github.com/spec-kit/job-portal/internal/service"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// ListPublic GET /api/jobs. Open to everyone; only active jobs appear.
func (h *JobsHandler) ListPublic(c *fiber.Ctx) error {
	filter := repository.JobFilter{}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if jobType := c.Query("type"); jobType != "" {
		t := domain.JobType(jobType)
		filter.Type = &t
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}
	if experience := c.Query("experience"); experience != "" {
		filter.Experience = &experience
	}

	rows, err := h.jobs.ListPublic(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobsWithPoster(rows)})
}

// ListAll GET /api/jobs/all. Admin only.
func (h *JobsHandler) ListAll(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	rows, err := h.jobs.ListAll(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobsWithPoster(rows)})
}

// ListOwn GET /api/jobs/my-jobs. HR only.
func (h *JobsHandler) ListOwn(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobs.ListOwn(c.Context(), actor)
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/jobs/:id. Public detail view.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Create POST /api/jobs. HR only.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	company := req.Company
	if company == "" && principal != nil && principal.User != nil {
		company = principal.User.Company
	}

	job, err := h.jobs.Create(c.Context(), actor, service.JobCreateInput{
		Title:          req.Title,
		Company:        company,
		Location:       req.Location,
		Type:           req.Type,
		Salary:         req.Salary,
		Description:    req.Description,
		Requirements:   req.Requirements,
		SkillsRequired: req.SkillsRequired,
		Experience:     req.Experience,
		Openings:       req.Openings,
		Deadline:       req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Update PUT /api/jobs/:id. Owning HR or admin.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.jobs.Update(c.Context(), actor, c.Params("id"), service.JobUpdateInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Type:           req.Type,
		Salary:         req.Salary,
		Description:    req.Description,
		Requirements:   req.Requirements,
		SkillsRequired: req.SkillsRequired,
		Experience:     req.Experience,
		Openings:       req.Openings,
		Deadline:       req.Deadline,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Delete DELETE /api/jobs/:id. Owning HR or admin.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "job removed successfully"}})
}

func jobsWithPoster(rows []repository.JobWithPoster) []dto.JobResponse {
	items := make([]dto.JobResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewJobWithPosterResponse(&rows[i]))
	}
	return items
}
