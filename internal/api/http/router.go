package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/http/handlers"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	Uploads        *handlers.UploadsHandler
	Dashboard      *handlers.DashboardHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Put("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.UpdateProfile)

	// Static routes register before the :id wildcard so "all" and
	// "my-jobs" are never captured as job ids.
	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.ListPublic)
	jobs.Get("/all", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Jobs.ListAll)
	jobs.Get("/my-jobs", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleHR), cfg.Jobs.ListOwn)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleHR), cfg.Jobs.Create)
	jobs.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleHR, domain.RoleAdmin), cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleHR, domain.RoleAdmin), cfg.Jobs.Delete)

	applications := api.Group("/applications", cfg.AuthMiddleware.Handle)
	applications.Get("/all", auth.RequireRole(domain.RoleAdmin), cfg.Applications.ListAll)
	applications.Get("/my-applications", auth.RequireRole(domain.RoleStudent), cfg.Applications.ListOwn)
	applications.Get("/job/:jobId", auth.RequireRole(domain.RoleHR, domain.RoleAdmin), cfg.Applications.ListForJob)
	applications.Post("/:jobId", auth.RequireRole(domain.RoleStudent), cfg.Applications.Apply)
	applications.Put("/:id/status", auth.RequireRole(domain.RoleHR, domain.RoleAdmin), cfg.Applications.SetStatus)

	uploads := api.Group("/upload", cfg.AuthMiddleware.Handle)
	uploads.Post("/resume", auth.RequireRole(domain.RoleStudent), cfg.Uploads.UploadResume)
	uploads.Post("/profile-image", cfg.Uploads.UploadProfileImage)

	dashboard := api.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/hr", auth.RequireRole(domain.RoleHR), cfg.Dashboard.HR)
	dashboard.Get("/student", auth.RequireRole(domain.RoleStudent), cfg.Dashboard.Student)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Put("/users/:id/toggle-active", cfg.Admin.ToggleUserActive)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
}
