package routes

import (
	"hireboard/internal/api/handlers"
	"hireboard/internal/api/middleware"
	"hireboard/internal/applications"
	"hireboard/internal/audit"
	"hireboard/internal/config"
	"hireboard/internal/dashboard"
	"hireboard/internal/lookup"
	"hireboard/internal/refdata"
	"hireboard/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Deps carries the shared components the routes close over
type Deps struct {
	Dashboard    *dashboard.Dashboard
	Trail        *audit.Log
	Store        store.Store
	RefData      *refdata.Data
	CityResolver *lookup.CityResolver
	Applications *applications.Manager
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, deps Deps) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.NewRateLimiter(cfg).Middleware())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(deps.Store))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Dashboard view and controls
		dash := v1.Group("/dashboard")
		{
			dash.GET("", handlers.GetDashboardHandler(deps.Dashboard))
			dash.POST("/search", handlers.SearchHandler(deps.Dashboard))
			dash.POST("/filter", handlers.FilterHandler(deps.Dashboard))
			dash.POST("/page", handlers.PageHandler(deps.Dashboard))
		}

		// Posting row actions
		postings := v1.Group("/postings")
		{
			postings.DELETE("/:id", handlers.DeleteHandler(deps.Dashboard))
			postings.POST("/:id/duplicate", handlers.DuplicateHandler(deps.Dashboard))
			postings.POST("/:id/status", handlers.ChangeStatusHandler(deps.Dashboard))
			postings.POST("/:id/preview", handlers.OpenPreviewHandler(deps.Dashboard))
			postings.POST("/:id/edit", handlers.OpenEditJobFormHandler(deps.Dashboard))
		}
		v1.DELETE("/preview", handlers.ClosePreviewHandler(deps.Dashboard))

		// Form lifecycle
		form := v1.Group("/form")
		{
			form.POST("/open", handlers.OpenNewJobFormHandler(deps.Dashboard))
			form.POST("/template", handlers.SelectTemplateHandler(deps.Dashboard))
			form.DELETE("/template-picker", handlers.CancelTemplatePickerHandler(deps.Dashboard))
			form.GET("", handlers.GetFormHandler(deps.Dashboard))
			form.POST("/field", handlers.UpdateFieldHandler(deps.Dashboard))
			form.POST("/salary", handlers.UpdateSalaryHandler(deps.Dashboard))
			form.POST("/custom-fields", handlers.AddCustomFieldHandler(deps.Dashboard))
			form.PUT("/custom-fields/:index", handlers.UpdateCustomFieldHandler(deps.Dashboard))
			form.DELETE("/custom-fields/:index", handlers.RemoveCustomFieldHandler(deps.Dashboard))
			form.POST("/preview", handlers.PreviewFormHandler(deps.Dashboard))
			form.POST("/submit", handlers.SubmitFormHandler(deps.Dashboard))
			form.POST("/save-template", handlers.SaveTemplateHandler(deps.Dashboard))
			form.DELETE("", handlers.CloseFormHandler(deps.Dashboard))
		}

		// Confirmation state
		confirmation := v1.Group("/confirmation")
		{
			confirmation.POST("/create-another", handlers.CreateAnotherHandler(deps.Dashboard))
			confirmation.DELETE("", handlers.CloseConfirmationHandler(deps.Dashboard))
		}

		// Templates
		v1.GET("/templates", handlers.ListTemplatesHandler(deps.Dashboard))

		// Audit trail
		v1.GET("/audit", handlers.AuditLogHandler(deps.Trail))

		// Reference data and lookups
		refdataGroup := v1.Group("/refdata")
		{
			refdataGroup.GET("/roles", handlers.RolesHandler(deps.RefData))
			refdataGroup.GET("/skills", handlers.SkillsHandler(deps.RefData))
			refdataGroup.GET("/currencies", handlers.CurrenciesHandler(deps.RefData))
			refdataGroup.GET("/cities", handlers.CitySearchHandler(deps.CityResolver))
		}

		// Candidate applications
		candidates := v1.Group("/candidates")
		{
			candidates.GET("", handlers.ListCandidatesHandler(deps.Applications))
			candidates.POST("/:id/status", handlers.CandidateStatusHandler(deps.Applications))
			candidates.POST("/:id/shortlist", handlers.ToggleShortlistHandler(deps.Applications))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Hireboard Recruiting Dashboard",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
