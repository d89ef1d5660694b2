package app

import (
	"thesistrack_backend/docs"
	"thesistrack_backend/internal/config"
	"thesistrack_backend/internal/middleware"
	"thesistrack_backend/internal/model"
	"thesistrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// managementRoles may enroll students, manage rubrics, panels and defense
// schedules. Admins pass every role gate implicitly.
var managementRoles = []model.UserRole{model.HOD, model.PGCoordinator, model.Dean, model.Provost}

// approverRoles covers every role that can pass some stage's approval gate;
// the engine decides per stage which of them actually may.
var approverRoles = []model.UserRole{model.Supervisor, model.HOD, model.Dean, model.Provost}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)
	router.GET("/ready", c.health.Ready)

	api := router.Group("/api/v1")

	api.POST("/auth/login", c.auth.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authed.GET("/auth/me", c.auth.Me)
		authed.PUT("/auth/password", c.auth.ChangePassword)
		authed.PUT("/users/profile", c.user.UpdateProfile)

		authed.GET("/notifications", c.notification.List)
		authed.GET("/notifications/unread", c.notification.UnreadCount)
		authed.PUT("/notifications/:id/read", c.notification.MarkRead)
		authed.PUT("/notifications/read-all", c.notification.MarkAllRead)

		authed.GET("/sessions", c.session.List)
		authed.GET("/sessions/active", c.session.Active)

		authed.GET("/students/me/progress", c.student.MyProgress)
		authed.GET("/students/:id", c.student.Get)
		authed.GET("/students/:id/progress", c.student.Progress)
		authed.GET("/students/:id/scores", c.scoring.List)
		authed.GET("/students/:id/scores/summary", c.scoring.Summary)
		authed.GET("/students/:id/panel", c.panel.List)
		authed.GET("/students/:id/manuscripts", c.manuscript.List)
		authed.POST("/students/:id/manuscripts", c.manuscript.Upload)
		authed.GET("/manuscripts/:id", c.manuscript.Download)

		authed.GET("/defenses", c.defense.List)
		authed.GET("/defenses/day", c.defense.Day)
		authed.GET("/defenses/:id", c.defense.Get)

		// staff surfaces
		staff := authed.Group("")
		staff.Use(middleware.RoleMiddleware(model.LecturerRoles...))
		{
			staff.GET("/dashboard", c.dashboard.Overview)
			staff.GET("/students", c.student.List)
			staff.GET("/users/lecturers", c.user.Lecturers)
			staff.GET("/panels/mine", c.panel.MyAssignments)
			staff.GET("/rubrics", c.rubric.List)
			staff.GET("/rubrics/:id", c.rubric.Get)

			staff.POST("/students/:id/scores", c.scoring.Submit)
		}

		// workflow gates; the engine enforces which role each stage accepts
		approvers := authed.Group("")
		approvers.Use(middleware.RoleMiddleware(approverRoles...))
		{
			approvers.POST("/students/:id/approve", c.progression.Approve)
			approvers.POST("/students/:id/advance", c.progression.Advance)
		}

		management := authed.Group("")
		management.Use(middleware.RoleMiddleware(managementRoles...))
		{
			// staff accounts carry approval authority, so registration
			// is a management action rather than a public endpoint
			management.POST("/auth/register", c.auth.Register)

			management.POST("/students", c.student.Enroll)
			management.PUT("/students/:id", c.student.Update)

			management.POST("/rubrics", c.rubric.Create)
			management.POST("/rubrics/:id/criteria", c.rubric.AddCriterion)
			management.DELETE("/rubrics/:id/criteria/:title", c.rubric.RemoveCriterion)
			management.PUT("/rubrics/:id/publish", c.rubric.Publish)
			management.DELETE("/rubrics/:id", c.rubric.Delete)

			management.POST("/students/:id/panel", c.panel.Assign)
			management.DELETE("/students/:id/panel/:role", c.panel.Remove)

			management.POST("/defenses", c.defense.Schedule)
			management.PUT("/defenses/:id", c.defense.Update)
			management.DELETE("/defenses/:id", c.defense.Delete)
		}

		// admin only
		admin := authed.Group("")
		admin.Use(middleware.RoleMiddleware())
		{
			admin.GET("/users", c.user.List)
			admin.GET("/users/:id", c.user.Get)
			admin.PUT("/users/:id", c.user.AdminUpdate)
			admin.PUT("/users/:id/disabled", c.user.SetDisabled)
			admin.PUT("/users/:id/password", c.user.ResetPassword)
			admin.DELETE("/users/:id", c.user.Delete)

			admin.POST("/sessions", c.session.Create)
			admin.PUT("/sessions/:id/activate", c.session.Activate)
			admin.DELETE("/sessions/:id", c.session.Delete)

			admin.POST("/students/:id/reset", c.progression.Reset)
			admin.DELETE("/students/:id", c.student.Delete)
		}
	}
}
