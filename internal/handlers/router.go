package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/models"
)

type RouterDeps struct {
	Auth       *AuthHandler
	Jobs       *JobHandler
	Freelancer *FreelancerHandler
	Recruiter  *RecruiterHandler
	AuthMW     *middleware.Auth
}

// SetupRoutes wires the full API surface onto the engine.
func SetupRoutes(r *gin.Engine, deps RouterDeps) {
	r.GET("/health", HealthCheck)

	api := r.Group("/api")

	// Public surface.
	api.POST("/register", deps.Auth.Register)
	api.POST("/login", deps.Auth.Login)
	api.GET("/jobs", deps.Jobs.List)
	api.GET("/jobs/search", deps.Jobs.Search)
	api.GET("/jobs/:id", deps.Jobs.Get)
	api.GET("/freelancers", deps.Freelancer.List)
	api.GET("/freelancers/search", deps.Freelancer.Search)
	api.GET("/freelancers/:id", deps.Freelancer.Get)
	api.GET("/recruiters", deps.Recruiter.List)
	api.GET("/recruiters/:id", deps.Recruiter.Get)

	authed := api.Group("", deps.AuthMW.Authenticate())
	authed.GET("/user", deps.Auth.CurrentUser)
	authed.PUT("/profile", deps.Auth.UpdateProfile)
	authed.GET("/dashboard/myjobs", deps.Jobs.DashboardJobs)

	recruiterOnly := authed.Group("", middleware.RequireRole(models.RoleRecruiter))
	recruiterOnly.POST("/jobs", deps.Jobs.Create)
	recruiterOnly.PUT("/jobs/:id", deps.Jobs.Update)
	recruiterOnly.DELETE("/jobs/:id", deps.Jobs.Delete)
	recruiterOnly.GET("/jobs/:id/applications", deps.Jobs.ListApplications)
	recruiterOnly.GET("/applications", deps.Jobs.ListAllApplications)
	recruiterOnly.PUT("/applications/:id", deps.Jobs.UpdateApplicationStatus)
	recruiterOnly.GET("/recruiters/dashboard/stats", deps.Recruiter.DashboardStats)

	freelancerOnly := authed.Group("", middleware.RequireRole(models.RoleFreelancer))
	freelancerOnly.POST("/jobs/:id/apply", deps.Jobs.Apply)
	freelancerOnly.PUT("/freelancers/projects/:id", deps.Freelancer.UpdateProjectProgress)
	freelancerOnly.GET("/freelancers/applications/my", deps.Freelancer.MyApplications)
	freelancerOnly.POST("/freelancers/recommendations/refresh", deps.Freelancer.RefreshRecommendations)
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
