package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SaiVignesh27/unified-platform/internal/dtos"
	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/services"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

type JobHandler struct {
	lifecycle *services.LifecycleService
	dashboard *services.DashboardService
}

func NewJobHandler(lifecycle *services.LifecycleService, dashboard *services.DashboardService) *JobHandler {
	return &JobHandler{lifecycle: lifecycle, dashboard: dashboard}
}

// List is GET /api/jobs: active jobs, newest first.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.lifecycle.ListActiveJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Search is GET /api/jobs/search?query=&skills=&location=.
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.lifecycle.SearchJobs(c.Request.Context(), store.JobFilter{
		Query:    c.Query("query"),
		Skills:   c.QueryArray("skills"),
		Location: c.Query("location"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.lifecycle.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is POST /api/jobs (recruiter only).
func (h *JobHandler) Create(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	job, err := h.lifecycle.PostJob(c.Request.Context(), principal.ID, jobInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is PUT /api/jobs/:id (owning recruiter only).
func (h *JobHandler) Update(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	job, err := h.lifecycle.UpdateJob(c.Request.Context(), jobID, principal.ID, jobInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is DELETE /api/jobs/:id (owning recruiter only).
func (h *JobHandler) Delete(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.lifecycle.DeleteJob(c.Request.Context(), jobID, principal.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// Apply is POST /api/jobs/:id/apply (freelancer only).
func (h *JobHandler) Apply(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	application, err := h.lifecycle.Apply(c.Request.Context(), jobID, principal.ID, req.CoverLetter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListApplications is GET /api/jobs/:id/applications (owning recruiter only).
func (h *JobHandler) ListApplications(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	applications, err := h.lifecycle.ListJobApplications(c.Request.Context(), jobID, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListAllApplications is GET /api/applications: every application across the
// recruiter's jobs.
func (h *JobHandler) ListAllApplications(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	applications, err := h.lifecycle.ListRecruiterApplications(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// UpdateApplicationStatus is PUT /api/applications/:id (recruiter only).
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	applicationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	application, err := h.lifecycle.SetApplicationStatus(c.Request.Context(), applicationID, principal.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// DashboardJobs is GET /api/dashboard/myjobs, role-switched: recruiters get
// their postings, freelancers get the jobs they applied to annotated with
// their own application.
func (h *JobHandler) DashboardJobs(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	switch principal.Role {
	case models.RoleRecruiter:
		jobs, err := h.dashboard.RecruiterJobs(c.Request.Context(), principal.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, jobs)
	case models.RoleFreelancer:
		jobs, err := h.dashboard.FreelancerDashboardJobs(c.Request.Context(), principal.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, jobs)
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
	}
}

func jobInput(req dtos.JobRequest) services.JobInput {
	return services.JobInput{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		SkillsRequired: req.SkillsRequired,
		Budget:         req.Budget,
		Deadline:       req.Deadline,
		Status:         req.Status,
	}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
