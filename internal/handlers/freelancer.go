package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/dtos"
	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/services"
	"github.com/SaiVignesh27/unified-platform/internal/store"
)

type FreelancerHandler struct {
	freelancers *services.FreelancerService
	lifecycle   *services.LifecycleService
	matcher     *services.MatcherService
}

func NewFreelancerHandler(freelancers *services.FreelancerService, lifecycle *services.LifecycleService, matcher *services.MatcherService) *FreelancerHandler {
	return &FreelancerHandler{freelancers: freelancers, lifecycle: lifecycle, matcher: matcher}
}

// List is GET /api/freelancers.
func (h *FreelancerHandler) List(c *gin.Context) {
	freelancers, err := h.freelancers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancers)
}

// Search is GET /api/freelancers/search?query=&skills=&location=.
func (h *FreelancerHandler) Search(c *gin.Context) {
	freelancers, err := h.freelancers.Search(c.Request.Context(), store.FreelancerFilter{
		Query:    c.Query("query"),
		Skills:   c.QueryArray("skills"),
		Location: c.Query("location"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancers)
}

// Get is GET /api/freelancers/:id.
func (h *FreelancerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	freelancer, err := h.freelancers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

// UpdateProjectProgress is PUT /api/freelancers/projects/:id.
func (h *FreelancerHandler) UpdateProjectProgress(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dtos.ProjectProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	projects, err := h.lifecycle.UpdateProjectProgress(c.Request.Context(), principal.ID, projectID, *req.Progress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// MyApplications is GET /api/freelancers/applications/my.
func (h *FreelancerHandler) MyApplications(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	applications, err := h.freelancers.MyApplications(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// RefreshRecommendations is POST /api/freelancers/recommendations/refresh.
func (h *FreelancerHandler) RefreshRecommendations(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	recommendations, err := h.matcher.RefreshRecommendations(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommendations)
}
