package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/services"
)

type RecruiterHandler struct {
	recruiters *services.RecruiterService
	dashboard  *services.DashboardService
}

func NewRecruiterHandler(recruiters *services.RecruiterService, dashboard *services.DashboardService) *RecruiterHandler {
	return &RecruiterHandler{recruiters: recruiters, dashboard: dashboard}
}

// List is GET /api/recruiters.
func (h *RecruiterHandler) List(c *gin.Context) {
	recruiters, err := h.recruiters.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruiters)
}

// Get is GET /api/recruiters/:id.
func (h *RecruiterHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	recruiter, err := h.recruiters.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recruiter)
}

// DashboardStats is GET /api/recruiters/dashboard/stats.
func (h *RecruiterHandler) DashboardStats(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	stats, err := h.dashboard.RecruiterStats(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
