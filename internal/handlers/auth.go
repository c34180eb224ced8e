package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaiVignesh27/unified-platform/internal/dtos"
	"github.com/SaiVignesh27/unified-platform/internal/middleware"
	"github.com/SaiVignesh27/unified-platform/internal/models"
	"github.com/SaiVignesh27/unified-platform/internal/services"
)

type AuthHandler struct {
	auth        *services.AuthService
	freelancers *services.FreelancerService
	recruiters  *services.RecruiterService
}

func NewAuthHandler(auth *services.AuthService, freelancers *services.FreelancerService, recruiters *services.RecruiterService) *AuthHandler {
	return &AuthHandler{auth: auth, freelancers: freelancers, recruiters: recruiters}
}

// Register is POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	session, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Company:  req.Company,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Login is POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CurrentUser is GET /api/user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	account, err := h.auth.CurrentUser(c.Request.Context(), principal.ID, principal.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateProfile is PUT /api/profile, role-switched between the two tables.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	switch principal.Role {
	case models.RoleFreelancer:
		freelancer, err := h.freelancers.UpdateProfile(c.Request.Context(), principal.ID, services.FreelancerProfileUpdate{
			Name:     req.Name,
			Bio:      req.Bio,
			Location: req.Location,
			Skills:   req.Skills,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, freelancer)
	case models.RoleRecruiter:
		recruiter, err := h.recruiters.UpdateProfile(c.Request.Context(), principal.ID, services.RecruiterProfileUpdate{
			Name:       req.Name,
			Company:    req.Company,
			Bio:        req.Bio,
			Location:   req.Location,
			Experience: req.Experience,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recruiter)
	default:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unknown role"})
	}
}
