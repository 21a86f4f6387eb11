package httpserver

import (
	"net/http"

	"vishnu-auto/internal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Role-specific landing pages the frontend redirects to after login.
var roleRedirects = map[domain.Role]string{
	domain.RoleAdmin:    "admin-dashboard.html",
	domain.RoleMechanic: "mechanic-dashboard.html",
}

func (h *handlers) login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	session, err := h.deps.Auth.Login(c.Request.Context(), in.Username, in.Password, domain.Role(in.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "redirect": roleRedirects[session.Role]})
}

func (h *handlers) logout(c *gin.Context) {
	if err := h.deps.Auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "index.html"})
}

func (h *handlers) session(c *gin.Context) {
	session := h.deps.Auth.Current()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
