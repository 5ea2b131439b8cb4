package http

import (
	"github.com/gin-gonic/gin"

	"github.com/devport/portfolio-backend/internal/auth"
)

// Register mounts the public and admin content routes. Every admin route
// sits behind the auth guard; nothing else does.
func Register(api *gin.RouterGroup, h *Handler, guard *auth.Guard) {
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)
	api.GET("/profile", h.getProfile)
	api.POST("/contact", h.submitInquiry)

	admin := api.Group("/admin")
	admin.Use(auth.Require(guard))
	admin.POST("/projects", h.createProject)
	admin.PUT("/projects/:id", h.updateProject)
	admin.DELETE("/projects/:id", h.deleteProject)
	admin.POST("/upload", h.uploadImage)
}
