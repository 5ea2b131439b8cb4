package http

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/devport/portfolio-backend/internal/api/http"
	"github.com/devport/portfolio-backend/internal/content/service"
)

// maxUploadBodyBytes caps the upload request body just above the base64
// expansion of the largest accepted file, so an oversized payload is cut off
// at the socket instead of being buffered and decoded first.
const maxUploadBodyBytes = 7 << 20

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body", nil)
		return
	}

	id, err := h.admin.CreateProject(c.Request.Context(), service.ProjectFields{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Thumbnail:       req.Thumbnail,
		Gallery:         req.Gallery,
		Technologies:    req.Technologies,
		Category:        req.Category,
		DemoURL:         req.DemoURL,
		SourceURL:       req.SourceURL,
		Featured:        req.Featured,
		Published:       req.Published,
		Order:           req.Order,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "project created", "id": id})
}

func (h *Handler) updateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body", nil)
		return
	}

	err := h.admin.UpdateProject(c.Request.Context(), c.Param("id"), service.ProjectPatch{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Thumbnail:       req.Thumbnail,
		Gallery:         req.Gallery,
		Technologies:    req.Technologies,
		Category:        req.Category,
		DemoURL:         req.DemoURL,
		SourceURL:       req.SourceURL,
		Featured:        req.Featured,
		Published:       req.Published,
		Order:           req.Order,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project updated"})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.admin.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
}

func (h *Handler) uploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBodyBytes)

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeFileTooLarge, "file exceeds the 5 MiB limit", nil)
			return
		}
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body", nil)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "data must be base64 encoded", nil)
		return
	}

	uri, err := h.uploader.Upload(c.Request.Context(), data, req.MimeType, req.Folder, req.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": uri})
}
