package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/devport/portfolio-backend/internal/api/http"
	"github.com/devport/portfolio-backend/internal/cache"
	"github.com/devport/portfolio-backend/internal/validation"
)

func (h *Handler) listProjects(c *gin.Context) {
	if h.cache != nil {
		v, _, err := h.cache.Get(c.Request.Context(), cache.KeyProjects)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"projects": v})
		return
	}

	projects, err := h.read.ListPublishedProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) getProject(c *gin.Context) {
	p, err := h.read.GetPublishedProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p})
}

func (h *Handler) getProfile(c *gin.Context) {
	if h.cache != nil {
		v, _, err := h.cache.Get(c.Request.Context(), cache.KeyProfile)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": v})
		return
	}

	profile, err := h.read.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) submitInquiry(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "invalid request body", nil)
		return
	}

	// ClientIP is the opaque rate-limit key; behind a proxy it comes from
	// the forwarded headers gin is configured to trust.
	err := h.write.SubmitInquiry(c.Request.Context(), validation.ContactFormInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Your message has been sent"})
}
