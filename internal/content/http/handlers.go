// Package http exposes the content API over gin. Handlers translate service
// results into the stable response envelope and nothing else.
package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/devport/portfolio-backend/internal/api/http"
	"github.com/devport/portfolio-backend/internal/cache"
	"github.com/devport/portfolio-backend/internal/content/domain"
	"github.com/devport/portfolio-backend/internal/content/service"
	"github.com/devport/portfolio-backend/internal/media"
)

type Handler struct {
	read     *service.ReadService
	write    *service.WriteService
	admin    *service.AdminService
	uploader *media.Uploader
	cache    *cache.Cache
}

// NewHandler builds the content handler. The cache is optional; when nil the
// public list/profile reads go straight to the read service.
func NewHandler(read *service.ReadService, write *service.WriteService, admin *service.AdminService, uploader *media.Uploader, c *cache.Cache) *Handler {
	return &Handler{
		read:     read,
		write:    write,
		admin:    admin,
		uploader: uploader,
		cache:    c,
	}
}

// respondError maps domain and service failures onto the wire envelope.
// Store failures surface as a generic internal error; details stay in logs.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeValidation, "validation failed", verr.Fields)
	case errors.Is(err, service.ErrRateLimited):
		httpapi.Fail(c, http.StatusTooManyRequests, httpapi.CodeRateLimited, "too many submissions, please try again later", nil)
	case errors.Is(err, domain.ErrNotFound):
		httpapi.Fail(c, http.StatusNotFound, httpapi.CodeNotFound, "not found", nil)
	case errors.Is(err, media.ErrInvalidFileType):
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeInvalidFileType, "only jpeg, png and webp images are accepted", nil)
	case errors.Is(err, media.ErrFileTooLarge):
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeFileTooLarge, "file exceeds the 5 MiB limit", nil)
	case errors.Is(err, media.ErrInvalidFolder):
		httpapi.Fail(c, http.StatusBadRequest, httpapi.CodeInvalidFolder, "invalid target folder", nil)
	default:
		log.Printf("[content] internal error: %v", err)
		httpapi.Fail(c, http.StatusInternalServerError, httpapi.CodeInternal, "internal server error", nil)
	}
}
