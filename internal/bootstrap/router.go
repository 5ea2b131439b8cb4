package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/devport/portfolio-backend/internal/api/http"
	"github.com/devport/portfolio-backend/internal/api/http/middleware"
	"github.com/devport/portfolio-backend/internal/auth"
	"github.com/devport/portfolio-backend/internal/cache"
	contenthttp "github.com/devport/portfolio-backend/internal/content/http"
	"github.com/devport/portfolio-backend/internal/content/service"
	"github.com/devport/portfolio-backend/internal/media"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	Read     *service.ReadService
	Write    *service.WriteService
	Admin    *service.AdminService
	Uploader *media.Uploader
	Guard    *auth.Guard
	Cache    *cache.Cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	httpapi.RegisterFallbacks(r)

	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	handler := contenthttp.NewHandler(dep.Read, dep.Write, dep.Admin, dep.Uploader, dep.Cache)
	contenthttp.Register(api, handler, dep.Guard)

	return r
}
