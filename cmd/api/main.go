package main

import (
	"context"
	"log"

	"github.com/devport/portfolio-backend/config"
	"github.com/devport/portfolio-backend/internal/auth"
	"github.com/devport/portfolio-backend/internal/bootstrap"
	"github.com/devport/portfolio-backend/internal/cache"
	"github.com/devport/portfolio-backend/internal/content/repository"
	"github.com/devport/portfolio-backend/internal/content/service"
	"github.com/devport/portfolio-backend/internal/media"
	"github.com/devport/portfolio-backend/internal/ratelimit"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("init firebase: %v", err)
	}
	defer fb.Firestore.Close()

	projectRepo := repository.NewProjectRepository(fb.Firestore)
	profileRepo := repository.NewProfileRepository(fb.Firestore)
	inquiryRepo := repository.NewInquiryRepository(fb.Firestore)

	// Default limiter counts stored inquiries; redis switches on the
	// strict sliding window.
	var limiter ratelimit.Limiter = ratelimit.NewWindowLimiter(inquiryRepo, cfg.RateLimit.Window, cfg.RateLimit.MaxPerWindow)
	if cfg.Redis.Addr != "" {
		rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("open redis: %v", err)
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.MaxPerWindow)
		log.Println("Rate limiter: redis sliding window")
	} else {
		log.Println("Rate limiter: store-backed window count")
	}

	readSvc := service.NewReadService(projectRepo, profileRepo)
	writeSvc := service.NewWriteService(inquiryRepo, limiter)
	adminSvc := service.NewAdminService(projectRepo)

	uploader := media.NewUploader(media.NewGCSStore(fb.Bucket, cfg.Firebase.StorageBucket))

	guard := auth.NewGuard(auth.NewFirebaseVerifier(fb.Auth))

	c := cache.New(cfg.Cache.RefreshInterval, cfg.Cache.DedupeWindow)
	if err := c.Register(cache.KeyProjects, func(ctx context.Context) (any, error) {
		return readSvc.ListPublishedProjects(ctx)
	}); err != nil {
		log.Fatalf("register projects cache: %v", err)
	}
	if err := c.Register(cache.KeyProfile, func(ctx context.Context) (any, error) {
		return readSvc.GetProfile(ctx)
	}); err != nil {
		log.Fatalf("register profile cache: %v", err)
	}
	c.Start()
	defer c.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Read:        readSvc,
		Write:       writeSvc,
		Admin:       adminSvc,
		Uploader:    uploader,
		Guard:       guard,
		Cache:       c,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
