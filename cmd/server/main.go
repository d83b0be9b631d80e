package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Billie0903/vina-ET-training-center/internal/app/router"
	aboutadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/about/adapters"
	abouthandler "github.com/Billie0903/vina-ET-training-center/internal/feature/about/transport/handler"
	aboutusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/about/usecase"
	authadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/adapters"
	authhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/transport/handler"
	authusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/usecase"
	courseadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/adapters"
	coursehandler "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/transport/handler"
	courseusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/usecase"
	newsadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/news/adapters"
	newshandler "github.com/Billie0903/vina-ET-training-center/internal/feature/news/transport/handler"
	newsusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/news/usecase"
	uploadstorage "github.com/Billie0903/vina-ET-training-center/internal/feature/upload/storage"
	uploadhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/upload/transport/handler"
	"github.com/Billie0903/vina-ET-training-center/internal/platform/config"
	infradb "github.com/Billie0903/vina-ET-training-center/internal/platform/db"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
	infraredis "github.com/Billie0903/vina-ET-training-center/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DSN(), cfg.RunMigrations)

	// Redis (optional, used by the auth rate limiter)
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without auth rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Upload storage
	images, err := uploadstorage.NewDiskStorage(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("failed to prepare uploads directory: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	newsRepo := newsadapters.NewNewsGorm(db)
	aboutRepo := aboutadapters.NewAboutGorm(db)
	courseRepo := courseadapters.NewCourseGorm(db)

	// Token service
	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	newsUC := newsusecase.NewNewsUsecase(newsRepo)
	aboutUC := aboutusecase.NewAboutUsecase(aboutRepo)
	courseUC := courseusecase.NewCourseUsecase(courseRepo)

	// Handler
	deps := router.Deps{
		Auth:           authhandler.NewAuthHandler(authUC),
		News:           newshandler.NewNewsHandler(newsUC, images),
		About:          abouthandler.NewAboutHandler(aboutUC),
		Courses:        coursehandler.NewCourseHandler(courseUC),
		Upload:         uploadhandler.NewUploadHandler(images),
		Tokens:         tokens,
		Users:          userRepo,
		Rdb:            rdb,
		LoginRateLimit: cfg.LoginRateLimit,
		CORSOrigin:     cfg.CORSOrigin,
		UploadsDir:     cfg.UploadsDir,
	}

	r := router.NewRouter(deps)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
