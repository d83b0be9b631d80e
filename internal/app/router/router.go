// Package router wires the HTTP surface: public, authenticated and
// admin-only route groups.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	abouthandler "github.com/Billie0903/vina-ET-training-center/internal/feature/about/transport/handler"
	authhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/transport/handler"
	coursehandler "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/transport/handler"
	newshandler "github.com/Billie0903/vina-ET-training-center/internal/feature/news/transport/handler"
	uploadhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/upload/transport/handler"
	"github.com/Billie0903/vina-ET-training-center/internal/platform/http/handler"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
	"github.com/Billie0903/vina-ET-training-center/internal/platform/ratelimit"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Auth    *authhandler.AuthHandler
	News    *newshandler.NewsHandler
	About   *abouthandler.AboutHandler
	Courses *coursehandler.CourseHandler
	Upload  *uploadhandler.UploadHandler

	Tokens jwtmw.TokenService
	Users  jwtmw.UserFinder

	// Rdb may be nil; the auth rate limiter then allows everything.
	Rdb            *redis.Client
	LoginRateLimit int

	CORSOrigin string
	UploadsDir string
}

// NewRouter builds the gin engine with all route groups registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{d.CORSOrigin}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	authRequired := jwtmw.AuthRequired(d.Tokens, d.Users)
	adminRequired := jwtmw.AdminRequired(d.Tokens, d.Users)
	loginLimiter := ratelimit.PerIP(d.Rdb, "authlimit", d.LoginRateLimit)

	r.GET("/healthz", handler.Health)

	// Uploaded files are served statically.
	r.Static("/uploads", d.UploadsDir)

	api := r.Group("/api")

	// Authentication
	auth := api.Group("/auth")
	{
		auth.POST("/register", loginLimiter, d.Auth.Register)
		auth.POST("/login", loginLimiter, d.Auth.Login)
		auth.GET("/profile", authRequired, d.Auth.GetProfile)
		auth.POST("/logout", authRequired, d.Auth.Logout)
	}

	// Courses: public reads, authenticated writes.
	courses := api.Group("/courses")
	{
		courses.GET("", d.Courses.List)
		courses.GET("/:id", d.Courses.Get)
		courses.POST("", authRequired, d.Courses.Create)
		courses.PUT("/:id", authRequired, d.Courses.Update)
		courses.DELETE("/:id", authRequired, d.Courses.Delete)
	}

	// Public content
	public := api.Group("/public")
	{
		public.GET("/news", d.News.ListPublic)
		public.GET("/news/article/:slug", d.News.GetBySlug)
		public.GET("/about", d.About.ListPublic)
		public.GET("/about/section/:section", d.About.GetSection)
	}

	// Admin back office
	admin := api.Group("/admin")
	admin.Use(adminRequired)
	{
		admin.GET("/news", d.News.ListAdmin)
		admin.GET("/news/:id", d.News.GetAdminByID)
		admin.POST("/news", d.News.Create)
		admin.PUT("/news/:id", d.News.Update)
		admin.DELETE("/news/:id", d.News.Delete)

		admin.GET("/about", d.About.ListAdmin)
		admin.GET("/about/section/:id", d.About.GetAdminByID)
		admin.POST("/about/section", d.About.Upsert)
		admin.PUT("/about/section/:id", d.About.Update)
		admin.DELETE("/about/section/:id", d.About.Delete)
		admin.POST("/about/bulk-update", d.About.BulkUpdate)
	}

	// Standalone uploads
	upload := api.Group("/upload")
	upload.Use(authRequired)
	{
		upload.POST("/image", d.Upload.Upload)
		upload.DELETE("/image/:filename", d.Upload.Delete)
	}

	return r
}
