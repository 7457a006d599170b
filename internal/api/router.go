package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/art-nursing/backend/internal/api/handlers"
	"github.com/art-nursing/backend/internal/auth"
	"github.com/art-nursing/backend/internal/cache"
	"github.com/art-nursing/backend/internal/config"
	"github.com/art-nursing/backend/internal/database"
	"github.com/art-nursing/backend/internal/middleware"
	"github.com/art-nursing/backend/internal/models"
	"github.com/art-nursing/backend/internal/ratelimit"
	"github.com/art-nursing/backend/internal/repository"
	"github.com/art-nursing/backend/internal/service"
	"github.com/art-nursing/backend/internal/upload"
)

// NewRouter creates and configures the main router.
// redisCache may be nil; redis-backed features then fall back to in-memory.
func NewRouter(cfg *config.Config, db *database.DB, redisCache *cache.Redis, uploads *upload.Store) *chi.Mux {
	r := chi.NewRouter()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	resultRepo := repository.NewResultRepository(db)
	pageRepo := repository.NewPageRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	governingRepo := repository.NewGoverningRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	authMiddleware := auth.NewMiddleware(jwtService)
	quotaGate := auth.NewQuotaGate(userRepo, cfg.FetchLimit)

	// Per-IP fixed-window limiter for public write endpoints.
	// Redis-backed when available so the window survives restarts and is
	// shared across instances.
	limiterCfg := ratelimit.Config{
		Limit:    cfg.RateLimitRequests,
		Interval: cfg.RateLimitWindow,
	}
	var limiter ratelimit.Limiter
	if redisCache != nil {
		limiter = ratelimit.NewRedisWindow(redisCache, limiterCfg)
	} else {
		limiter = ratelimit.NewFixedWindow(limiterCfg)
	}
	publicWriteLimit := ratelimit.Middleware(limiter, limiterCfg)

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Timing)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORSWithOrigins(cfg.CORSOrigins))

	// Initialize services
	blogService := service.NewBlogService(blogRepo, redisCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthChecker(db, redisCache)
	authHandler := handlers.NewAuthHandler(userRepo, jwtService)
	userHandler := handlers.NewUserHandler(userRepo)
	blogHandler := handlers.NewBlogHandler(blogService, uploads)
	commentHandler := handlers.NewCommentHandler(commentRepo, blogRepo)
	noticeHandler := handlers.NewNoticeHandler(noticeRepo, uploads)
	resultHandler := handlers.NewResultHandler(resultRepo, uploads)
	pageHandler := handlers.NewPageHandler(pageRepo)
	bannerHandler := handlers.NewBannerHandler(bannerRepo, uploads)
	menuHandler := handlers.NewMenuHandler(menuRepo)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyRepo)
	staffHandler := handlers.NewStaffHandler(staffRepo, uploads)
	governingHandler := handlers.NewGoverningHandler(governingRepo, uploads)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo, uploads)
	siteHandler := handlers.NewSiteHandler(siteRepo, uploads)
	contactHandler := handlers.NewContactHandler(contactRepo)

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", handlers.LivenessProbe)
	r.Get("/health/ready", healthHandler.ReadinessProbe)

	// Uploaded files
	fileServer := http.StripPrefix(upload.PublicPrefix, http.FileServer(http.Dir(uploads.Dir())))
	r.Get(upload.PublicPrefix+"/*", fileServer.ServeHTTP)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints with a strict per-IP limit against brute force
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(10, cfg.RateLimitWindow))
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Public content endpoints
		r.Get("/blogs", blogHandler.ListBlogs)
		r.Get("/blogs/{slug}", blogHandler.GetBlog)
		r.Get("/blogs/{slug}/comments", commentHandler.ListComments)
		r.With(publicWriteLimit).Post("/blogs/{slug}/comments", commentHandler.CreateComment)

		r.Get("/notices", noticeHandler.ListNotices)
		r.Get("/notices/{id}", noticeHandler.GetNotice)

		// Result sheets are metered: listing is public, fetching an
		// individual sheet spends a fetch unless the user holds an
		// active subscription.
		r.Get("/results", resultHandler.ListResults)
		r.With(authMiddleware.Authenticate, quotaGate.Middleware).
			Get("/results/{id}", resultHandler.GetResult)

		r.Get("/pages", pageHandler.ListPages)
		r.Get("/pages/{slug}", pageHandler.GetPage)
		r.Get("/banners", bannerHandler.ListBanners)
		r.Get("/menus", menuHandler.ListMenus)
		r.Get("/menus/{name}", menuHandler.GetMenu)
		r.Get("/categories", taxonomyHandler.ListCategories)
		r.Get("/departments", taxonomyHandler.ListDepartments)
		r.Get("/staff", staffHandler.ListStaff)
		r.Get("/staff/{id}", staffHandler.GetStaffMember)
		r.Get("/governing-body", governingHandler.ListMembers)
		r.Get("/gallery/photos", galleryHandler.ListPhotos)
		r.Get("/gallery/videos", galleryHandler.ListVideos)
		r.Get("/settings", siteHandler.GetSettings)
		r.Get("/footer", siteHandler.GetFooter)

		r.With(publicWriteLimit).Post("/contact", contactHandler.CreateContact)

		// Authenticated user endpoints
		r.Route("/user", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/me", authHandler.GetCurrentUser)
			r.Get("/usage", userHandler.Usage(cfg.FetchLimit))
		})

		// Admin endpoints: content managers and admins
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireRole(models.RoleAdmin, models.RoleEditor))

			r.Get("/blogs", blogHandler.ListAllBlogs)
			r.Post("/blogs", blogHandler.CreateBlog)
			r.Put("/blogs/{id}", blogHandler.UpdateBlog)
			r.Delete("/blogs/{id}", blogHandler.DeleteBlog)

			r.Get("/comments/pending", commentHandler.ListPendingComments)
			r.Post("/comments/{id}/approve", commentHandler.ApproveComment)
			r.Delete("/comments/{id}", commentHandler.DeleteComment)

			r.Post("/notices", noticeHandler.CreateNotice)
			r.Put("/notices/{id}", noticeHandler.UpdateNotice)
			r.Delete("/notices/{id}", noticeHandler.DeleteNotice)

			r.Post("/results", resultHandler.CreateResult)
			r.Put("/results/{id}", resultHandler.UpdateResult)
			r.Delete("/results/{id}", resultHandler.DeleteResult)

			r.Post("/pages", pageHandler.CreatePage)
			r.Put("/pages/{id}", pageHandler.UpdatePage)
			r.Delete("/pages/{id}", pageHandler.DeletePage)

			r.Get("/banners", bannerHandler.ListAllBanners)
			r.Post("/banners", bannerHandler.CreateBanner)
			r.Put("/banners/{id}", bannerHandler.UpdateBanner)
			r.Delete("/banners/{id}", bannerHandler.DeleteBanner)

			r.Post("/menus", menuHandler.CreateMenu)
			r.Put("/menus/{id}", menuHandler.UpdateMenu)
			r.Delete("/menus/{id}", menuHandler.DeleteMenu)

			r.Post("/categories", taxonomyHandler.CreateCategory)
			r.Put("/categories/{id}", taxonomyHandler.UpdateCategory)
			r.Delete("/categories/{id}", taxonomyHandler.DeleteCategory)
			r.Post("/departments", taxonomyHandler.CreateDepartment)
			r.Put("/departments/{id}", taxonomyHandler.UpdateDepartment)
			r.Delete("/departments/{id}", taxonomyHandler.DeleteDepartment)

			r.Post("/staff", staffHandler.CreateStaffMember)
			r.Put("/staff/{id}", staffHandler.UpdateStaffMember)
			r.Delete("/staff/{id}", staffHandler.DeleteStaffMember)

			r.Post("/governing-body", governingHandler.CreateMember)
			r.Put("/governing-body/{id}", governingHandler.UpdateMember)
			r.Delete("/governing-body/{id}", governingHandler.DeleteMember)

			r.Post("/gallery/photos", galleryHandler.UploadPhoto)
			r.Delete("/gallery/photos/{id}", galleryHandler.DeletePhoto)
			r.Post("/gallery/videos", galleryHandler.CreateVideo)
			r.Delete("/gallery/videos/{id}", galleryHandler.DeleteVideo)

			r.Put("/settings", siteHandler.UpdateSettings)
			r.Put("/footer", siteHandler.UpdateFooter)

			r.Get("/contact", contactHandler.ListContacts)
			r.Delete("/contact/{id}", contactHandler.DeleteContact)

			// User management is admin-only
			r.Route("/users", func(r chi.Router) {
				r.Use(authMiddleware.RequireRole(models.RoleAdmin))
				r.Get("/", userHandler.ListUsers)
				r.Put("/{id}/role", userHandler.UpdateRole)
				r.Put("/{id}/subscription", userHandler.UpdateSubscription)
				r.Post("/{id}/reset-fetches", userHandler.ResetFetchCount)
				r.Delete("/{id}", userHandler.DeleteUser)
			})
		})
	})

	return r
}
