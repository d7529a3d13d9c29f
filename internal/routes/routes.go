package routes

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/auth"
	"github.com/BruksfildServices01/barbercraft/internal/config"
	"github.com/BruksfildServices01/barbercraft/internal/handlers"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barbercraft/internal/infra/repository"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	"github.com/BruksfildServices01/barbercraft/internal/storage"
	ucAuth "github.com/BruksfildServices01/barbercraft/internal/usecase/auth"
	ucOrder "github.com/BruksfildServices01/barbercraft/internal/usecase/order"
)

// uploadBodyBytes leaves room for multipart framing around a maximal image.
const uploadBodyBytes = storage.MaxImageBytes + 1<<20

// Deps is everything the router needs from main. Gateway, Store and Redis
// are optional.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger

	Audit     *audit.Dispatcher
	AuditLogs *audit.Logger
	Tokens    *auth.TokenIssuer
	Hasher    *auth.Hasher

	Gateway ucOrder.PaymentGateway
	Store   storage.ObjectStore
	Redis   *redis.Client
}

// NewRouter builds the engine with the global middleware chain and all
// routes registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(d.Log, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(d.Log, true, func(c *gin.Context, _ any) {
		httperr.Internal(c, "Internal server error")
	}))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders(d.Config.IsProduction()))
	r.Use(middleware.CORSMiddleware(d.Config.FrontendURL))

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "Endpoint not found")
	})

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	authService := ucAuth.NewService(userRepo, d.Hasher, d.Tokens, d.Audit, ucAuth.Options{
		AllowAdminSignup: cfg.AllowAdminSignup,
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService, d.Log)
	meHandler := handlers.NewMeHandler(authService, d.Log)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit, d.Log)
	productHandler := handlers.NewProductHandler(d.DB, d.Audit, d.Log)
	staffHandler := handlers.NewStaffHandler(d.DB, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, d.Audit, d.Log)
	orderHandler := handlers.NewOrderHandler(orderRepo, d.Gateway, d.Audit, d.Log)
	reviewHandler := handlers.NewReviewHandler(d.DB, d.Audit, d.Log)
	customerHandler := handlers.NewCustomerHandler(userRepo, d.Log)
	searchHandler := handlers.NewSearchHandler(d.DB, d.Log)
	imageHandler := handlers.NewImageHandler(d.DB, d.Store, d.Audit, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Log)

	requireAuth := middleware.AuthMiddleware(d.Tokens)
	requireAdmin := middleware.RequireAdmin()

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(limiters(d, "general", cfg.RateLimit.GeneralMax, middleware.MsgTooManyRequests)...)

	// Uploads share the prefix and limiter but get a larger body cap.
	uploads := api.Group("")
	uploads.Use(middleware.MaxBodyBytes(uploadBodyBytes), requireAuth, requireAdmin)
	{
		uploads.POST("/services/:id/image", imageHandler.UploadServiceImage)
		uploads.POST("/products/:id/image", imageHandler.UploadProductImage)
	}

	rest := api.Group("")
	rest.Use(middleware.MaxBodyBytes(cfg.MaxBodyBytes))
	{
		rest.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		authGroup := rest.Group("/auth")
		authLimit := limiters(d, "auth", cfg.RateLimit.AuthMax, middleware.MsgTooManyAuth)
		authGroup.POST("/register", append(authLimit, authHandler.Register)...)
		authGroup.POST("/login", append(authLimit, authHandler.Login)...)
		authGroup.GET("/me", requireAuth, meHandler.GetMe)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		rest.GET("/services", serviceHandler.List)
		rest.GET("/services/:id", serviceHandler.Get)
		rest.GET("/staff", staffHandler.List)
		rest.GET("/barbers", staffHandler.ListBarbers)
		rest.GET("/barbers/:id", staffHandler.GetBarber)
		rest.GET("/products", productHandler.List)
		rest.GET("/products/:id", productHandler.Get)
		rest.GET("/reviews", reviewHandler.List)
		rest.GET("/search", searchHandler.Search)
		rest.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := rest.Group("")
		secured.Use(requireAuth)
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/bookings", appointmentHandler.List)

			secured.GET("/orders", orderHandler.List)
			secured.POST("/orders/checkout", orderHandler.Checkout)

			secured.POST("/reviews", reviewHandler.Create)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := rest.Group("")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)

			admin.GET("/customers", customerHandler.List)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// limiters returns the rate limit chain for one bucket family: redis when a
// client is configured, in-process otherwise, nothing when disabled.
func limiters(d Deps, name string, max int, message string) []gin.HandlerFunc {
	rl := d.Config.RateLimit
	if !rl.Enabled || max <= 0 {
		return nil
	}

	var l middleware.Limiter
	if d.Redis != nil {
		l = middleware.NewRedisLimiter(d.Redis, "barbercraft:rl:"+name, max, rl.Window)
	} else {
		l = middleware.NewMemoryLimiter(max, rl.Window)
	}
	return []gin.HandlerFunc{middleware.RateLimit(name, l, message, d.Log)}
}
