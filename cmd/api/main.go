package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/middleware"
	"staybook/internal/modules/admin"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/catalog"
	"staybook/internal/modules/changes"
	"staybook/internal/modules/hotels"
	"staybook/internal/modules/notification"
	"staybook/internal/modules/review"
	jwtsvc "staybook/internal/pkg/jwt"
	"staybook/internal/pkg/logger"
	"staybook/internal/pkg/mailer"
	"staybook/internal/pkg/metrics"
	"staybook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatalw("database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("migration failed", "error", err)
	}

	m := metrics.New(cfg.MetricsNamespace)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		mail = mailer.NewDevConsole(cfg.Env != "production", zlog.Infof)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	requestRepo := repository.NewChangeRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := notification.NewService(notificationRepo, userRepo, mail, zlog)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	hotelsHandler := hotels.NewHandler(hotels.NewService(hotelRepo))
	changesHandler := changes.NewHandler(
		changes.NewService(hotelRepo, roomRepo, requestRepo, notifier, zlog, m))
	adminHandler := admin.NewHandler(
		admin.NewService(userRepo, hotelRepo, requestRepo, notifier, zlog, m))
	catalogHandler := catalog.NewHandler(
		catalog.NewService(hotelRepo, roomRepo, reviewRepo, cfg.BookingBaseURL))
	reviewHandler := review.NewHandler(
		review.NewService(reviewRepo, hotelRepo, notifier, zlog, m))
	notificationHandler := notification.NewHandler(notifier)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Metrics(m))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		authed := v1.Group("/", middleware.JWTAuth(j))
		{
			notificationHandler.RegisterRoutes(authed)
			reviewHandler.RegisterTravelerRoutes(authed)
		}

		manager := v1.Group("/manager", middleware.JWTAuth(j), middleware.ManagerOnly())
		{
			hotelsHandler.RegisterRoutes(manager)
			changesHandler.RegisterRoutes(manager)
		}

		adminGrp := v1.Group("/", middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGrp)
		}
	}

	zlog.Infow("listening", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
