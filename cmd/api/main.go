package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lankatrails/internal/config"
	"lankatrails/internal/database"
	"lankatrails/internal/middleware"
	"lankatrails/internal/modules/admin"
	"lankatrails/internal/modules/auth"
	"lankatrails/internal/modules/booking"
	"lankatrails/internal/modules/contact"
	"lankatrails/internal/modules/payment"
	"lankatrails/internal/modules/provider"
	"lankatrails/internal/modules/review"
	jwtsvc "lankatrails/internal/pkg/jwt"
	"lankatrails/internal/repository"
	"lankatrails/internal/storage"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.URL, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	uploader, err := storage.New(cfg.AWS, log)
	if err != nil {
		log.WithError(err).Fatal("failed to init storage")
	}

	authService := auth.NewService(userRepo, providerRepo, j)
	authHandler := auth.NewHandler(authService)

	providerService := provider.NewService(providerRepo, uploader, log)
	providerHandler := provider.NewHandler(providerService)

	bookingService := booking.NewService(
		bookingRepo,
		providerRepo,
		userRepo,
		contactRepo,
		cfg.Pricing.CurrencyMultiplier,
		log,
	)
	bookingHandler := booking.NewHandler(bookingService)

	stripeService := payment.NewStripeService(cfg.Stripe, cfg.Pricing.Currency, paymentRepo, bookingRepo, bookingService, log)
	payhereService := payment.NewPayHereService(cfg.PayHere, cfg.Pricing.Currency, paymentRepo, bookingRepo, bookingService, log)
	paymentHandler := payment.NewHandler(stripeService, payhereService)

	reviewService := review.NewService(reviewRepo, bookingRepo, providerRepo, userRepo)
	reviewHandler := review.NewHandler(reviewService)

	contactService := contact.NewService(contactRepo, log)
	contactHandler := contact.NewHandler(contactService)

	adminService := admin.NewService(providerRepo, userRepo, log)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		providerHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1) // gateway callbacks authenticate by signature

		// authenticated
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(authed)
			reviewHandler.RegisterRoutes(authed)
			paymentHandler.RegisterRoutes(authed)
			providerHandler.RegisterRoutes(authed)
		}

		// admin
		adm := v1.Group("/admin")
		adm.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adm)
			bookingHandler.RegisterAdminRoutes(adm)
			reviewHandler.RegisterAdminRoutes(adm)
			contactHandler.RegisterAdminRoutes(adm)
		}
	}

	log.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
