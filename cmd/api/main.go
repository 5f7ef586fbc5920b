package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"nerdspace/internal/config"
	"nerdspace/internal/database"
	"nerdspace/internal/domain"
	"nerdspace/internal/middleware"
	"nerdspace/internal/modules/availability"
	"nerdspace/internal/modules/booking"
	"nerdspace/internal/modules/calendar"
	"nerdspace/internal/modules/chat"
	"nerdspace/internal/modules/notification"
	"nerdspace/internal/modules/pricing"
	"nerdspace/internal/modules/wallet"
	jwtsvc "nerdspace/internal/pkg/jwt"
	"nerdspace/internal/pkg/poller"
	"nerdspace/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	pricingRepo := repository.NewPricingRepository(db)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	pricingCache := pricing.NewConfigCache(pricingRepo, rdb, cfg.PricingCacheTTL)
	pricingService := pricing.NewService(pricingCache)
	pricingHandler := pricing.NewHandler(pricingService)

	// Keep the rate card warm so quotes never pay the cold-read latency.
	stopWarm := poller.New(cfg.PricingCacheTTL, func(ctx context.Context) {
		for _, t := range []domain.ServiceType{domain.ServiceMeeting, domain.ServicePodMono, domain.ServicePodMulti} {
			_, _ = pricingCache.GetByServiceType(ctx, t)
		}
	}).Start(context.Background())
	defer stopWarm()

	availabilityService := availability.NewService(bookingRepo, roomRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	calendarService := calendar.NewService(roomRepo, bookingRepo)
	calendarHandler := calendar.NewHandler(calendarService)

	notificationService := notification.NewService(notification.NewRepository(db))
	notificationHandler := notification.NewHandler(notificationService)

	walletService := wallet.NewService(db)
	walletHandler := wallet.NewHandler(walletService)

	hub := chat.NewHub()
	chatService := chat.NewService(db, hub)
	chatHandler := chat.NewHandler(hub, chatService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		pricingService,
		walletService,
		notificationService,
	)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		availabilityHandler.RegisterRoutes(v1)
		pricingHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			walletHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}

		// admin
		admin := v1.Group("/")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			calendarHandler.RegisterRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
