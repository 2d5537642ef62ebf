package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-event-ticketing/config"
	"go-event-ticketing/internal/cache"
	"go-event-ticketing/internal/database"
	"go-event-ticketing/internal/handler"
	"go-event-ticketing/internal/payment"
	"go-event-ticketing/internal/queue"
	"go-event-ticketing/internal/repository"
	"go-event-ticketing/internal/service"
	"go-event-ticketing/internal/worker"
	"go-event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories
	userRepo := repository.NewUserRepository(pool)
	organizerRepo := repository.NewOrganizerRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	attendeeRepo := repository.NewAttendeeRepository(pool)
	payoutRepo := repository.NewPayoutRepository(pool)

	// infrastructure
	catalogCache := cache.NewRedisCatalogCache(rdb, 5*time.Minute)
	gateway := payment.NewPaystackClient(&cfg.Paystack)

	notificationQueue, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatal("failed to initialize notification queue", zap.Error(err))
	}

	// services
	payoutService := service.NewPayoutService(payoutRepo, orderRepo, organizerRepo)
	userService := service.NewUserService(userRepo)
	organizerService := service.NewOrganizerService(organizerRepo, userRepo, eventRepo, ticketRepo, orderRepo, payoutService)
	catalogService := service.NewCatalogService(categoryRepo)
	eventService := service.NewEventService(eventRepo, ticketRepo, organizerRepo, catalogCache)
	ticketService := service.NewTicketService(ticketRepo, eventRepo, catalogCache)
	bookingService := service.NewBookingService(pool, orderRepo, ticketRepo, eventRepo)
	paymentService := service.NewPaymentService(pool, orderRepo, ticketRepo, userRepo, attendeeRepo, gateway, notificationQueue, cfg.Paystack.CallbackURL)
	attendeeService := service.NewAttendeeService(attendeeRepo, eventRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notificationWorker := worker.NewNotificationWorker(notificationQueue, nil)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatal("failed to start notification worker", zap.Error(err))
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewUserHandler(userService).RegisterRoutes(router)
	handler.NewOrganizerHandler(organizerService).RegisterRoutes(router)
	handler.NewCatalogHandler(catalogService).RegisterRoutes(router)
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router)
	handler.NewPayoutHandler(payoutService).RegisterRoutes(router)
	handler.NewAttendeeHandler(attendeeService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	_ = logger.L.Sync()
}
