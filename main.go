package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"fixflow/config"
	"fixflow/cron"
	"fixflow/database"
	calendarRepo "fixflow/database/repository/calendar"
	catalogRepo "fixflow/database/repository/catalog"
	employeeRepo "fixflow/database/repository/employee"
	orderRepo "fixflow/database/repository/order"
	userRepoPkg "fixflow/database/repository/user"
	"fixflow/handlers"
	"fixflow/middleware"
	"fixflow/routes"
	"fixflow/services/employee"
	"fixflow/services/notification"
	"fixflow/services/order"
	"fixflow/services/user"
	"fixflow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	catRepo := catalogRepo.NewCachedCatalogRepo(
		catalogRepo.NewMongoCatalogRepo(), utils.GetCacheClient(), 10*time.Minute)
	calRepo := calendarRepo.NewMongoCalendarRepo()
	empRepo := employeeRepo.NewMongoEmployeeRepo()
	ordRepo := orderRepo.NewMongoOrderRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catRepo.Seed(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed work catalog: %v", err)
	}
	cancelSeed()

	// Background email queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitEmailWorker(notification.NewMailer())

	// Services.
	notifier := &notification.DefaultNotificationService{Client: queueClient}
	userService := &user.DefaultUserService{
		Repo:     usrRepo,
		Sessions: utils.GetAuthCacheClient(),
		Notifier: notifier,
	}
	orderService := &order.DefaultOrderService{
		Catalog:   catRepo,
		Calendar:  calRepo,
		Employees: empRepo,
		Orders:    ordRepo,
		Notifier:  notifier,
	}
	employeeService := &employee.DefaultEmployeeService{Repo: empRepo}

	// Assemble the handler bundle and register routes.
	bundle := &routes.HandlerBundle{
		Users:           userService,
		UserHandler:     handlers.NewUserHandler(userService),
		BookingHandler:  handlers.NewBookingHandler(orderService),
		OrderHandler:    handlers.NewOrderHandler(orderService),
		ShiftHandler:    handlers.NewShiftHandler(employeeService),
		EmployeeHandler: handlers.NewEmployeeHandler(employeeService),
		CalendarHandler: handlers.NewCalendarHandler(calRepo),
	}
	routes.RegisterRoutes(router, bundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
