// File: barberbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepo "barberbook/database/repository/appointment"
	barberRepo "barberbook/database/repository/barber"
	contentRepo "barberbook/database/repository/content"
	customerRepo "barberbook/database/repository/customer"
	scheduleRepo "barberbook/database/repository/schedule"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/handlers"
	"barberbook/routes"
	"barberbook/services/booking"
	"barberbook/services/catalog"
	"barberbook/services/identity"
	"barberbook/services/notification"
	"barberbook/services/optimizer"
	"barberbook/services/schedule"
	"barberbook/services/storage"
	"barberbook/services/tasks"
	"barberbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary unavailable, image uploads disabled: %v", err)
		storageService = nil
	}

	loc := config.ShopLocation()

	// repositories.
	services := serviceRepo.NewMongoServiceRepo()
	barbers := barberRepo.NewMongoBarberRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	customers := customerRepo.NewMongoCustomerRepo()
	content := contentRepo.NewMongoContentRepo()

	indexCtx, cancelIdx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelIdx()
	if err := schedules.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create schedule indexes: %v", err)
	}
	if err := appointments.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Services:  services,
		Barbers:   barbers,
		Schedules: schedules,
		Content:   content,
		Storage:   storageService,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo: schedules,
	}

	reminderQueue := tasks.NewReminderQueue()
	defer reminderQueue.Close()

	bookingService := &booking.DefaultBookingService{
		Services:     services,
		Barbers:      barbers,
		Schedules:    schedules,
		Appointments: appointments,
		Customers:    customers,
		Cache:        utils.GetCacheClient(),
		Reminders:    reminderQueue,
		Loc:          loc,
	}

	identityService := &identity.DefaultIdentityService{
		Auth:          utils.FirebaseAuth,
		Customers:     customers,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
		LineVerifyURL: config.AppConfig.LineVerifyURL,
		LineChannelID: config.AppConfig.LineChannelID,
	}

	gemini, err := optimizer.NewGeminiClient(context.Background(),
		config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	optimizerService := &optimizer.DefaultOptimizerService{
		Gen:          gemini,
		Appointments: appointments,
		Barbers:      barbers,
		Schedules:    schedules,
		Services:     services,
		Loc:          loc,
	}

	notificationService := &notification.DefaultNotificationService{
		FCM:       utils.FCMClient,
		Customers: customers,
	}
	cron.InitReminderWorker(notificationService, appointments)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Identity:  identityService,
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Booking:   handlers.NewBookingHandler(bookingService, loc),
		Content:   handlers.NewContentHandler(content),
		Auth:      handlers.NewAuthHandler(identityService, customers),
		Optimizer: handlers.NewOptimizerHandler(optimizerService, loc),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle)

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
