package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketdesk/config"
	"marketdesk/database"
	bookingRepoPkg "marketdesk/database/repository/booking"
	businessRepoPkg "marketdesk/database/repository/business"
	catalogRepoPkg "marketdesk/database/repository/catalog"
	conversationRepoPkg "marketdesk/database/repository/conversation"
	locationRepoPkg "marketdesk/database/repository/location"
	staffRepoPkg "marketdesk/database/repository/staff"
	"marketdesk/handlers"
	"marketdesk/routes"
	"marketdesk/services/banking"
	"marketdesk/services/billing"
	"marketdesk/services/booking"
	"marketdesk/services/business"
	"marketdesk/services/catalog"
	"marketdesk/services/location"
	"marketdesk/services/messaging"
	"marketdesk/services/staff"
	"marketdesk/services/storage"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	conversationRepo := conversationRepoPkg.NewMongoConversationRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		StaffRepo: staffRepo,
		Cache:     utils.GetCacheClient(),
	}
	staffService := &staff.DefaultStaffService{
		Repo:   staffRepo,
		OTP:    &staff.RedisOTPStore{Client: utils.GetOTPCacheClient()},
		Mailer: staff.LogMailer{},
	}
	locationService := &location.DefaultLocationService{
		Repo: locationRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}
	businessService := &business.DefaultBusinessService{
		Repo:    businessRepo,
		Storage: storageService,
	}
	billingService := &billing.StripeBillingService{
		Repo:    businessRepo,
		PriceID: config.AppConfig.StripePriceID,
		BaseURL: config.AppConfig.DashboardBaseURL,
	}
	plaidClient := banking.NewPlaidClient(
		config.AppConfig.PlaidClientID,
		config.AppConfig.PlaidSecret,
		config.AppConfig.PlaidEnv,
	)
	bankingService := banking.NewBankingService(plaidClient, businessRepo)
	messagingService := messaging.NewMessagingService(conversationRepo, bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,

		Auth:      handlers.NewAuthHandler(staffService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Staff:     handlers.NewStaffHandler(staffService),
		Location:  handlers.NewLocationHandler(locationService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Business:  handlers.NewBusinessHandler(businessService),
		Billing:   handlers.NewBillingHandler(billingService),
		Banking:   handlers.NewBankingHandler(bankingService),
		Messaging: handlers.NewMessagingHandler(messagingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
