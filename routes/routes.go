package routes

import (
	"net/http"
	"time"

	"marketdesk/handlers"
	"marketdesk/middleware"
	"marketdesk/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in and onboarding endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/onboarding", hb.Auth.CompleteOnboardingHandler)

		// Refresh and logout require a valid token to know whose session
		// to rotate or revoke.
		api.POST("/refresh", middleware.JWTAuthMiddleware(hb.StaffRepo), hb.Auth.RefreshTokenHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.StaffRepo), hb.Auth.LogoutHandler)
	}
}

// RegisterBookingRoutes registers the dashboard's booking views.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/calendar", hb.Booking.CalendarHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)

		// Status and assignment changes are dispatch operations.
		dispatch := api.Group("")
		dispatch.Use(middleware.RequireRole(models.RoleOwner, models.RoleDispatcher))
		dispatch.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)
		dispatch.PATCH("/:id/provider", hb.Booking.AssignProviderHandler)
	}
}

// RegisterStaffRoutes registers roster management endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.GET("", hb.Staff.ListStaffHandler)
		api.GET("/:id", hb.Staff.GetStaffHandler)

		manage := api.Group("")
		manage.Use(middleware.RequireRole(models.RoleOwner, models.RoleDispatcher))
		manage.POST("/invite", hb.Staff.InviteStaffHandler)
		manage.PATCH("/:id", hb.Staff.UpdateStaffHandler)
		manage.POST("/:id/deactivate", hb.Staff.DeactivateStaffHandler)
		manage.PATCH("/:id/background-check", hb.Staff.SetBackgroundCheckHandler)
	}
}

// RegisterLocationRoutes registers business location endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.GET("", hb.Location.ListLocationsHandler)
		api.GET("/:id", hb.Location.GetLocationHandler)

		manage := api.Group("")
		manage.Use(middleware.RequireRole(models.RoleOwner, models.RoleDispatcher))
		manage.POST("", hb.Location.CreateLocationHandler)
		manage.PATCH("/:id", hb.Location.UpdateLocationHandler)
		manage.DELETE("/:id", hb.Location.DeleteLocationHandler)
		manage.POST("/:id/primary", hb.Location.SetPrimaryLocationHandler)
		manage.PUT("/:id/hours", hb.Location.UpdateLocationHoursHandler)
	}
}

// RegisterCatalogRoutes registers service and addon endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		services.GET("", hb.Catalog.ListServicesHandler)
		services.GET("/:id", hb.Catalog.GetServiceHandler)

		manage := services.Group("")
		manage.Use(middleware.RequireCatalogWrite())
		manage.POST("", hb.Catalog.CreateServiceHandler)
		manage.PATCH("/:id", hb.Catalog.UpdateServiceHandler)
		manage.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
		manage.POST("/:id/addons/:addonID", hb.Catalog.AttachAddonHandler)
		manage.DELETE("/:id/addons/:addonID", hb.Catalog.DetachAddonHandler)
	}

	addons := r.Group("/api/addons")
	{
		addons.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		addons.GET("", hb.Catalog.ListAddonsHandler)

		manage := addons.Group("")
		manage.Use(middleware.RequireCatalogWrite())
		manage.POST("", hb.Catalog.CreateAddonHandler)
		manage.DELETE("/:id", hb.Catalog.DeleteAddonHandler)
	}
}

// RegisterBusinessRoutes registers profile, hours, branding, and document
// endpoints. All of them are owner-only except reads.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.GET("/profile", hb.Business.GetProfileHandler)
		api.GET("/documents", hb.Business.ListDocumentsHandler)

		owner := api.Group("")
		owner.Use(middleware.RequireRole(models.RoleOwner))
		owner.PATCH("/profile", hb.Business.UpdateProfileHandler)
		owner.PUT("/hours", hb.Business.UpdateHoursHandler)
		owner.POST("/brand/:kind", hb.Business.UploadBrandAssetHandler)
		owner.POST("/documents", hb.Business.UploadDocumentHandler)
		owner.DELETE("/documents/:id", hb.Business.DeleteDocumentHandler)
	}
}

// RegisterBillingRoutes registers subscription and tax endpoints, owner-only.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.Use(middleware.RequireRole(models.RoleOwner))
		api.POST("/checkout", hb.Billing.CreateCheckoutSessionHandler)
		api.GET("/subscription", hb.Billing.GetSubscriptionHandler)
		api.POST("/subscription/cancel", hb.Billing.CancelSubscriptionHandler)
		api.GET("/tax", hb.Billing.GetTaxInfoHandler)
		api.PUT("/tax", hb.Billing.UpsertTaxInfoHandler)
	}
}

// RegisterBankingRoutes registers Plaid bank-linking endpoints, owner-only.
func RegisterBankingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/banking")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.Use(middleware.RequireRole(models.RoleOwner))
		api.POST("/link-token", hb.Banking.CreateLinkTokenHandler)
		api.POST("/exchange", hb.Banking.CompleteLinkHandler)
		api.GET("/link", hb.Banking.GetBankLinkHandler)
	}
}

// RegisterMessagingRoutes registers conversation thread endpoints.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.StaffRepo))
		api.GET("", hb.Messaging.ListThreadsHandler)
		api.POST("", hb.Messaging.OpenThreadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MarketDesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterBankingRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
}
