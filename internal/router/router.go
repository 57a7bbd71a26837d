package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Raffi85/NetDash-Website/internal/config"
	"github.com/Raffi85/NetDash-Website/internal/handler"
	"github.com/Raffi85/NetDash-Website/internal/repository"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions session.Manager,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	planHandler *handler.PlanHandler,
	reviewHandler *handler.ReviewHandler,
	contactHandler *handler.ContactHandler,
	purchaseHandler *handler.PurchaseHandler,
	demoHandler *handler.DemoHandler,
	analyticsHandler *handler.AnalyticsHandler,
	settingsHandler *handler.SettingsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// Cookie auth needs credentialed CORS with an explicit origin list.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", ResolveSession(sessions))

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/check-auth", authHandler.CheckAuth)
	api.POST("/reset-password", authHandler.RequestReset)
	api.POST("/reset-password/:token", authHandler.ConsumeReset)
	api.POST("/contact", contactHandler.CreateContact)
	api.GET("/reviews/public", reviewHandler.ListPublicReviews)
	api.POST("/demo/start", demoHandler.StartDemo)
	api.GET("/demo/access/:token", demoHandler.AccessDemo)

	// Authenticated routes
	authed := api.Group("", RequireAuth)
	if cfg.RecheckSuspension {
		authed.Use(RecheckSuspension(users))
	}
	authed.GET("/profile", userHandler.GetProfile)
	authed.PUT("/profile", userHandler.UpdateProfile)
	authed.DELETE("/profile", userHandler.DeleteAccount)
	authed.GET("/plans", planHandler.ListPlans)
	authed.POST("/reviews", reviewHandler.CreateReview)
	authed.POST("/purchase", purchaseHandler.CreatePurchase)
	authed.GET("/redirect-after-login", authHandler.RedirectAfterLogin)

	// Platform admin routes
	admin := api.Group("", RequireAdmin)
	if cfg.RecheckSuspension {
		admin.Use(RecheckSuspension(users))
	}
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.POST("/users/:id/suspend", userHandler.SuspendUser)
	admin.POST("/users/:id/unsuspend", userHandler.UnsuspendUser)
	admin.POST("/plans", planHandler.CreatePlan)
	admin.PUT("/plans/:id", planHandler.UpdatePlan)
	admin.GET("/reviews", reviewHandler.ListReviews)
	admin.PUT("/reviews/:id/approve", reviewHandler.ApproveReview)
	admin.PUT("/reviews/:id/reject", reviewHandler.RejectReview)
	admin.GET("/contacts", contactHandler.ListContacts)
	admin.GET("/purchases", purchaseHandler.ListPurchases)
	admin.PUT("/purchases/:id/status", purchaseHandler.UpdateStatus)
	admin.GET("/analytics", analyticsHandler.GetAnalytics)
	admin.POST("/email-config", settingsHandler.UpdateEmailConfig)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
