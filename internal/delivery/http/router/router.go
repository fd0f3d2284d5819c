// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pethub/internal/delivery/http/middleware"
	"pethub/internal/delivery/http/router/handler"
	"pethub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PetHandler          *handler.PetHandler
	AdoptionHandler     *handler.AdoptionHandler
	AdminHandler        *handler.AdminHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	petHandler          *handler.PetHandler
	adoptionHandler     *handler.AdoptionHandler
	adminHandler        *handler.AdminHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		petHandler:          params.PetHandler,
		adoptionHandler:     params.AdoptionHandler,
		adminHandler:        params.AdminHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/verify-email", r.userHandler.VerifyEmail)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.GET("/pets", r.petHandler.GetMyPets)
	}

	// Pet listing and custody routes
	petGroup := e.Group("/pets")
	petGroup.Use(r.authMiddleware.Authenticate)
	{
		petGroup.GET("", r.petHandler.ListPets)
		petGroup.POST("", r.petHandler.AddPet)
		petGroup.GET("/:id", r.petHandler.GetPet)
		petGroup.PATCH("/:id", r.petHandler.UpdatePet)
		petGroup.DELETE("/:id", r.petHandler.DeletePet)
		petGroup.POST("/:id/adopt", r.petHandler.AdoptPet)
		petGroup.GET("/:id/share-qr", r.petHandler.ShareQR)
	}

	// Adoption request workflow routes
	requestGroup := e.Group("/adoption-requests")
	requestGroup.Use(r.authMiddleware.Authenticate)
	{
		requestGroup.POST("", r.adoptionHandler.Submit)
		requestGroup.GET("/mine", r.adoptionHandler.ListMine)
		requestGroup.GET("/:id", r.adoptionHandler.Get)
		requestGroup.PATCH("/:id", r.adoptionHandler.Update)
		requestGroup.POST("/:id/resolve", r.adoptionHandler.Resolve)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListMine)
		notificationGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}

	// Device routes for push notification targets
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/fcm-token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/role", r.adminHandler.UpdateUserRole)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/stats", r.adminHandler.GetPlatformStats)
		adminGroup.GET("/adoption-requests", r.adoptionHandler.List)
		adminGroup.DELETE("/adoption-requests/:id", r.adoptionHandler.Delete)
		adminGroup.GET("/notifications", r.notificationHandler.ListAdminChannel)
	}
}
