package handler

import (
	"github.com/Bhatia06/MEWallet/internal/adapter/http/middleware"
	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	WorkflowSvc    ports.WorkflowService
	ReminderSvc    ports.ReminderService
	OTPSvc         ports.OTPService
	TokenSvc       ports.TokenService
	Hub            *notify.Hub
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(deps.AuthSvc, deps.OTPSvc)
	linkHandler := NewLinkHandler(deps.LedgerSvc)
	requestHandler := NewRequestHandler(deps.WorkflowSvc)
	reminderHandler := NewReminderHandler(deps.ReminderSvc)
	wsHandler := NewWSHandler(deps.Hub, deps.TokenSvc, deps.Logger)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	merchantOnly := middleware.RequireRole(domain.RoleMerchant)
	userOnly := middleware.RequireRole(domain.RoleUser)

	// Push channel (token via query param, validated in the handler)
	r.GET("/ws/connect/:role/:id", wsHandler.Connect)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	merchants := v1.Group("/merchants")
	{
		merchants.POST("/register", authHandler.RegisterMerchant)
		merchants.POST("/login", authHandler.LoginMerchant)
		merchants.GET("/linked-users/:merchant_id",
			jwtAuth, middleware.RequireOwner("merchant_id"), linkHandler.ListLinkedUsers)
	}

	users := v1.Group("/users")
	{
		users.POST("/register", authHandler.RegisterUser)
		users.POST("/login", authHandler.LoginUser)
		users.GET("/linked-merchants/:user_id",
			jwtAuth, middleware.RequireOwner("user_id"), linkHandler.ListLinkedMerchants)
		users.DELETE("/account/:user_id",
			jwtAuth, userOnly, middleware.RequireOwner("user_id"), authHandler.DeleteAccount)
		users.GET("/notifications/:user_id",
			jwtAuth, userOnly, middleware.RequireOwner("user_id"), reminderHandler.ListForUser)
		users.DELETE("/notifications/:id/dismiss",
			jwtAuth, userOnly, reminderHandler.Dismiss)
	}

	otp := v1.Group("/otp")
	{
		otp.POST("/send", authHandler.SendOTP)
		otp.POST("/verify", authHandler.VerifyOTP)
	}

	// --- Links and the ledger ---
	link := v1.Group("/link", jwtAuth)
	{
		link.POST("/create", merchantOnly, linkHandler.Create)
		link.POST("/add-balance", linkHandler.AddBalance)
		link.POST("/purchase", linkHandler.Purchase)
		link.POST("/delink", linkHandler.Delink)
		link.GET("/balance/:merchant_id/:user_id", linkHandler.GetBalance)
		link.GET("/transactions/:merchant_id/:user_id", linkHandler.ListTransactions)
		link.GET("/user-transactions/:user_id",
			middleware.RequireOwner("user_id"), linkHandler.ListUserTransactions)
	}

	// --- Request workflows ---
	linkRequests := v1.Group("/link-requests", jwtAuth)
	{
		linkRequests.POST("/create", userOnly, requestHandler.CreateLinkRequest)
		linkRequests.GET("/merchant/:merchant_id",
			merchantOnly, middleware.RequireOwner("merchant_id"), requestHandler.ListLinkRequests)
		linkRequests.POST("/accept/:id", merchantOnly, requestHandler.AcceptLinkRequest)
		linkRequests.POST("/reject/:id", merchantOnly, requestHandler.RejectLinkRequest)
	}

	balanceRequests := v1.Group("/balance-requests", jwtAuth)
	{
		balanceRequests.POST("/create", userOnly, requestHandler.CreateBalanceRequest)
		balanceRequests.GET("/merchant/:merchant_id",
			merchantOnly, middleware.RequireOwner("merchant_id"), requestHandler.ListBalanceRequests)
		balanceRequests.POST("/accept/:id", merchantOnly, requestHandler.AcceptBalanceRequest)
		balanceRequests.POST("/reject/:id", merchantOnly, requestHandler.RejectBalanceRequest)
	}

	payRequests := v1.Group("/pay-requests", jwtAuth)
	{
		payRequests.POST("/create", merchantOnly, requestHandler.CreatePayRequest)
		payRequests.GET("/user/:user_id",
			userOnly, middleware.RequireOwner("user_id"), requestHandler.ListPayRequestsForUser)
		payRequests.GET("/merchant/:merchant_id",
			merchantOnly, middleware.RequireOwner("merchant_id"), requestHandler.ListPayRequestsForMerchant)
		payRequests.POST("/accept", userOnly, requestHandler.AcceptPayRequest)
		payRequests.POST("/reject/:id", userOnly, requestHandler.RejectPayRequest)
	}

	// --- Reminders (merchant-authored) ---
	reminders := v1.Group("/reminders", jwtAuth, merchantOnly)
	{
		reminders.POST("", reminderHandler.Create)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
	}

	return r
}
