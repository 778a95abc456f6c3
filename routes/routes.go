package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pizzavoice/handlers"
	"pizzavoice/middleware"
)

// RegisterCallRoutes registers the telephony webhook endpoints. They are
// unauthenticated: the telephony platform is the caller.
func RegisterCallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calls")
	{
		api.POST("/incoming", hb.IncomingHandler)
		api.POST("/collect-order", hb.CollectOrderHandler)
		api.POST("/add-drinks", hb.AddDrinksHandler)
		api.POST("/add-dessert", hb.AddDessertHandler)
		api.POST("/final-confirm", hb.FinalConfirmHandler)
		api.POST("/select-time", hb.SelectTimeHandler)
		api.POST("/confirm-time", hb.ConfirmTimeHandler)
	}
}

// RegisterMenuRoutes registers menu management endpoints.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/menu")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListMenuHandler)
		api.POST("", hb.CreateMenuItemHandler)
		api.PUT("/:id", hb.UpdateMenuItemHandler)
		api.DELETE("/:id", hb.DeleteMenuItemHandler)
	}
}

// RegisterOrderRoutes registers order management endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListOrdersHandler)
		api.GET("/:id", hb.GetOrderHandler)
		api.POST("", hb.CreateOrderHandler)
		api.PATCH("/:id/status", hb.UpdateOrderStatusHandler)
		api.DELETE("/:id", hb.DeleteOrderHandler)
	}
}

// RegisterUserRoutes registers store-account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.LoginHandler)

	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
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

	RegisterCallRoutes(r, hb)
	RegisterMenuRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
