// File: pizzavoice/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pizzavoice/config"
	"pizzavoice/database"
	menuRepoPkg "pizzavoice/database/repository/menu"
	orderRepoPkg "pizzavoice/database/repository/order"
	userRepoPkg "pizzavoice/database/repository/user"
	"pizzavoice/handlers"
	"pizzavoice/middleware"
	"pizzavoice/routes"
	menuSvc "pizzavoice/services/menu"
	orderSvc "pizzavoice/services/order"
	userSvc "pizzavoice/services/user"
	"pizzavoice/services/voice"
	"pizzavoice/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	menuRepo := menuRepoPkg.NewMongoMenuRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// The generative extractor delegate is optional: without an API key,
	// or if the client cannot be built, the deterministic parser serves
	// every call.
	var delegate voice.Completer
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := voice.NewGeminiCompleter(key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini client unavailable, using fallback parser: %v", err)
		} else {
			delegate = gemini
		}
	}

	menuCache := voice.NewMenuCache(utils.GetCacheClient(), 5*time.Minute)

	// services.
	callFlowService := &voice.CallFlowService{
		MenuRepo:       menuRepo,
		OrderRepo:      orderRepo,
		Extractor:      &voice.Extractor{Delegate: delegate, Clock: time.Now},
		Cache:          menuCache,
		BaseURL:        config.AppConfig.PublicBaseURL,
		DefaultStoreID: config.AppConfig.DefaultStoreID,
		Clock:          time.Now,
	}
	menuService := &menuSvc.DefaultMenuService{Repo: menuRepo, Cache: menuCache}
	orderService := &orderSvc.DefaultOrderService{Repo: orderRepo}
	userService := &userSvc.DefaultUserService{Repo: userRepo}

	callHandler := handlers.NewCallHandler(callFlowService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Voice webhook endpoints.
		IncomingHandler:     callHandler.IncomingHandler,
		CollectOrderHandler: callHandler.CollectOrderHandler,
		AddDrinksHandler:    callHandler.AddDrinksHandler,
		AddDessertHandler:   callHandler.AddDessertHandler,
		FinalConfirmHandler: callHandler.FinalConfirmHandler,
		SelectTimeHandler:   callHandler.SelectTimeHandler,
		ConfirmTimeHandler:  callHandler.ConfirmTimeHandler,

		// Menu endpoints.
		ListMenuHandler:       menuHandler.ListMenuHandler,
		CreateMenuItemHandler: menuHandler.CreateMenuItemHandler,
		UpdateMenuItemHandler: menuHandler.UpdateMenuItemHandler,
		DeleteMenuItemHandler: menuHandler.DeleteMenuItemHandler,

		// Order endpoints.
		ListOrdersHandler:        orderHandler.ListOrdersHandler,
		GetOrderHandler:          orderHandler.GetOrderHandler,
		CreateOrderHandler:       orderHandler.CreateOrderHandler,
		UpdateOrderStatusHandler: orderHandler.UpdateOrderStatusHandler,
		DeleteOrderHandler:       orderHandler.DeleteOrderHandler,

		// User endpoints.
		RegisterUserHandler: userHandler.RegisterUserHandler,
		LoginHandler:        userHandler.LoginHandler,
		MeHandler:           userHandler.MeHandler,
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
