package main

import (
	"net/http"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/config"
	"coffeeshop-be/internal/customer"
	"coffeeshop-be/internal/db"
	"coffeeshop-be/internal/employee"
	"coffeeshop-be/internal/logger"
	"coffeeshop-be/internal/middleware"
	"coffeeshop-be/internal/order"
	"coffeeshop-be/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	employeeRepo := employee.NewRepository(database)
	employeeSvc := employee.NewService(employeeRepo)

	drinkRepo := catalog.NewDrinkRepository(database)
	extraRepo := catalog.NewExtraRepository(database)
	catalogSvc := catalog.NewService(drinkRepo, extraRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, customerRepo, employeeRepo, drinkRepo, extraRepo)

	var handler http.Handler = server.New(customerSvc, employeeSvc, catalogSvc, orderSvc)
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
