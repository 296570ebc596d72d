package main

import (
	"fmt"
	"github.com/gorilla/mux"
	"log"
	"net/http"
	"rentservice/cmd/app"
	"rentservice/internal/config"
	handlers "rentservice/internal/handler"
	"rentservice/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Неверная конфигурация: %v", err)
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// setting up routes
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/profile", handler.Profile).Methods(http.MethodGet)

	api.HandleFunc("/rent", handler.CreateRent).Methods(http.MethodPost)
	api.HandleFunc("/rent", handler.GetRents).Methods(http.MethodGet)
	api.HandleFunc("/rent/{id}", handler.GetRent).Methods(http.MethodGet)
	api.HandleFunc("/rent/{id}", handler.UpdateRent).Methods(http.MethodPatch)
	api.HandleFunc("/rent/{id}", handler.RemoveRent).Methods(http.MethodDelete)
	api.HandleFunc("/rent/{id}/images", handler.AddRentImages).Methods(http.MethodPost)
	api.HandleFunc("/rent/{rentId}/images/{assetId}", handler.RemoveRentImage).Methods(http.MethodDelete)

	api.HandleFunc("/assets/upload-multiple", handler.UploadAssets).Methods(http.MethodPost)
	api.HandleFunc("/assets/rent/{rentId}", handler.GetRentAssets).Methods(http.MethodGet)
	api.HandleFunc("/assets/{assetId}", handler.DeleteAsset).Methods(http.MethodDelete)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth),
		rateLimiter.Middleware(),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
