package api

import (
	"fruit-order-service/internal/api/handlers"
	"fruit-order-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.OrderService) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Service: svc}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /convert", handlers.Convert)
	mux.HandleFunc("POST /orders", orderHandler.Create)
	mux.HandleFunc("GET /orders", orderHandler.List)
	mux.HandleFunc("GET /orders/{id}", orderHandler.Get)
	mux.HandleFunc("GET /orders/{id}/totals", orderHandler.Totals)
	mux.HandleFunc("PUT /orders/{id}/fruits/{index}", orderHandler.CorrectFruit)

	return loggingMiddleware(mux)
}
