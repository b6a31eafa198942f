package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the handler and request logging.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	h.RegisterRoutes(router)
	return router
}

// ListenAndServe blocks serving solutions for preloaded on port.
func ListenAndServe(port string, preloaded []string) error {
	router := NewRouter(NewHandler(preloaded))

	log.Printf("Starting server on port %s", port)
	return http.ListenAndServe(":"+port, router)
}
