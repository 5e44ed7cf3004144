package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

// Route prefixes the endpoints are mounted under. The second one keeps
// existing widget embeds working without changes.
var routePrefixes = []string{"/api/v1", "/.netlify/functions"}

type Server struct {
	port              string
	coinsListService  interfaces.CoinsListService
	cryptoDataService interfaces.CryptoDataService
	server            *http.Server
}

func New(port string, coinsListService interfaces.CoinsListService, cryptoDataService interfaces.CryptoDataService) *Server {
	return &Server{
		port:              port,
		coinsListService:  coinsListService,
		cryptoDataService: cryptoDataService,
	}
}

// Router builds the request router with every endpoint registered
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, recoverMiddleware)

	for _, prefix := range routePrefixes {
		router.Handle(prefix+"/coins-list", withCORS(http.HandlerFunc(s.handleCoinsList)))
		router.Handle(prefix+"/crypto-data", withCORS(http.HandlerFunc(s.handleCryptoData)))
	}

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}
