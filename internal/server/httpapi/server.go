// Package httpapi exposes the service over HTTP: routing, the bearer-token
// gate, and JSON handlers for the account and order operations.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/logging"
	"github.com/dmitrijs2005/ordertrack/internal/server/services"
	"github.com/gorilla/mux"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	orders    *services.OrderService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, os *services.OrderService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		orders:    os,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Handler builds the route table. Order endpoints sit behind the access
// token middleware; registration, login and ping do not.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/api/ping", s.Ping).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/register", s.RegisterUser).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/api/orders").Subrouter()
	protected.Use(s.accessTokenMiddleware)
	protected.HandleFunc("", s.CreateOrder).Methods(http.MethodPost)
	protected.HandleFunc("", s.ListOrders).Methods(http.MethodGet)
	protected.HandleFunc("/{id}", s.UpdateOrder).Methods(http.MethodPut)
	protected.HandleFunc("/{id}", s.DeleteOrder).Methods(http.MethodDelete)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Minute,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
