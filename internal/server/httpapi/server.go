// Package httpapi exposes the service over HTTP/JSON: a chi router with the
// public auth routes, the bearer-guarded todo routes, and the static client
// fallback for everything else.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mkravets/tasklist/internal/logging"
	"github.com/mkravets/tasklist/internal/server/config"
	"github.com/mkravets/tasklist/web"
)

type Server struct {
	address string
	logger  logging.Logger
	handler *Handler
	secret  []byte
	origins []string
}

func NewServer(cfg *config.Config, l logging.Logger, users UserService, todos TodoService) *Server {
	logger := l.With("module", "http_server")
	return &Server{
		address: cfg.EndpointAddr,
		logger:  logger,
		handler: NewHandler(users, todos, logger),
		secret:  []byte(cfg.SecretKey),
		origins: cfg.AllowedOrigins,
	}
}

// Router assembles the chi routing tree. Exposed for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(s.logRequests)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/signup", s.handler.Signup)
	r.Post("/login", s.handler.Login)

	r.Route("/todos", func(r chi.Router) {
		r.Use(RequireAuth(s.secret))
		r.Get("/", s.handler.ListTodos)
		r.Post("/", s.handler.CreateTodo)
		r.Put("/{id}", s.handler.UpdateTodo)
		r.Delete("/{id}", s.handler.DeleteTodo)
	})

	// Any unmatched path serves the client entry page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.Index)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Router(),
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
