package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spellcms/spellcms/config"
	"github.com/spellcms/spellcms/internal/db"
	"github.com/spellcms/spellcms/internal/events"
	"github.com/spellcms/spellcms/internal/handlers"
	"github.com/spellcms/spellcms/internal/services"
	"github.com/spellcms/spellcms/internal/storage"
	"github.com/spellcms/spellcms/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	publisher  *events.Publisher
}

// Deps carries the wired dependencies NewRouter mounts.
type Deps struct {
	Store     *store.Store
	JWTSecret string
	TokenTTL  time.Duration
	Media     *storage.Storage
	Publisher *events.Publisher
}

// New constructs a Server from config: record store backend, optional
// media storage and event broker, services, routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(cfg.JWT.Secret)
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	var dbConn *sql.DB
	var backend store.Backend
	switch cfg.Store.Driver {
	case "", "file":
		backend = store.NewFileBackend(cfg.Store.FilePath)
	case "postgres":
		conn, err := db.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		dbConn = conn
		backend = store.NewPostgresBackend(conn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	media, err := newMediaStorage(ctx, cfg)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	publisher, err := newPublisher(ctx, cfg)
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	deps := Deps{
		Store:     store.New(backend),
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(cfg.JWT.TTLHours) * time.Hour,
		Media:     media,
		Publisher: publisher,
	}
	router := NewRouter(deps)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		publisher:  publisher,
	}, nil
}

// NewRouter builds the chi router over wired dependencies. Split out from
// New so tests can mount the routes over a throwaway store.
func NewRouter(deps Deps) *chi.Mux {
	userStore := store.NewUserStore(deps.Store)
	postStore := store.NewPostStore(deps.Store)
	authorStore := store.NewAuthorStore(deps.Store)
	categoryStore := store.NewCategoryStore(deps.Store)

	userService := services.NewUserService(userStore)
	postService := services.NewPostService(postStore, authorStore, categoryStore, deps.Publisher)
	authorService := services.NewAuthorService(authorStore, deps.Publisher)
	categoryService := services.NewCategoryService(categoryStore, deps.Publisher)

	authHandler := handlers.NewAuthHandler(userService, deps.JWTSecret, deps.TokenTTL)
	authMiddleware := handlers.RequireAuth(deps.JWTSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)

	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, authHandler)

	router.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Route("/posts", func(r chi.Router) {
			handlers.PostRouter(r, postService)
		})
		r.Route("/authors", func(r chi.Router) {
			handlers.AuthorRouter(r, authorService)
		})
		r.Route("/categories", func(r chi.Router) {
			handlers.CategoryRouter(r, categoryService)
		})
		if deps.Media != nil {
			r.Route("/media", func(r chi.Router) {
				handlers.MediaRouter(r, deps.Media)
			})
		}
	})

	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires, then closes the
// publisher and the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	closeDB(s.db)
	return err
}

func newMediaStorage(ctx context.Context, cfg config.Config) (*storage.Storage, error) {
	switch cfg.Media.Backend {
	case "":
		return nil, nil
	case "minio":
		client, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		st := storage.NewStorage(client)
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return st, nil
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		st := storage.NewStorage(client)
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Media.Backend)
	}
}

func newPublisher(ctx context.Context, cfg config.Config) (*events.Publisher, error) {
	switch cfg.Events.Backend {
	case "":
		return events.NewPublisher(nil), nil
	case "rabbitmq":
		backend, err := events.NewRabbitMQBackend(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		return events.NewPublisher(backend), nil
	case "pubsub":
		backend, err := events.NewPubSubBackend(ctx, cfg.PubSub)
		if err != nil {
			return nil, err
		}
		return events.NewPublisher(backend), nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Events.Backend)
	}
}

func closeDB(dbConn *sql.DB) {
	if dbConn != nil {
		_ = dbConn.Close()
	}
}
