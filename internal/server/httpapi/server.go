// Package httpapi is the JSON HTTP surface of the journal server.
//
//	POST   /api/auth/register
//	POST   /api/auth/login
//	GET    /api/entries
//	POST   /api/entries
//	PUT    /api/entries/{id}
//	DELETE /api/entries/{id}
//	GET    /health, /api/health
//	GET    /metrics
//
// Entry routes need "Authorization: Bearer <token>". Errors are returned
// as {"message": "..."}.
package httpapi

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/server/metrics"
	"github.com/dmitrijs2005/gophjournal/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// UserService is what the auth routes need.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// EntryService is what the entry routes need. All calls are owner-scoped.
type EntryService interface {
	List(ctx context.Context, userID string) ([]*models.Entry, error)
	Create(ctx context.Context, userID string, e *models.Entry) (*models.Entry, error)
	Update(ctx context.Context, userID, id string, e *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, userID, id string) error
}

type Options struct {
	Users          UserService
	Entries        EntryService
	Metrics        *metrics.Collector
	Logger         *zap.Logger
	SecretKey      []byte
	AllowedOrigins []string
}

type handler struct {
	users    UserService
	entries  EntryService
	metrics  *metrics.Collector
	logger   *zap.Logger
	validate *validator.Validate
}

// NewRouter wires the middleware chain and the routes.
func NewRouter(o Options) http.Handler {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{
		users:    o.Users,
		entries:  o.Entries,
		metrics:  o.Metrics,
		logger:   logger,
		validate: newValidator(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if o.Metrics != nil {
		r.Use(observe(o.Metrics))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health)
	if o.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(o.SecretKey))
			r.Get("/entries", h.listEntries)
			r.Post("/entries", h.createEntry)
			r.Put("/entries/{id}", h.updateEntry)
			r.Delete("/entries/{id}", h.deleteEntry)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
