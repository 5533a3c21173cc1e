// Package httpapi exposes the user/item services over HTTP. Routing is done
// with chi; authentication is an opaque bearer token resolved to an actor by
// the auth service and carried through the request context.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/avasiljevs/itemvault/internal/logging"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/services"
)

// AuthService is the authentication surface the HTTP layer needs.
type AuthService interface {
	AuthenticateByPassword(ctx context.Context, email, password string) (*models.User, error)
	IssueToken(ctx context.Context, user *models.User) (*models.Token, error)
	ResolveToken(ctx context.Context, value string) (*models.User, error)
}

// UserService is the user CRUD surface the HTTP layer needs.
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	AdminCreate(ctx context.Context, actor *models.User, in services.AdminCreateInput) (*models.User, error)
	GetSelf(ctx context.Context, actor *models.User) *models.User
	UpdateSelf(ctx context.Context, actor *models.User, in services.UpdateProfileInput) (*models.User, error)
	DeleteSelf(ctx context.Context, actor *models.User) error
	ResetPassword(ctx context.Context, actor *models.User, current, newPassword string) error
	GetByID(ctx context.Context, actor *models.User, id string) (*models.User, error)
	UpdateByID(ctx context.Context, actor *models.User, id string, in services.AdminUpdateInput) (*models.User, error)
	DeleteByID(ctx context.Context, actor *models.User, id string) error
}

// ItemService is the item CRUD surface the HTTP layer needs.
type ItemService interface {
	List(ctx context.Context, actor *models.User) ([]*models.Item, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.Item, error)
	Create(ctx context.Context, actor *models.User, title string, description *string) (*models.Item, error)
	Update(ctx context.Context, actor *models.User, id string, in services.UpdateItemInput) (*models.Item, error)
	Delete(ctx context.Context, actor *models.User, id string) error
}

// Server serves the HTTP API.
type Server struct {
	address     string
	corsOrigins []string
	logger      logging.Logger
	auth        AuthService
	users       UserService
	items       ItemService
}

// NewServer builds a Server bound to the given address.
func NewServer(address string, corsOrigins []string, l logging.Logger, as AuthService, us UserService, is ItemService) *Server {
	return &Server{
		address:     address,
		corsOrigins: corsOrigins,
		logger:      l.With("module", "http_server"),
		auth:        as,
		users:       us,
		items:       is,
	}
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/login/access-token", s.handleLogin)
	r.With(s.requireToken).Post("/login/test-token", s.handleTestToken)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/signup", s.handleSignup)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)
			r.Post("/", s.handleAdminCreateUser)

			r.Get("/me", s.handleGetMe)
			r.Patch("/me", s.handleUpdateMe)
			r.Delete("/me", s.handleDeleteMe)
			r.Patch("/me/password", s.handleResetPassword)

			r.Get("/{id}", s.handleGetUser)
			r.Patch("/{id}", s.handleUpdateUser)
			r.Delete("/{id}", s.handleDeleteUser)
		})
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/", s.handleListItems)
		r.Post("/", s.handleCreateItem)
		r.Get("/{id}", s.handleGetItem)
		r.Put("/{id}", s.handleUpdateItem)
		r.Delete("/{id}", s.handleDeleteItem)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
