package wire

import (
	"net/http"

	"concert-venue/internal/adaptor"
	"concert-venue/internal/auth"
	"concert-venue/internal/data/repository"
	"concert-venue/internal/events"
	"concert-venue/internal/usecase"
	"concert-venue/pkg/middleware"
	"concert-venue/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Deps are the collaborators chosen at startup. Validator gates the write
// routes; when nil the Authenticator validates its own tokens.
type Deps struct {
	Repo          *repository.Repository
	Authenticator auth.Authenticator
	Validator     auth.TokenValidator
	Publisher     events.Publisher
}

// Wiring builds services, handlers and routes
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	validator := deps.Validator
	if validator == nil {
		validator = deps.Authenticator
	}

	service := usecase.NewService(deps.Repo, deps.Authenticator, deps.Publisher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, validator, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	validator auth.TokenValidator,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID, chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	if config.App.RequestTimeout > 0 {
		r.Use(chimw.Timeout(config.App.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	wireUser(r, handler.User, validator, logger)
	wireReservation(r, handler.Reservation, validator, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
