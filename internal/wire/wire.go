package wire

import (
	"net/http"

	"video-catalog/internal/adaptor"
	"video-catalog/internal/data/repository"
	"video-catalog/internal/usecase"
	"video-catalog/pkg/database"
	"video-catalog/pkg/events"
	"video-catalog/pkg/middleware"
	"video-catalog/pkg/storage"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// App holds the wired router and the services background workers need
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Deps are the infrastructure pieces built in main
type Deps struct {
	Repo       *repository.Repository
	Tx         database.TxManager
	Storage    storage.FileStorage
	Dispatcher events.Dispatcher
}

// Wiring builds services, handlers and routes
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Tx, deps.Storage, deps.Dispatcher, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router:  setupRouter(handler, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireCategory(r, handler.Category)
	wireGenre(r, handler.Genre)
	wireCastMember(r, handler.CastMember)
	wireVideo(r, handler.Video)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "OK")
	})

	return r
}
