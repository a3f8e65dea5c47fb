package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bprisby/arcade-backend-go/internal/api/handler"
	apimiddleware "github.com/bprisby/arcade-backend-go/internal/api/middleware"
	"github.com/bprisby/arcade-backend-go/internal/api/response"
	"github.com/bprisby/arcade-backend-go/internal/middleware"
	"github.com/bprisby/arcade-backend-go/internal/realtime"
	"github.com/bprisby/arcade-backend-go/internal/services/catalog"
	"github.com/bprisby/arcade-backend-go/internal/services/ledger"
	"github.com/bprisby/arcade-backend-go/internal/services/vault"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	CatalogService catalog.ServiceInterface
	LedgerService  ledger.ServiceInterface
	VaultService   vault.ServiceInterface
	Hub            *realtime.Hub
	Broadcaster    *realtime.Broadcaster
}

// NewRouter creates a new API router with all routes configured. Routes are
// mounted at the root to stay wire-compatible with existing clients.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.CatalogService)
	playerHandler := handler.NewPlayerHandler(cfg.LedgerService)
	prizeHandler := handler.NewPrizeHandler(cfg.VaultService)

	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	games := r.PathPrefix("/games").Subrouter()
	games.HandleFunc("/create", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/update", gameHandler.Update).Methods(http.MethodPut)
	games.HandleFunc("/{id}/delete", gameHandler.Delete).Methods(http.MethodDelete)

	players := r.PathPrefix("/players").Subrouter()
	players.HandleFunc("/create", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("/", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}/update", playerHandler.Update).Methods(http.MethodPut)
	players.HandleFunc("/{id}/publishstats", playerHandler.PublishStats).Methods(http.MethodPost)
	players.HandleFunc("/{id}/delete", playerHandler.Delete).Methods(http.MethodDelete)

	prizes := r.PathPrefix("/prizes").Subrouter()
	prizes.HandleFunc("/create", prizeHandler.Create).Methods(http.MethodPost)
	prizes.HandleFunc("/", prizeHandler.List).Methods(http.MethodGet)
	prizes.HandleFunc("/{id}", prizeHandler.Get).Methods(http.MethodGet)
	prizes.HandleFunc("/{id}/update", prizeHandler.Update).Methods(http.MethodPut)
	prizes.HandleFunc("/{id}/redeem", prizeHandler.Redeem).Methods(http.MethodPost)
	prizes.HandleFunc("/{id}/delete", prizeHandler.Delete).Methods(http.MethodDelete)

	if cfg.Hub != nil && cfg.Broadcaster != nil {
		eventsHandler := handler.NewEventsHandler(cfg.Hub, cfg.Broadcaster)
		r.HandleFunc("/events", eventsHandler.Subscribe).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
