package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/mindhaven/backend/internal/bus"
	contentHandler "github.com/mindhaven/backend/internal/handler/content"
	dialogueHandler "github.com/mindhaven/backend/internal/handler/dialogue"
	eventsHandler "github.com/mindhaven/backend/internal/handler/events"
	contentModel "github.com/mindhaven/backend/internal/model/content"
	"github.com/mindhaven/backend/internal/model/motion"
	"github.com/mindhaven/backend/internal/model/theme"
	"github.com/mindhaven/backend/internal/service/conversation"
	"github.com/mindhaven/backend/internal/service/experiment"
)

// Deps collects everything the router needs.
type Deps struct {
	Conversations  *conversation.Service
	Pages          contentModel.Store
	Themes         theme.Store
	Motions        *motion.Catalog
	Experiments    *experiment.Service
	Bus            *bus.Bus
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	dialogue := dialogueHandler.New(deps.Conversations)
	dialogueWS := dialogueHandler.NewWebSocketHandler(deps.Conversations)
	content := contentHandler.New(deps.Pages, deps.Themes, deps.Motions, deps.Experiments)
	events := eventsHandler.New(deps.Bus)

	r.Route("/api", func(api chi.Router) {
		dialogue.RegisterRoutes(api)
		dialogueWS.RegisterRoutes(api)
		content.RegisterRoutes(api)
		events.RegisterRoutes(api)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
