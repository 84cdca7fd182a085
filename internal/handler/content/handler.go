package content

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	contentModel "github.com/mindhaven/backend/internal/model/content"
	"github.com/mindhaven/backend/internal/model/motion"
	"github.com/mindhaven/backend/internal/model/theme"
	"github.com/mindhaven/backend/internal/service/experiment"
	"github.com/mindhaven/backend/pkg/httpx"
)

// Handler serves the site's static content tables: page copy, theme
// palettes, animation presets, and A/B variant assignment.
type Handler struct {
	pages       contentModel.Store
	themes      theme.Store
	motions     *motion.Catalog
	experiments *experiment.Service
}

// New creates the content handler.
func New(pages contentModel.Store, themes theme.Store, motions *motion.Catalog, experiments *experiment.Service) *Handler {
	return &Handler{
		pages:       pages,
		themes:      themes,
		motions:     motions,
		experiments: experiments,
	}
}

// RegisterRoutes mounts the content routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pages", h.handleListPages)
	r.Get("/pages/{slug}", h.handleGetPage)
	r.Get("/themes", h.handleListThemes)
	r.Get("/animations", h.handleListAnimations)
	r.Get("/experiments/{experimentID}", h.handleExperiment)
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, h.pages.List())
}

func (h *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, ok := h.pages.FindBySlug(slug)
	if !ok {
		httpx.RespondError(w, http.StatusNotFound, "page not found")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, page)
}

func (h *Handler) handleListThemes(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, h.themes.List())
}

func (h *Handler) handleListAnimations(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, h.motions.List())
}

// handleExperiment returns the visitor's variant for an experiment,
// assigning and cookie-persisting one on first sight so the bucket
// sticks across visits.
func (h *Handler) handleExperiment(w http.ResponseWriter, r *http.Request) {
	experimentID := chi.URLParam(r, "experimentID")
	cookieName := "mh_exp_" + experimentID

	if cookie, err := r.Cookie(cookieName); err == nil && h.experiments.Valid(experimentID, cookie.Value) {
		httpx.RespondJSON(w, http.StatusOK, experiment.Assignment{
			Experiment: experimentID,
			Variant:    cookie.Value,
		})
		return
	}

	assignment, err := h.experiments.Assign(experimentID)
	if err != nil {
		if errors.Is(err, experiment.ErrUnknownExperiment) {
			httpx.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    assignment.Variant,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	httpx.RespondJSON(w, http.StatusOK, assignment)
}
