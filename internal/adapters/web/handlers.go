package web

import (
	"net/http"

	"quitacao-report/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// Browser surface: the single report page.
	r.Get("/", h.indexPage)

	// JSON API
	r.Get("/api/health", h.health)
	r.Get("/api/companies", h.apiListCompanies)
	r.Get("/api/sales/{number}/header", h.apiSaleHeader)
	r.Get("/api/sales/{number}/payoff", h.apiPayoffStatement)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
