package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/storefront-cart/internal/logger"
)

type RouterConfig struct {
	RequestTimeout time.Duration
	SessionTTL     time.Duration
	SecureCookies  bool
}

func NewRouter(cfg RouterConfig, cartHandler *CartHandler, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(cfg.SecureCookies, cfg.SessionTTL))

		r.Get("/", cartHandler.GetCatalog)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{product_id}/increment", cartHandler.Increment)
			r.Post("/items/{product_id}/decrement", cartHandler.Decrement)
			r.Post("/items/{product_id}/remove", cartHandler.RemoveItem)
			r.Post("/clear", cartHandler.ClearCart)
		})
	})

	return r
}
