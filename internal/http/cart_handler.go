package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/logger"
	"github.com/nikolayk812/storefront-cart/internal/notify"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/view"
)

type CartHandler struct {
	stores   port.CartStores
	products port.ProductRepository
	toasts   port.NotificationQueue
	renderer *view.Renderer
	log      *logger.Logger
}

func NewCartHandler(
	stores port.CartStores,
	products port.ProductRepository,
	toasts port.NotificationQueue,
	renderer *view.Renderer,
	log *logger.Logger,
) *CartHandler {
	return &CartHandler{
		stores:   stores,
		products: products,
		toasts:   toasts,
		renderer: renderer,
		log:      log,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	cart := h.stores.Get(sessionID).Cart()
	page := view.NewCartPage(cart, h.toasts.Drain(r.Context(), sessionID))

	h.render(w, func() error { return h.renderer.Cart(w, page) })
}

func (h *CartHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())

	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.log.Error("list products failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "catalog is unavailable")
		return
	}

	cart := h.stores.Get(sessionID).Cart()
	page := view.NewCatalogPage(products, cart, h.toasts.Drain(r.Context(), sessionID))

	h.render(w, func() error { return h.renderer.Catalog(w, page) })
}

// AddItem is the add-to-cart control: it resolves the posted product and adds one unit of it.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())

	productID, err := uuid.Parse(r.PostFormValue("product_id"))
	if err != nil || productID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a UUID")
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID)
	if errors.Is(err, port.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.log.Error("get product failed", "product_id", productID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "catalog is unavailable")
		return
	}

	cartStore := h.stores.Get(sessionID)
	if cartCurrency := cartStore.Cart().Currency; product.Price.Currency != cartCurrency {
		h.log.Warn("product currency does not match cart",
			"product_id", productID,
			"product_currency", product.Price.Currency.String(),
			"cart_currency", cartCurrency.String(),
		)
		respondError(w, http.StatusUnprocessableEntity, "currency_mismatch",
			fmt.Sprintf("product is priced in %s, cart uses %s", product.Price.Currency, cartCurrency))
		return
	}

	cartStore.Add(product.CartItem())
	h.toasts.Success(r.Context(), sessionID, notify.MsgAdded(product.Name))

	redirect(w, r, view.CatalogRoute)
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.setQuantity(w, r, domain.Increment, notify.MsgQuantityIncrease)
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.setQuantity(w, r, domain.Decrement, notify.MsgQuantityDecrease)
}

func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request, dir domain.Direction, msg string) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	sessionID := getSessionID(r.Context())

	h.stores.Get(sessionID).SetQuantity(productID, dir)
	h.toasts.Success(r.Context(), sessionID, msg)

	redirect(w, r, view.CartRoute)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	sessionID := getSessionID(r.Context())

	h.stores.Get(sessionID).Remove(productID)
	h.toasts.Success(r.Context(), sessionID, notify.MsgItemRemoved)

	redirect(w, r, view.CartRoute)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())

	h.stores.Get(sessionID).Clear()
	h.toasts.Success(r.Context(), sessionID, notify.MsgCartCleared)

	redirect(w, r, view.CartRoute)
}

func (h *CartHandler) render(w http.ResponseWriter, fn func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fn(); err != nil {
		h.log.Error("render failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "page could not be rendered")
	}
}

func productIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil || productID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a UUID")
		return uuid.Nil, false
	}
	return productID, true
}
