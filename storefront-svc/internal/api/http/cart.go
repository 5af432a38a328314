package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurant-storefront/internal/domain"

	"github.com/gorilla/mux"
)

type cartResponse struct {
	Items      []domain.CartItem  `json:"items"`
	SavedItems []domain.SavedItem `json:"savedItems"`
	IsOpen     bool               `json:"isOpen"`
	Total      int64              `json:"total"`
	Count      int                `json:"count"`
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) writeCart(w http.ResponseWriter) {
	cart := h.Cart.Snapshot()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:      cart.Items,
		SavedItems: cart.SavedItems,
		IsOpen:     cart.IsOpen,
		Total:      cart.Total(),
		Count:      cart.Count(),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	product, err := h.Catalog.GetByID(req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.Cart.AddItem(r.Context(), product, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cart.UpdateQuantity(r.Context(), mux.Vars(r)["productId"], req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.RemoveItem(r.Context(), mux.Vars(r)["productId"]); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) saveForLater(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	product, err := h.Catalog.GetByID(req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Cart.SaveForLater(r.Context(), product); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) removeSavedItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.RemoveSavedItem(r.Context(), mux.Vars(r)["productId"]); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) moveToCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.MoveToCart(r.Context(), mux.Vars(r)["productId"]); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h *Handler) setCartVisibility(w http.ResponseWriter, r *http.Request) {
	var err error
	switch mux.Vars(r)["action"] {
	case "open":
		err = h.Cart.Open(r.Context())
	case "close":
		err = h.Cart.Close(r.Context())
	default:
		err = h.Cart.Toggle(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}
