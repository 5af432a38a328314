package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/gorilla/mux"
)

type checkoutRequest struct {
	ShippingAddress *domain.Address `json:"shippingAddress"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
	Force  bool               `json:"force"`
}

type statusResponse struct {
	Order          domain.Order         `json:"order"`
	PreviousStatus domain.OrderStatus   `json:"previousStatus"`
	NextStatuses   []domain.OrderStatus `json:"nextStatuses"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.Checkout(r.Context(), req.ShippingAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	session := h.Sessions.Session()
	if !session.IsAuthenticated || session.User == nil {
		writeError(w, domain.ErrNotAuthenticated)
		return
	}
	orders, err := h.Orders.FetchUserOrders(r.Context(), session.User.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	png, err := h.QR.Generate(order.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.FetchAllOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	write := h.Orders.SetStatus
	if req.Force {
		write = h.Orders.ForceStatus
	}
	previous, err := write(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Orders.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Order:          order,
		PreviousStatus: previous,
		NextStatuses:   state.NextStatuses(order.Status),
	})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
