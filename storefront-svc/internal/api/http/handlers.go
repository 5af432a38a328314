package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogInterface
	Cart      service.CartInterface
	Tables    service.TableInterface
	Orders    service.OrderInterface
	Revenue   service.RevenueInterface
	Sessions  service.AuthInterface
	Auth      service.AuthenticatorInterface
	Users     service.UserInterface
	Checkout  service.CheckoutInterface
	Dashboard service.DashboardInterface
	QR        service.QRGenerator
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/featured", h.getFeaturedProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{productId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/saved", h.saveForLater).Methods("POST")
	r.HandleFunc("/api/cart/saved/{productId}", h.removeSavedItem).Methods("DELETE")
	r.HandleFunc("/api/cart/saved/{productId}/move", h.moveToCart).Methods("POST")
	r.HandleFunc("/api/cart/{action:open|close|toggle}", h.setCartVisibility).Methods("POST")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/selected", h.getSelectedTable).Methods("GET")
	r.HandleFunc("/api/tables/selected", h.selectTable).Methods("PUT")
	r.HandleFunc("/api/tables/{id}/reserve", h.reserveTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}/close", h.closeTable).Methods("POST")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.getMyOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/session", h.getSession).Methods("GET")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.requireAdmin)
	admin.HandleFunc("/products", h.createProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", h.updateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", h.deleteProduct).Methods("DELETE")
	admin.HandleFunc("/tables", h.createTable).Methods("POST")
	admin.HandleFunc("/tables/{id}", h.updateTable).Methods("PUT")
	admin.HandleFunc("/tables/{id}", h.deleteTable).Methods("DELETE")
	admin.HandleFunc("/orders", h.getAllOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	admin.HandleFunc("/orders/{id}", h.deleteOrder).Methods("DELETE")
	admin.HandleFunc("/revenue", h.getRevenue).Methods("GET")
	admin.HandleFunc("/dashboard", h.getDashboard).Methods("GET")
	admin.HandleFunc("/customers", h.getCustomers).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// requireAdmin lets the request through only for an admin session.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.Sessions.Session()
		if !session.IsAuthenticated {
			writeError(w, domain.ErrNotAuthenticated)
			return
		}
		if !session.IsAdmin {
			writeError(w, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []domain.Product
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.Catalog.FetchByCategory(r.Context(), category)
	} else {
		products, err = h.Catalog.Fetch(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Featured())
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.FetchByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories())
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := h.Catalog.Add(r.Context(), product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.Catalog.GetByID(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Catalog.Update(r.Context(), id, patch); err != nil {
		writeError(w, err)
		return
	}
	product, err := h.Catalog.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
