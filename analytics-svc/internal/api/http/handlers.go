package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"restaurant-storefront/analytics-svc/internal/domain"
	"restaurant-storefront/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top/{day}", h.getTopForDay).Methods("GET")
	r.HandleFunc("/api/analytics/daily-orders", h.getDailyOrders).Methods("GET")
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		log.Printf("ERROR: top today: %v", err)
		writeJSON(w, []domain.ProductAnalytics{})
		return
	}
	writeJSON(w, data)
}

func (h *Handler) getTopForDay(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	data, err := h.Analytics.TopProducts(r.Context(), mux.Vars(r)["day"], limit)
	if err != nil {
		log.Printf("ERROR: top products: %v", err)
		writeJSON(w, []domain.ProductAnalytics{})
		return
	}
	writeJSON(w, data)
}

func (h *Handler) getDailyOrders(w http.ResponseWriter, r *http.Request) {
	days := service.DefaultDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
		days = n
	}
	data, err := h.Analytics.DailyOrders(r.Context(), days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, data)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
