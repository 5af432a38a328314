package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/service"
	"restaurant-storefront/internal/state"
)

const dateLayout = "2006-01-02"

type revenueResponse struct {
	domain.RevenueLedger
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	PeriodRevenue int64  `json:"periodRevenue"`
}

// getRevenue returns the ledger plus the sum over [from, to]. Both bounds
// default to the current UTC day.
func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	today := state.DayKey(time.Now())
	from := queryOr(r, "from", today)
	to := queryOr(r, "to", today)

	start, err := time.Parse(dateLayout, from)
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, revenueResponse{
		RevenueLedger: h.Revenue.Ledger(),
		From:          from,
		To:            to,
		PeriodRevenue: h.Revenue.RevenueForPeriod(start, end),
	})
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 7)
	if err != nil {
		http.Error(w, "invalid days", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Dashboard.Stats(days))
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	perPage, err := queryInt(r, "perPage", service.DefaultCustomersPerPage)
	if err != nil {
		http.Error(w, "invalid perPage", http.StatusBadRequest)
		return
	}
	customers, err := h.Users.FetchCustomers(r.Context(), r.URL.Query().Get("q"), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
