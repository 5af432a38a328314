package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurant-storefront/internal/domain"

	"github.com/gorilla/mux"
)

type reservationRequest struct {
	Name  string `json:"name"`
	Time  string `json:"time"`
	Phone string `json:"phone"`
}

// selectTableRequest clears the selection when TableID is empty.
type selectTableRequest struct {
	TableID string `json:"tableId"`
}

type selectedTableResponse struct {
	Table *domain.Table `json:"table"`
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Tables.List())
}

func (h *Handler) getSelectedTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, selectedTableResponse{Table: h.Tables.Selected()})
}

func (h *Handler) selectTable(w http.ResponseWriter, r *http.Request) {
	var req selectTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var err error
	if req.TableID == "" {
		err = h.Tables.Select(r.Context(), nil)
	} else {
		err = h.Tables.SelectByID(r.Context(), req.TableID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, selectedTableResponse{Table: h.Tables.Selected()})
}

func (h *Handler) reserveTable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.Reserve(r.Context(), id, req.Name, req.Time, req.Phone); err != nil {
		writeError(w, err)
		return
	}
	h.writeTable(w, id)
}

func (h *Handler) closeTable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Tables.GetByID(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Tables.Close(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.writeTable(w, id)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Tables.Add(r.Context(), table)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.TablePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.Tables.GetByID(id); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Tables.Update(r.Context(), id, patch); err != nil {
		writeError(w, err)
		return
	}
	h.writeTable(w, id)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Tables.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeTable(w http.ResponseWriter, id string) {
	table, err := h.Tables.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}
