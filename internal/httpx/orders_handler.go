package httpx

import (
	"net/http"
	"time"

	"github.com/ariefcatur/smartpos/internal/pos"
)

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req pos.CheckoutRequest
	if !decode(w, r, &req) {
		return
	}
	o, err := h.GW.Checkout(r.Context(), mustActor(r), req)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.GW.History(r.Context(), mustActor(r), r.URL.Query().Get("date"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	setSource(w, res.Source)
	writeJSON(w, http.StatusOK, res.Data)
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	period, err := pos.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, src, err := h.GW.SalesReport(r.Context(), period, time.Now())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	setSource(w, src)
	writeJSON(w, http.StatusOK, report)
}
