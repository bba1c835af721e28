package httpx

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ariefcatur/smartpos/internal/pos"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	res, err := h.GW.VisibleCustomers(r.Context(), mustActor(r))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	setSource(w, res.Source)
	writeJSON(w, http.StatusOK, res.Data)
}

type customerReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	h.saveCustomer(w, r, uuid.NewString())
}

func (h *Handler) putCustomer(w http.ResponseWriter, r *http.Request) {
	h.saveCustomer(w, r, chi.URLParam(r, "id"))
}

// saveCustomer: customer baru dimiliki actor; customer lama hanya boleh
// diubah nama/telepon oleh actor yang bisa melihatnya.
func (h *Handler) saveCustomer(w http.ResponseWriter, r *http.Request, id string) {
	actor := mustActor(r)
	if actor.Role.Normalize() == pos.RoleGudang {
		writeError(w, http.StatusForbidden, "role tidak punya akses member")
		return
	}
	var req customerReq
	if !decode(w, r, &req) {
		return
	}
	phone := normalizePhone(req.Phone)
	if strings.TrimSpace(req.Name) == "" || phone == "" {
		writeError(w, http.StatusBadRequest, "name dan phone wajib diisi")
		return
	}

	res, err := h.GW.Customers.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	c := pos.Customer{
		ID:            id,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     actor.ID,
		CreatedByRole: actor.Role,
	}
	code := http.StatusCreated
	if i := slices.IndexFunc(res.Data, func(x pos.Customer) bool { return x.ID == id }); i >= 0 {
		c = res.Data[i]
		if !pos.CustomerVisible(actor, c) {
			writeError(w, http.StatusForbidden, "customer milik user lain")
			return
		}
		code = http.StatusOK
	}
	c.Name = strings.TrimSpace(req.Name)
	c.Phone = phone

	if err := h.GW.Customers.Upsert(r.Context(), c); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, code, c)
}

// normalizePhone membuang semua karakter non-digit ("+62 812-33" -> "6281233").
func normalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.GW.Customers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transferReq struct {
	IDs     []string `json:"ids"`
	OwnerID string   `json:"owner_id"`
}

func (h *Handler) transferCustomers(w http.ResponseWriter, r *http.Request) {
	var req transferReq
	if !decode(w, r, &req) {
		return
	}
	if len(req.IDs) == 0 || req.OwnerID == "" {
		writeError(w, http.StatusBadRequest, "ids dan owner_id wajib diisi")
		return
	}
	owner, ok, err := h.GW.FindUser(r.Context(), req.OwnerID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "owner tidak ditemukan")
		return
	}
	if err := h.GW.BulkTransferCustomers(r.Context(), req.IDs, owner.ID, owner.Role); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"transferred": len(req.IDs)})
}

type idsReq struct {
	IDs []string `json:"ids"`
}

func (h *Handler) bulkDeleteCustomers(w http.ResponseWriter, r *http.Request) {
	var req idsReq
	if !decode(w, r, &req) {
		return
	}
	if err := h.GW.BulkDeleteCustomers(r.Context(), req.IDs); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": len(req.IDs)})
}
