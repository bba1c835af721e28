package httpx

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/smartpos/internal/pos"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sort := pos.StockSort(strings.ToLower(q.Get("sort")))
	if sort == "none" {
		sort = pos.SortNone
	}
	page, src, err := h.GW.Catalog(r.Context(), pos.CatalogQuery{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		Sort:     sort,
		Page:     pos.ParseInt(q.Get("page"), 1),
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	setSource(w, src)
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) putProduct(w http.ResponseWriter, r *http.Request) {
	var p pos.Product
	if !decode(w, r, &p) {
		return
	}
	p.ID = chi.URLParam(r, "id")
	if strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "name wajib diisi")
		return
	}
	if err := h.GW.Products.Upsert(r.Context(), p); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.GW.Products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.GW.Users.List(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	setSource(w, res.Source)
	writeJSON(w, http.StatusOK, res.Data)
}

func (h *Handler) putUser(w http.ResponseWriter, r *http.Request) {
	var u pos.User
	if !decode(w, r, &u) {
		return
	}
	u.ID = chi.URLParam(r, "id")
	role, err := pos.ParseRole(string(u.Role))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	u.Role = role
	if err := pos.ValidatePIN(u.PIN); err != nil {
		h.writeDomainError(w, err)
		return
	}
	if err := h.GW.Users.Upsert(r.Context(), u); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == mustActor(r).ID {
		writeError(w, http.StatusBadRequest, "tidak bisa menghapus akun sendiri")
		return
	}
	if err := h.GW.Users.Delete(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
