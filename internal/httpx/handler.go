package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ariefcatur/smartpos/internal/gateway"
	"github.com/ariefcatur/smartpos/internal/pos"
)

type Handler struct {
	GW     *gateway.Gateway
	Tokens Tokens
	Log    *logrus.Entry
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.healthz)
	r.Post("/auth/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/products", h.listProducts)
		r.Get("/customers", h.listCustomers)
		r.Post("/customers", h.createCustomer)
		r.Put("/customers/{id}", h.putCustomer)
		r.Post("/checkout", h.checkout)
		r.Get("/orders", h.listOrders)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Put("/products/{id}", h.putProduct)
			r.Delete("/products/{id}", h.deleteProduct)
			r.Get("/users", h.listUsers)
			r.Put("/users/{id}", h.putUser)
			r.Delete("/users/{id}", h.deleteUser)
			r.Delete("/customers/{id}", h.deleteCustomer)
			r.Post("/customers/transfer", h.transferCustomers)
			r.Post("/customers/bulk-delete", h.bulkDeleteCustomers)
			r.Get("/reports/sales", h.salesReport)
		})
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeDomainError memetakan sentinel error domain ke status HTTP.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pos.ErrInvalidPIN):
		writeError(w, http.StatusUnauthorized, pos.ErrInvalidPIN.Error())
	case errors.Is(err, pos.ErrCheckoutForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, pos.ErrEmptyCart), errors.Is(err, pos.ErrInvalidAmount),
		errors.Is(err, pos.ErrPINFormat), errors.Is(err, pos.ErrUnknownRole):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger().WithError(err).Error("request gagal")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) logger() *logrus.Entry {
	if h.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return h.Log
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func setSource(w http.ResponseWriter, src gateway.Source) {
	w.Header().Set("X-Data-Source", string(src))
}

// mustActor dipakai di route yang sudah lewat requireAuth.
func mustActor(r *http.Request) pos.User {
	u, _ := Actor(r.Context())
	return u
}

type healthResp struct {
	Status string `json:"status"`
	Remote bool   `json:"remote_configured"`
}

// healthz: proses hidup; remote_configured=false berarti jalan local-only.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResp{Status: "ok", Remote: h.GW.RemoteConfigured()})
}

type loginReq struct {
	PIN string `json:"pin"`
}

type loginResp struct {
	Token string   `json:"token"`
	User  pos.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !decode(w, r, &req) {
		return
	}
	u, err := h.GW.Login(r.Context(), req.PIN)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	token, err := h.Tokens.Issue(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	u.PIN = ""
	writeJSON(w, http.StatusOK, loginResp{Token: token, User: u})
}
