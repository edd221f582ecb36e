package httphandler

import (
	"log/slog"
	"net/http"
)

// POST v1/auth/register JSON Register (201 Created, 400, 409, 422)
// POST v1/auth/login JSON Login (200 OK, 400, 401)
// POST v1/auth/logout (204 No content)
// GET v1/auth/me (200 OK, 401 Unauthorized)

type AccountHandler struct {
	svc AccountService
}

func RegisterAccount(mux *http.ServeMux, svc AccountService) {
	h := AccountHandler{svc}
	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
	mux.HandleFunc("GET /v1/auth/me", h.Me)
}

func (h AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "AccountHandler.Register"
	log := slog.With("op", op)

	var req Register
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}

	u, err := h.svc.Register(
		r.Context(), SessionID(r.Context()), req.Name, req.Email, req.Password,
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, userFromDomain(u))
}

func (h AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AccountHandler.Login"
	log := slog.With("op", op)

	var req Login
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, log, err)
		return
	}

	u, err := h.svc.Login(r.Context(), SessionID(r.Context()), req.Email, req.Password)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, userFromDomain(u))
}

func (h AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "AccountHandler.Logout"
	log := slog.With("op", op)

	if err := h.svc.Logout(r.Context(), SessionID(r.Context())); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "AccountHandler.Me"
	log := slog.With("op", op)

	u, ok, err := h.svc.CurrentUser(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}
	if !ok {
		writeMessage(w, log, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, log, http.StatusOK, userFromDomain(u))
}
