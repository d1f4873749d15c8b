package handler

import (
	"net/http"
	"time"

	"boulangerie/internal/model"
	"boulangerie/internal/store"

	"github.com/rs/zerolog"
)

// SessionCookieName carries the opaque session token issued at sign-in.
const SessionCookieName = "boulangerie_session"

// sessionCookieMaxAge matches the backend's token expiry.
const sessionCookieMaxAge = 7 * 24 * time.Hour

// AuthHandler handles sign-in, sign-out and session lookup.
type AuthHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(s *store.Store, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		store:  s,
		logger: logger.With().Str("handler", "auth").Logger(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK   bool        `json:"ok"`
	User *model.User `json:"user,omitempty"`
}

type meResponse struct {
	LoggedIn bool        `json:"loggedIn"`
	User     *model.User `json:"user"`
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Login handles POST /api/auth/login: credential check, token issuance and
// the HttpOnly session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", h.logger)
		return
	}

	session, err := h.store.SignInWithEmail(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	user := session.User
	writeJSON(w, http.StatusOK, loginResponse{OK: true, User: &user})
}

// Logout handles POST /api/auth/logout: revokes the token (idempotently) and
// clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if token := sessionToken(r); token != "" {
		if err := h.store.SignOut(r.Context(), token); err != nil {
			writeStoreError(w, err, h.logger)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me handles GET /api/auth/me. "No session" is a normal answer, never an
// error.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	user, err := h.store.GetCurrentUser(r.Context(), sessionToken(r))
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{LoggedIn: user != nil, User: user})
}
