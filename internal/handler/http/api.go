package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/gate"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	resp := models.StatusResponse{Status: "OK"}
	if h.services != nil && h.services.AppInfoService != nil {
		resp.Version = h.services.AppInfoService.GetAppVersion(r.Context())
	}
	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	h.abort(w, r, http.StatusUnauthorized)
}

func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.abort(w, r, http.StatusForbidden)
}

// sessionLogin starts a session and returns the user. Unknown email and
// wrong password are both 401.
func (h *Handler) sessionLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" {
		h.writeJSON(w, r, models.ErrorResponse{Error: ErrEmailMissing.Error()}, http.StatusBadRequest)
		return
	}
	if password == "" {
		h.writeJSON(w, r, models.ErrorResponse{Error: ErrPasswordMissing.Error()}, http.StatusBadRequest)
		return
	}

	sessionID, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info().Msg("invalid email/password")
			h.abort(w, r, http.StatusUnauthorized)
			return
		}
		h.fail(w, r, err)
		return
	}

	user, err := h.services.AuthService.ResolveSession(ctx, sessionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if user == nil {
		log.Error().Str("session_prefix", utils.ShortID(sessionID)).Msg("fresh session did not resolve")
		h.abort(w, r, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, sessionID)
	h.writeJSON(w, r, user, http.StatusOK)
}

// sessionLogout destroys the cookie session; 404 when there is none.
func (h *Handler) sessionLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := gate.ExtractSessionCookie(r, h.sessionName)
	if !ok || sessionID == "" {
		h.notFound(w, r)
		return
	}

	ended, err := h.services.AuthService.EndSession(r.Context(), sessionID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !ended {
		h.notFound(w, r)
		return
	}

	h.clearSessionCookie(w)
	h.writeJSON(w, r, struct{}{}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.notFound(w, r)
		return
	}
	h.writeJSON(w, r, user, http.StatusOK)
}
