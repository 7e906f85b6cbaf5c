package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/gate"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.MessageResponse{Message: "Bienvenue"}, http.StatusOK)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.Register(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyExists):
			log.Info().Msg("email already registered")
			h.writeJSON(w, r, models.MessageResponse{Message: "email already registered"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidInput):
			log.Info().Msg("invalid data provided")
			h.writeJSON(w, r, models.MessageResponse{Message: "email and password are required"}, http.StatusBadRequest)
			return
		default:
			h.fail(w, r, err)
			return
		}
	}

	h.writeJSON(w, r, models.MessageResponse{Email: email, Message: "user created"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.PostFormValue("email")

	sessionID, err := h.services.AuthService.Login(ctx, email, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.FromRequest(r).Info().Msg("invalid email/password")
			h.abort(w, r, http.StatusUnauthorized)
			return
		}
		h.fail(w, r, err)
		return
	}

	h.setSessionCookie(w, sessionID)
	h.writeJSON(w, r, models.MessageResponse{Email: email, Message: "logged in"}, http.StatusOK)
}

// logout ends the session of the cookie and redirects to "/".
// In single-session mode the owner is logged out through the slot;
// otherwise other sessions of the same user stay valid.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, sessionID, err := h.cookieUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if user == nil {
		h.abort(w, r, http.StatusForbidden)
		return
	}

	if h.singleSession {
		err = h.services.AuthService.Logout(ctx, user.ID)
	} else {
		_, err = h.services.AuthService.EndSession(ctx, sessionID)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, _, err := h.cookieUser(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if user == nil {
		h.abort(w, r, http.StatusForbidden)
		return
	}

	h.writeJSON(w, r, models.ProfileResponse{Email: user.Email}, http.StatusOK)
}

func (h *Handler) getResetPasswordToken(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")

	token, err := h.services.AuthService.RequestPasswordReset(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidInput) {
			h.abort(w, r, http.StatusForbidden)
			return
		}
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.ResetTokenResponse{Email: email, ResetToken: token}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	update := models.PasswordUpdate{
		Email:       r.PostFormValue("email"),
		ResetToken:  r.PostFormValue("reset_token"),
		NewPassword: r.PostFormValue("new_password"),
	}
	if update.Email == "" {
		h.abort(w, r, http.StatusForbidden)
		return
	}

	err := h.services.AuthService.UpdatePassword(r.Context(), update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidInput) {
			h.abort(w, r, http.StatusForbidden)
			return
		}
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{Email: update.Email, Message: "Password updated"}, http.StatusOK)
}

// cookieUser resolves the session cookie of r. A missing cookie or an
// unresolvable session is a nil user without error.
func (h *Handler) cookieUser(r *http.Request) (*models.User, string, error) {
	sessionID, ok := gate.ExtractSessionCookie(r, h.sessionName)
	if !ok || sessionID == "" {
		return nil, "", nil
	}

	user, err := h.services.AuthService.ResolveSession(r.Context(), sessionID)
	return user, sessionID, err
}
