// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/session"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// maxSlotAttempts bounds the compare-and-set retries of a single-session
// login racing other logins of the same user.
const maxSlotAttempts = 5

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository persists users, their session slot and reset token.
	userRepository store.UserRepository

	// sessions maps session ids to user ids.
	sessions session.Registry

	// hasher hashes and verifies passwords.
	hasher crypto.PasswordHasher

	// singleSession makes Login destroy the session held in the user's
	// slot before starting a new one.
	singleSession bool

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repository,
// session registry and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessions session.Registry,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		hasher:         hasher,
		singleSession:  cfg.SingleSession,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is hashed before the insert; uniqueness of the email is left
// to the storage constraint, so concurrent registrations of one email
// produce exactly one user and ErrAlreadyExists for the rest.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return models.User{}, a.hashError(err)
	}

	user, err := a.userRepository.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("func", "*authService.Register").Str("email", email).Msg("email already registered")
			return models.User{}, fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate looks the user up by email and verifies the password.
//
// Returns ErrInvalidCredentials for empty input, an unknown email or a wrong
// password, and ErrStorage when the store fails or the stored hash is
// malformed.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUser(ctx, models.ByEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	ok, err := a.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the user and starts a session.
//
// The new id is recorded in the user's session slot. With single-session
// mode on, the slot is taken over with a compare-and-set and the session it
// held is destroyed, so concurrent logins leave exactly one live session;
// otherwise earlier sessions stay valid until they expire or are ended.
func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	sessionID, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error creating session")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if a.singleSession {
		err = a.takeSlot(ctx, user, sessionID)
	} else {
		err = a.userRepository.UpdateUser(ctx, user.ID, models.UserChanges{models.UserFieldSessionID: sessionID})
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error recording session slot")
		if _, dErr := a.sessions.Destroy(ctx, sessionID); dErr != nil {
			log.Err(dErr).Str("func", "*authService.Login").Msg("error rolling back session")
		}
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().Str("func", "*authService.Login").
		Str("user_id", user.ID).
		Str("session_prefix", utils.ShortID(sessionID)).
		Msg("user logged in")
	return sessionID, nil
}

// ResolveSession maps a session id to its user. Misses of any kind are
// (nil, nil); only storage failures are errors.
func (a *authService) ResolveSession(ctx context.Context, sessionID string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return nil, nil
	}

	userID, err := a.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, nil
		}
		log.Err(err).Str("func", "*authService.ResolveSession").Msg("error resolving session")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	user, err := a.userRepository.FindUser(ctx, models.ByID(userID))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "*authService.ResolveSession").Str("user_id", userID).Msg("session owner no longer exists")
			return nil, nil
		}
		log.Err(err).Str("func", "*authService.ResolveSession").Msg("error finding session owner")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &user, nil
}

// Logout destroys the session held in the user's slot and clears the slot.
// An unknown user or an empty slot is a no-op.
func (a *authService) Logout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil
	}

	user, err := a.userRepository.FindUser(ctx, models.ByID(userID))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		log.Err(err).Str("func", "*authService.Logout").Msg("error finding user")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if !user.HasSession() {
		return nil
	}

	if _, err = a.sessions.Destroy(ctx, *user.SessionID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error destroying session")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return a.releaseSlot(ctx, user.ID, *user.SessionID)
}

// EndSession destroys one session. When it was the session recorded in
// its owner's slot, the slot is cleared as well. Returns whether a live
// session was removed.
func (a *authService) EndSession(ctx context.Context, sessionID string) (bool, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return false, nil
	}

	userID, err := a.sessions.Resolve(ctx, sessionID)
	live := err == nil
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		log.Err(err).Str("func", "*authService.EndSession").Msg("error resolving session")
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	removed, err := a.sessions.Destroy(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*authService.EndSession").Msg("error destroying session")
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if !live {
		return false, nil
	}

	user, err := a.userRepository.FindUser(ctx, models.ByID(userID))
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return removed, nil
	case err != nil:
		log.Err(err).Str("func", "*authService.EndSession").Msg("error finding session owner")
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if user.HasSession() && *user.SessionID == sessionID {
		if err = a.releaseSlot(ctx, user.ID, sessionID); err != nil {
			return false, err
		}
	}

	log.Info().Str("func", "*authService.EndSession").
		Str("user_id", user.ID).
		Str("session_prefix", utils.ShortID(sessionID)).
		Msg("session ended")
	return removed, nil
}

// RequestPasswordReset issues a fresh UUIDv4 reset token for email,
// replacing any previous token. Delivery of the token is up to the caller.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := a.userRepository.FindUser(ctx, models.ByEmail(email))
	if err != nil {
		return "", a.lookupError(ctx, "*authService.RequestPasswordReset", err)
	}

	token := utils.NewResetToken()
	if err = a.userRepository.UpdateUser(ctx, user.ID, models.UserChanges{models.UserFieldResetToken: token}); err != nil {
		return "", a.lookupError(ctx, "*authService.RequestPasswordReset", err)
	}

	log.Info().Str("func", "*authService.RequestPasswordReset").Str("user_id", user.ID).Msg("reset token issued")
	return token, nil
}

// UpdatePassword redeems a reset token: the owner's password is re-hashed
// and the token is cleared so it cannot be used again.
//
// When update.Email is set it must be the token owner's email.
func (a *authService) UpdatePassword(ctx context.Context, update models.PasswordUpdate) error {
	log := logger.FromContext(ctx)

	if update.ResetToken == "" || update.NewPassword == "" {
		return fmt.Errorf("%w: reset token and new password are required", ErrInvalidInput)
	}

	user, err := a.userRepository.FindUser(ctx, models.ByResetToken(update.ResetToken))
	if err != nil {
		return a.lookupError(ctx, "*authService.UpdatePassword", err)
	}

	if update.Email != "" && update.Email != user.Email {
		log.Warn().Str("func", "*authService.UpdatePassword").Str("user_id", user.ID).Msg("reset token presented for another email")
		return ErrNotFound
	}

	hash, err := a.hasher.Hash(update.NewPassword)
	if err != nil {
		return a.hashError(err)
	}

	// the write only lands while the row still holds the token, so
	// concurrent redemptions of one token succeed at most once
	if err = a.userRepository.RedeemResetToken(ctx, user.ID, update.ResetToken, hash); err != nil {
		return a.lookupError(ctx, "*authService.UpdatePassword", err)
	}

	log.Info().Str("func", "*authService.UpdatePassword").Str("user_id", user.ID).Msg("password updated")
	return nil
}

// takeSlot stores sessionID in the user's slot and destroys the session the
// slot held. A lost compare-and-set re-reads the slot and tries again.
func (a *authService) takeSlot(ctx context.Context, user models.User, sessionID string) error {
	log := logger.FromContext(ctx)

	current := user.SessionID
	for range maxSlotAttempts {
		err := a.userRepository.SwapSessionSlot(ctx, user.ID, current, &sessionID)
		if err == nil {
			if current == nil || *current == "" {
				return nil
			}
			if _, err = a.sessions.Destroy(ctx, *current); err != nil {
				return fmt.Errorf("destroying previous session: %w", err)
			}
			return nil
		}
		if !errors.Is(err, store.ErrSessionSlotChanged) {
			return err
		}

		log.Debug().Str("func", "*authService.takeSlot").Str("user_id", user.ID).Msg("session slot changed, retrying")
		fresh, err := a.userRepository.FindUser(ctx, models.ByID(user.ID))
		if err != nil {
			return err
		}
		current = fresh.SessionID
	}

	return store.ErrSessionSlotChanged
}

// releaseSlot empties the user's slot if it still holds sessionID. A slot
// already taken by a newer login is left alone.
func (a *authService) releaseSlot(ctx context.Context, userID, sessionID string) error {
	err := a.userRepository.SwapSessionSlot(ctx, userID, &sessionID, nil)
	if err != nil && !errors.Is(err, store.ErrSessionSlotChanged) {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.releaseSlot").Msg("error clearing session slot")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// lookupError maps a user repository error to ErrNotFound or ErrStorage.
func (a *authService) lookupError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("user storage failed")
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func (a *authService) hashError(err error) error {
	if errors.Is(err, crypto.ErrEmptyPassword) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
