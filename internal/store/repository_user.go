package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// users table. It works with both PostgreSQL and SQLite: the dialect lives
// in db's statement builder and error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db    *DB
	idGen *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:    db,
		idGen: utils.NewUUIDGenerator(),
	}
}

// FindUser implements [UserRepository].
//
// Error handling:
//   - non-searchable filter field → [ErrInvalidField].
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrExecutingQuery].
func (r *userRepository) FindUser(ctx context.Context, filter models.UserFilter) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Str("field", filter.Field).Msg("error building query")
		return models.User{}, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var (
		user                  models.User
		resetToken, sessionID sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.HashedPassword, &resetToken, &sessionID, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Str("field", filter.Field).Msg("error finding user")
		return models.User{}, r.db.wrapError(ctx, ErrExecutingQuery, err)
	}

	user.ResetToken = nullableString(resetToken)
	user.SessionID = nullableString(sessionID)
	return user, nil
}

// CreateUser implements [UserRepository]. The id is a fresh UUIDv7 and
// CreatedAt is the current UTC time.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, email string, hashedPassword []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:             r.idGen.Generate(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      utcNow(),
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	return user, nil
}

// UpdateUser implements [UserRepository]. An empty change set is a no-op.
//
// Error handling:
//   - unknown column → [ErrInvalidField].
//   - no row with id → [ErrUserNotFound].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrExecutingStatement].
func (r *userRepository) UpdateUser(ctx context.Context, id string, changes models.UserChanges) error {
	log := logger.FromContext(ctx)

	if len(changes) == 0 {
		return nil
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, id, changes)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrapError(ctx, ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// RedeemResetToken implements [UserRepository].
//
// Error handling:
//   - user gone or token already redeemed or replaced → [ErrUserNotFound].
//   - deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrExecutingStatement].
func (r *userRepository) RedeemResetToken(ctx context.Context, id, token string, hashedPassword []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRedeemResetTokenQuery(r.db.builder, id, token, hashedPassword)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RedeemResetToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RedeemResetToken").Msg("error redeeming reset token")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SwapSessionSlot implements [UserRepository].
//
// Error handling:
//   - slot no longer holds current, or user gone → [ErrSessionSlotChanged].
//   - deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrExecutingStatement].
func (r *userRepository) SwapSessionSlot(ctx context.Context, id string, current, next *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSwapSessionSlotQuery(r.db.builder, id, current, next)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SwapSessionSlot").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SwapSessionSlot").Msg("error swapping session slot")
		return err
	}
	if affected == 0 {
		return ErrSessionSlotChanged
	}

	return nil
}

// exec runs a DML statement under the storage timeout and returns the
// number of affected rows.
func (r *userRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(ctx, ErrExecutingStatement, err)
	}
	return affected, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
