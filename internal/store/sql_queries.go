package store

import (
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var userColumns = []string{
	models.UserFieldID,
	models.UserFieldEmail,
	models.UserFieldHashedPassword,
	models.UserFieldResetToken,
	models.UserFieldSessionID,
	"created_at",
}

var sessionColumns = []string{"session_id", "user_id", "created_at"}

// buildFindUserQuery selects the single user matching filter.
func buildFindUserQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	if !filter.Searchable() {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidField, filter.Field)
	}

	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{filter.Field: filter.Value}).
		Limit(1).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(models.UserFieldID, models.UserFieldEmail, models.UserFieldHashedPassword, "created_at").
		Values(user.ID, user.Email, user.HashedPassword, user.CreatedAt).
		ToSql()
}

// buildUpdateUserQuery sets the given columns on one user. Columns are
// emitted in sorted order; a nil value stores NULL.
func buildUpdateUserQuery(b sq.StatementBuilderType, id string, changes models.UserChanges) (string, []any, error) {
	if len(changes) == 0 {
		return "", nil, fmt.Errorf("%w: no changes", ErrBuildingSQLQuery)
	}

	keys := make([]string, 0, len(changes))
	for k := range changes {
		if !models.Updatable(k) {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidField, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	update := b.Update(models.User{}.TableName())
	for _, k := range keys {
		update = update.Set(k, changes[k])
	}

	return update.Where(sq.Eq{models.UserFieldID: id}).ToSql()
}

// buildRedeemResetTokenQuery replaces the password and clears the token only
// while the row still holds token.
func buildRedeemResetTokenQuery(b sq.StatementBuilderType, id, token string, hashedPassword []byte) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(models.UserFieldHashedPassword, hashedPassword).
		Set(models.UserFieldResetToken, nil).
		Where(sq.Eq{models.UserFieldID: id, models.UserFieldResetToken: token}).
		ToSql()
}

// buildSwapSessionSlotQuery is a compare-and-set on users.session_id.
// A nil current matches NULL.
func buildSwapSessionSlotQuery(b sq.StatementBuilderType, id string, current, next *string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set(models.UserFieldSessionID, slotValue(next)).
		Where(sq.Eq{models.UserFieldID: id, models.UserFieldSessionID: slotValue(current)}).
		ToSql()
}

func slotValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func buildCreateSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	return b.Insert(s.TableName()).
		Columns(sessionColumns...).
		Values(s.ID, s.UserID, s.CreatedAt.UTC()).
		ToSql()
}

func buildFindSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": id}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": id}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, createdBefore time.Time) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Lt{"created_at": createdBefore.UTC()}).
		ToSql()
}

func utcNow() time.Time {
	return time.Now().UTC()
}
