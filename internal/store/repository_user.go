package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and reset-token bookkeeping
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.ResetToken); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record with the given email.
//
// Error handling:
//   - empty result set ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.ResetToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: finding user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetAllUsers returns the non-sensitive fields (id, name, email) of every
// user. Password hashes and reset tokens stay in the database.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// SetResetToken stores token as the user's single live reset token,
// overwriting any previous one. Returns [ErrNoUserWasFound] when the user
// does not exist.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string) error {
	return r.execOnUser(ctx, "*userRepository.SetResetToken", setResetToken, token, userID)
}

// ResetPassword sets the new password hash and clears the stored reset
// token in one statement, so the token cannot be replayed once consumed.
func (r *userRepository) ResetPassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.execOnUser(ctx, "*userRepository.ResetPassword", resetPassword, passwordHash, userID)
}

// ClearResetToken removes the user's stored reset token without touching
// the password. Used by the reset-token sweeper.
func (r *userRepository) ClearResetToken(ctx context.Context, userID int64) error {
	return r.execOnUser(ctx, "*userRepository.ClearResetToken", clearResetToken, userID)
}

// UsersWithResetToken returns every user that currently holds a stored
// reset token.
func (r *userRepository) UsersWithResetToken(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, usersWithResetToken)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UsersWithResetToken").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.ResetToken); err != nil {
			log.Err(err).Str("func", "*userRepository.UsersWithResetToken").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// execOnUser runs a single-row UPDATE against the users table and maps a
// zero rows-affected result to [ErrNoUserWasFound].
func (r *userRepository) execOnUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
