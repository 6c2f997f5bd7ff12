package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// PostgresUserRepository implements UserRepository backed by PostgreSQL
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgreSQL-based user repository
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, name, username, email, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByUsername finds a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// GetByEmail finds a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// ListAll returns all users ordered by creation time
func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

// Create stores a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u User) (User, error) {
	query := `
		INSERT INTO users (id, name, username, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return User{}, conflict
		}
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Update overwrites an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, u User) (User, error) {
	query := `
		UPDATE users
		SET name = $2, username = $3, email = $4, password_hash = $5, role = $6, updated_at = $7
		WHERE id = $1`

	u.UpdatedAt = time.Now()

	tag, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Username, u.Email, u.PasswordHash, u.Role, u.UpdatedAt)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return User{}, conflict
		}
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Delete removes a user
func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// conflictError maps a unique-constraint violation to the corresponding
// sentinel error, or returns nil for any other error.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameExists
	case "users_email_key":
		return ErrEmailExists
	}
	return fmt.Errorf("unique violation on %s: %w", pgErr.ConstraintName, err)
}
