package repository

import (
	"context"
	"errors"
	"fmt"

	"nishlen_auth/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicatePhone is returned by Create when the phone number is already
// taken. Uniqueness is enforced by the database constraint, so two concurrent
// inserts of the same phone can never both succeed.
var ErrDuplicatePhone = errors.New("phone already registered")

// DB is the narrow slice of pgxpool.Pool the repository needs. Tests
// substitute a pgxmock pool through the same interface.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, phone, password_hash, full_name, role, photo_url, city, salon_name, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql,
		user.ID, user.Phone, user.PasswordHash, user.FullName, user.Role,
		user.PhotoURL, user.City, user.SalonName, user.CreatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByPhone retrieves a user by their phone number
func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, phone, password_hash, full_name, role, photo_url, city, salon_name, created_at
            FROM users WHERE phone = $1`
	err := r.db.QueryRow(ctx, sql, phone).Scan(
		&user.ID, &user.Phone, &user.PasswordHash, &user.FullName, &user.Role,
		&user.PhotoURL, &user.City, &user.SalonName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by phone: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, phone, password_hash, full_name, role, photo_url, city, salon_name, created_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Phone, &user.PasswordHash, &user.FullName, &user.Role,
		&user.PhotoURL, &user.City, &user.SalonName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}
