package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spinwager/casino-backend/internal/domain/models"
	"github.com/spinwager/casino-backend/internal/domain/types"
	"github.com/spinwager/casino-backend/pkg/metrics"
	pgclient "github.com/spinwager/casino-backend/pkg/postgres"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// CreateUser inserts a user row. It expects u.Email, u.PasswordHash and u.Name
// to be set; balance and timestamps come from column defaults. The generated
// id and defaulted columns are written back into u.
func (r *UserRepo) CreateUser(ctx context.Context, u *models.User) (id int64, err error) {
	if u == nil {
		return 0, errors.New("nil user")
	}

	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(types.ServiceName, "create_user", err, time.Since(start)) }()

	const q = `
		INSERT INTO users (email, password_hash, name, mobile, aadhaar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, balance, created_at, updated_at;
	`

	err = r.db.QueryRow(
		ctx, q, u.Email, u.PasswordHash, u.Name, u.Mobile, u.Aadhaar,
	).Scan(&u.ID, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if pgclient.IsUniqueViolation(err) {
			return 0, types.ErrDuplicateEmail
		}
		return 0, err
	}

	return u.ID, nil
}

// GetUser fetches by email (unique). Returns (nil, nil) when no row matches.
func (r *UserRepo) GetUser(ctx context.Context, email string) (user *models.User, err error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(types.ServiceName, "get_user", err, time.Since(start)) }()

	const q = `
		SELECT id, email, password_hash, name, mobile, aadhaar, balance, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	var u models.User
	err = r.db.QueryRow(ctx, q, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Mobile,
		&u.Aadhaar,
		&u.Balance,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}

	return &u, nil
}

// ExistsByEmail reports whether a user row with the given email exists.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (exists bool, err error) {
	if email == "" {
		return false, errors.New("email is required")
	}

	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(types.ServiceName, "exists_by_email", err, time.Since(start)) }()

	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	err = r.db.QueryRow(ctx, q, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteUser removes a user row by id.
func (r *UserRepo) DeleteUser(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(types.ServiceName, "delete_user", err, time.Since(start)) }()

	const q = `DELETE FROM users WHERE id = $1;`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.ErrUserNotFound
	}
	return nil
}
