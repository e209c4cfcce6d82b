package pgxstore

import (
	"context"
	"strings"

	"gearshare/internal/domain"

	"github.com/jackc/pgx/v5"
)

const userColumns = `username, email, password_hash, role, location, verification_status, created_at, updated_at`

type userRepo struct {
	q querier
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Location,
		&u.VerificationStatus, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	row := r.q.QueryRow(ctx, `
INSERT INTO users (username, email, password_hash, role, location, verification_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING created_at, updated_at`,
		u.Username, u.Email, u.PasswordHash, u.Role, u.Location, u.VerificationStatus)
	return translate(row.Scan(&u.CreatedAt, &u.UpdatedAt))
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = $1`,
		strings.ToLower(strings.TrimSpace(email))))
}

func (r *userRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR LOWER(email) = $2)`,
		username, strings.ToLower(strings.TrimSpace(email))).Scan(&exists)
	return exists, translate(err)
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, translate(rows.Err())
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, translate(err)
}
