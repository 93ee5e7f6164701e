package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/domain"
)

const uniqueViolation = "23505"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	const q = `
insert into users (uid, fullname, email, username, password_hash, is_active, is_verified, bio)
values ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err := r.db.Exec(ctx, q,
		u.UID,
		u.FullName,
		strings.ToLower(u.Email),
		u.Username,
		u.PasswordHash,
		u.IsActive,
		u.IsVerified,
		u.Bio,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `select exists(select 1 from users where email = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, q, strings.ToLower(email)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	const q = `select exists(select 1 from users where username = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, q, strings.ToLower(username)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
