// Package auth_repo provides the PostgreSQL implementation of the user
// account repository.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"supplypro/internal/core/apperror"
	"supplypro/internal/domain/auth"
)

const usersTable = "users"

// UserRepo implements auth.Repository.
type UserRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewUserRepo creates a new user repository.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.builder.Select("id", "email", "name", "password_hash", "role", "created_at").
		From(usersTable).
		Where("LOWER(email) = LOWER(?)", email).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.pool, &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	return &user, nil
}
