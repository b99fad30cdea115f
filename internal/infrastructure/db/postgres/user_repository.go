package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

const userColumns = `id_usuario, nombre, apellido, email, password, rol`

// uniqueViolation is the PostgreSQL error code raised when the usuarios
// email unique constraint rejects an insert.
const uniqueViolation = "23505"

// UserRepository persists staff accounts in the usuarios table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id_usuario = $1`, id))
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, apellido, email, password, rol)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario`,
		user.Nombre, user.Apellido, user.Email, user.PasswordHash, string(user.Rol),
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE usuarios SET
			nombre = $2, apellido = $3, email = $4, password = $5, rol = $6
		WHERE id_usuario = $1`,
		user.ID, user.Nombre, user.Apellido, user.Email, user.PasswordHash, string(user.Rol),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var rol string
	if err := row.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.PasswordHash, &rol); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Rol = domain.Role(rol)
	return &u, nil
}
