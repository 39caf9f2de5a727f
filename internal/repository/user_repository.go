package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	AddRole(ctx context.Context, userID uuid.UUID, role string) error
	GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	query := `INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.ExecContext(ctx, query, user.ID, user.Email, user.Password, user.CreatedAt)
	return err
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email=$1`
	return r.getUser(ctx, query, email)
}

func (r *userRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id=$1`
	return r.getUser(ctx, query, id)
}

func (r *userRepo) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, query, arg)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) AddRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, userID, role)
	return err
}

func (r *userRepo) GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT role FROM user_roles WHERE user_id=$1 ORDER BY role`, userID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
