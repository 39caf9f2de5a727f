package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password_hash", "created_at"}

func TestUserRepo_CreateUser(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "new@example.com", Password: "hash", CreatedAt: time.Now()}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "create new user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users WHERE email").
					WithArgs(user.Email).WillReturnRows(sqlmock.NewRows(userCols))
				mock.ExpectExec("INSERT INTO users").
					WithArgs(user.ID, user.Email, user.Password, user.CreatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "create user with existing email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users WHERE email").
					WithArgs(user.Email).
					WillReturnRows(sqlmock.NewRows(userCols).AddRow(uuid.NewString(), user.Email, "other", time.Now()))
			},
			wantErr: apperrors.ErrUserAlreadyExists,
		},
		{
			name: "lookup failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users WHERE email").
					WithArgs(user.Email).WillReturnError(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			err := NewUserRepository(db).CreateUser(ctx, user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestUserRepo_GetUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "a@b.com", "hash", time.Now()))
	mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users WHERE email").
		WithArgs("missing@b.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	r := NewUserRepository(db)

	user, err := r.GetUserByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.Password)

	_, err = r.GetUserByEmail(context.Background(), "missing@b.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepo_Roles(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec("INSERT INTO user_roles").WithArgs(id, models.RoleAdmin).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT role FROM user_roles").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin").AddRow("user"))

	r := NewUserRepository(db)
	require.NoError(t, r.AddRole(context.Background(), id, models.RoleAdmin))

	roles, err := r.GetRoles(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "user"}, roles)
}
