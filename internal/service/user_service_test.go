package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/mocks/repository_mocks"
	"github.com/a2sh3r/aitrade/internal/mocks/service_mocks"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	logger.Log = zap.NewNop()

	tests := []struct {
		name          string
		email         string
		password      string
		affiliateCode string
		mockSetup     func(m *repository_mocks.MockUserRepository, a *service_mocks.MockAffiliateService)
		expectedErr   error
	}{
		{
			name:     "успешная регистрация",
			email:    "User1@Example.com ",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository, _ *service_mocks.MockAffiliateService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
					assert.Equal(t, "user1@example.com", u.Email)
					assert.NotEqual(t, uuid.Nil, u.ID)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))
					return nil
				})
				m.EXPECT().AddRole(gomock.Any(), gomock.Any(), models.RoleUser).Return(nil)
			},
		},
		{
			name:          "регистрация по реферальному коду",
			email:         "user2@example.com",
			password:      "password123",
			affiliateCode: "ABCD2345",
			mockSetup: func(m *repository_mocks.MockUserRepository, a *service_mocks.MockAffiliateService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().AddRole(gomock.Any(), gomock.Any(), models.RoleUser).Return(nil)
				a.EXPECT().ProcessInvitation(gomock.Any(), "ABCD2345", gomock.Any()).Return(&models.AffiliateInvitation{}, nil)
			},
		},
		{
			name:          "неверный реферальный код не мешает регистрации",
			email:         "user3@example.com",
			password:      "password123",
			affiliateCode: "NOPE",
			mockSetup: func(m *repository_mocks.MockUserRepository, a *service_mocks.MockAffiliateService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().AddRole(gomock.Any(), gomock.Any(), models.RoleUser).Return(nil)
				a.EXPECT().ProcessInvitation(gomock.Any(), "NOPE", gomock.Any()).Return(nil, apperrors.ErrAffiliateCodeNotFound)
			},
		},
		{
			name:     "пользователь уже существует",
			email:    "user4@example.com",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository, _ *service_mocks.MockAffiliateService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			expectedErr: apperrors.ErrUserAlreadyExists,
		},
		{
			name:        "пустой пароль",
			email:       "user5@example.com",
			mockSetup:   func(*repository_mocks.MockUserRepository, *service_mocks.MockAffiliateService) {},
			expectedErr: apperrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			affiliate := service_mocks.NewMockAffiliateService(ctrl)
			tt.mockSetup(repo, affiliate)

			service := NewUserService(repo, affiliate)
			user, err := service.Register(context.Background(), tt.email, tt.password, tt.affiliateCode)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, user.Password)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		email       string
		password    string
		mockUser    *models.User
		mockErr     error
		expectedErr error
	}{
		{
			name:     "успешная аутентификация",
			email:    "user1@example.com",
			password: "password123",
			mockUser: &models.User{ID: uuid.New(), Email: "user1@example.com", Password: string(hashed)},
		},
		{
			name:        "неправильный пароль",
			email:       "user2@example.com",
			password:    "wrongpass",
			mockUser:    &models.User{Email: "user2@example.com", Password: string(hashed)},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "пользователь не найден",
			email:       "user3@example.com",
			password:    "any",
			mockErr:     apperrors.ErrUserNotFound,
			expectedErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			repo.EXPECT().GetUserByEmail(gomock.Any(), tt.email).Return(tt.mockUser, tt.mockErr)

			service := NewUserService(repo, nil)
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.mockUser.ID, user.ID)
			}
		})
	}
}

func TestUserService_Roles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := repository_mocks.NewMockUserRepository(ctrl)
	service := NewUserService(repo, nil)

	repo.EXPECT().GetRoles(gomock.Any(), userID).Return([]string{models.RoleAdmin, models.RoleUser}, nil)
	isAdmin, err := service.IsAdmin(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	repo.EXPECT().GetRoles(gomock.Any(), userID).Return([]string{models.RoleUser}, nil)
	isAdmin, err = service.IsAdmin(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	assert.ErrorIs(t, service.AddRole(context.Background(), userID, "superuser"), apperrors.ErrInvalidRole)

	repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, service.AddRole(context.Background(), userID, models.RoleAdmin), apperrors.ErrUserNotFound)

	repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	repo.EXPECT().AddRole(gomock.Any(), userID, models.RoleAdmin).Return(nil)
	assert.NoError(t, service.AddRole(context.Background(), userID, models.RoleAdmin))
}
