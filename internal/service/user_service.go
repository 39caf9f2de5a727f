package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, email, password, affiliateCode string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	AddRole(ctx context.Context, userID uuid.UUID, role string) error
}

type userService struct {
	repo      repository.UserRepository
	affiliate AffiliateService
}

func NewUserService(repo repository.UserRepository, affiliate AffiliateService) UserService {
	return &userService{repo: repo, affiliate: affiliate}
}

func (s *userService) Register(ctx context.Context, email, password, affiliateCode string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.repo.AddRole(ctx, user.ID, models.RoleUser); err != nil {
		logger.Log.Error("failed to add default role", zap.Stringer("user", user.ID), zap.Error(err))
	}

	// a bad referral code must not cost us the sign-up
	if affiliateCode != "" && s.affiliate != nil {
		if _, err := s.affiliate.ProcessInvitation(ctx, affiliateCode, user.ID); err != nil {
			logger.Log.Warn("affiliate invitation skipped", zap.Stringer("user", user.ID), zap.String("code", affiliateCode), zap.Error(err))
		}
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.repo.GetRoles(ctx, userID)
}

func (s *userService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	roles, err := s.repo.GetRoles(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(roles, models.RoleAdmin), nil
}

func (s *userService) AddRole(ctx context.Context, userID uuid.UUID, role string) error {
	if !models.IsValidRole(role) {
		return apperrors.ErrInvalidRole
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.AddRole(ctx, userID, role)
}
