package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/a2sh3r/aitrade/internal/models"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"github.com/google/uuid"
)

type LeadService interface {
	CreateLead(ctx context.Context, lead models.Lead) (*models.Lead, error)
}

type leadService struct {
	repo     repository.LeadRepository
	notifier Notifier
}

func NewLeadService(repo repository.LeadRepository, notifier Notifier) LeadService {
	return &leadService{repo: repo, notifier: orNop(notifier)}
}

func (s *leadService) CreateLead(ctx context.Context, lead models.Lead) (*models.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	if lead.Name == "" || lead.Email == "" {
		return nil, apperrors.ErrInvalidLead
	}

	lead.ID = uuid.New()
	lead.CreatedAt = time.Now()
	if err := s.repo.CreateLead(ctx, &lead); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, telegram.Notification{
		Type:    telegram.TypeLead,
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Message: lead.Message,
	})
	return &lead, nil
}
