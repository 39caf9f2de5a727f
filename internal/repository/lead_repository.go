package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/aitrade/internal/models"
)

type LeadRepository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
}

type leadRepo struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, phone, message, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message, lead.Source, lead.CreatedAt)
	return err
}
