package store

import (
	"context"
	"fmt"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

const contactColumns = `id, name, email, subject, message, type, status, created_at`

func (db *DB) CreateContactSubmission(ctx context.Context, s domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	if s.Type == "" {
		s.Type = constants.DefaultContactType
	}

	query := `INSERT INTO contact_submissions (name, email, subject, message, type, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := db.ExecContext(ctx, query, s.Name, s.Email, s.Subject, s.Message, s.Type, constants.ContactStatusNew)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read contact submission id: %w", err)
	}

	submission := &domain.ContactSubmission{}
	if err := db.GetContext(ctx, submission, `SELECT `+contactColumns+` FROM contact_submissions WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to load contact submission %d: %w", id, err)
	}
	return submission, nil
}

func (db *DB) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_submissions ORDER BY created_at DESC, id DESC`

	submissions := []domain.ContactSubmission{}
	if err := db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
