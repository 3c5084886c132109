package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/entity"
)

// SubmissionRepository is the lead backstop: an insert-only record of
// every valid submission, consulted by the operator when a
// notification email goes missing.
type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Save(ctx context.Context, rec *entity.SubmissionRecord) error {
	query := `
		INSERT INTO contact_submissions (id, name, phone, email, service, urgency, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		nullable(rec.Phone),
		nullable(rec.Email),
		rec.Service,
		rec.Urgency,
		nullable(rec.Message),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
