package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/techfolio/api/internal/model"
)

// ContactRepo persists Get in Touch submissions.
type ContactRepo struct{ DB *sql.DB }

// Insert stores a new submission and returns its assigned id. There is no
// deduplication: identical submissions create distinct rows.
func (r *ContactRepo) Insert(ctx context.Context, c *model.ContactRequest) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO get_in_touch (id, name, email, phone, message) VALUES ($1, $2, $3, $4, $5)`,
		id, c.Name, c.Email, c.Phone, c.Message)
	if err != nil {
		return "", fmt.Errorf("failed to insert contact request: %w", err)
	}
	return id, nil
}
