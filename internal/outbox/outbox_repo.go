package outbox

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Row is a single unpublished outbox entry.
type Row struct {
	ID      string
	Topic   string
	Key     string
	Payload []byte
}

// Repository manages the outbox table used to hand contact-submission
// events to Kafka with at-least-once delivery.
type Repository struct{ DB *sql.DB }

// NewRepository returns an outbox repository backed by the given DB.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// Add appends a new event for later publication.
func (r *Repository) Add(ctx context.Context, topic string, payload []byte) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO outbox (id, topic, key, payload) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), topic, uuid.NewString(), payload)
	return err
}

// Fetch returns up to limit unpublished rows ordered by creation time.
func (r *Repository) Fetch(ctx context.Context, limit int) ([]Row, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, topic, key, payload FROM outbox WHERE published_at IS NULL ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.Topic, &row.Key, &row.Payload); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MarkPublished sets the published_at timestamp for the given row.
func (r *Repository) MarkPublished(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE outbox SET published_at = NOW() WHERE id = $1`, id)
	return err
}
