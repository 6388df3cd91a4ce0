package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, record *ScanRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO scan_history (id, user_id, ingredients_text, allergies_found, harmful_notes, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, record.ID, record.UserID, record.IngredientsText,
		record.AllergiesFound, record.HarmfulNotes, record.ImageURL, record.CreatedAt)
	return err
}

func (r *PostgresRepository) List(ctx context.Context, userID string, limit int) ([]ScanRecord, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, ingredients_text, allergies_found, harmful_notes, image_url, created_at
		FROM scan_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.IngredientsText,
			&rec.AllergiesFound, &rec.HarmfulNotes, &rec.ImageURL, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM scan_history WHERE user_id = $1`, userID)
	return err
}
