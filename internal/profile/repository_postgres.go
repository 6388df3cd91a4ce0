package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*UserProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, age, gender, email, allergies, plan
		FROM users WHERE id = $1
	`, userID)

	p := &UserProfile{}
	err := row.Scan(&p.UserID, &p.Name, &p.Age, &p.Gender, &p.Email, &p.Allergies, &p.Plan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	return p, nil
}

// Apply uses COALESCE so unset fields keep their stored value, the merge-set
// behavior the client expects from profile edits.
func (r *PostgresRepository) Apply(ctx context.Context, userID string, update Update) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name      = COALESCE($1, name),
		    age       = COALESCE($2, age),
		    gender    = COALESCE($3, gender),
		    allergies = COALESCE($4, allergies)
		WHERE id = $5
	`, update.Name, update.Age, update.Gender, update.Allergies, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
