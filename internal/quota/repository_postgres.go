package quota

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

// Load joins the plan from users with the counters from usage_states. A user
// without a usage_states row gets zero counters and an empty LastScanDate,
// which the tracker treats as a rollover.
func (r *PostgresRepository) Load(ctx context.Context, userID string) (*UsageState, error) {
	row := r.db.QueryRow(ctx, `
		SELECT u.plan,
		       COALESCE(us.scans_today, 0),
		       COALESCE(us.analysis_today, 0),
		       COALESCE(to_char(us.last_scan_date, 'YYYY-MM-DD'), '')
		FROM users u
		LEFT JOIN usage_states us ON us.user_id = u.id
		WHERE u.id = $1
	`, userID)

	state := &UsageState{UserID: userID}
	err := row.Scan(&state.Plan, &state.ScansToday, &state.AnalysisToday, &state.LastScanDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save upserts the counters in a single statement; the plan column lives on
// users and is never written here.
func (r *PostgresRepository) Save(ctx context.Context, state *UsageState) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO usage_states (user_id, scans_today, analysis_today, last_scan_date, updated_at)
		VALUES ($1, $2, $3, $4::date, now())
		ON CONFLICT (user_id) DO UPDATE
		SET scans_today    = EXCLUDED.scans_today,
		    analysis_today = EXCLUDED.analysis_today,
		    last_scan_date = EXCLUDED.last_scan_date,
		    updated_at     = now()
	`, state.UserID, state.ScansToday, state.AnalysisToday, state.LastScanDate)
	return err
}
