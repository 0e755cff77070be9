package snapshot

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"
)

// PostgresRepo keeps one jsonb row per blob in the snapshots table.
type PostgresRepo struct{ db *sql.DB }

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Save(ctx context.Context, name string, blob []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO snapshots (name, data, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (name) DO UPDATE SET
  data       = EXCLUDED.data,
  updated_at = NOW()
`, name, blob)
	return err
}

func (r *PostgresRepo) LoadAll(ctx context.Context, names []string) (map[string][]byte, error) {
	out := map[string][]byte{}
	if len(names) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT name, data
  FROM snapshots
 WHERE name = ANY($1)
`, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var blob []byte
		if err := rows.Scan(&name, &blob); err != nil {
			return nil, err
		}
		out[name] = blob
	}
	return out, rows.Err()
}
