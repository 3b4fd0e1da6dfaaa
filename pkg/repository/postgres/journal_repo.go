package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
)

// JournalRepository хранит метаданные вызовов (без пользовательского текста).
// The table is created by the storage migrations.
type JournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

func (r *JournalRepository) Record(ctx context.Context, e journal.Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO invocations (id, capability, language, outcome, model, duration_ms, error, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, e.ID, e.Capability, e.Language, string(e.Outcome), e.Model, e.Duration.Milliseconds(), e.Error, e.CreatedAt)
	return err
}

// ListRecent returns newest entries first. An empty capability lists all.
func (r *JournalRepository) ListRecent(ctx context.Context, capability string, limit, offset int) ([]journal.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, capability, language, outcome, model, duration_ms, error, created_at
FROM invocations
WHERE ($1 = '' OR capability = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, capability, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0, limit)
	for rows.Next() {
		var (
			e       journal.Entry
			outcome string
			ms      int64
			created time.Time
		)
		if err := rows.Scan(&e.ID, &e.Capability, &e.Language, &outcome, &e.Model, &ms, &e.Error, &created); err != nil {
			return nil, err
		}
		e.Outcome = journal.Outcome(outcome)
		e.Duration = time.Duration(ms) * time.Millisecond
		e.CreatedAt = created.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
