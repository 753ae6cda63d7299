package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatementRepository executes finished statement text against the engine.
// Each call acquires its own connection and releases it before returning;
// there is no cross-request state.
type StatementRepository struct {
	pool *pgxpool.Pool
}

func NewStatementRepository(pool *pgxpool.Pool) *StatementRepository {
	return &StatementRepository{pool: pool}
}

// Exec runs a single statement inside its own transaction. Any engine-reported
// failure is returned with the engine's message attached; callers do not
// distinguish constraint violations from syntax errors.
func (r *StatementRepository) Exec(ctx context.Context, sql string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Select runs a query and materializes every row as a column-name-to-value
// map. Byte slices come back as strings and timestamps as RFC3339 text so the
// result serializes cleanly.
func (r *StatementRepository) Select(ctx context.Context, sql string) ([]map[string]any, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	fields := rows.FieldDescriptions()

	var result []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		rowMap := make(map[string]any, len(fields))
		for i, fd := range fields {
			rowMap[fd.Name] = normalizeValue(values[i])
		}
		result = append(result, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}
