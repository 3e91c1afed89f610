package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// bestStatsRepo implements BestStatsRepo over the best_stats table.
type bestStatsRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *bestStatsRepo) Load(ctx context.Context, key string) (*BestStats, error) {
	query, args := builder().
		Select("streak", "correct", "total", "avg_ms").
		From(entsql.Table(bestStatsTableName)).
		Where(entsql.EQ("difficulty", key)).
		Query()

	var st BestStats
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Streak, &st.Correct, &st.Total, &st.AvgMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load best stats %q: %w", key, err)
	}
	return &st, nil
}

func (r *bestStatsRepo) Save(ctx context.Context, key string, stats BestStats) error {
	query, args := builder().
		Insert(bestStatsTableName).
		Columns("difficulty", "streak", "correct", "total", "avg_ms", "updated_at").
		Values(key, stats.Streak, stats.Correct, stats.Total, stats.AvgMs, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("difficulty"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save best stats %q: %w", key, err)
	}
	return nil
}

func (r *bestStatsRepo) All(ctx context.Context) (map[string]BestStats, error) {
	query, args := builder().
		Select("difficulty", "streak", "correct", "total", "avg_ms").
		From(entsql.Table(bestStatsTableName)).
		OrderBy("difficulty").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query best stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]BestStats)
	for rows.Next() {
		var (
			key string
			st  BestStats
		)
		if err := rows.Scan(&key, &st.Streak, &st.Correct, &st.Total, &st.AvgMs); err != nil {
			return nil, fmt.Errorf("scan best stats: %w", err)
		}
		out[key] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate best stats: %w", err)
	}
	return out, nil
}

func (r *bestStatsRepo) Reset(ctx context.Context, keys ...string) error {
	del := builder().Delete(bestStatsTableName)
	if len(keys) > 0 {
		args := make([]any, len(keys))
		for i, k := range keys {
			args[i] = k
		}
		del = del.Where(entsql.In("difficulty", args...))
	}
	query, args := del.Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset best stats: %w", err)
	}
	return nil
}
