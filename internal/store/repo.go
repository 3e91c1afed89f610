package store

import "context"

// BestStats is the all-time best result for one difficulty.
type BestStats struct {
	Streak  uint32 `json:"streak"`
	Correct uint32 `json:"correct"`
	Total   uint32 `json:"total"`
	AvgMs   uint32 `json:"avg_ms"`
}

// BestStatsRepo persists one BestStats record per difficulty key.
type BestStatsRepo interface {
	// Load returns the record for key, or nil if none exists.
	Load(ctx context.Context, key string) (*BestStats, error)

	// Save replaces the record for key in full.
	Save(ctx context.Context, key string, stats BestStats) error

	// All returns every stored record by key.
	All(ctx context.Context) (map[string]BestStats, error)

	// Reset deletes the records for keys, or every record when keys is empty.
	Reset(ctx context.Context, keys ...string) error
}
