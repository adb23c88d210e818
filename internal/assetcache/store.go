package assetcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"weft/internal/config"
)

// Store caches fetched source assets (wearable bodies and textures) in
// SQLite. Baked results are never stored; the simulator's bake cache is
// authoritative for those.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the asset cache database and applies
// migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.CacheDir, "assets.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS assets (
        asset_id     TEXT PRIMARY KEY,
        kind         TEXT NOT NULL,
        data         BLOB NOT NULL,
        size         INTEGER NOT NULL,
        created_at   TEXT NOT NULL,
        last_used_at TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_assets_last_used ON assets(last_used_at);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Get returns the cached bytes for an asset id. A hit refreshes the entry's
// last-used stamp.
func (s *Store) Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM assets WHERE asset_id = ?`, id.String())
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get asset: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx, `UPDATE assets SET last_used_at = ? WHERE asset_id = ?`, now, id.String()); err != nil {
		return nil, false, fmt.Errorf("touch asset: %w", err)
	}
	return data, true, nil
}

// Put stores or refreshes the cached bytes for an asset id.
func (s *Store) Put(ctx context.Context, id uuid.UUID, kind string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO assets (asset_id, kind, data, size, created_at, last_used_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(asset_id) DO UPDATE SET
             kind = excluded.kind, data = excluded.data, size = excluded.size,
             last_used_at = excluded.last_used_at`,
		id.String(), kind, data, len(data), now, now,
	)
	if err != nil {
		return fmt.Errorf("put asset: %w", err)
	}
	return nil
}

// Delete removes one entry, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE asset_id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("delete asset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Prune evicts least-recently-used entries until the cache's total payload
// size fits under maxBytes. It returns the number of entries removed.
func (s *Store) Prune(ctx context.Context, maxBytes int64) (int64, error) {
	var total int64
	row := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(size), 0) FROM assets`)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("sum cache size: %w", err)
	}
	if total <= maxBytes {
		return 0, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT asset_id, size FROM assets ORDER BY last_used_at`)
	if err != nil {
		return 0, fmt.Errorf("list for prune: %w", err)
	}
	defer rows.Close()

	var victims []string
	for rows.Next() && total > maxBytes {
		var id string
		var size int64
		if err := rows.Scan(&id, &size); err != nil {
			return 0, fmt.Errorf("scan for prune: %w", err)
		}
		victims = append(victims, id)
		total -= size
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate for prune: %w", err)
	}

	var removed int64
	for _, id := range victims {
		res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE asset_id = ?`, id)
		if err != nil {
			return removed, fmt.Errorf("prune asset: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return removed, fmt.Errorf("rows affected: %w", err)
		}
		removed += n
	}
	return removed, nil
}

// Stats summarizes cache occupancy.
type Stats struct {
	Entries    int
	TotalBytes int64
	ByKind     map[string]int
}

// Stats returns entry and byte counts, grouped by kind.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByKind: make(map[string]int)}
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(1), COALESCE(SUM(size), 0) FROM assets GROUP BY kind`)
	if err != nil {
		return stats, fmt.Errorf("cache stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		var bytes int64
		if err := rows.Scan(&kind, &count, &bytes); err != nil {
			return stats, err
		}
		stats.ByKind[kind] = count
		stats.Entries += count
		stats.TotalBytes += bytes
	}
	return stats, rows.Err()
}
