// Package storage is the sqlite lead archive. It records every lead the
// poller emits so the leads/stats commands can query history. It is never
// consulted for dedup admission: the seen-set is in-memory only and resets
// with the process.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/thatguydan86/rentradar/pkg/engine"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS leads (
  rowid_pk       INTEGER PRIMARY KEY,
  listing_id     TEXT NOT NULL,
  area           TEXT NOT NULL,
  address        TEXT,
  rent_pcm       INTEGER NOT NULL,
  bedrooms       INTEGER NOT NULL,
  bathrooms      INTEGER,
  category       TEXT,
  url            TEXT,
  night_rate     INTEGER NOT NULL,
  bills_total    INTEGER NOT NULL,
  profit_50      INTEGER NOT NULL,
  profit_70      INTEGER NOT NULL,
  profit_100     INTEGER NOT NULL,
  target         INTEGER NOT NULL,
  meets_target   INTEGER NOT NULL CHECK (meets_target IN (0,1)),
  band           TEXT NOT NULL,
  score          REAL NOT NULL,
  notable        INTEGER NOT NULL CHECK (notable IN (0,1)),
  recommendation TEXT,
  run_id         TEXT NOT NULL,
  emitted_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_leads_area ON leads(area, emitted_at);
CREATE INDEX IF NOT EXISTS idx_leads_listing ON leads(listing_id);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// RecordLead appends one emitted lead under the given cycle run id.
func (d *DB) RecordLead(ctx context.Context, runID string, l engine.Lead) error {
	var baths interface{}
	if l.Bathrooms != nil {
		baths = *l.Bathrooms
	}
	_, err := d.sql.ExecContext(ctx, `INSERT INTO leads(
listing_id, area, address, rent_pcm, bedrooms, bathrooms, category, url,
night_rate, bills_total, profit_50, profit_70, profit_100,
target, meets_target, band, score, notable, recommendation, run_id
) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		l.ID, l.Area, nullIfEmpty(l.Address), l.RentPCM, l.Bedrooms, baths,
		nullIfEmpty(l.Category), nullIfEmpty(l.URL),
		l.NightRate, l.BillsTotal, l.Profit50, l.Profit70, l.Profit100,
		l.Target, boolToInt(l.MeetsTarget), string(l.Band), l.Score,
		boolToInt(l.Notable), nullIfEmpty(l.Recommendation), runID)
	if err != nil {
		return fmt.Errorf("recording lead %s: %w", l.ID, err)
	}
	return nil
}

// ArchivedLead is a lead row as read back from the archive.
type ArchivedLead struct {
	engine.Lead
	RunID     string
	EmittedAt time.Time
}

// ListRecent returns the most recent N archived leads, optionally filtered
// by area.
func (d *DB) ListRecent(ctx context.Context, limit int, area string) ([]ArchivedLead, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT listing_id, area, address, rent_pcm, bedrooms, bathrooms, category, url,
night_rate, bills_total, profit_50, profit_70, profit_100,
target, meets_target, band, score, notable, recommendation, run_id, emitted_at
FROM leads`
	args := []interface{}{}
	if area != "" {
		q += " WHERE area = ?"
		args = append(args, area)
	}
	q += " ORDER BY emitted_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArchivedLead
	for rows.Next() {
		var (
			a                      ArchivedLead
			address, category, url sql.NullString
			baths                  sql.NullInt64
			recommendation         sql.NullString
			meetsTarget, notable   int
			band, emittedAt        string
		)
		if err := rows.Scan(&a.ID, &a.Area, &address, &a.RentPCM, &a.Bedrooms, &baths,
			&category, &url, &a.NightRate, &a.BillsTotal,
			&a.Profit50, &a.Profit70, &a.Profit100,
			&a.Target, &meetsTarget, &band, &a.Score, &notable,
			&recommendation, &a.RunID, &emittedAt); err != nil {
			return nil, err
		}
		a.Address = address.String
		a.Category = category.String
		a.URL = url.String
		a.Recommendation = recommendation.String
		if baths.Valid {
			n := int(baths.Int64)
			a.Bathrooms = &n
		}
		a.MeetsTarget = meetsTarget == 1
		a.Notable = notable == 1
		a.Band = engine.Band(band)
		a.EmittedAt = parseSQLiteTime(emittedAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

// AreaStats aggregates the archive per area.
type AreaStats struct {
	Area         string
	LeadCount    int
	NotableCount int
	AvgProfit70  float64
	BestProfit70 int
}

func (d *DB) GetAreaStats(ctx context.Context) ([]AreaStats, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT
			area,
			COUNT(*),
			SUM(notable),
			AVG(profit_70),
			MAX(profit_70)
		FROM
			leads
		GROUP BY
			area
		ORDER BY
			area;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []AreaStats
	for rows.Next() {
		var s AreaStats
		if err := rows.Scan(&s.Area, &s.LeadCount, &s.NotableCount, &s.AvgProfit70, &s.BestProfit70); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// parseSQLiteTime handles both CURRENT_TIMESTAMP and RFC3339 forms.
func parseSQLiteTime(s string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
