package shield

import "database/sql"

// Schema defines the SQLite table used by the RateLimiter. Apply with
// Init(db) or execute manually; all statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS rate_limits (
    endpoint       TEXT PRIMARY KEY,
    max_requests   INTEGER NOT NULL DEFAULT 60,
    window_seconds INTEGER NOT NULL DEFAULT 60,
    enabled        INTEGER NOT NULL DEFAULT 1
);
`

// Init creates the shield tables if they don't exist.
func Init(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}

// SetRule inserts or replaces a rate limit rule for an endpoint
// ("METHOD /path").
func SetRule(db *sql.DB, endpoint string, maxRequests, windowSeconds int) error {
	_, err := db.Exec(
		`INSERT INTO rate_limits (endpoint, max_requests, window_seconds, enabled)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT(endpoint) DO UPDATE SET max_requests = excluded.max_requests,
		                                     window_seconds = excluded.window_seconds,
		                                     enabled = 1`,
		endpoint, maxRequests, windowSeconds,
	)
	return err
}
