package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the operational journal to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS report_cycles (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			trigger_type   TEXT,
			symbols        INTEGER,
			succeeded      INTEGER,
			failed         INTEGER,
			duration_ms    INTEGER,
			top_symbol     TEXT,
			top_growth     REAL,
			bottom_symbol  TEXT,
			bottom_growth  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_ts ON report_cycles(timestamp)`,

		`CREATE TABLE IF NOT EXISTS lookups (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT,
			ok        INTEGER,
			reason    TEXT,
			price     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookup_ts ON lookups(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReport(evt *ReportEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO report_cycles
		(timestamp, trigger_type, symbols, succeeded, failed, duration_ms,
		 top_symbol, top_growth, bottom_symbol, bottom_growth)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Trigger, evt.Symbols, evt.Succeeded, evt.Failed,
		evt.DurationMS, evt.TopSymbol, evt.TopGrowth, evt.BottomSymbol, evt.BottomGrowth,
	)
	return err
}

func (r *SQLiteRecorder) RecordLookup(evt *LookupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok := 0
	if evt.OK {
		ok = 1
	}
	_, err := r.db.Exec(`INSERT INTO lookups
		(timestamp, symbol, ok, reason, price)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, ok, evt.Reason, evt.Price,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
