package actionlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists action log entries in SQLite for querying.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite database at the given path.
func OpenSQLite(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

// NewSQLiteStore creates a SQLite-backed store and ensures schema.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("db is nil")
	}
	if err := ensureActionLogSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureActionLogSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS action_log_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts TIMESTAMP NOT NULL,
			agent_id TEXT NOT NULL,
			tool TEXT NOT NULL,
			args TEXT NOT NULL,
			kwargs_json TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_action_log_agent ON action_log_entries (agent_id);
		CREATE INDEX IF NOT EXISTS idx_action_log_tool ON action_log_entries (tool);
	`)
	return err
}

// Record stores a single entry.
func (s *SQLiteStore) Record(ctx context.Context, entry Entry) error {
	kwargs, err := encodeKwargs(entry.KwargTypes)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO action_log_entries (ts, agent_id, tool, args, kwargs_json)
		VALUES (?, ?, ?, ?, ?)
	`,
		entry.Timestamp.UTC(),
		entry.AgentID,
		entry.Tool,
		entry.Args,
		kwargs,
	)
	return err
}

// List returns entries matching the filter in append order.
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]Entry, error) {
	query := `SELECT ts, agent_id, tool, args, kwargs_json FROM action_log_entries`
	var args []any
	where := ""
	addFilter := func(clause string, value any) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, value)
	}
	if filter.AgentID != "" {
		addFilter("agent_id = ?", filter.AgentID)
	}
	if filter.Tool != "" {
		addFilter("tool = ?", filter.Tool)
	}
	query += where + " ORDER BY id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry  Entry
			ts     sql.NullTime
			kwargs string
		)
		if err := rows.Scan(&ts, &entry.AgentID, &entry.Tool, &entry.Args, &kwargs); err != nil {
			return nil, err
		}
		if ts.Valid {
			entry.Timestamp = ts.Time.UTC()
		}
		if kwargs != "" {
			if decoded, err := decodeKwargs(kwargs); err == nil {
				entry.KwargTypes = decoded
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func encodeKwargs(kwargs map[string]string) (string, error) {
	if kwargs == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(kwargs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeKwargs(raw string) (map[string]string, error) {
	var out map[string]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
