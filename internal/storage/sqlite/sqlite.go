// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite runs inside the process: no network, no separate server, nothing
// to install beyond the driver. With the default path ":memory:" the
// database lives in RAM and disappears with the process, exactly like the
// memory backend, but every read and write goes through real SQL.
//
// SCHEMA
// ──────
// One table per entity. Each row stores the full Read shape as a JSON
// document next to its identifier:
//
//	seq  — INTEGER PRIMARY KEY AUTOINCREMENT, fixes insertion order
//	id   — the record UUID, UNIQUE (duplicate inserts fail)
//	data — the JSON-encoded record
//
// Filtering happens in Go on the decoded records, so both backends share
// the same predicate engine and the same matching semantics.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/filter"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Table names. They are interpolated into SQL, so they must stay constants.
const (
	addressesTable    = "addresses"
	personsTable      = "persons"
	feeDetailsTable   = "fee_details"
	visaStatusesTable = "visa_statuses"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB

	addresses    *Table[types.Address]
	persons      *Table[types.Person]
	feeDetails   *Table[types.FeeDetails]
	visaStatuses *Table[types.VisaStatus]
}

// New opens the SQLite database at cfg.Storage.Path, creates the four
// tables if they do not exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	return Open(cfg.Storage.Path)
}

// Open is New without the config indirection; tests use it directly.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite.New: open db")
	}

	// Every connection to ":memory:" gets its own empty database, so the
	// pool is pinned to one connection. SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	for _, table := range []string{addressesTable, personsTable, feeDetailsTable, visaStatusesTable} {
		_, err = db.Exec(fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				seq  INTEGER PRIMARY KEY AUTOINCREMENT,
				id   TEXT    NOT NULL UNIQUE,
				data TEXT    NOT NULL
			)
		`, table))
		if err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "sqlite.New: create table %s", table)
		}
	}

	return &SQLite{
		Db:           db,
		addresses:    newTable[types.Address](db, addressesTable, "address"),
		persons:      newTable[types.Person](db, personsTable, "person"),
		feeDetails:   newTable[types.FeeDetails](db, feeDetailsTable, "fee details"),
		visaStatuses: newTable[types.VisaStatus](db, visaStatusesTable, "visa status"),
	}, nil
}

func (s *SQLite) Addresses() storage.Collection[types.Address]       { return s.addresses }
func (s *SQLite) Persons() storage.Collection[types.Person]          { return s.persons }
func (s *SQLite) FeeDetails() storage.Collection[types.FeeDetails]   { return s.feeDetails }
func (s *SQLite) VisaStatuses() storage.Collection[types.VisaStatus] { return s.visaStatuses }

// Close closes the database. For ":memory:" this discards every record.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// Ping reports whether the database is reachable; used by readiness checks.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.Db.PingContext(ctx)
}

var _ storage.Storage = (*SQLite)(nil)

// Table is one entity collection stored in one SQL table.
type Table[R storage.Record] struct {
	db    *sql.DB
	table string
	name  string

	// mu serializes Update's read-modify-write per table.
	mu sync.Mutex
}

func newTable[R storage.Record](db *sql.DB, table, name string) *Table[R] {
	return &Table[R]{db: db, table: table, name: name}
}

// ─────────────────────────────────────────────────────────────────────────────
// Insert adds a new row. The UNIQUE constraint on id turns a second insert
// with the same identifier into storage.ErrDuplicateIdentity.
// ─────────────────────────────────────────────────────────────────────────────
func (t *Table[R]) Insert(ctx context.Context, rec R) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "insert %s: encode", t.name)
	}

	stmt, err := t.db.PrepareContext(ctx,
		fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?)", t.table),
	)
	if err != nil {
		return errors.Wrapf(err, "insert %s: prepare", t.name)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, rec.Key().String(), string(data))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return errors.Wrapf(storage.ErrDuplicateIdentity, "%s %s already exists", t.name, rec.Key())
		}
		return errors.Wrapf(err, "insert %s: exec", t.name)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Get fetches exactly one row matched by identifier.
// sql.ErrNoRows becomes storage.ErrNotFound.
// ─────────────────────────────────────────────────────────────────────────────
func (t *Table[R]) Get(ctx context.Context, id uuid.UUID) (R, error) {
	return t.get(ctx, t.db, id)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (t *Table[R]) get(ctx context.Context, q querier, id uuid.UUID) (R, error) {
	var zero R
	var data string

	err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT data FROM %s WHERE id = ? LIMIT 1", t.table),
		id.String(),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, errors.Wrapf(storage.ErrNotFound, "%s %s not found", t.name, id)
		}
		return zero, errors.Wrapf(err, "get %s: scan", t.name)
	}

	var rec R
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return zero, errors.Wrapf(err, "get %s: decode", t.name)
	}
	return rec, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Update reads the row, hands it to mutate and writes the result back, all
// inside one transaction. The seq column is untouched, so the record keeps
// its place in List order.
// ─────────────────────────────────────────────────────────────────────────────
func (t *Table[R]) Update(ctx context.Context, id uuid.UUID, mutate storage.MutateFunc[R]) (R, error) {
	var zero R

	t.mu.Lock()
	defer t.mu.Unlock()

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, errors.Wrapf(err, "update %s: begin", t.name)
	}
	// Rollback after a successful Commit is a harmless no-op.
	defer func() { _ = tx.Rollback() }()

	current, err := t.get(ctx, tx, id)
	if err != nil {
		return zero, err
	}

	next, err := mutate(current)
	if err != nil {
		return zero, err
	}
	if next.Key() != id {
		return zero, errors.Errorf("%s %s: update must not change the identifier", t.name, id)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return zero, errors.Wrapf(err, "update %s: encode", t.name)
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET data = ? WHERE id = ?", t.table),
		string(data), id.String(),
	)
	if err != nil {
		return zero, errors.Wrapf(err, "update %s: exec", t.name)
	}

	if err := tx.Commit(); err != nil {
		return zero, errors.Wrapf(err, "update %s: commit", t.name)
	}
	return next, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// List walks the table in insertion order and keeps the rows match accepts.
// ─────────────────────────────────────────────────────────────────────────────
func (t *Table[R]) List(ctx context.Context, match func(R) bool) ([]R, error) {
	rows, err := t.db.QueryContext(ctx,
		fmt.Sprintf("SELECT data FROM %s ORDER BY seq", t.table),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s: query", t.name)
	}
	defer rows.Close()

	var all []R
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "list %s: scan row", t.name)
		}

		var rec R
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, errors.Wrapf(err, "list %s: decode", t.name)
		}

		all = append(all, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s: rows iteration", t.name)
	}

	return filter.Apply(all, match), nil
}
