package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"hvacscan/internal"
)

var ErrProjectNotFound = errors.New("project not found")

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A register transaction holds the only connection until it commits, so
	// WithRegister callers run one at a time.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS projects (
  id TEXT PRIMARY KEY,
  customer TEXT NOT NULL,
  location TEXT NOT NULL,
  createdAt TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS equipment (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  projectId TEXT NOT NULL,
  position INTEGER NOT NULL,
  assetType TEXT,
  manufacturer TEXT,
  model TEXT,
  serialNumber TEXT,
  recordJson TEXT NOT NULL,
  createdAt TEXT NOT NULL,
  UNIQUE(projectId, position),
  FOREIGN KEY(projectId) REFERENCES projects(id)
);
CREATE INDEX IF NOT EXISTS idx_equipment_model ON equipment(projectId, model);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  projectId TEXT,
  kind TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) CreateProject(customer, location string) (internal.Project, error) {
	p := internal.Project{
		ID:        uuid.NewString(),
		Customer:  customer,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}
	_, err := d.conn.Exec(`INSERT INTO projects (id, customer, location, createdAt) VALUES (?, ?, ?, ?)`,
		p.ID, p.Customer, p.Location, p.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return internal.Project{}, err
	}
	return p, nil
}

func (d *DB) GetProject(id string) (*internal.Project, error) {
	var p internal.Project
	var createdAt string
	err := d.conn.QueryRow(`SELECT id, customer, location, createdAt FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Customer, &p.Location, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

func (d *DB) MustProject(id string) (internal.Project, error) {
	p, err := d.GetProject(id)
	if err != nil {
		return internal.Project{}, err
	}
	if p == nil {
		return internal.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return *p, nil
}

func (d *DB) ListProjects() ([]internal.Project, error) {
	rows, err := d.conn.Query(`SELECT id, customer, location, createdAt FROM projects ORDER BY createdAt ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.Project
	for rows.Next() {
		var p internal.Project
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Customer, &p.Location, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

// AppendEquipment commits record at the end of the project's register.
// Committed entries are never updated.
func (d *DB) AppendEquipment(projectID string, record internal.EquipmentRecord) (internal.RegisterEntry, error) {
	var entry internal.RegisterEntry
	err := d.WithRegister(projectID, func(reg *RegisterTx) error {
		var err error
		entry, err = reg.Append(record)
		return err
	})
	return entry, err
}

// RegisterTx is a project's register held inside one write transaction.
// Records reflects every append made through it.
type RegisterTx struct {
	tx        *sql.Tx
	projectID string
	records   []internal.EquipmentRecord
	next      int
}

func (r *RegisterTx) Records() []internal.EquipmentRecord {
	return r.records
}

func (r *RegisterTx) Append(record internal.EquipmentRecord) (internal.RegisterEntry, error) {
	blob, err := json.Marshal(record)
	if err != nil {
		return internal.RegisterEntry{}, err
	}

	now := time.Now().UTC()
	result, err := r.tx.Exec(`
INSERT INTO equipment (projectId, position, assetType, manufacturer, model, serialNumber, recordJson, createdAt)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, r.projectID, r.next, record.AssetType, record.Manufacturer, record.Model, record.SerialNumber, string(blob), now.Format(time.RFC3339Nano))
	if err != nil {
		return internal.RegisterEntry{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return internal.RegisterEntry{}, err
	}

	entry := internal.RegisterEntry{ID: id, ProjectID: r.projectID, Position: r.next, Record: record, CreatedAt: now}
	r.records = append(r.records, record)
	r.next++
	return entry, nil
}

// WithRegister runs fn against the project's register inside a single
// transaction. The register read, any checks fn makes against it and its
// appends are atomic with respect to other writers; fn returning an error
// rolls back every append it made.
func (d *DB) WithRegister(projectID string, fn func(*RegisterTx) error) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM projects WHERE id = ?`, projectID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	records, err := scanRegister(tx, projectID)
	if err != nil {
		return err
	}

	reg := &RegisterTx{tx: tx, projectID: projectID, records: records, next: len(records)}
	if err := fn(reg); err != nil {
		return err
	}
	return tx.Commit()
}

func scanRegister(tx *sql.Tx, projectID string) ([]internal.EquipmentRecord, error) {
	rows, err := tx.Query(`SELECT recordJson FROM equipment WHERE projectId = ? ORDER BY position ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.EquipmentRecord{}
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var r internal.EquipmentRecord
		if err := json.Unmarshal([]byte(blob), &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (d *DB) ListEquipment(projectID string) ([]internal.RegisterEntry, error) {
	rows, err := d.conn.Query(`
SELECT id, projectId, position, recordJson, createdAt
FROM equipment WHERE projectId = ? ORDER BY position ASC
`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RegisterEntry
	for rows.Next() {
		var e internal.RegisterEntry
		var blob, createdAt string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Position, &blob, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(blob), &e.Record); err != nil {
			return nil, fmt.Errorf("equipment %d: %w", e.ID, err)
		}
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Register returns the committed records of a project in register order.
func (d *DB) Register(projectID string) ([]internal.EquipmentRecord, error) {
	entries, err := d.ListEquipment(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]internal.EquipmentRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record)
	}
	return out, nil
}

func (d *DB) InsertRun(traceID, projectID, kind string, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, projectId, kind, timingsJson, countsJson) VALUES (?, ?, ?, ?, ?)`,
		traceID, projectID, kind, string(timingsJSON), string(countsJSON))
	return err
}

func (d *DB) CountRuns(projectID, kind string) (int, error) {
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM runs WHERE projectId = ? AND kind = ?`, projectID, kind).Scan(&n)
	return n, err
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
