package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/cshow"
)

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrAmbiguousSnapshot = errors.New("snapshot id prefix matches more than one snapshot")
)

// Snapshot is one stored CSHOW capture. Raw is the text as received;
// Formatted is the decoded configuration printed back in CSHOW form.
type Snapshot struct {
	ID           string    `json:"id"`
	SerialNumber string    `json:"serial_number"`
	CEPO         string    `json:"cepo"`
	Source       string    `json:"source"`
	Raw          string    `json:"raw"`
	Formatted    string    `json:"formatted"`
	CreatedAt    time.Time `json:"created_at"`
}

// Configuration decodes Raw again against the stored serial number.
func (s Snapshot) Configuration() *adcp.AdcpConfiguration {
	return cshow.Decode(s.Raw, adcp.NewSerialNumber(s.SerialNumber))
}

// SnapshotCommand is one line of a snapshot's command list. Global commands
// have CepoIndex -1 and an empty SubsystemCode.
type SnapshotCommand struct {
	Seq           int    `json:"seq"`
	CepoIndex     int    `json:"cepo_index"`
	SubsystemCode string `json:"subsystem_code,omitempty"`
	Line          string `json:"line"`
}

// RecordSnapshot stores raw together with its decoded form cfg. source is a
// free-form label such as a file name or serial port path.
func (db *DB) RecordSnapshot(ctx context.Context, raw, source string, cfg *adcp.AdcpConfiguration) (Snapshot, error) {
	snap := Snapshot{
		ID:           uuid.NewString(),
		SerialNumber: cfg.SerialNumber.String(),
		CEPO:         cfg.Commands.CEPO(),
		Source:       source,
		Raw:          raw,
		Formatted:    cshow.Format(cfg),
		CreatedAt:    db.Clock.Now().UTC(),
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Snapshot{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (
			snapshot_id, serial_number, cepo, source, raw_text, formatted_text, created_unix_nano
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.SerialNumber, snap.CEPO, snap.Source, snap.Raw, snap.Formatted, snap.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO snapshot_commands (snapshot_id, seq, cepo_index, subsystem_code, command_line)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Snapshot{}, err
	}
	defer stmt.Close()

	seq := 0
	insert := func(cepoIndex sql.NullInt64, code sql.NullString, line string) error {
		_, err := stmt.ExecContext(ctx, snap.ID, seq, cepoIndex, code, line)
		seq++
		return err
	}
	for _, line := range cfg.Commands.CommandList() {
		if err := insert(sql.NullInt64{}, sql.NullString{}, line); err != nil {
			return Snapshot{}, fmt.Errorf("insert command %q: %w", line, err)
		}
	}
	for _, slot := range cfg.Configs() {
		idx := sql.NullInt64{Int64: int64(slot.SubsystemConfig.CepoIndex), Valid: true}
		code := sql.NullString{String: string(slot.SubsystemConfig.Subsystem.Code), Valid: true}
		for _, line := range slot.Commands.CommandList() {
			if err := insert(idx, code, line); err != nil {
				return Snapshot{}, fmt.Errorf("insert command %q: %w", line, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

const snapshotColumns = `snapshot_id, serial_number, cepo, source, raw_text, formatted_text, created_unix_nano`

func scanSnapshot(row interface{ Scan(...any) error }) (Snapshot, error) {
	var (
		s    Snapshot
		nano int64
	)
	if err := row.Scan(&s.ID, &s.SerialNumber, &s.CEPO, &s.Source, &s.Raw, &s.Formatted, &nano); err != nil {
		return Snapshot{}, err
	}
	s.CreatedAt = time.Unix(0, nano).UTC()
	return s, nil
}

// Snapshots returns up to limit snapshots, newest first. A non-empty serial
// restricts the result to one instrument.
func (db *DB) Snapshots(ctx context.Context, serial string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots
		WHERE ? = '' OR serial_number = ?
		ORDER BY created_unix_nano DESC, rowid DESC
		LIMIT ?`, serial, serial, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Snapshot loads the snapshot whose id starts with idPrefix.
func (db *DB) Snapshot(ctx context.Context, idPrefix string) (Snapshot, error) {
	if idPrefix == "" {
		return Snapshot{}, ErrSnapshotNotFound
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots
		WHERE substr(snapshot_id, 1, length(?)) = ?
		LIMIT 2`, idPrefix, idPrefix)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	var found []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return Snapshot{}, err
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}
	switch len(found) {
	case 0:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, idPrefix)
	case 1:
		return found[0], nil
	default:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrAmbiguousSnapshot, idPrefix)
	}
}

// SnapshotCommands returns the stored command list of snapshot id in order.
func (db *DB) SnapshotCommands(ctx context.Context, id string) ([]SnapshotCommand, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT seq, cepo_index, subsystem_code, command_line FROM snapshot_commands
		WHERE snapshot_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotCommand
	for rows.Next() {
		var (
			c    SnapshotCommand
			idx  sql.NullInt64
			code sql.NullString
		)
		if err := rows.Scan(&c.Seq, &idx, &code, &c.Line); err != nil {
			return nil, err
		}
		c.CepoIndex = -1
		if idx.Valid {
			c.CepoIndex = int(idx.Int64)
		}
		c.SubsystemCode = code.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteSnapshot removes a snapshot and its command lines.
func (db *DB) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM snapshots WHERE snapshot_id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	return nil
}
