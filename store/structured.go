// Structured archives: one SQLite file per computation, holding named
// numeric arrays plus a single JSON-encoded metadata entry. The pure-Go
// modernc.org/sqlite driver keeps the store cgo-free.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/renormlab/serialize"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const structuredSchema = `
CREATE TABLE IF NOT EXISTS arrays (
    name TEXT PRIMARY KEY,
    rows INTEGER NOT NULL,
    cols INTEGER NOT NULL,
    re   BLOB NOT NULL,
    im   BLOB
);
CREATE TABLE IF NOT EXISTS meta (
    json TEXT NOT NULL
);
`

// Archive is a loaded structured archive: its named arrays and the decoded
// metadata object (nil when the archive carried none).
type Archive struct {
	Arrays   map[string]Array
	Metadata map[string]any
}

// Array returns the named entry or ErrUnknownArray (wrapped).
func (a *Archive) Array(name string) (Array, error) {
	arr, ok := a.Arrays[name]
	if !ok {
		return Array{}, fmt.Errorf("Archive: %q: %w", name, ErrUnknownArray)
	}

	return arr, nil
}

// SaveStructured writes the named arrays and optional metadata to a new
// structured archive at <dir>/<baseName>_<timestamp>.sqlite and returns
// the path.
// Stage 1 (Prepare): ensure the data directory, create the database file.
// Stage 2 (Write): schema, then all arrays and the metadata entry in one
// transaction.
// Not transactional across the filesystem: a crash mid-write may leave a
// partial file; acceptable because archives are write-once and readers use
// only files that load successfully.
func (s *Store) SaveStructured(baseName string, arrays []Array, metadata map[string]any) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("SaveStructured: %w", err)
	}

	path := s.archivePath(baseName, "", StructuredExt)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fmt.Errorf("SaveStructured: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(structuredSchema); err != nil {
		return "", fmt.Errorf("SaveStructured: schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("SaveStructured: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO arrays(name, rows, cols, re, im) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("SaveStructured: prepare: %w", err)
	}
	defer stmt.Close()

	for _, arr := range arrays {
		var im any // NULL for real-valued arrays
		if arr.IsComplex() {
			im = encodeFloats(arr.Im)
		}
		if _, err := stmt.Exec(arr.Name, arr.Rows, arr.Cols, encodeFloats(arr.Re), im); err != nil {
			return "", fmt.Errorf("SaveStructured: insert %q: %w", arr.Name, err)
		}
	}

	if metadata != nil {
		buf, err := json.Marshal(jsonSafe(serialize.Serialize(metadata)))
		if err != nil {
			return "", fmt.Errorf("SaveStructured: encode metadata: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO meta(json) VALUES(?)`, string(buf)); err != nil {
			return "", fmt.Errorf("SaveStructured: insert metadata: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("SaveStructured: commit: %w", err)
	}

	return path, nil
}

// LoadStructured opens and fully reads the structured archive at path.
// Damage (unreadable database, bad BLOB, shape/payload disagreement)
// surfaces as ErrCorruptArchive or a driver error; no partial result.
func LoadStructured(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("LoadStructured: open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, rows, cols, re, im FROM arrays`)
	if err != nil {
		return nil, fmt.Errorf("LoadStructured: %s: %w", path, err)
	}
	defer rows.Close()

	arch := &Archive{Arrays: make(map[string]Array)}
	for rows.Next() {
		var (
			arr    Array
			reBlob []byte
			imBlob []byte
		)
		if err := rows.Scan(&arr.Name, &arr.Rows, &arr.Cols, &reBlob, &imBlob); err != nil {
			return nil, fmt.Errorf("LoadStructured: %s: %w", path, err)
		}
		if arr.Re, err = decodeFloats(reBlob); err != nil {
			return nil, fmt.Errorf("LoadStructured: %s: array %q: %w", path, arr.Name, err)
		}
		if imBlob != nil {
			if arr.Im, err = decodeFloats(imBlob); err != nil {
				return nil, fmt.Errorf("LoadStructured: %s: array %q: %w", path, arr.Name, err)
			}
			if len(arr.Im) != len(arr.Re) {
				return nil, fmt.Errorf("LoadStructured: %s: array %q: re/im length %d/%d: %w",
					path, arr.Name, len(arr.Re), len(arr.Im), ErrCorruptArchive)
			}
		}
		want := arr.Rows
		if arr.Cols > 0 {
			want = arr.Rows * arr.Cols
		}
		if len(arr.Re) != want {
			return nil, fmt.Errorf("LoadStructured: %s: array %q: %d elements for shape (%d,%d): %w",
				path, arr.Name, len(arr.Re), arr.Rows, arr.Cols, ErrCorruptArchive)
		}
		arch.Arrays[arr.Name] = arr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadStructured: %s: %w", path, err)
	}

	var metaJSON string
	err = db.QueryRow(`SELECT json FROM meta LIMIT 1`).Scan(&metaJSON)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// metadata is optional
	case err != nil:
		return nil, fmt.Errorf("LoadStructured: %s: %w", path, err)
	default:
		if err := json.Unmarshal([]byte(metaJSON), &arch.Metadata); err != nil {
			return nil, fmt.Errorf("LoadStructured: %s: metadata: %w", path, err)
		}
	}

	return arch, nil
}

// LoadLatestStructured resolves the most recent structured archive matching
// pattern and loads it. Returns the archive, the winning path, and
// ErrNoArchive (wrapped) when nothing matches.
func (s *Store) LoadLatestStructured(pattern string) (*Archive, string, error) {
	path, err := s.LatestPath(pattern)
	if err != nil {
		return nil, "", fmt.Errorf("LoadLatestStructured: %w", err)
	}

	arch, err := LoadStructured(path)
	if err != nil {
		return nil, "", fmt.Errorf("LoadLatestStructured: %w", err)
	}

	return arch, path, nil
}
