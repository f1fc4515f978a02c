// Package metadata stamps generated reports with a content hash, version and
// generation time, and verifies that stamp after the report is read back.
//
// The exporter writes the stamp into the workbook description. Extract and
// Verify are the reading side, for anything that opens an exported workbook
// and needs to know whether its rows were edited after generation.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Version is the report schema version written into every stamp.
const Version = "1"

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes one generated report.
type Metadata struct {
	GeneratedAt time.Time
	Version     string
	Hash        string
	RunID       string
	Records     int
}

// CalculateHash computes the SHA-256 hash of a table of rows.
// Cells are tab separated and rows newline terminated.
func CalculateHash(rows [][]string) string {
	h := sha256.New()

	for _, row := range rows {
		h.Write([]byte(strings.Join(row, "\t")))
		h.Write([]byte{'\n'})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Sign builds a fresh stamp for rows.
func Sign(rows [][]string, runID string) *Metadata {
	return &Metadata{
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Version:     Version,
		Hash:        CalculateHash(rows),
		RunID:       runID,
		Records:     len(rows),
	}
}

// String encodes the stamp as "KEY: value" pairs separated by "; ".
func (m *Metadata) String() string {
	return fmt.Sprintf("VERSION: %s; LAST_MODIFY: %s; RECORDS: %d; RUN_ID: %s; HASH: %s",
		m.Version, m.GeneratedAt.Format(time.RFC3339), m.Records, m.RunID, m.Hash)
}

// Extract parses a stamp produced by String. It returns nil if none is present.
func Extract(s string) *Metadata {
	if !strings.Contains(s, "HASH:") && !strings.Contains(s, "VERSION:") {
		return nil
	}

	meta := &Metadata{}

	for _, part := range strings.Split(s, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])

		switch key {
		case "VERSION":
			meta.Version = val
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.GeneratedAt = t
			}
		case "RECORDS":
			if n, err := strconv.Atoi(val); err == nil {
				meta.Records = n
			}
		case "RUN_ID":
			meta.RunID = val
		case "HASH":
			meta.Hash = val
		}
	}

	return meta
}

// Verify checks that rows match the hash recorded in the stamp s.
func Verify(s string, rows [][]string) (bool, error) {
	meta := Extract(s)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(rows)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
