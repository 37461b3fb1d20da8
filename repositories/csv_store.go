package repositories

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
)

// CSVStore keeps each collection in one CSV file under dataDir and rewrites
// the whole file on every mutation. A single mutex serializes all operations,
// which makes the max+1 id assignment and the load-mutate-rewrite cycle safe
// against in-process races. Two processes sharing one data directory are
// still a lost-update hazard; run exactly one.
type CSVStore struct {
	mu      sync.Mutex
	dataDir string
}

// NewCSVStore creates the data directory if needed. Missing collection files
// are not an error: reads on an absent file yield an empty collection so a
// first run bootstraps itself.
func NewCSVStore(dataDir string) (*CSVStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &CSVStore{dataDir: dataDir}, nil
}

func (s *CSVStore) familiesPath() string { return filepath.Join(s.dataDir, "families.csv") }
func (s *CSVStore) guestsPath() string   { return filepath.Join(s.dataDir, "guests.csv") }
func (s *CSVStore) rsvpsPath() string    { return filepath.Join(s.dataDir, "rsvps.csv") }

// readRecords loads a CSV file and returns its data rows plus the header
// index. Every failure mode degrades to an empty result: missing file,
// unreadable file, malformed CSV. The condition is logged, not surfaced.
func readRecords(path string) ([][]string, map[string]int) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configslog.Log.Debug("csv file absent, treating collection as empty", zap.String("path", path))
		} else {
			configslog.Log.Error("csv file unreadable, treating collection as empty", zap.String("path", path), zap.Error(err))
		}
		return nil, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		configslog.Log.Error("csv parse failed, treating collection as empty", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], columnIndex(rows[0])
}

// writeRecords rewrites the full file: header plus every row.
func writeRecords(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// nextID implements the max+1 assignment rule. Callers hold s.mu, so the
// read-modify-write around it is a single unit.
func nextID(ids []uint) uint {
	var max uint
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

var _ IStore = (*CSVStore)(nil)
