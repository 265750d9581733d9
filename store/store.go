package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/renormlab/serialize"
)

const (
	// DefaultDir is the archive root created on demand, relative to the
	// process working directory.
	DefaultDir = "data"

	// TimestampLayout is the fixed-width archive timestamp. Zero-padded,
	// so lexical and chronological order coincide.
	TimestampLayout = "20060102_150405"

	// RecordExt is the text-record archive extension.
	RecordExt = ".json"

	// StructuredExt is the structured-array archive extension.
	StructuredExt = ".sqlite"

	// DefaultCurve is recorded when a text record has no curve label.
	DefaultCurve = "unknown"
)

// Store writes and resolves archives under one root directory.
// The zero value is not usable; construct with New.
type Store struct {
	dir string
	now func() time.Time
}

// Option configures a Store. Options follow the functional-options idiom;
// nonsensical values are programmer errors and panic at construction.
type Option func(*Store)

// WithClock overrides the time source, used by tests for deterministic
// timestamps. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("store: WithClock(nil)")
	}

	return func(s *Store) { s.now = now }
}

// New returns a Store rooted at dir (DefaultDir when empty). The directory
// itself is created lazily, right before the first write.
func New(dir string, opts ...Option) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the archive root directory.
func (s *Store) Dir() string { return s.dir }

// ensureDir creates the archive root if absent. Idempotent; invoked before
// every write rather than held as ambient global state.
func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensureDir: %w", err)
	}

	return nil
}

// archivePath composes <dir>/<base>[_<label>]_<timestamp><ext>.
func (s *Store) archivePath(base, label, ext string) string {
	name := base
	if label != "" {
		name += "_" + label
	}
	name += "_" + s.now().Format(TimestampLayout) + ext

	return filepath.Join(s.dir, name)
}

// SaveRecord writes data as a pretty-printed JSON text record and returns
// the archive path.
// Stage 1 (Prepare): inject a metadata sub-record {timestamp, curve} into a
// shallow copy of data (the caller's map is left untouched).
// Stage 2 (Serialize): canonicalize via serialize.Serialize, then replace
// non-finite floats with their textual names so encoding cannot fail.
// Stage 3 (Write): 2-space-indented UTF-8 JSON under the filename grammar.
// An empty label records the curve as "unknown" and drops the filename part.
func (s *Store) SaveRecord(baseName string, data map[string]any, label string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("SaveRecord: %w", err)
	}

	curve := label
	if curve == "" {
		curve = DefaultCurve
	}
	payload := make(map[string]any, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["metadata"] = map[string]any{
		"timestamp": s.now().Format(time.RFC3339),
		"curve":     curve,
	}

	canonical := jsonSafe(serialize.Serialize(payload))
	buf, err := json.MarshalIndent(canonical, "", "  ")
	if err != nil {
		return "", fmt.Errorf("SaveRecord: encode %q: %w", baseName, err)
	}

	path := s.archivePath(baseName, label, RecordExt)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", fmt.Errorf("SaveRecord: %w", err)
	}

	return path, nil
}

// LatestPath resolves the most recent archive matching pattern (a glob
// relative to the store root): candidates are ordered by their embedded
// fixed-width timestamp, lexically greatest last. Returns ErrNoArchive
// (wrapped) when nothing matches.
func (s *Store) LatestPath(pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, pattern))
	if err != nil {
		return "", fmt.Errorf("LatestPath: bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("LatestPath: %q: %w", pattern, ErrNoArchive)
	}

	sort.Slice(matches, func(i, j int) bool {
		ki, kj := timestampKey(matches[i]), timestampKey(matches[j])
		if ki != kj {
			return ki < kj
		}
		return matches[i] < matches[j] // colliding timestamps: lexical tie-break
	})

	return matches[len(matches)-1], nil
}

// LoadLatestRecord resolves and parses the most recent JSON text record
// matching pattern. Returns the decoded object, the winning path, and
// ErrNoArchive (wrapped) when nothing matches. Malformed JSON propagates
// as a parse failure; there is no partial-result tolerance.
func (s *Store) LoadLatestRecord(pattern string) (map[string]any, string, error) {
	path, err := s.LatestPath(pattern)
	if err != nil {
		return nil, "", fmt.Errorf("LoadLatestRecord: %w", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("LoadLatestRecord: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, "", fmt.Errorf("LoadLatestRecord: parse %s: %w", path, err)
	}

	return data, path, nil
}

// timestampKey extracts the embedded YYYYMMDD_HHMMSS sort key: the final
// two underscore-separated segments of the stem. Ordering by the full
// embedded timestamp (rather than the trailing HHMMSS alone) keeps "latest"
// correct across day boundaries.
func timestampKey(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "_" + parts[len(parts)-1]
	}

	return parts[len(parts)-1]
}

// jsonSafe rewrites non-finite floats into their textual names so that
// encoding/json (which rejects NaN and ±Inf) cannot fail on pathological
// analysis output. Operates on serializer-canonical values only.
func jsonSafe(v any) any {
	switch x := v.(type) {
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "+Inf"
		case math.IsInf(x, -1):
			return "-Inf"
		}
		return x
	case []any:
		for i := range x {
			x[i] = jsonSafe(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = jsonSafe(x[k])
		}
		return x
	}

	return v
}
