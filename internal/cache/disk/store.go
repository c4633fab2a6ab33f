// Package disk implements the persistent embedding cache: a JSON ledger
// mapping URL digests to provenance metadata, plus one content-addressed
// artifact file per cached vector.
package disk

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/artcollab/muse/internal/domain"
	"github.com/artcollab/muse/internal/observability"
)

const (
	ledgerFileName    = "metadata.json"
	ledgerVersion     = "1.0"
	artifactExtension = ".f32"
	bytesPerFloat32   = 4
)

// ledgerEntry records provenance for one cached vector.
type ledgerEntry struct {
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generated_at"`
	FilePath    string    `json:"file_path"`
	Shape       []int     `json:"shape"`
	Dtype       string    `json:"dtype"`
}

// ledgerFile is the on-disk shape of metadata.json.
type ledgerFile struct {
	Version    string                 `json:"version"`
	ModelName  string                 `json:"model_name"`
	Embeddings map[string]ledgerEntry `json:"embeddings"`
}

// Store is a persistent URL-to-vector cache. Every read-path failure mode
// (missing artifact, corrupt artifact, unreadable ledger) degrades to a miss
// and self-heals; nothing escapes to the recommendation path.
type Store struct {
	dir        string
	ledgerPath string
	modelName  string
	metrics    domain.MetricsCollector

	mu      sync.Mutex
	entries map[string]ledgerEntry
}

// NewStore opens (or creates) a cache directory and loads its ledger. An
// unreadable ledger starts the cache empty rather than failing.
func NewStore(dir, modelName string, metrics domain.MetricsCollector) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	s := &Store{
		dir:        dir,
		ledgerPath: filepath.Join(dir, ledgerFileName),
		modelName:  modelName,
		metrics:    metrics,
		mu:         sync.Mutex{},
		entries:    make(map[string]ledgerEntry),
	}

	s.loadLedger(context.Background())

	return s, nil
}

func (s *Store) loadLedger(ctx context.Context) {
	logger := observability.FromContext(ctx)

	data, err := os.ReadFile(s.ledgerPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no existing cache ledger, starting empty",
				observability.String("dir", s.dir))
			s.saveLedgerLocked(ctx)
			return
		}
		logger.Error("failed to read cache ledger, starting empty",
			observability.Error(err))
		return
	}

	var ledger ledgerFile
	if err := json.Unmarshal(data, &ledger); err != nil {
		logger.Error("failed to parse cache ledger, starting empty",
			observability.Error(err))
		return
	}

	if ledger.Embeddings != nil {
		s.entries = ledger.Embeddings
	}

	logger.Info("cache ledger loaded",
		observability.Int("entries", len(s.entries)))
}

// saveLedgerLocked persists the ledger with a write-then-rename so a crash
// mid-write never corrupts existing entries. Callers must hold s.mu (or be
// single-threaded construction).
func (s *Store) saveLedgerLocked(ctx context.Context) {
	ledger := ledgerFile{
		Version:    ledgerVersion,
		ModelName:  s.modelName,
		Embeddings: s.entries,
	}

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		observability.FromContext(ctx).Error("failed to marshal cache ledger",
			observability.Error(err))
		return
	}

	tmpPath := s.ledgerPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		observability.FromContext(ctx).Error("failed to write cache ledger",
			observability.Error(err))
		return
	}

	if err := os.Rename(tmpPath, s.ledgerPath); err != nil {
		observability.FromContext(ctx).Error("failed to replace cache ledger",
			observability.Error(err))
	}
}

// urlDigest converts a URL into its content-addressed cache key.
func urlDigest(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])
}

func (s *Store) artifactPath(digest string) string {
	return filepath.Join(s.dir, digest+artifactExtension)
}

// Get returns the cached vector for url, or ok=false on a miss. Ledger
// entries without a readable, well-formed artifact are purged on the spot.
func (s *Store) Get(ctx context.Context, url string) ([]float32, bool) {
	logger := observability.FromContext(ctx)
	digest := urlDigest(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[digest]
	if !exists {
		s.recordMiss()
		return nil, false
	}

	data, err := os.ReadFile(s.artifactPath(digest))
	if err != nil {
		logger.Warn("ledger entry has no readable artifact, self-healing",
			observability.String("url", url),
			observability.Error(err))
		delete(s.entries, digest)
		s.saveLedgerLocked(ctx)
		s.recordMiss()
		return nil, false
	}

	vector, decodeErr := bytesToFloats(data)
	if decodeErr != nil || !shapeMatches(entry.Shape, len(vector)) {
		logger.Warn("corrupt cache artifact, invalidating entry",
			observability.String("url", url))
		s.removeLocked(ctx, digest)
		s.recordMiss()
		return nil, false
	}

	s.recordHit()
	return vector, true
}

// Set stores the vector for url: artifact first, ledger second. Failures are
// logged and absorbed; a lost write is just a future miss.
func (s *Store) Set(ctx context.Context, url string, vector []float32) {
	logger := observability.FromContext(ctx)
	digest := urlDigest(url)
	path := s.artifactPath(digest)

	if err := os.WriteFile(path, floatsToBytes(vector), 0o644); err != nil {
		logger.Error("failed to write cache artifact",
			observability.String("url", url),
			observability.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[digest] = ledgerEntry{
		URL:         url,
		GeneratedAt: time.Now().UTC(),
		FilePath:    digest + artifactExtension,
		Shape:       []int{len(vector)},
		Dtype:       "float32",
	}
	s.saveLedgerLocked(ctx)
}

// Invalidate removes url from the cache, reporting whether it existed.
func (s *Store) Invalidate(ctx context.Context, url string) bool {
	digest := urlDigest(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[digest]; !exists {
		return false
	}

	s.removeLocked(ctx, digest)
	return true
}

// InvalidateAll clears the cache and returns the number of entries removed.
func (s *Store) InvalidateAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.entries)
	for digest := range s.entries {
		if err := os.Remove(s.artifactPath(digest)); err != nil && !os.IsNotExist(err) {
			observability.FromContext(ctx).Error("failed to delete cache artifact",
				observability.String("digest", digest),
				observability.Error(err))
		}
	}

	s.entries = make(map[string]ledgerEntry)
	s.saveLedgerLocked(ctx)

	observability.FromContext(ctx).Info("embedding cache cleared",
		observability.Int("removed", count))

	return count
}

// CleanupOrphaned reconciles ledger entries lacking artifacts and artifacts
// lacking ledger entries, returning the total removed.
func (s *Store) CleanupOrphaned(ctx context.Context) int {
	logger := observability.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := 0

	for digest := range s.entries {
		if _, err := os.Stat(s.artifactPath(digest)); os.IsNotExist(err) {
			delete(s.entries, digest)
			cleaned++
		}
	}
	if cleaned > 0 {
		s.saveLedgerLocked(ctx)
	}

	pattern := filepath.Join(s.dir, "*"+artifactExtension)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		logger.Error("failed to scan cache directory", observability.Error(err))
		return cleaned
	}

	for _, path := range paths {
		digest := strings.TrimSuffix(filepath.Base(path), artifactExtension)
		if _, exists := s.entries[digest]; exists {
			continue
		}
		if removeErr := os.Remove(path); removeErr != nil {
			logger.Error("failed to delete orphaned artifact",
				observability.String("path", path),
				observability.Error(removeErr))
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		logger.Info("cleaned orphaned cache state",
			observability.Int("removed", cleaned))
	}

	return cleaned
}

// Stats reports entry counts and on-disk artifact size.
func (s *Store) Stats(_ context.Context) domain.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.CacheStats{
		TotalEntries:   len(s.entries),
		ExistingFiles:  0,
		MissingFiles:   0,
		TotalSizeBytes: 0,
	}

	for digest := range s.entries {
		info, err := os.Stat(s.artifactPath(digest))
		if err != nil {
			stats.MissingFiles++
			continue
		}
		stats.ExistingFiles++
		stats.TotalSizeBytes += info.Size()
	}

	return stats
}

// removeLocked deletes both artifact and ledger entry. Callers hold s.mu.
func (s *Store) removeLocked(ctx context.Context, digest string) {
	if err := os.Remove(s.artifactPath(digest)); err != nil && !os.IsNotExist(err) {
		observability.FromContext(ctx).Error("failed to delete cache artifact",
			observability.String("digest", digest),
			observability.Error(err))
	}

	delete(s.entries, digest)
	s.saveLedgerLocked(ctx)
}

func (s *Store) recordHit() {
	if s.metrics != nil {
		s.metrics.RecordCacheHit()
	}
}

func (s *Store) recordMiss() {
	if s.metrics != nil {
		s.metrics.RecordCacheMiss()
	}
}

func shapeMatches(shape []int, length int) bool {
	return len(shape) == 1 && shape[0] == length
}

// floatsToBytes serializes a vector as little-endian float32.
func floatsToBytes(vector []float32) []byte {
	buf := make([]byte, len(vector)*bytesPerFloat32)
	for i, f := range vector {
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloats deserializes a little-endian float32 artifact.
func bytesToFloats(data []byte) ([]float32, error) {
	if len(data)%bytesPerFloat32 != 0 {
		return nil, fmt.Errorf("artifact size %d is not a multiple of %d", len(data), bytesPerFloat32)
	}

	vector := make([]float32, len(data)/bytesPerFloat32)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*bytesPerFloat32:]))
	}
	return vector, nil
}
