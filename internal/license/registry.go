package license

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// KeyPrefix is the fixed prefix every license key carries.
const KeyPrefix = "MINDAI-"

var (
	ErrMalformedKey = errors.New("license key is missing or malformed")
	ErrNotFound     = errors.New("license not found")
	ErrInactive     = errors.New("license is not active")
	ErrMissingKey   = errors.New("license key is required")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

// Valid reports whether s is one of the three recognized license statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusExpired:
		return true
	}
	return false
}

type Record struct {
	Key       string
	Status    Status
	Plan      string
	CreatedAt time.Time
	LastUsed  *time.Time
}

func (rec *Record) clone() Record {
	out := *rec
	if rec.LastUsed != nil {
		used := *rec.LastUsed
		out.LastUsed = &used
	}
	return out
}

// Registry is the in-memory source of truth for license validity.
// All mutation runs under the write lock so a concurrent Validate and
// Update on the same key never observe a partial record.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
	now     func() time.Time
}

func NewRegistry() *Registry {
	return NewRegistryWithClock(time.Now)
}

// NewRegistryWithClock injects the timestamp source, letting tests
// control LastUsed stamps.
func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{
		records: make(map[string]*Record),
		now:     now,
	}
}

// Validate checks key against the registry and, on success, stamps the
// record's LastUsed with the current time in the same critical section.
// Keys without the MINDAI- prefix are rejected before the registry is
// consulted.
func (r *Registry) Validate(key string) (Record, error) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return Record{}, ErrMalformedKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[key]
	if !exists {
		return Record{}, ErrNotFound
	}
	if rec.Status != StatusActive {
		return Record{}, ErrInactive
	}

	used := r.now()
	rec.LastUsed = &used
	return rec.clone(), nil
}

// Update applies status to the record under key. An unrecognized or
// empty status leaves the record unchanged and still succeeds; callers
// rely on this lenient policy.
func (r *Registry) Update(key string, status Status) (Record, error) {
	if key == "" {
		return Record{}, ErrMissingKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[key]
	if !exists {
		return Record{}, ErrNotFound
	}

	if status.Valid() {
		rec.Status = status
		slog.Info("License status updated", "key", key, "status", status)
	}
	return rec.clone(), nil
}

// List returns a snapshot of all records sorted by key.
func (r *Registry) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec.clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}

func (r *Registry) Add(rec Record) {
	r.mu.Lock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}
	r.records[rec.Key] = &rec
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// SeedDemo installs the fixed demo licenses the service ships with.
func (r *Registry) SeedDemo() {
	for _, rec := range []Record{
		{Key: "MINDAI-BETA-2024-DEMO1", Status: StatusActive, Plan: "beta"},
		{Key: "MINDAI-BETA-2024-DEMO2", Status: StatusActive, Plan: "beta"},
		{Key: "MINDAI-PRO-2024-TEST01", Status: StatusInactive, Plan: "pro"},
	} {
		r.Add(rec)
	}
}
