// Package datastore associates records of key/value data with owner objects
// by identity.
//
// A Store never keeps an owner alive: records are keyed by weak pointers
// and, unless reclamation is disabled, dropped automatically once the owner
// becomes unreachable. Remove releases a record deterministically.
//
// A value that refers back to its own owner keeps that owner reachable and
// its record is then only released through Remove.
package datastore

import (
	"maps"
	"runtime"
	"slices"
	"sync"
	"weak"

	"github.com/charmbracelet/log"
	"primamateria.systems/reliquary/pkg/keys"
)

type Store[T any] struct {
	mu      sync.Mutex
	records map[weak.Pointer[T]]*entry
	name    string
	reclaim bool
	logger  *log.Logger
}

type entry struct {
	values  *Record
	cleanup runtime.Cleanup
	tracked bool
}

type Option func(*options)

type options struct {
	name    string
	reclaim bool
	logger  *log.Logger
}

// WithName labels the store in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithReclaim toggles automatic release of records whose owner has been
// garbage collected. It is on by default.
func WithReclaim(reclaim bool) Option {
	return func(o *options) {
		o.reclaim = reclaim
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New[T any](opts ...Option) *Store[T] {
	o := options{name: "data", reclaim: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return &Store[T]{
		records: make(map[weak.Pointer[T]]*entry),
		name:    o.name,
		reclaim: o.reclaim,
		logger:  o.logger.With("store", o.name),
	}
}

// HasData reports whether owner has a non-empty record.
func (s *Store[T]) HasData(owner *T) bool {
	if owner == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[weak.Make(owner)]
	return ok && !e.values.Empty()
}

// Get returns a snapshot of the owner's record, or nil if there is none.
func (s *Store[T]) Get(owner *T) *Record {
	if owner == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[weak.Make(owner)]
	if !ok {
		return nil
	}
	return e.values.Clone()
}

// Value returns the value stored under key. The boolean is false when the
// key is absent, which is distinct from a stored nil.
func (s *Store[T]) Value(owner *T, key string) (any, bool) {
	if owner == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[weak.Make(owner)]
	if !ok {
		return nil, false
	}
	return e.values.Get(key)
}

// Set stores value under key, creating the owner's record if needed.
func (s *Store[T]) Set(owner *T, key string, value any) {
	if owner == nil {
		s.logger.Debug("ignoring set on nil owner", "key", key)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(owner).Set(key, value)
}

// SetAll merges values into the owner's record. New keys are appended in
// sorted order.
func (s *Store[T]) SetAll(owner *T, values map[string]any) {
	if owner == nil || len(values) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.record(owner)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		rec.Set(k, values[k])
	}
}

// Access is the combined read/write entry point. An empty key returns the
// whole record (as a *Record, nil when absent). A key with no value reads
// it. A key with a value writes it and returns it.
func (s *Store[T]) Access(owner *T, key string, value ...any) (any, bool) {
	if key == "" {
		rec := s.Get(owner)
		if rec == nil {
			return nil, false
		}
		return rec, true
	}
	if len(value) == 0 {
		return s.Value(owner, key)
	}
	s.Set(owner, key, value[0])
	return value[0], true
}

// Remove deletes keys from the owner's record, or the whole record when no
// key is given. A single key that is not present is treated as a whitespace
// separated list of keys; several keys are always deleted literally. A
// record left empty is released.
func (s *Store[T]) Remove(owner *T, names ...string) {
	if owner == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wp := weak.Make(owner)
	e, ok := s.records[wp]
	if !ok {
		return
	}
	if len(names) == 0 {
		s.release(wp, e, "removed")
		return
	}
	if len(names) == 1 && !e.values.Has(names[0]) {
		names = keys.Fields(names[0])
	}
	for _, k := range names {
		e.values.Delete(k)
	}
	if e.values.Empty() {
		s.release(wp, e, "empty")
	}
}

// Len returns the number of owners holding a record.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// record returns the owner's live record, creating it. Callers hold s.mu.
func (s *Store[T]) record(owner *T) *Record {
	wp := weak.Make(owner)
	if e, ok := s.records[wp]; ok {
		return e.values
	}
	e := &entry{values: NewRecord()}
	if s.reclaim {
		e.cleanup = runtime.AddCleanup(owner, s.reclaimed, wp)
		e.tracked = true
	}
	s.records[wp] = e
	s.logger.Debugf("created record for %p", owner)
	return e.values
}

// release drops a record. Callers hold s.mu.
func (s *Store[T]) release(wp weak.Pointer[T], e *entry, reason string) {
	if e.tracked {
		e.cleanup.Stop()
	}
	delete(s.records, wp)
	s.logger.Debug("released record", "reason", reason)
}

func (s *Store[T]) reclaimed(wp weak.Pointer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[wp]; !ok {
		return
	}
	delete(s.records, wp)
	s.logger.Debug("released record", "reason", "reclaimed")
}
