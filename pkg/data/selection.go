package data

import (
	"strings"

	"primamateria.systems/reliquary/pkg/datastore"
	"primamateria.systems/reliquary/pkg/keys"
)

// Selection is an ordered group of owners sharing a Registry.
type Selection[T any] struct {
	registry *Registry[T]
	owners   []*T
}

func (s *Selection[T]) Len() int {
	return len(s.owners)
}

func (s *Selection[T]) Owners() []*T {
	out := make([]*T, len(s.owners))
	copy(out, s.owners)
	return out
}

func (s *Selection[T]) Each(fn func(i int, owner *T)) *Selection[T] {
	for i, owner := range s.owners {
		fn(i, owner)
	}
	return s
}

// All returns the user data of the first owner. The first call for an owner
// also loads every prefixed annotation not already stored. It returns nil
// for an empty selection.
func (s *Selection[T]) All() *datastore.Record {
	if len(s.owners) == 0 {
		return nil
	}
	r := s.registry
	owner := s.owners[0]
	if r.resolver.Applicable(owner) && !r.scanned(owner) {
		r.resolver.Scan(owner)
		r.private.Set(owner, r.marker, true)
	}
	if rec := r.user.Get(owner); rec != nil {
		return rec
	}
	return datastore.NewRecord()
}

// Get reads key from the first owner, trying the key as given, its
// capitalized form, and finally the owner's annotation.
func (s *Selection[T]) Get(key string) (any, bool) {
	return access(s.owners, key, s.read, s.write)
}

// Set writes key on every owner.
func (s *Selection[T]) Set(key string, value any) *Selection[T] {
	access(s.owners, key, s.read, s.write, value)
	return s
}

// SetAll merges values into the user data of every owner.
func (s *Selection[T]) SetAll(values map[string]any) *Selection[T] {
	for _, owner := range s.owners {
		s.registry.user.SetAll(owner, values)
	}
	return s
}

// Remove deletes keys, or all user data when none are given, on every owner.
func (s *Selection[T]) Remove(names ...string) *Selection[T] {
	for _, owner := range s.owners {
		removeKeys(s.registry.user, owner, names)
	}
	return s
}

func (s *Selection[T]) read(owner *T, key string) (any, bool) {
	user := s.registry.user
	if v, ok := user.Value(owner, key); ok {
		return v, true
	}
	camel := keys.Camel(key)
	if v, ok := user.Value(owner, camel); ok {
		return v, true
	}
	return s.registry.resolver.Resolve(owner, camel)
}

// write stores value under the capitalized key. A dashed key whose
// capitalized form was already set is also stored as given.
func (s *Selection[T]) write(owner *T, key string, value any) {
	user := s.registry.user
	camel := keys.Camel(key)
	_, existed := user.Value(owner, camel)
	user.Set(owner, camel, value)
	if existed && strings.Contains(key, "-") {
		user.Set(owner, key, value)
	}
}

func (r *Registry[T]) scanned(owner *T) bool {
	v, ok := r.private.Value(owner, r.marker)
	if !ok {
		return false
	}
	done, _ := v.(bool)
	return done
}
