// Package annotations seeds records from an owner's declared annotations.
//
// An annotation is read at most once per key and owner: the coerced value is
// written into the user store, and from then on the stored value shadows the
// annotation even if the annotation later changes.
package annotations

import (
	"strings"

	"github.com/charmbracelet/log"
	"primamateria.systems/reliquary/pkg/coerce"
	"primamateria.systems/reliquary/pkg/datastore"
	"primamateria.systems/reliquary/pkg/keys"
)

const DefaultPrefix = "data-"

// Annotated is implemented by owners that carry declared annotations.
// AttributeNames must list names in declaration order.
type Annotated interface {
	AttributeNames() []string
	Attribute(name string) (string, bool)
}

type Resolver[T any] struct {
	store  *datastore.Store[T]
	prefix string
	logger *log.Logger
}

func NewResolver[T any](store *datastore.Store[T], prefix string, logger *log.Logger) *Resolver[T] {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver[T]{store: store, prefix: prefix, logger: logger}
}

// Applicable reports whether owner exposes declared annotations.
func (r *Resolver[T]) Applicable(owner *T) bool {
	_, ok := annotated(owner)
	return ok
}

// Name returns the annotation name holding the value for a canonical key.
func (r *Resolver[T]) Name(key string) string {
	return r.prefix + keys.Dash(key)
}

// Resolve derives the value of key from the owner's annotation and caches it
// in the store. The caller has already checked the store. The boolean is
// false when there is no such annotation.
func (r *Resolver[T]) Resolve(owner *T, key string) (any, bool) {
	a, ok := annotated(owner)
	if !ok {
		return nil, false
	}
	name := r.Name(key)
	text, ok := a.Attribute(name)
	if !ok {
		return nil, false
	}
	value, err := coerce.Decode(text)
	if err != nil {
		r.logger.Debug("keeping annotation as text", "name", name, "err", err)
	}
	r.store.Set(owner, key, value)
	r.logger.Debug("resolved annotation", "name", name, "key", key)
	return value, true
}

// Scan resolves every prefixed annotation of owner whose key is not already
// stored. Annotations are visited in declaration order so that when two
// names map to the same key the first one wins.
func (r *Resolver[T]) Scan(owner *T) int {
	a, ok := annotated(owner)
	if !ok {
		return 0
	}
	resolved := 0
	for _, name := range a.AttributeNames() {
		if !strings.HasPrefix(name, r.prefix) {
			continue
		}
		key := keys.Camel(name[len(r.prefix):])
		if _, ok := r.store.Value(owner, key); ok {
			continue
		}
		if _, ok := r.Resolve(owner, key); ok {
			resolved++
		}
	}
	r.logger.Debug("scanned annotations", "resolved", resolved)
	return resolved
}

func annotated[T any](owner *T) (Annotated, bool) {
	if owner == nil {
		return nil, false
	}
	a, ok := any(owner).(Annotated)
	return a, ok
}
