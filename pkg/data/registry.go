// Package data is the public surface for attaching data to owners.
//
// A Registry holds two isolated stores built on the same engine: a private
// one for internal bookkeeping and a user one for caller data. User data is
// seeded lazily from an owner's declared annotations (see package
// annotations). Keys are normalized to their capitalized spelling; the
// dash-separated spelling is accepted on every read, write and removal.
package data

import (
	"github.com/charmbracelet/log"
	"primamateria.systems/reliquary/pkg/annotations"
	"primamateria.systems/reliquary/pkg/datastore"
	"primamateria.systems/reliquary/pkg/keys"
)

type Registry[T any] struct {
	private  *datastore.Store[T]
	user     *datastore.Store[T]
	resolver *annotations.Resolver[T]
	marker   string
	logger   *log.Logger
}

func New[T any](opts ...Option) *Registry[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	user := datastore.New[T](
		datastore.WithName("user"),
		datastore.WithReclaim(o.reclaim),
		datastore.WithLogger(o.logger),
	)
	return &Registry[T]{
		private: datastore.New[T](
			datastore.WithName("private"),
			datastore.WithReclaim(o.reclaim),
			datastore.WithLogger(o.logger),
		),
		user:     user,
		resolver: annotations.NewResolver(user, o.prefix, o.logger),
		marker:   o.scanMarker,
		logger:   o.logger,
	}
}

// Private exposes the internal store.
func (r *Registry[T]) Private() *datastore.Store[T] {
	return r.private
}

func (r *Registry[T]) User() *datastore.Store[T] {
	return r.user
}

// HasData reports whether owner has user or private data.
func (r *Registry[T]) HasData(owner *T) bool {
	return r.user.HasData(owner) || r.private.HasData(owner)
}

// Data reads or writes owner's user data. It does not consult annotations;
// use Select for that.
func (r *Registry[T]) Data(owner *T, key string, value ...any) (any, bool) {
	return accessStore(r.user, owner, key, value...)
}

func (r *Registry[T]) RemoveData(owner *T, names ...string) {
	removeKeys(r.user, owner, names)
}

// PrivateData reads or writes owner's private data.
func (r *Registry[T]) PrivateData(owner *T, key string, value ...any) (any, bool) {
	return accessStore(r.private, owner, key, value...)
}

func (r *Registry[T]) RemovePrivateData(owner *T, names ...string) {
	removeKeys(r.private, owner, names)
}

// Select groups owners so that data can be read from the first of them or
// written to all of them.
func (r *Registry[T]) Select(owners ...*T) *Selection[T] {
	return &Selection[T]{registry: r, owners: owners}
}

// accessStore is Store.Access with a fallback to the capitalized key on
// read misses.
func accessStore[T any](s *datastore.Store[T], owner *T, key string, value ...any) (any, bool) {
	if key == "" || len(value) > 0 {
		return s.Access(owner, key, value...)
	}
	if v, ok := s.Value(owner, key); ok {
		return v, true
	}
	return s.Value(owner, keys.Camel(key))
}

// removeKeys expands names into every spelling that may have been stored.
// Several names remove each of them under both spellings, never split. A
// single name present in the record removes it and its capitalized form;
// otherwise only the capitalized form is removed, which the store splits on
// whitespace when it is not present either.
func removeKeys[T any](s *datastore.Store[T], owner *T, names []string) {
	if len(names) == 0 {
		s.Remove(owner)
		return
	}
	if len(names) > 1 {
		expanded := make([]string, 0, len(names)*2)
		expanded = append(expanded, names...)
		for _, n := range names {
			expanded = append(expanded, keys.Camel(n))
		}
		s.Remove(owner, expanded...)
		return
	}
	name := names[0]
	if _, ok := s.Value(owner, name); ok {
		s.Remove(owner, name, keys.Camel(name))
		return
	}
	s.Remove(owner, keys.Camel(name))
}
