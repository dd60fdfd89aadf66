package datastore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Record is the per-owner mapping of keys to values. Keys keep the order in
// which they were first set. A nil *Record behaves as an empty record for
// every method except Set, which panics.
type Record struct {
	values *linkedhashmap.Map
}

// slot boxes a stored value so that a stored nil is still found.
type slot struct {
	v any
}

func (s slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

func NewRecord() *Record {
	return &Record{values: linkedhashmap.New()}
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values.Get(key)
	if !ok {
		return nil, false
	}
	return v.(slot).v, true
}

func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set assigns key, keeping its original position when it already exists.
func (r *Record) Set(key string, value any) {
	r.values.Put(key, slot{v: value})
}

func (r *Record) Delete(key string) {
	if r == nil {
		return
	}
	r.values.Remove(key)
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return r.values.Size()
}

func (r *Record) Empty() bool {
	return r.Len() == 0
}

func (r *Record) Keys() []string {
	if r == nil {
		return []string{}
	}
	out := make([]string, 0, r.values.Size())
	for _, k := range r.values.Keys() {
		out = append(out, k.(string))
	}
	return out
}

func (r *Record) Each(fn func(key string, value any)) {
	if r == nil {
		return
	}
	r.values.Each(func(k, v interface{}) {
		fn(k.(string), v.(slot).v)
	})
}

// Map copies the record into a plain map, losing key order.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	r.Each(func(k string, v any) {
		out[k] = v
	})
	return out
}

// Clone returns a shallow copy; values are shared, keys and order are not.
func (r *Record) Clone() *Record {
	c := NewRecord()
	r.Each(func(k string, v any) {
		c.Set(k, v)
	})
	return c
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r.values.ToJSON()
}

func (r *Record) String() string {
	parts := make([]string, 0, r.Len())
	r.Each(func(k string, v any) {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	})
	return "{" + strings.Join(parts, " ") + "}"
}
