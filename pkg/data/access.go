package data

type getter[T any] func(owner *T, key string) (any, bool)

type setter[T any] func(owner *T, key string, value any)

// access dispatches on arity: without a value it reads key from the first
// owner, with one it writes key on every owner in order and returns the
// written value.
func access[T any](owners []*T, key string, get getter[T], set setter[T], value ...any) (any, bool) {
	if len(value) == 0 {
		if len(owners) == 0 {
			return nil, false
		}
		return get(owners[0], key)
	}
	for _, owner := range owners {
		set(owner, key, value[0])
	}
	return value[0], true
}
