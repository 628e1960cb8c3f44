package store

// ordered is a map that remembers insertion order, which is the order the
// platform lists entities in.
type ordered[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

func newOrdered[K comparable, V any]() *ordered[K, V] {
	return &ordered[K, V]{m: make(map[K]V)}
}

func (o *ordered[K, V]) get(k K) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

func (o *ordered[K, V]) put(k K, v V) {
	if _, exists := o.m[k]; !exists {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
}

func (o *ordered[K, V]) values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.m[k])
	}
	return out
}

func (o *ordered[K, V]) len() int {
	return len(o.keys)
}
