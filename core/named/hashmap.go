package named

// Map is a lookup container keyed by strong types. A key's tag must carry both
// Hashable and Comparable: Hash places the key in a bucket and Equal settles
// collisions, so key equality never depends on the tag.
//
// Range visits entries in insertion order. The zero Map is empty and ready to
// use. A Map is not safe for concurrent
// mutation; callers sharing one across goroutines synchronize themselves.
type Map[U comparable, Tag keyTag, V any] struct {
	buckets map[uint64][]int
	entries []mapEntry[U, Tag, V]
	dead    int
}

type mapEntry[U comparable, Tag keyTag, V any] struct {
	key   Value[U, Tag]
	value V
	live  bool
}

// NewMap creates an empty Map
func NewMap[U comparable, Tag keyTag, V any]() *Map[U, Tag, V] {
	return &Map[U, Tag, V]{
		buckets: make(map[uint64][]int),
	}
}

// Set adds or updates a key-value pair
func (m *Map[U, Tag, V]) Set(key Value[U, Tag], value V) {
	h := Hash(key)
	if i, ok := m.find(h, key); ok {
		m.entries[i].value = value
		return
	}
	if m.buckets == nil {
		m.buckets = make(map[uint64][]int)
	}
	m.entries = append(m.entries, mapEntry[U, Tag, V]{key: key, value: value, live: true})
	m.buckets[h] = append(m.buckets[h], len(m.entries)-1)
}

// Get retrieves a value by key
func (m *Map[U, Tag, V]) Get(key Value[U, Tag]) (V, bool) {
	if i, ok := m.find(Hash(key), key); ok {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present
func (m *Map[U, Tag, V]) Has(key Value[U, Tag]) bool {
	_, ok := m.find(Hash(key), key)
	return ok
}

// Delete removes a key
func (m *Map[U, Tag, V]) Delete(key Value[U, Tag]) {
	h := Hash(key)
	i, ok := m.find(h, key)
	if !ok {
		return
	}

	bucket := m.buckets[h]
	for j, idx := range bucket {
		if idx == i {
			bucket = append(bucket[:j], bucket[j+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}

	m.entries[i] = mapEntry[U, Tag, V]{}
	m.dead++
	if m.dead > len(m.entries)/2 {
		m.compact()
	}
}

// Range iterates in insertion order until fn returns false
func (m *Map[U, Tag, V]) Range(fn func(Value[U, Tag], V) bool) {
	for _, e := range m.entries {
		if !e.live {
			continue
		}
		if !fn(e.key, e.value) {
			break
		}
	}
}

// Keys returns all keys in insertion order
func (m *Map[U, Tag, V]) Keys() []Value[U, Tag] {
	keys := make([]Value[U, Tag], 0, m.Len())
	m.Range(func(k Value[U, Tag], _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Len returns the number of entries
func (m *Map[U, Tag, V]) Len() int {
	return len(m.entries) - m.dead
}

func (m *Map[U, Tag, V]) find(h uint64, key Value[U, Tag]) (int, bool) {
	for _, i := range m.buckets[h] {
		if Equal(m.entries[i].key, key) {
			return i, true
		}
	}
	return 0, false
}

func (m *Map[U, Tag, V]) compact() {
	live := make([]mapEntry[U, Tag, V], 0, m.Len())
	buckets := make(map[uint64][]int, len(m.buckets))
	for _, e := range m.entries {
		if !e.live {
			continue
		}
		live = append(live, e)
		h := Hash(e.key)
		buckets[h] = append(buckets[h], len(live)-1)
	}
	m.entries = live
	m.buckets = buckets
	m.dead = 0
}
