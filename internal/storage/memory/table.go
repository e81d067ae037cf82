package memory

import (
	"sort"
	"sync"
)

// table is an identity-keyed collection with its own monotonic counter.
// Rows cross its boundary only as clones, so callers never share pointer
// fields with a stored row.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1, clone: clone}
}

// insert assigns the next id and stores the row produced by build.
func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	row := t.clone(build(id))
	t.rows[id] = row
	return t.clone(row)
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	return t.clone(row), true
}

// update applies fn to a copy of the row and stores the result.
func (t *table[T]) update(id int64, fn func(row *T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	row = t.clone(row)
	fn(&row)
	t.rows[id] = row
	return t.clone(row), true
}

// selectSorted returns the rows accepted by keep, ordered by less.
func (t *table[T]) selectSorted(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	result := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			result = append(result, t.clone(row))
		}
	}
	t.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}
