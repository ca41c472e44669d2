// Package memory implementa los repositorios sin base de datos.
//
// No valida referencias entre tablas (owner_id, carer_id, pet_id,
// service_id): un id inexistente se guarda tal cual. Las FKs solo se
// aplican con los backends SQL.
package memory

import (
	"sort"
	"sync"
)

// table es el almacenamiento común de los repos in-memory: un mapa por id
// con secuencia autoincremental, como una tabla con PK serial.
type table[T any] struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{byID: make(map[int64]T)}
}

// insert asigna el próximo id y guarda la fila que devuelve build.
func (t *table[T]) insert(build func(id int64) T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.byID[t.seq] = build(t.seq)
	return t.seq
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.byID[id]
	return v, ok
}

func (t *table[T]) replace(id int64, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return false
	}
	t.byID[id] = v
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	return true
}

// all devuelve las filas ordenadas por id asc.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.byID[id])
	}
	return out
}
