// Package patch modela campos de un PUT parcial que admiten null.
package patch

import "encoding/json"

// Field distingue "no vino" (Present=false) de "vino null" (Present, Value=nil).
type Field[T any] struct {
	Present bool
	Value   *T
}

func Set[T any](v T) Field[T] { return Field[T]{Present: true, Value: &v} }

func Null[T any]() Field[T] { return Field[T]{Present: true} }

// From arma el campo a partir del puntero ya decodificado y las claves
// que venían en el body.
func From[T any](keys map[string]bool, key string, v *T) Field[T] {
	return Field[T]{Present: keys[key] || v != nil, Value: v}
}

// ApplyPtr copia el valor en dst; null deja dst en nil.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

// ApplyZero copia el valor en dst; null deja el zero value de T.
func (f Field[T]) ApplyZero(dst *T) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		var zero T
		*dst = zero
		return
	}
	*dst = *f.Value
}

// Keys devuelve las claves de primer nivel de un objeto JSON.
// Un body que no es objeto no tiene claves.
func Keys(raw []byte) map[string]bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]bool{}
	}
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys
}
