// Package httpx agrupa los helpers HTTP que comparten los handlers de
// clients, pets, services y contracts.
//
// Antes writeJSON vivía duplicado en cada módulo. Con cuatro módulos
// repitiendo lo mismo ya conviene tenerlo en un solo lugar.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"petcare-api/internal/errs"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const maxBodyBytes = 1 << 20 // 1MB

// MessageOK es el valor de "message" en los sobres de lectura.
const MessageOK = "OK"

// ListEnvelope es la respuesta de GET /{resource}.
type ListEnvelope[T any] struct {
	Message      string `json:"message"`
	TotalRecords int    `json:"total_records"`
	Results      []T    `json:"results"`
}

// ItemEnvelope es la respuesta de GET /{resource}/{id}.
type ItemEnvelope[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}

func NewListEnvelope[T any](items []T) ListEnvelope[T] {
	if items == nil {
		items = []T{}
	}
	return ListEnvelope[T]{
		Message:      MessageOK,
		TotalRecords: len(items),
		Results:      items,
	}
}

func NewItemEnvelope[T any](item T) ItemEnvelope[T] {
	return ItemEnvelope[T]{Message: MessageOK, Result: item}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce cualquier error a JSON.
// *errs.HTTPError sale con su status; el resto es 500 y se loguea.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		WriteJSON(w, httpErr.Status, httpErr)
		return
	}

	hlog.FromRequest(r).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("unhandled error")

	WriteJSON(w, http.StatusInternalServerError, errs.NewInternalServerError())
}

// WriteNotFound escribe el 404 estándar de la API.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, errs.NewNotFoundError("Not found"))
}

// ParseID lee un parámetro entero de la ruta.
// Un id no numérico no matchea la ruta, igual que un id inexistente.
func ParseID(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// DecodeBody decodifica el body en dst y devuelve además el JSON crudo,
// para poder responder el objeto tal como fue enviado.
func DecodeBody(r *http.Request, dst any) (json.RawMessage, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.NewBadRequestError("invalid json")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, errs.NewBadRequestError("invalid json")
	}
	return json.RawMessage(raw), nil
}
