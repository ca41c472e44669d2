package services

import (
	"errors"
	"net/http"

	"petcare-api/internal/platform/httpx"
	"petcare-api/internal/platform/patch"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, catalog *Catalog) {
	r.Route("/services", func(sr chi.Router) {
		sr.Get("/", listServicesHandler(catalog))
		sr.Post("/", createServiceHandler(catalog))

		sr.Get("/{serviceID}", getServiceHandler(catalog))
		sr.Put("/{serviceID}", updateServiceHandler(catalog))
		sr.Delete("/{serviceID}", deleteServiceHandler(catalog))
	})
}

type createServiceRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CarerID     int64   `json:"carer_id"`
}

type updateServiceRequest struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	CarerID     *int64   `json:"carer_id"`
}

type serviceResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CarerID     int64   `json:"carer_id"`
}

// listServicesHandler godoc
// @Summary Listar servicios
// @Tags services
// @Produce json
// @Success 200 {object} httpx.ListEnvelope[serviceResponse]
// @Router /services [get]
func listServicesHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := catalog.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]serviceResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toServiceResponse(s))
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewListEnvelope(out))
	}
}

// getServiceHandler godoc
// @Summary Obtener un servicio
// @Tags services
// @Produce json
// @Param serviceID path int true "ID del servicio"
// @Success 200 {object} httpx.ItemEnvelope[serviceResponse]
// @Failure 404 {object} errs.HTTPError
// @Router /services/{serviceID} [get]
func getServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "serviceID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		s, err := catalog.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewItemEnvelope(toServiceResponse(s)))
	}
}

// createServiceHandler godoc
// @Summary Registrar servicio
// @Description Responde con el objeto tal como fue enviado.
// @Tags services
// @Accept json
// @Produce json
// @Param payload body createServiceRequest true "Datos del servicio"
// @Success 200 {object} createServiceRequest
// @Failure 400 {object} errs.HTTPError
// @Router /services [post]
func createServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createServiceRequest
		raw, err := httpx.DecodeBody(r, &req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if _, err := catalog.Create(r.Context(), CreateInput(req)); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, raw)
	}
}

// updateServiceHandler godoc
// @Summary Actualizar servicio (parcial)
// @Description carer_id en null deja el servicio sin cuidador.
// @Tags services
// @Accept json
// @Produce json
// @Param serviceID path int true "ID del servicio"
// @Param payload body updateServiceRequest true "Campos a modificar"
// @Success 200 {object} serviceResponse
// @Failure 400 {object} errs.HTTPError
// @Failure 404 {object} errs.HTTPError
// @Router /services/{serviceID} [put]
func updateServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "serviceID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		if _, err := catalog.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req updateServiceRequest
		raw, err := httpx.DecodeBody(r, &req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		keys := patch.Keys(raw)
		s, err := catalog.Update(r.Context(), id, UpdateInput{
			Title:       req.Title,
			Price:       req.Price,
			Description: req.Description,
			CarerID:     patch.From(keys, "carer_id", req.CarerID),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toServiceResponse(s))
	}
}

// deleteServiceHandler godoc
// @Summary Eliminar servicio
// @Tags services
// @Produce json
// @Param serviceID path int true "ID del servicio"
// @Success 200 {string} string "OK"
// @Failure 404 {object} errs.HTTPError
// @Router /services/{serviceID} [delete]
func deleteServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "serviceID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		if err := catalog.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.MessageOK)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.WriteNotFound(w, r)
		return
	}
	httpx.WriteError(w, r, err)
}

func toServiceResponse(s Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Price:       s.Price,
		Description: s.Description,
		CarerID:     s.CarerID,
	}
}
