package pets

import (
	"errors"
	"net/http"

	"petcare-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

type updatePetRequest struct {
	// owner_id se ignora en el PUT.
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

type petResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {object} httpx.ListEnvelope[petResponse]
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewListEnvelope(out))
	}
}

// getPetHandler godoc
// @Summary Obtener una mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} httpx.ItemEnvelope[petResponse]
// @Failure 404 {object} errs.HTTPError
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "petID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewItemEnvelope(toPetResponse(p)))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Responde con el objeto tal como fue enviado.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 200 {object} createPetRequest
// @Failure 400 {object} errs.HTTPError
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		raw, err := httpx.DecodeBody(r, &req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		if _, err := svc.Create(r.Context(), CreateInput(req)); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, raw)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (parcial)
// @Description Modifica name, image y description. owner_id no se puede cambiar.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} errs.HTTPError
// @Failure 404 {object} errs.HTTPError
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "petID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req updatePetRequest
		if _, err := httpx.DecodeBody(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {string} string "OK"
// @Failure 404 {object} errs.HTTPError
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "petID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
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

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		OwnerID:     p.OwnerID,
	}
}
