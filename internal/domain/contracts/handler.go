package contracts

import (
	"errors"
	"net/http"

	"petcare-api/internal/platform/httpx"
	"petcare-api/internal/platform/patch"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/contracts", func(cr chi.Router) {
		cr.Get("/", listContractsHandler(svc))
		cr.Post("/", createContractHandler(svc))

		cr.Get("/{contractID}", getContractHandler(svc))
		cr.Put("/{contractID}", updateContractHandler(svc))
		cr.Delete("/{contractID}", deleteContractHandler(svc))
	})
}

type createContractRequest struct {
	PetID     int64   `json:"pet_id"`
	ServiceID int64   `json:"service_id"`
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
}

type updateContractRequest struct {
	PetID      *int64   `json:"pet_id"`
	ServiceID  *int64   `json:"service_id"`
	Date       *string  `json:"date"`
	Price      *float64 `json:"price"`
	Assessment *int64   `json:"assessment"`
	Comments   *string  `json:"comments"`
}

type contractResponse struct {
	ID         int64   `json:"id"`
	PetID      int64   `json:"pet_id"`
	ServiceID  int64   `json:"service_id"`
	Date       string  `json:"date"`
	Price      float64 `json:"price"`
	Assessment *int64  `json:"assessment"`
	Comments   *string `json:"comments"`
}

// listContractsHandler godoc
// @Summary Listar contratos
// @Tags contracts
// @Produce json
// @Success 200 {object} httpx.ListEnvelope[contractResponse]
// @Router /contracts [get]
func listContractsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]contractResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContractResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewListEnvelope(out))
	}
}

// getContractHandler godoc
// @Summary Obtener un contrato
// @Tags contracts
// @Produce json
// @Param contractID path int true "ID del contrato"
// @Success 200 {object} httpx.ItemEnvelope[contractResponse]
// @Failure 404 {object} errs.HTTPError
// @Router /contracts/{contractID} [get]
func getContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "contractID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewItemEnvelope(toContractResponse(c)))
	}
}

// createContractHandler godoc
// @Summary Registrar contrato
// @Description Responde con el objeto tal como fue enviado. assessment y comments se cargan luego con PUT.
// @Tags contracts
// @Accept json
// @Produce json
// @Param payload body createContractRequest true "Datos del contrato"
// @Success 200 {object} createContractRequest
// @Failure 400 {object} errs.HTTPError
// @Router /contracts [post]
func createContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContractRequest
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

// updateContractHandler godoc
// @Summary Actualizar contrato (parcial)
// @Description Un campo en null vacía assessment, comments, pet_id o service_id.
// @Tags contracts
// @Accept json
// @Produce json
// @Param contractID path int true "ID del contrato"
// @Param payload body updateContractRequest true "Campos a modificar"
// @Success 200 {object} contractResponse
// @Failure 400 {object} errs.HTTPError
// @Failure 404 {object} errs.HTTPError
// @Router /contracts/{contractID} [put]
func updateContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "contractID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req updateContractRequest
		raw, err := httpx.DecodeBody(r, &req)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		keys := patch.Keys(raw)
		c, err := svc.Update(r.Context(), id, UpdateInput{
			PetID:      patch.From(keys, "pet_id", req.PetID),
			ServiceID:  patch.From(keys, "service_id", req.ServiceID),
			Date:       req.Date,
			Price:      req.Price,
			Assessment: patch.From(keys, "assessment", req.Assessment),
			Comments:   patch.From(keys, "comments", req.Comments),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toContractResponse(c))
	}
}

// deleteContractHandler godoc
// @Summary Eliminar contrato
// @Tags contracts
// @Produce json
// @Param contractID path int true "ID del contrato"
// @Success 200 {string} string "OK"
// @Failure 404 {object} errs.HTTPError
// @Router /contracts/{contractID} [delete]
func deleteContractHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "contractID")
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

func toContractResponse(c Contract) contractResponse {
	return contractResponse{
		ID:         c.ID,
		PetID:      c.PetID,
		ServiceID:  c.ServiceID,
		Date:       c.Date,
		Price:      c.Price,
		Assessment: c.Assessment,
		Comments:   c.Comments,
	}
}
