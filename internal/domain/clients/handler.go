package clients

import (
	"errors"
	"net/http"

	"petcare-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc))
		cr.Post("/", createClientHandler(svc))

		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Put("/{clientID}", updateClientHandler(svc))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

// createClientRequest es el cuerpo para registrar un cliente.
type createClientRequest struct {
	Roles       string `json:"roles"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	City        string `json:"city"`
}

// updateClientRequest: punteros para update parcial, nil = no tocar.
type updateClientRequest struct {
	Roles       *string `json:"roles"`
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Avatar      *string `json:"avatar"`
	Description *string `json:"description"`
	City        *string `json:"city"`
}

// clientResponse es la vista pública del cliente (sin password).
type clientResponse struct {
	ID          int64  `json:"id"`
	Roles       string `json:"roles"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	City        string `json:"city"`
}

// updateClientResponse devuelve los campos editables tras el PUT.
type updateClientResponse struct {
	Roles       string `json:"roles"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	City        string `json:"city"`
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Success 200 {object} httpx.ListEnvelope[clientResponse]
// @Router /clients [get]
func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewListEnvelope(out))
	}
}

// getClientHandler godoc
// @Summary Obtener un cliente
// @Tags clients
// @Produce json
// @Param clientID path int true "ID del cliente"
// @Success 200 {object} httpx.ItemEnvelope[clientResponse]
// @Failure 404 {object} errs.HTTPError
// @Router /clients/{clientID} [get]
func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "clientID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, httpx.NewItemEnvelope(toClientResponse(c)))
	}
}

// createClientHandler godoc
// @Summary Registrar cliente
// @Description Responde con el objeto tal como fue enviado, no con la fila persistida.
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body createClientRequest true "Datos del cliente"
// @Success 200 {object} createClientRequest
// @Failure 400 {object} errs.HTTPError
// @Router /clients [post]
func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
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

// updateClientHandler godoc
// @Summary Actualizar cliente (parcial)
// @Description Solo se modifican los campos presentes en el body.
// @Tags clients
// @Accept json
// @Produce json
// @Param clientID path int true "ID del cliente"
// @Param payload body updateClientRequest true "Campos a modificar"
// @Success 200 {object} updateClientResponse
// @Failure 400 {object} errs.HTTPError
// @Failure 404 {object} errs.HTTPError
// @Router /clients/{clientID} [put]
func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "clientID")
		if !ok {
			httpx.WriteNotFound(w, r)
			return
		}

		// El 404 tiene prioridad sobre un body inválido.
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req updateClientRequest
		if _, err := httpx.DecodeBody(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		c, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, updateClientResponse{
			Roles:       c.Roles,
			Name:        c.Name,
			Surname:     c.Surname,
			Email:       c.Email,
			Password:    c.Password,
			Avatar:      c.Avatar,
			Description: c.Description,
			City:        c.City,
		})
	}
}

// deleteClientHandler godoc
// @Summary Eliminar cliente
// @Tags clients
// @Produce json
// @Param clientID path int true "ID del cliente"
// @Success 200 {string} string "OK"
// @Failure 404 {object} errs.HTTPError
// @Router /clients/{clientID} [delete]
func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.ParseID(r, "clientID")
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

func toClientResponse(c Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		Roles:       c.Roles,
		Name:        c.Name,
		Surname:     c.Surname,
		Email:       c.Email,
		Avatar:      c.Avatar,
		Description: c.Description,
		City:        c.City,
	}
}
