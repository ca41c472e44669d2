package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDoc_MatchesHandlerAnnotations(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "Listar clientes", doc.Paths["/clients"]["get"].Summary)
	assert.Equal(t, "Actualizar contrato (parcial)", doc.Paths["/contracts/{contractID}"]["put"].Summary)
	assert.Contains(t, doc.Definitions, "httpx.ListEnvelope-clients_clientResponse")
	assert.Contains(t, doc.Definitions, "httpx.ItemEnvelope-pets_petResponse")
	assert.NotContains(t, doc.Definitions, "clients.listEnvelope")
}
