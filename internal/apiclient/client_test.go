package apiclient_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-api/internal/apiclient"
	"petcare-api/internal/router"
)

func newTestClient(t *testing.T) *apiclient.Client {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := apiclient.New(ts.URL+"/", 0)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsInvalidURL(t *testing.T) {
	_, err := apiclient.New("not a url", 0)
	assert.Error(t, err)
}

func TestClient_CRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	var echoed apiclient.ClientRecord
	in := apiclient.ClientRecord{Roles: "owner", Name: "Ana", Password: "secret", City: "Madrid"}
	require.NoError(t, c.Create(ctx, apiclient.Clients, in, &echoed))
	assert.Equal(t, in, echoed)

	id, err := apiclient.LastID(ctx, c, apiclient.Clients)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := apiclient.Get[apiclient.ClientRecord](ctx, c, apiclient.Clients, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Empty(t, got.Password)

	var updated apiclient.ClientRecord
	require.NoError(t, c.Update(ctx, apiclient.Clients, id, map[string]any{"city": "Bilbao"}, &updated))
	assert.Equal(t, "Bilbao", updated.City)
	assert.Equal(t, "secret", updated.Password)

	require.NoError(t, c.Delete(ctx, apiclient.Clients, id))

	_, err = apiclient.Get[apiclient.ClientRecord](ctx, c, apiclient.Clients, id)
	assert.True(t, apiclient.IsNotFound(err), "expected 404, got %v", err)
}

func TestList_Envelope(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	for _, name := range []string{"Milo", "Luna"} {
		require.NoError(t, c.Create(ctx, apiclient.Pets, apiclient.PetRecord{Name: name}, nil))
	}

	list, err := apiclient.List[apiclient.PetRecord](ctx, c, apiclient.Pets)
	require.NoError(t, err)
	assert.Equal(t, "OK", list.Message)
	assert.Equal(t, 2, list.TotalRecords)
	assert.Equal(t, "Luna", list.Results[1].Name)

	_, err = apiclient.LastID(ctx, c, apiclient.Contracts)
	assert.Error(t, err)
}
