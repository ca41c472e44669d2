package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-api/internal/domain/clients"
	"petcare-api/internal/domain/contracts"
	"petcare-api/internal/domain/pets"
)

func TestClientRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo()

	id, err := repo.Create(ctx, clients.Client{ID: 99, Name: "Ana", City: "Madrid"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "store assigns ids, caller id is ignored")

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, id, got.ID)

	got.City = "Sevilla"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Sevilla", got.City)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, clients.ErrNotFound)
}

func TestClientRepo_MissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo()

	assert.ErrorIs(t, repo.Update(ctx, clients.Client{ID: 7}), clients.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 7), clients.ErrNotFound)
}

func TestPetRepo_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	for _, name := range []string{"Milo", "Luna", "Toby"} {
		_, err := repo.Create(ctx, pets.Pet{Name: name, OwnerID: 1})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, 2))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milo", items[0].Name)
	assert.Equal(t, "Toby", items[1].Name)

	// los ids no se reutilizan
	id, err := repo.Create(ctx, pets.Pet{Name: "Kira"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestContractRepo_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewContractRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, contracts.Contract{PetID: 1, ServiceID: 1, Price: 10})
		}()
	}
	wg.Wait()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 50)
	for i, c := range items {
		assert.Equal(t, int64(i+1), c.ID)
	}
}
