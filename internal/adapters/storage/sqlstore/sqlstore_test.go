package sqlstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-api/internal/adapters/storage/sqlite"
	"petcare-api/internal/adapters/storage/sqlstore"
	"petcare-api/internal/domain/clients"
	"petcare-api/internal/domain/contracts"
	"petcare-api/internal/domain/pets"
	"petcare-api/internal/domain/services"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlstore.EnsureSchema(ctx, db, sqlstore.SQLite))
	return db
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, sqlstore.EnsureSchema(context.Background(), db, sqlstore.SQLite))
}

func TestClientsRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewClientsRepo(setupTestDB(t), sqlstore.SQLite)

	id, err := repo.Create(ctx, clients.Client{
		Roles:    "carer",
		Name:     "Ana",
		Surname:  "García",
		Email:    "ana@example.com",
		Password: "secret",
		City:     "Madrid",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "secret", got.Password)

	got.City = "Valencia"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Valencia", list[0].City)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, clients.ErrNotFound)
}

func TestClientsRepo_MissingRowsAreNotFound(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewClientsRepo(setupTestDB(t), sqlstore.SQLite)

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, clients.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, clients.Client{ID: 42}), clients.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 42), clients.ErrNotFound)
}

func TestPetsRepo_OwnerReference(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	clientsRepo := sqlstore.NewClientsRepo(db, sqlstore.SQLite)
	petsRepo := sqlstore.NewPetsRepo(db, sqlstore.SQLite)

	ownerID, err := clientsRepo.Create(ctx, clients.Client{Name: "Ana"})
	require.NoError(t, err)

	petID, err := petsRepo.Create(ctx, pets.Pet{Name: "Milo", OwnerID: ownerID})
	require.NoError(t, err)

	p, err := petsRepo.GetByID(ctx, petID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, p.OwnerID)

	// sin owner_id se guarda NULL y vuelve como 0
	orphanID, err := petsRepo.Create(ctx, pets.Pet{Name: "Luna"})
	require.NoError(t, err)
	orphan, err := petsRepo.GetByID(ctx, orphanID)
	require.NoError(t, err)
	assert.Zero(t, orphan.OwnerID)

	// owner inexistente viola la FK
	_, err = petsRepo.Create(ctx, pets.Pet{Name: "Toby", OwnerID: 999})
	assert.Error(t, err)

	// sin cascadas: no se puede borrar un cliente con mascotas
	assert.Error(t, clientsRepo.Delete(ctx, ownerID))
}

func TestServicesRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	carerID, err := sqlstore.NewClientsRepo(db, sqlstore.SQLite).Create(ctx, clients.Client{Name: "Luis"})
	require.NoError(t, err)

	repo := sqlstore.NewServicesRepo(db, sqlstore.SQLite)
	id, err := repo.Create(ctx, services.Service{Title: "Paseo", Price: 12.5, CarerID: carerID})
	require.NoError(t, err)

	s, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Paseo", s.Title)
	assert.InDelta(t, 12.5, s.Price, 0.0001)
	assert.Equal(t, carerID, s.CarerID)

	s.Price = 15
	require.NoError(t, repo.Update(ctx, s))

	s, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, s.Price, 0.0001)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), services.ErrNotFound)
}

func TestContractsRepo_NullableFields(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	ownerID, err := sqlstore.NewClientsRepo(db, sqlstore.SQLite).Create(ctx, clients.Client{Name: "Ana"})
	require.NoError(t, err)
	petID, err := sqlstore.NewPetsRepo(db, sqlstore.SQLite).Create(ctx, pets.Pet{Name: "Milo", OwnerID: ownerID})
	require.NoError(t, err)
	serviceID, err := sqlstore.NewServicesRepo(db, sqlstore.SQLite).Create(ctx, services.Service{Title: "Paseo", CarerID: ownerID})
	require.NoError(t, err)

	repo := sqlstore.NewContractsRepo(db, sqlstore.SQLite)
	id, err := repo.Create(ctx, contracts.Contract{
		PetID:     petID,
		ServiceID: serviceID,
		Date:      "2024-05-01",
		Price:     20,
	})
	require.NoError(t, err)

	c, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, c.Assessment)
	assert.Nil(t, c.Comments)
	assert.Equal(t, "2024-05-01", c.Date)

	score := int64(5)
	comment := "muy bien"
	c.Assessment = &score
	c.Comments = &comment
	require.NoError(t, repo.Update(ctx, c))

	c, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c.Assessment)
	require.NotNil(t, c.Comments)
	assert.Equal(t, int64(5), *c.Assessment)
	assert.Equal(t, "muy bien", *c.Comments)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
