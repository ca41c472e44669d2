package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialect_Rebind(t *testing.T) {
	q := `UPDATE pets SET name = ?, image = ? WHERE id = ?`

	assert.Equal(t, `UPDATE pets SET name = $1, image = $2 WHERE id = $3`, Postgres.Rebind(q))
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, `SELECT 1`, Postgres.Rebind(`SELECT 1`))
}

func TestSchemaFiles_Embedded(t *testing.T) {
	for _, d := range []Dialect{Postgres, SQLite} {
		raw, err := schemaFS.ReadFile(d.schemaFile)
		assert.NoError(t, err, d.String())
		for _, table := range []string{"clients", "pets", "services", "contracts"} {
			assert.Contains(t, string(raw), "CREATE TABLE IF NOT EXISTS "+table, d.String())
		}
	}
}
