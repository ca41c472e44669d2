package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema crea las tablas si no existen. No es un sistema de
// migraciones: no versiona ni altera tablas existentes.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	raw, err := schemaFS.ReadFile(d.schemaFile)
	if err != nil {
		return fmt.Errorf("sqlstore: read schema %s: %w", d, err)
	}

	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: apply schema %s: %w", d, err)
		}
	}
	return nil
}
