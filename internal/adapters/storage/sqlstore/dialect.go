package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect abstrae lo poco que cambia entre Postgres y SQLite:
// el estilo de placeholders y el schema de arranque.
type Dialect struct {
	name       string
	numbered   bool // $1, $2... en vez de ?
	schemaFile string
}

var (
	Postgres = Dialect{name: "postgres", numbered: true, schemaFile: "schema/postgres.sql"}
	SQLite   = Dialect{name: "sqlite", numbered: false, schemaFile: "schema/sqlite.sql"}
)

func (d Dialect) String() string { return d.name }

// Rebind reescribe los ? de q al estilo del dialecto.
// Las queries de este paquete no tienen ? dentro de literales.
func (d Dialect) Rebind(q string) string {
	if !d.numbered {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, ch := range q {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
