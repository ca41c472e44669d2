package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petcare-api/internal/domain/pets"
)

const petColumns = `id, name, image, description, owner_id`

type PetsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewPetsRepo(db *sql.DB, d Dialect) *PetsRepo {
	return &PetsRepo{db: db, d: d}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+petColumns+` FROM pets WHERE id = ?`), id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO pets (name, image, description, owner_id)
		VALUES (?,?,?,?)
		RETURNING id
	`),
		p.Name,
		p.Image,
		p.Description,
		nullID(p.OwnerID),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	return id, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE pets
		SET
			name = ?,
			image = ?,
			description = ?,
			owner_id = ?
		WHERE id = ?
	`),
		p.Name,
		p.Image,
		p.Description,
		nullID(p.OwnerID),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	return affectedOrNotFound(res, pets.ErrNotFound)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM pets WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return affectedOrNotFound(res, pets.ErrNotFound)
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var owner sql.NullInt64
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Image,
		&p.Description,
		&owner,
	); err != nil {
		return pets.Pet{}, err
	}
	p.OwnerID = owner.Int64
	return p, nil
}
