package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petcare-api/internal/domain/services"
)

const serviceColumns = `id, title, price, description, carer_id`

type ServicesRepo struct {
	db *sql.DB
	d  Dialect
}

func NewServicesRepo(db *sql.DB, d Dialect) *ServicesRepo {
	return &ServicesRepo{db: db, d: d}
}

func (r *ServicesRepo) List(ctx context.Context) ([]services.Service, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	out := make([]services.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ServicesRepo) GetByID(ctx context.Context, id int64) (services.Service, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+serviceColumns+` FROM services WHERE id = ?`), id)

	s, err := scanService(row)
	if errors.Is(err, sql.ErrNoRows) {
		return services.Service{}, services.ErrNotFound
	}
	return s, err
}

func (r *ServicesRepo) Create(ctx context.Context, s services.Service) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO services (title, price, description, carer_id)
		VALUES (?,?,?,?)
		RETURNING id
	`),
		s.Title,
		s.Price,
		s.Description,
		nullID(s.CarerID),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert service: %w", err)
	}
	return id, nil
}

func (r *ServicesRepo) Update(ctx context.Context, s services.Service) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE services
		SET
			title = ?,
			price = ?,
			description = ?,
			carer_id = ?
		WHERE id = ?
	`),
		s.Title,
		s.Price,
		s.Description,
		nullID(s.CarerID),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return affectedOrNotFound(res, services.ErrNotFound)
}

func (r *ServicesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM services WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return affectedOrNotFound(res, services.ErrNotFound)
}

func scanService(rs rowScanner) (services.Service, error) {
	var s services.Service
	var carer sql.NullInt64
	if err := rs.Scan(
		&s.ID,
		&s.Title,
		&s.Price,
		&s.Description,
		&carer,
	); err != nil {
		return services.Service{}, err
	}
	s.CarerID = carer.Int64
	return s, nil
}
