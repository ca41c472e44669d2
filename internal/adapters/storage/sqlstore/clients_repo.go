package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petcare-api/internal/domain/clients"
)

const clientColumns = `id, roles, name, surname, email, password, avatar, description, city`

type ClientsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewClientsRepo(db *sql.DB, d Dialect) *ClientsRepo {
	return &ClientsRepo{db: db, d: d}
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+clientColumns+` FROM clients WHERE id = ?`), id)

	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, err
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO clients (
			roles, name, surname, email, password,
			avatar, description, city
		) VALUES (?,?,?,?,?,?,?,?)
		RETURNING id
	`),
		c.Roles,
		c.Name,
		c.Surname,
		c.Email,
		c.Password,
		c.Avatar,
		c.Description,
		c.City,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert client: %w", err)
	}
	return id, nil
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE clients
		SET
			roles = ?,
			name = ?,
			surname = ?,
			email = ?,
			password = ?,
			avatar = ?,
			description = ?,
			city = ?
		WHERE id = ?
	`),
		c.Roles,
		c.Name,
		c.Surname,
		c.Email,
		c.Password,
		c.Avatar,
		c.Description,
		c.City,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return affectedOrNotFound(res, clients.ErrNotFound)
}

func (r *ClientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM clients WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return affectedOrNotFound(res, clients.ErrNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(s rowScanner) (clients.Client, error) {
	var c clients.Client
	err := s.Scan(
		&c.ID,
		&c.Roles,
		&c.Name,
		&c.Surname,
		&c.Email,
		&c.Password,
		&c.Avatar,
		&c.Description,
		&c.City,
	)
	return c, err
}
