package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petcare-api/internal/domain/contracts"
)

const contractColumns = `id, pet_id, service_id, date, price, assessment, comments`

type ContractsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewContractsRepo(db *sql.DB, d Dialect) *ContractsRepo {
	return &ContractsRepo{db: db, d: d}
}

func (r *ContractsRepo) List(ctx context.Context) ([]contracts.Contract, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	out := make([]contracts.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContractsRepo) GetByID(ctx context.Context, id int64) (contracts.Contract, error) {
	row := r.db.QueryRowContext(ctx, r.d.Rebind(`SELECT `+contractColumns+` FROM contracts WHERE id = ?`), id)

	c, err := scanContract(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contracts.Contract{}, contracts.ErrNotFound
	}
	return c, err
}

func (r *ContractsRepo) Create(ctx context.Context, c contracts.Contract) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		INSERT INTO contracts (pet_id, service_id, date, price, assessment, comments)
		VALUES (?,?,?,?,?,?)
		RETURNING id
	`),
		nullID(c.PetID),
		nullID(c.ServiceID),
		c.Date,
		c.Price,
		nullInt(c.Assessment),
		nullString(c.Comments),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contract: %w", err)
	}
	return id, nil
}

func (r *ContractsRepo) Update(ctx context.Context, c contracts.Contract) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`
		UPDATE contracts
		SET
			pet_id = ?,
			service_id = ?,
			date = ?,
			price = ?,
			assessment = ?,
			comments = ?
		WHERE id = ?
	`),
		nullID(c.PetID),
		nullID(c.ServiceID),
		c.Date,
		c.Price,
		nullInt(c.Assessment),
		nullString(c.Comments),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return affectedOrNotFound(res, contracts.ErrNotFound)
}

func (r *ContractsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`DELETE FROM contracts WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return affectedOrNotFound(res, contracts.ErrNotFound)
}

func scanContract(s rowScanner) (contracts.Contract, error) {
	var c contracts.Contract
	var petID, serviceID, assessment sql.NullInt64
	var comments sql.NullString
	if err := s.Scan(
		&c.ID,
		&petID,
		&serviceID,
		&c.Date,
		&c.Price,
		&assessment,
		&comments,
	); err != nil {
		return contracts.Contract{}, err
	}
	c.PetID = petID.Int64
	c.ServiceID = serviceID.Int64
	c.Assessment = intPtr(assessment)
	c.Comments = stringPtr(comments)
	return c, nil
}
