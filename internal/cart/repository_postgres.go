package cart

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listLinesQuery = `
		SELECT cart_item_id, product_id, quantity
		FROM cart_item
		ORDER BY cart_item_id
	`
	getLineByProductQuery = `
		SELECT cart_item_id, product_id, quantity
		FROM cart_item
		WHERE product_id = $1
	`
	insertLineQuery = `
		INSERT INTO cart_item (product_id, quantity)
		VALUES ($1,$2)
		RETURNING cart_item_id
	`
	updateQuantityQuery = `UPDATE cart_item SET quantity = $1 WHERE cart_item_id = $2`
	deleteLineQuery     = `DELETE FROM cart_item WHERE cart_item_id = $1`
	deleteLinesQuery    = `DELETE FROM cart_item WHERE cart_item_id = ANY($1::int[])`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Line, error) {
	rows, err := r.db.Query(listLinesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Line, 0)
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByProduct(productID int) (Line, error) {
	var l Line
	err := r.db.QueryRow(getLineByProductQuery, productID).Scan(&l.ID, &l.ProductID, &l.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return Line{}, ErrNotFound
		}
		return Line{}, err
	}
	return l, nil
}

func (r *PostgresRepository) Insert(l Line) (Line, error) {
	var id int
	if err := r.db.QueryRow(insertLineQuery, l.ProductID, l.Quantity).Scan(&id); err != nil {
		return Line{}, err
	}
	l.ID = id
	return l, nil
}

func (r *PostgresRepository) UpdateQuantity(id, quantity int) error {
	result, err := r.db.Exec(updateQuantityQuery, quantity, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the line with the given id. A missing id is not an error:
// remove-from-cart is idempotent from the caller's perspective.
func (r *PostgresRepository) Delete(id int) error {
	_, err := r.db.Exec(deleteLineQuery, id)
	return err
}

func (r *PostgresRepository) DeleteByIDs(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(deleteLinesQuery, pq.Array(ids))
	return err
}
