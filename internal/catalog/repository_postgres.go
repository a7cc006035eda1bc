package catalog

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT product_id, product_name, product_price, product_desc, product_img
		FROM product
		ORDER BY product_id
	`
	getProductByIDQuery = `
		SELECT product_id, product_name, product_price, product_desc, product_img
		FROM product
		WHERE product_id = $1
	`
	countProductsQuery = `SELECT COUNT(*) FROM product`
	insertProductQuery = `
		INSERT INTO product (product_name, product_price, product_desc, product_img)
		VALUES ($1,$2,$3,$4)
		RETURNING product_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countProductsQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// InsertAll inserts the given products in a single transaction so a partially
// seeded catalog never survives a failed startup.
func (r *PostgresRepository) InsertAll(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range products {
		var id int
		if err := tx.QueryRow(insertProductQuery, p.Name, p.Price, p.Description, p.Image).Scan(&id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var desc sql.NullString
	var img sql.NullString

	if err := scanner.Scan(&p.ID, &p.Name, &p.Price, &desc, &img); err != nil {
		return Product{}, err
	}

	if desc.Valid {
		p.Description = desc.String
	}
	if img.Valid {
		p.Image = img.String
	}
	return p, nil
}
