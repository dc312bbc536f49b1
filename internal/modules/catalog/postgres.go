package catalog

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var priceStr string
	var rating sql.NullFloat64
	var isEco sql.NullBool
	err := scan(&p.ID, &p.Title, &priceStr, &p.Description, &p.Category,
		&p.Image, &rating, &isEco)
	if err != nil {
		return nil, err
	}
	p.Price, err = decimal.NewFromString(priceStr)
	if err != nil {
		return nil, err
	}
	if rating.Valid {
		v := rating.Float64
		p.Rating = &v
	}
	if isEco.Valid {
		v := isEco.Bool
		p.IsEco = &v
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,title,price,description,category,image_url,rating,is_eco
		FROM products WHERE id=$1`, id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) List(ctx context.Context, category string) ([]Product, error) {
	query := `SELECT id,title,price,description,category,image_url,rating,is_eco
	          FROM products`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category=$1`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}
