package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, quantity, shelf_number, expiration_date, min_quantity, category, description`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserta el producto; si el ID ya existe no hace nada y devuelve la fila almacenada.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.ShelfNumber,
		formatNullableDate(product.ExpirationDate), product.MinQuantity, product.Category, product.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return r.GetByID(ctx, product.ID)
}

// Update reemplaza todos los campos mutables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products SET name = $2, quantity = $3, shelf_number = $4, expiration_date = $5,
			min_quantity = $6, category = $7, description = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.ShelfNumber,
		formatNullableDate(product.ExpirationDate), product.MinQuantity, product.Category, product.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, product.ID)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p          entity.Product
		expiration *string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.ShelfNumber, &expiration, &p.MinQuantity, &p.Category, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if p.ExpirationDate, err = parseNullableDate(expiration); err != nil {
		return nil, fmt.Errorf("scan product %s: %w", p.ID, err)
	}
	return &p, nil
}
