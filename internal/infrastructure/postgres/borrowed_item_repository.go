package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.BorrowedItemRepository = (*BorrowedItemRepo)(nil)

const borrowedColumns = `id, product_id, product_name, borrower_name, quantity, borrow_date, return_date, returned`

// BorrowedItemRepo implementación de BorrowedItemRepository sobre PostgreSQL.
type BorrowedItemRepo struct {
	q Querier
}

// NewBorrowedItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBorrowedItemRepository(q Querier) *BorrowedItemRepo {
	return &BorrowedItemRepo{q: q}
}

// List lista los préstamos, los más recientes primero.
func (r *BorrowedItemRepo) List(ctx context.Context) ([]*entity.BorrowedItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+borrowedColumns+` FROM borrowed_items ORDER BY borrow_date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list borrowed items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.BorrowedItem, 0)
	for rows.Next() {
		b, err := scanBorrowed(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BorrowedItemRepo) GetByID(ctx context.Context, id string) (*entity.BorrowedItem, error) {
	b, err := scanBorrowed(r.q.QueryRow(ctx, `SELECT `+borrowedColumns+` FROM borrowed_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create inserta el préstamo; un ID repetido se ignora.
func (r *BorrowedItemRepo) Create(ctx context.Context, item *entity.BorrowedItem) (*entity.BorrowedItem, error) {
	query := `
		INSERT INTO borrowed_items (` + borrowedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ProductID, item.ProductName, item.BorrowerName, item.Quantity,
		formatDate(item.BorrowDate), formatNullableDate(item.ReturnDate), item.Returned,
	)
	if err != nil {
		return nil, fmt.Errorf("insert borrowed item: %w", err)
	}
	return r.GetByID(ctx, item.ID)
}

// MarkReturned fija returned = 1 y, si falta, la fecha de devolución.
func (r *BorrowedItemRepo) MarkReturned(ctx context.Context, id string, at time.Time) (*entity.BorrowedItem, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE borrowed_items SET returned = 1, return_date = COALESCE(return_date, $2) WHERE id = $1`,
		id, formatDate(at),
	)
	if err != nil {
		return nil, fmt.Errorf("mark borrowed item returned: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func scanBorrowed(row pgx.Row) (*entity.BorrowedItem, error) {
	var (
		b          entity.BorrowedItem
		borrowDate string
		returnDate *string
	)
	err := row.Scan(&b.ID, &b.ProductID, &b.ProductName, &b.BorrowerName, &b.Quantity, &borrowDate, &returnDate, &b.Returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan borrowed item: %w", err)
	}
	if b.BorrowDate, err = parseDate(borrowDate); err != nil {
		return nil, fmt.Errorf("scan borrowed item %s: %w", b.ID, err)
	}
	if b.ReturnDate, err = parseNullableDate(returnDate); err != nil {
		return nil, fmt.Errorf("scan borrowed item %s: %w", b.ID, err)
	}
	return &b, nil
}
