package entity

import "time"

// Estados del préstamo (se guardan como entero 0/1).
const (
	BorrowedActive   = 0
	BorrowedReturned = 1
)

// BorrowedItem registra quién tiene prestado un producto.
// ProductName es una copia desnormalizada: no se actualiza si el producto cambia de nombre.
type BorrowedItem struct {
	ID           string
	ProductID    string
	ProductName  string
	BorrowerName string
	Quantity     int
	BorrowDate   time.Time
	ReturnDate   *time.Time
	Returned     int
}

// IsReturned indica si el préstamo ya fue devuelto.
func (b *BorrowedItem) IsReturned() bool {
	return b.Returned == BorrowedReturned
}
