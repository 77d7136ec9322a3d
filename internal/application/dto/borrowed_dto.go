package dto

import "time"

// BorrowedItemRequest entrada para registrar un préstamo.
// ProductID puede omitirse; en ese caso se genera uno (la referencia no se valida).
type BorrowedItemRequest struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	BorrowerName string `json:"borrowerName"`
	Quantity     *int   `json:"quantity"`
	ReturnDate   *Date  `json:"returnDate"`
	Returned     *int   `json:"returned"`
}

// BorrowedItemResponse salida de un préstamo. Returned es 0 (activo) o 1 (devuelto).
type BorrowedItemResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	BorrowerName string     `json:"borrowerName"`
	Quantity     int        `json:"quantity"`
	BorrowDate   time.Time  `json:"borrowDate"`
	ReturnDate   *time.Time `json:"returnDate"`
	Returned     int        `json:"returned"`
}

// Filtros de estado para GET /api/borrowed?status=.
const (
	BorrowedStatusActive   = "active"
	BorrowedStatusReturned = "returned"
)
