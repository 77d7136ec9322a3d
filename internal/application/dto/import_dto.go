package dto

// ImportRequest cuerpo de POST /api/init: el contenido completo del espejo local del cliente.
// A diferencia de los endpoints de creación, aquí se respetan los IDs y las fechas originales
// para que reimportar no duplique registros.
type ImportRequest struct {
	Products  []ImportProduct      `json:"products"`
	Borrowed  []ImportBorrowedItem `json:"borrowed"`
	Reminders []ImportReminder     `json:"reminders"`
}

// ImportProduct producto con su ID original.
type ImportProduct struct {
	ID string `json:"id"`
	ProductRequest
}

// ImportBorrowedItem préstamo con ID y fecha de préstamo originales.
type ImportBorrowedItem struct {
	ID         string `json:"id"`
	BorrowDate *Date  `json:"borrowDate"`
	BorrowedItemRequest
}

// ImportReminder recordatorio con ID y fecha de creación originales.
type ImportReminder struct {
	ID        string `json:"id"`
	CreatedAt *Date  `json:"createdAt"`
	ReminderRequest
}

// Total número de registros en la importación.
func (r ImportRequest) Total() int {
	return len(r.Products) + len(r.Borrowed) + len(r.Reminders)
}
