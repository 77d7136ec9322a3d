package dto

import "time"

// ReorderReportData datos del reporte PDF de reposición.
type ReorderReportData struct {
	Title       string
	GeneratedAt time.Time
	LowStock    []ReorderLine
	Expiring    []ExpiringLine
	Reminders   []ReminderResponse
}

// ReorderLine producto bajo el mínimo con la cantidad sugerida de pedido.
type ReorderLine struct {
	Name         string
	ShelfNumber  string
	Quantity     int
	MinQuantity  int
	SuggestedQty int
}

// ExpiringLine producto vencido o por vencer.
type ExpiringLine struct {
	Name           string
	ShelfNumber    string
	ExpirationDate time.Time
	DaysToExpire   int
}
