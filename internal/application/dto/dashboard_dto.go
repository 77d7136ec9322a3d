package dto

import "time"

// DashboardSummaryDTO resumen de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts  int               `json:"totalProducts"`
	LowStock       int               `json:"lowStock"`
	ExpiringSoon   int               `json:"expiringSoon"`
	ActiveBorrowed int               `json:"activeBorrowed"`
	Reminders      int               `json:"reminders"`
	NeedsAttention []ProductAlertDTO `json:"needsAttention"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

// ProductAlertDTO producto que requiere atención, con sus estados derivados.
type ProductAlertDTO struct {
	ProductResponse
	StockStatus      string `json:"stockStatus"`
	ExpirationStatus string `json:"expirationStatus"`
	DaysToExpire     *int   `json:"daysToExpire"`
}
