package dto

import "time"

// ReminderRequest entrada para crear un recordatorio. Priority vacío => medium.
type ReminderRequest struct {
	ProductName string `json:"productName"`
	Note        string `json:"note"`
	Priority    string `json:"priority"`
}

// ReminderResponse salida de un recordatorio.
type ReminderResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Note        string    `json:"note"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}
