package entity

import "time"

// Prioridades de recordatorio.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reminder nota de reposición. ProductName es texto libre, no una referencia.
type Reminder struct {
	ID          string
	ProductName string
	Note        string
	Priority    string
	CreatedAt   time.Time
}

// IsValidPriority valida el enumerado de prioridad.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityRank devuelve el orden de urgencia (0 = más urgente).
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
