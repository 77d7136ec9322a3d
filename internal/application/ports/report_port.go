package ports

import "github.com/jhoicas/storesage/internal/application/dto"

// ReorderReportGenerator puerto de salida para renderizar el reporte de reposición.
// El adaptador actual usa maroto (PDF); la aplicación solo conoce este contrato.
type ReorderReportGenerator interface {
	GenerateReorderReport(data dto.ReorderReportData) ([]byte, error)
}
