package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/application/ports"
	"github.com/jhoicas/storesage/internal/domain/inventory"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

const reorderReportTitle = "Reporte de reposición"

// ReportUseCase arma el reporte de reposición: productos bajo el mínimo, productos vencidos o por
// vencer y recordatorios abiertos ordenados por prioridad.
type ReportUseCase struct {
	products  repository.ProductRepository
	reminders *ReminderUseCase
	generator ports.ReorderReportGenerator
	now       Clock
}

// NewReportUseCase construye el caso de uso inyectando el generador.
func NewReportUseCase(
	products repository.ProductRepository,
	reminders *ReminderUseCase,
	generator ports.ReorderReportGenerator,
	now Clock,
) *ReportUseCase {
	return &ReportUseCase{products: products, reminders: reminders, generator: generator, now: now}
}

// BuildReorderData calcula las líneas del reporte sin renderizarlo.
func (uc *ReportUseCase) BuildReorderData(ctx context.Context) (*dto.ReorderReportData, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	reminders, err := uc.reminders.ListByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: recordatorios: %w", err)
	}

	now := uc.now()
	data := &dto.ReorderReportData{
		Title:       reorderReportTitle,
		GeneratedAt: now,
		LowStock:    []dto.ReorderLine{},
		Expiring:    []dto.ExpiringLine{},
		Reminders:   reminders,
	}
	for _, p := range list {
		if inventory.IsLowStock(p) {
			data.LowStock = append(data.LowStock, dto.ReorderLine{
				Name:         p.Name,
				ShelfNumber:  p.ShelfNumber,
				Quantity:     p.Quantity,
				MinQuantity:  p.MinQuantity,
				SuggestedQty: inventory.SuggestedOrderQty(p),
			})
		}
		if days, ok := inventory.DaysUntilExpiration(p, now); ok && days <= inventory.ExpiringSoonDays {
			data.Expiring = append(data.Expiring, dto.ExpiringLine{
				Name:           p.Name,
				ShelfNumber:    p.ShelfNumber,
				ExpirationDate: *p.ExpirationDate,
				DaysToExpire:   days,
			})
		}
	}

	// Mayor faltante primero; vencimientos más cercanos (o ya vencidos) primero.
	sort.SliceStable(data.LowStock, func(i, j int) bool {
		return data.LowStock[i].SuggestedQty > data.LowStock[j].SuggestedQty
	})
	sort.SliceStable(data.Expiring, func(i, j int) bool {
		return data.Expiring[i].DaysToExpire < data.Expiring[j].DaysToExpire
	})
	return data, nil
}

// GenerateReorderPDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) GenerateReorderPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	data, err := uc.BuildReorderData(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateReorderReport(*data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reposicion-%s.pdf", data.GeneratedAt.Format("20060102")), nil
}
