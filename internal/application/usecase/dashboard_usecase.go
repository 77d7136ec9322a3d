package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/inventory"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// DashboardUseCase genera el resumen de inventario: stock bajo, vencimientos y préstamos activos.
type DashboardUseCase struct {
	store repository.Store
	now   Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.Store, now Clock) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las tres colecciones se leen en paralelo; los contadores se calculan en memoria.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type borrowedResult struct {
		items []*entity.BorrowedItem
		err   error
	}
	type remindersResult struct {
		items []*entity.Reminder
		err   error
	}

	productsCh := make(chan productsResult, 1)
	borrowedCh := make(chan borrowedResult, 1)
	remindersCh := make(chan remindersResult, 1)

	go func() {
		items, err := uc.store.Products().List(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.store.BorrowedItems().List(ctx)
		borrowedCh <- borrowedResult{items, err}
	}()
	go func() {
		items, err := uc.store.Reminders().List(ctx)
		remindersCh <- remindersResult{items, err}
	}()

	products := <-productsCh
	borrowed := <-borrowedCh
	reminders := <-remindersCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if borrowed.err != nil {
		return nil, fmt.Errorf("dashboard: préstamos: %w", borrowed.err)
	}
	if reminders.err != nil {
		return nil, fmt.Errorf("dashboard: recordatorios: %w", reminders.err)
	}

	now := uc.now()
	summary := &dto.DashboardSummaryDTO{
		TotalProducts:  len(products.items),
		Reminders:      len(reminders.items),
		NeedsAttention: []dto.ProductAlertDTO{},
		GeneratedAt:    now,
	}
	for _, p := range products.items {
		if inventory.IsLowStock(p) {
			summary.LowStock++
		}
		if inventory.IsExpiringSoon(p, now) {
			summary.ExpiringSoon++
		}
		if inventory.NeedsAttention(p, now) {
			summary.NeedsAttention = append(summary.NeedsAttention, toProductAlert(p, now))
		}
	}
	for _, b := range borrowed.items {
		if !b.IsReturned() {
			summary.ActiveBorrowed++
		}
	}

	sort.SliceStable(summary.NeedsAttention, func(i, j int) bool {
		return summary.NeedsAttention[i].Name < summary.NeedsAttention[j].Name
	})
	return summary, nil
}

func toProductAlert(p *entity.Product, now time.Time) dto.ProductAlertDTO {
	alert := dto.ProductAlertDTO{
		ProductResponse:  *toProductResponse(p),
		StockStatus:      inventory.StockStatus(p),
		ExpirationStatus: inventory.ExpirationStatus(p, now),
	}
	if days, ok := inventory.DaysUntilExpiration(p, now); ok {
		alert.DaysToExpire = &days
	}
	return alert
}
