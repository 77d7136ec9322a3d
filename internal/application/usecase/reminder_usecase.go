package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/storesage/internal/application/dto"
	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// ReminderUseCase recordatorios de reposición.
type ReminderUseCase struct {
	repo repository.ReminderRepository
	now  Clock
}

// NewReminderUseCase construye el caso de uso.
func NewReminderUseCase(repo repository.ReminderRepository, now Clock) *ReminderUseCase {
	return &ReminderUseCase{repo: repo, now: now}
}

// Create crea un recordatorio con createdAt = ahora.
func (uc *ReminderUseCase) Create(ctx context.Context, in dto.ReminderRequest) (*dto.ReminderResponse, error) {
	return uc.create(ctx, dto.ImportReminder{ReminderRequest: in})
}

// Import crea el recordatorio respetando ID y createdAt originales.
func (uc *ReminderUseCase) Import(ctx context.Context, in dto.ImportReminder) (*dto.ReminderResponse, error) {
	return uc.create(ctx, in)
}

func (uc *ReminderUseCase) create(ctx context.Context, in dto.ImportReminder) (*dto.ReminderResponse, error) {
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, fmt.Errorf("%w: productName es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Note) == "" {
		return nil, fmt.Errorf("%w: note es requerido", domain.ErrInvalidInput)
	}
	priority := strings.ToLower(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.IsValidPriority(priority) {
		return nil, fmt.Errorf("%w: priority debe ser low, medium o high", domain.ErrInvalidInput)
	}

	reminder := &entity.Reminder{
		ID:          in.ID,
		ProductName: strings.TrimSpace(in.ProductName),
		Note:        strings.TrimSpace(in.Note),
		Priority:    priority,
		CreatedAt:   uc.now(),
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if t := in.CreatedAt.Ptr(); t != nil {
		reminder.CreatedAt = *t
	}

	stored, err := uc.repo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}
	return toReminderResponse(stored), nil
}

// GetByID obtiene un recordatorio por ID.
func (uc *ReminderUseCase) GetByID(ctx context.Context, id string) (*dto.ReminderResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReminderResponse(r), nil
}

// List lista los recordatorios.
func (uc *ReminderUseCase) List(ctx context.Context) ([]dto.ReminderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReminderResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReminderResponse(r))
	}
	return items, nil
}

// ListByPriority lista los recordatorios del más urgente al menos urgente; a igual prioridad, el más antiguo primero.
func (uc *ReminderUseCase) ListByPriority(ctx context.Context) ([]dto.ReminderResponse, error) {
	items, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := entity.PriorityRank(items[i].Priority), entity.PriorityRank(items[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// Delete elimina un recordatorio. domain.ErrNotFound si no existía.
func (uc *ReminderUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toReminderResponse(r *entity.Reminder) *dto.ReminderResponse {
	if r == nil {
		return nil
	}
	return &dto.ReminderResponse{
		ID:          r.ID,
		ProductName: r.ProductName,
		Note:        r.Note,
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt,
	}
}
