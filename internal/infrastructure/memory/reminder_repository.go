package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

// ReminderRepo implementación en memoria de ReminderRepository.
type ReminderRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Reminder
}

// NewReminderRepository construye el repositorio vacío.
func NewReminderRepository() *ReminderRepo {
	return &ReminderRepo{items: make(map[string]*entity.Reminder)}
}

func (r *ReminderRepo) List(_ context.Context) ([]*entity.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Reminder, 0, len(r.items))
	for _, rem := range r.items {
		list = append(list, cloneReminder(rem))
	}
	return list, nil
}

func (r *ReminderRepo) GetByID(_ context.Context, id string) (*entity.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rem, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneReminder(rem), nil
}

func (r *ReminderRepo) Create(_ context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[reminder.ID]; ok {
		return cloneReminder(existing), nil
	}
	r.items[reminder.ID] = cloneReminder(reminder)
	return cloneReminder(reminder), nil
}

func (r *ReminderRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
