package memory

import (
	"time"

	"github.com/jhoicas/storesage/internal/domain/entity"
)

// Las copias evitan que el llamador modifique el estado interno a través de punteros.
// Las fechas se guardan y se devuelven en UTC, igual que en PostgreSQL.

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.ExpirationDate = cloneTime(p.ExpirationDate)
	c.Category = cloneString(p.Category)
	c.Description = cloneString(p.Description)
	return &c
}

func cloneBorrowed(b *entity.BorrowedItem) *entity.BorrowedItem {
	c := *b
	c.BorrowDate = b.BorrowDate.UTC()
	c.ReturnDate = cloneTime(b.ReturnDate)
	return &c
}

func cloneReminder(r *entity.Reminder) *entity.Reminder {
	c := *r
	c.CreatedAt = r.CreatedAt.UTC()
	return &c
}
