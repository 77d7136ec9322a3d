package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/storesage/internal/domain"
	"github.com/jhoicas/storesage/internal/domain/entity"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

const reminderColumns = `id, product_name, note, created_at, priority`

// ReminderRepo implementación de ReminderRepository sobre PostgreSQL.
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

func (r *ReminderRepo) List(ctx context.Context) ([]*entity.Reminder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+reminderColumns+` FROM reminders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

func (r *ReminderRepo) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	rem, err := scanReminder(r.q.QueryRow(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rem, nil
}

func (r *ReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		reminder.ID, reminder.ProductName, reminder.Note, formatDate(reminder.CreatedAt), reminder.Priority,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reminder: %w", err)
	}
	return r.GetByID(ctx, reminder.ID)
}

func (r *ReminderRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reminder: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanReminder(row pgx.Row) (*entity.Reminder, error) {
	var (
		rem       entity.Reminder
		createdAt string
	)
	if err := row.Scan(&rem.ID, &rem.ProductName, &rem.Note, &createdAt, &rem.Priority); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reminder: %w", err)
	}
	t, err := parseDate(createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan reminder %s: %w", rem.ID, err)
	}
	rem.CreatedAt = t
	return &rem, nil
}
